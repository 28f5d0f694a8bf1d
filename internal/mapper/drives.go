package mapper

import (
	"strings"

	"github.com/gridirondash/gridiron/internal/model"
)

// classifyDrive buckets the provider's free-text drive result into the
// closed result set. More specific phrases are checked before their
// substrings, so "missed field goal" never lands on FG.
func classifyDrive(text string) model.DriveResult {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "missed field goal"):
		return model.DriveMissedFG
	case strings.Contains(text, "touchdown") || text == "td":
		return model.DriveTD
	case strings.Contains(text, "field goal") || text == "fg":
		return model.DriveFG
	case strings.Contains(text, "punt"):
		return model.DrivePunt
	case strings.Contains(text, "interception"),
		strings.Contains(text, "fumble"),
		strings.Contains(text, "turnover"):
		return model.DriveTO
	case strings.Contains(text, "downs"):
		return model.DriveDowns
	case strings.Contains(text, "end") && strings.Contains(text, "half"):
		return model.DriveEndHalf
	default:
		return model.DriveOther
	}
}

func classifyPlay(typeText string) model.PlayResult {
	typeText = strings.ToLower(typeText)
	switch {
	case strings.Contains(typeText, "touchdown"):
		return model.PlayTD
	case strings.Contains(typeText, "field goal"):
		return model.PlayFG
	case strings.Contains(typeText, "interception"),
		strings.Contains(typeText, "fumble"),
		strings.Contains(typeText, "turnover"):
		return model.PlayTO
	case strings.Contains(typeText, "safety"):
		return model.PlaySafety
	case strings.Contains(typeText, "penalty"):
		return model.PlayPenalty
	default:
		return model.PlayNormal
	}
}

func mapDriveSummary(drive Raw, homeID string) model.DriveSummary {
	side := model.SideAway
	if stringify(extractMap(drive, "team")["id"]) == homeID {
		side = model.SideHome
	}
	start := extractMap(drive, "start")
	end := extractMap(drive, "end")

	plays, ok := asInt(drive["offensivePlays"])
	if !ok {
		plays, _ = asInt(drive["plays"])
	}
	yards, _ := asInt(drive["yards"])
	quarter, _ := asInt(extractMap(end, "period")["number"])

	return model.DriveSummary{
		ID:               stringify(drive["id"]),
		Team:             side,
		Quarter:          quarter,
		StartClock:       extractString(extractMap(start, "clock"), "displayValue"),
		EndClock:         extractString(extractMap(end, "clock"), "displayValue"),
		StartYardLine:    extractIntPtr(start, "yardLine"),
		EndYardLine:      extractIntPtr(end, "yardLine"),
		Plays:            plays,
		Yards:            yards,
		TimeOfPossession: extractString(extractMap(drive, "timeElapsed"), "displayValue"),
		Result:           classifyDrive(fallbackString(extractString(drive, "result"), extractString(drive, "displayResult"))),
	}
}

func mapPlay(play Raw) model.Play {
	start := extractMap(play, "start")
	quarter, _ := asInt(extractMap(play, "period")["number"])
	return model.Play{
		PlayID:      stringify(play["id"]),
		Quarter:     quarter,
		Clock:       extractString(extractMap(play, "clock"), "displayValue"),
		Down:        extractIntPtr(start, "down"),
		Distance:    extractIntPtr(start, "distance"),
		YardLine:    extractIntPtr(start, "yardLine"),
		Description: extractString(play, "text"),
		Gained:      extractIntPtr(play, "statYardage"),
		Result:      classifyPlay(extractString(extractMap(play, "type"), "text")),
	}
}

// MapDrives converts the drives section of a detail payload. Games
// without a drives block come back with empty shells rather than nils so
// callers can render uniformly.
func MapDrives(root Raw, homeID, awayID string) model.Drives {
	drivesRaw := extractMap(root, "drives")
	current := extractMap(drivesRaw, "current")

	summary := collect(extractArray(drivesRaw, "previous"), func(drive Raw) (model.DriveSummary, bool) {
		return mapDriveSummary(drive, homeID), true
	})

	out := model.Drives{Summary: summary}
	if len(current) == 0 {
		return out
	}

	plays := collect(extractArray(current, "plays"), func(play Raw) (model.Play, bool) {
		return mapPlay(play), true
	})

	id := stringify(current["id"])
	var side *model.TeamSide
	switch stringify(extractMap(current, "team")["id"]) {
	case homeID:
		home := model.SideHome
		side = &home
	case awayID:
		away := model.SideAway
		side = &away
	}

	out.CurrentDriveID = &id
	out.Current = &model.CurrentDrive{ID: &id, Team: side, Plays: plays}
	return out
}
