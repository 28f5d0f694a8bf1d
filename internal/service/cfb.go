package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/cache"
	"github.com/gridirondash/gridiron/internal/logos"
	"github.com/gridirondash/gridiron/internal/mapper"
	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/upstream/cfbd"
)

var errNoWeeks = errors.New("no calendar weeks available")

// preferredPolls are checked in order before falling back to the first
// poll in the rankings response.
var preferredPolls = map[string]bool{
	"AP Top 25":    true,
	"AP":           true,
	"CFP Rankings": true,
	"CFP":          true,
}

// CFB serves college football scoreboards from the college data
// provider, enriched with team metadata, poll ranks, and logo lookups.
type CFB struct {
	client *cfbd.Client
	cache  cache.Cache
	logos  *logos.Table
	log    *logrus.Entry
	clock  func() time.Time
}

func NewCFB(client *cfbd.Client, store cache.Cache, table *logos.Table, logger *logrus.Logger) *CFB {
	return &CFB{
		client: client,
		cache:  store,
		logos:  table,
		log:    logger.WithField("service", "cfb"),
		clock:  time.Now,
	}
}

func (c *CFB) cachedList(ctx context.Context, key string, load func(ctx context.Context) ([]any, error)) ([]any, error) {
	value, err := c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return nil, err
	}
	list, _ := value.([]any)
	return list, nil
}

// teamsForYear indexes FBS team metadata by school name.
func (c *CFB) teamsForYear(ctx context.Context, year int) (map[string]mapper.Raw, error) {
	raw, err := c.cachedList(ctx, fmt.Sprintf("cfbd:teams:%d", year), func(ctx context.Context) ([]any, error) {
		return c.client.FBSTeams(ctx, year)
	})
	if err != nil {
		return nil, err
	}

	bySchool := map[string]mapper.Raw{}
	for _, item := range raw {
		team, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if school, ok := team["school"].(string); ok && school != "" {
			bySchool[school] = team
		}
	}
	return bySchool, nil
}

// rankingsForWeek indexes poll ranks by school name, preferring the AP
// and CFP polls over whatever else the provider lists first.
func (c *CFB) rankingsForWeek(ctx context.Context, year, week int) (map[string]int, error) {
	raw, err := c.cachedList(ctx, fmt.Sprintf("cfbd:rankings:%d:%d", year, week), func(ctx context.Context) ([]any, error) {
		return c.client.Rankings(ctx, year, week)
	})
	if err != nil {
		return nil, err
	}

	var chosen []any
	for _, item := range raw {
		poll, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ranks, ok := poll["ranks"].([]any)
		if !ok {
			continue
		}
		name, _ := poll["poll"].(string)
		if preferredPolls[name] {
			chosen = ranks
			break
		}
		if chosen == nil {
			chosen = ranks
		}
	}

	bySchool := map[string]int{}
	for _, item := range chosen {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		school, _ := entry["school"].(string)
		rank, isNum := entry["rank"].(float64)
		if school != "" && isNum {
			bySchool[school] = int(rank)
		}
	}
	return bySchool, nil
}

func (c *CFB) games(ctx context.Context, year, week int, seasonType, conference string) ([]any, error) {
	if seasonType == "" {
		seasonType = "regular"
	}
	key := fmt.Sprintf("cfbd:games:%d:%d:%s:%s", year, week, seasonType, conference)
	return c.cachedList(ctx, key, func(ctx context.Context) ([]any, error) {
		return c.client.Games(ctx, year, week, seasonType, conference)
	})
}

// weekForDate resolves a YYYY-MM-DD (or YYYYMMDD) date to the calendar
// week containing it.
func (c *CFB) weekForDate(ctx context.Context, year int, date string) (int, bool) {
	raw, err := c.cachedList(ctx, fmt.Sprintf("cfbd:calendar:%d", year), func(ctx context.Context) ([]any, error) {
		return c.client.Calendar(ctx, year)
	})
	if err != nil {
		return 0, false
	}

	date = normalizeDate(date)
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		start := normalizeDate(stringField(entry, "firstGameStart", "startDate", "start_date"))
		end := normalizeDate(stringField(entry, "lastGameStart", "endDate", "end_date"))
		week, isNum := entry["week"].(float64)
		if !isNum || start == "" || end == "" {
			continue
		}
		if start <= date && date <= end {
			return int(week), true
		}
	}
	return 0, false
}

// GameSummaries shapes college games into the same summary rows the
// NFL scoreboard uses, so clients treat both leagues uniformly.
// seasonType defaults to regular; conference narrows the board when
// set.
func (c *CFB) GameSummaries(ctx context.Context, date string, week int, seasonType, conference string) ([]model.GameSummary, error) {
	year := c.clock().UTC().Year()
	if len(date) >= 4 {
		var y int
		if _, err := fmt.Sscanf(date[:4], "%d", &y); err == nil {
			year = y
		}
	}

	if week == 0 && date != "" {
		if resolved, ok := c.weekForDate(ctx, year, date); ok {
			week = resolved
		}
	}
	if week == 0 {
		return []model.GameSummary{}, nil
	}

	rows, err := c.games(ctx, year, week, seasonType, conference)
	if err != nil {
		return nil, err
	}

	out := []model.GameSummary{}
	for _, item := range rows {
		game, ok := item.(map[string]any)
		if !ok {
			continue
		}
		summary, ok := c.summaryRow(game)
		if !ok {
			continue
		}
		out = append(out, summary)
	}
	return out, nil
}

func (c *CFB) summaryRow(game mapper.Raw) (model.GameSummary, bool) {
	gameID := stringField(game, "id", "game_id")
	if gameID == "" {
		return model.GameSummary{}, false
	}

	homeName := stringField(game, "home_team", "homeTeam", "home_team_name", "home")
	awayName := stringField(game, "away_team", "awayTeam", "away_team_name", "away")
	if homeName == "" || awayName == "" {
		return model.GameSummary{}, false
	}

	homeID := stringField(game, "home_id", "home_team_id")
	if homeID == "" {
		homeID = homeName
	}
	awayID := stringField(game, "away_id", "away_team_id")
	if awayID == "" {
		awayID = awayName
	}

	homePoints := pickScore(game["homePoints"], game["home_points"], game["homeScore"], game["home_score"])
	awayPoints := pickScore(game["awayPoints"], game["away_points"], game["awayScore"], game["away_score"])

	status := mapper.NormalizeStatus(
		stringField(game, "status", "status_name"),
		boolField(game, "completed"),
	)

	var venue *string
	if v := stringField(game, "venue", "venue_name"); v != "" {
		venue = &v
	}

	build := func(id, name string, score int, side model.TeamSide) model.Competitor {
		var logo *string
		if url, ok := c.logos.Lookup(name); ok {
			logo = &url
		}
		s := score
		return model.Competitor{
			Team:     model.Team{ID: id, Name: name, Logo: logo},
			HomeAway: side,
			Score:    &s,
		}
	}

	return model.GameSummary{
		ID:        gameID,
		Sport:     model.SportCFB,
		StartTime: stringField(game, "start_date", "startTime", "start_time", "game_date"),
		Status:    mapper.StatusLabel(status),
		Venue:     venue,
		Competitors: []model.Competitor{
			build(awayID, awayName, awayPoints, model.SideAway),
			build(homeID, homeName, homePoints, model.SideHome),
		},
	}, true
}

// Board assembles the dedicated college scoreboard with conference,
// rank, and logo enrichment.
func (c *CFB) Board(ctx context.Context, year, week int) (model.CFBScoreboard, error) {
	rows, err := c.games(ctx, year, week, "", "")
	if err != nil {
		return model.CFBScoreboard{}, err
	}

	teamsMeta, err := c.teamsForYear(ctx, year)
	if err != nil {
		c.log.WithError(err).Warn("Team metadata unavailable, serving bare rows")
		teamsMeta = map[string]mapper.Raw{}
	}
	ranksMeta, err := c.rankingsForWeek(ctx, year, week)
	if err != nil {
		c.log.WithError(err).Warn("Rankings unavailable, serving unranked rows")
		ranksMeta = map[string]int{}
	}

	games := []model.CFBGame{}
	for _, item := range rows {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		game, ok := c.mapGame(raw, teamsMeta, ranksMeta)
		if !ok {
			continue
		}
		games = append(games, game)
	}

	return model.CFBScoreboard{Season: year, Week: week, Games: games}, nil
}

func (c *CFB) mapGame(game mapper.Raw, teamsMeta map[string]mapper.Raw, ranksMeta map[string]int) (model.CFBGame, bool) {
	gameID := stringField(game, "id", "game_id")
	if gameID == "" {
		return model.CFBGame{}, false
	}

	status := mapper.NormalizeStatus(stringField(game, "status"), boolField(game, "completed"))

	out := model.CFBGame{
		GameID:      gameID,
		League:      "CFB",
		Season:      intField(game, "season"),
		Week:        intField(game, "week"),
		Status:      status,
		Quarter:     intField(game, "period"),
		NeutralSite: game["neutral_site"] == true || game["neutralSite"] == true,
		HomeTeam: c.buildTeam(teamsMeta, ranksMeta,
			stringField(game, "home_team", "homeTeam"),
			stringField(game, "home_id", "homeId"),
			stringField(game, "home_conference", "homeConference"),
			pickScorePtr(game["home_points"], game["homePoints"])),
		AwayTeam: c.buildTeam(teamsMeta, ranksMeta,
			stringField(game, "away_team", "awayTeam"),
			stringField(game, "away_id", "awayId"),
			stringField(game, "away_conference", "awayConference"),
			pickScorePtr(game["away_points"], game["awayPoints"])),
	}

	if clock, ok := game["clock"].(string); ok {
		out.Clock = &clock
	}
	if kickoff := stringField(game, "start_date", "startDate"); kickoff != "" {
		out.KickoffTimeUTC = &kickoff
	}
	if venue := stringField(game, "venue", "venue_name"); venue != "" {
		out.VenueName = &venue
	}
	if tv := stringField(game, "tv", "tv_network", "television"); tv != "" {
		out.TVNetwork = &tv
	}

	return out, true
}

func (c *CFB) buildTeam(teamsMeta map[string]mapper.Raw, ranksMeta map[string]int, name, id, conference string, score *int) model.CFBTeam {
	meta := teamsMeta[name]

	displayName := name
	if school, ok := meta["school"].(string); ok && school != "" {
		displayName = school
	}

	shortName := displayName
	if abbr, ok := meta["abbreviation"].(string); ok && abbr != "" {
		shortName = abbr
	} else if mascot, ok := meta["mascot"].(string); ok && mascot != "" {
		shortName = mascot
	}

	team := model.CFBTeam{
		ID:        id,
		Name:      displayName,
		ShortName: shortName,
		Score:     score,
	}
	if team.ID == "" {
		team.ID = stringField(meta, "id")
	}
	if team.ID == "" {
		team.ID = name
	}

	if abbr, ok := meta["abbreviation"].(string); ok && abbr != "" {
		team.Abbreviation = &abbr
	}
	if conference == "" {
		conference, _ = meta["conference"].(string)
	}
	if conference != "" {
		team.Conference = &conference
	}

	if logoList, ok := meta["logos"].([]any); ok && len(logoList) > 0 {
		if url, ok := logoList[0].(string); ok {
			team.LogoURL = &url
		}
	}
	if team.LogoURL == nil {
		if url, ok := c.logos.Lookup(name); ok {
			team.LogoURL = &url
		}
	}

	if rank, ok := ranksMeta[displayName]; ok {
		team.Rank = &rank
	} else if rank, ok := ranksMeta[name]; ok {
		team.Rank = &rank
	}

	return team
}

// Weeks returns the college calendar for a season as Week descriptors.
func (c *CFB) Weeks(ctx context.Context, year int) ([]model.Week, error) {
	raw, err := c.cachedList(ctx, fmt.Sprintf("cfbd:calendar:%d", year), func(ctx context.Context) ([]any, error) {
		return c.client.Calendar(ctx, year)
	})
	if err != nil {
		return nil, err
	}

	weeks := []model.Week{}
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		number, isNum := entry["week"].(float64)
		if !isNum {
			continue
		}
		seasonType := 2
		if st := stringField(entry, "seasonType", "season_type"); st == "postseason" {
			seasonType = 3
		}
		weeks = append(weeks, model.Week{
			Number:     int(number),
			Label:      fmt.Sprintf("Week %d", int(number)),
			StartDate:  mapper.EasternDate(stringField(entry, "firstGameStart", "startDate", "start_date")),
			EndDate:    mapper.EasternDate(stringField(entry, "lastGameStart", "endDate", "end_date")),
			SeasonType: seasonType,
		})
	}
	return weeks, nil
}

// Conferences passes the provider's conference list through.
func (c *CFB) Conferences(ctx context.Context) ([]any, error) {
	return c.cachedList(ctx, "cfbd:conferences", func(ctx context.Context) ([]any, error) {
		return c.client.Conferences(ctx)
	})
}

// Analytics fetches the advanced box for a college game; nil when the
// provider has nothing.
func (c *CFB) Analytics(ctx context.Context, gameID int) map[string]any {
	value, err := c.cache.GetOrLoad(ctx, fmt.Sprintf("cfbd:advanced:%d", gameID), func(ctx context.Context) (any, error) {
		return c.client.AdvancedGameStats(ctx, gameID)
	})
	if err != nil {
		c.log.WithError(err).WithField("game_id", gameID).Debug("Advanced stats unavailable")
		return nil
	}
	box, _ := value.(map[string]any)
	return box
}

// stringField returns the first present non-empty value among keys,
// stringified when the provider sends a number.
func stringField(m mapper.Raw, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

func boolField(m mapper.Raw, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func intField(m mapper.Raw, key string) *int {
	if v, ok := m[key].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}

// pickScore returns the first usable numeric value, skipping booleans
// and non-numeric strings. Missing everywhere means zero.
func pickScore(values ...any) int {
	for _, v := range values {
		switch val := v.(type) {
		case bool:
			continue
		case float64:
			return int(val)
		case int:
			return val
		case string:
			s := strings.TrimSpace(val)
			var f float64
			if _, err := fmt.Sscanf(s, "%g", &f); err == nil {
				return int(f)
			}
		}
	}
	return 0
}

func pickScorePtr(values ...any) *int {
	for _, v := range values {
		switch val := v.(type) {
		case bool:
			continue
		case float64:
			n := int(val)
			return &n
		case int:
			n := val
			return &n
		}
	}
	return nil
}

func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if idx := strings.Index(date, "T"); idx > 0 {
		date = date[:idx]
	}
	if len(date) == 8 && !strings.Contains(date, "-") {
		return date[:4] + "-" + date[4:6] + "-" + date[6:]
	}
	return date
}
