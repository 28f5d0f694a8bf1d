package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridirondash/gridiron/internal/model"
)

func scoringEvent(id, teamID, text, scoringType string, quarter, points int, player string) Raw {
	event := Raw{
		"id":         id,
		"text":       text,
		"team":       Raw{"id": teamID},
		"period":     Raw{"number": float64(quarter)},
		"clock":      Raw{"displayValue": "4:12"},
		"scoreValue": float64(points),
		"scoringType": Raw{
			"displayName": scoringType,
		},
	}
	if player != "" {
		event["athletesInvolved"] = []any{
			Raw{"athlete": Raw{"displayName": player}},
		}
	}
	return event
}

func TestClassifyScoring(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scoringType string
		description string
		want        model.ScoringType
	}{
		{"Touchdown", "", model.ScoreTD},
		{"Field Goal", "", model.ScoreFG},
		{"", "defensive safety", model.ScoreSafety},
		{"Extra Point", "", model.ScoreXP},
		{"Two-Point Conversion", "", model.Score2PT},
		{"", "something else entirely", model.ScoreOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyScoring(tc.scoringType, tc.description))
	}
}

func TestMapScoring_QuarterTotalsFromLineScores(t *testing.T) {
	t.Parallel()

	raw := Raw{
		"header": Raw{
			"competitions": []any{
				Raw{
					"competitors": []any{
						Raw{
							"homeAway": "home",
							"team":     Raw{"id": "1"},
							"linescores": []any{
								Raw{"period": float64(1), "value": float64(7)},
								Raw{"period": float64(2), "value": float64(3)},
							},
						},
						Raw{
							"homeAway": "away",
							"team":     Raw{"id": "2"},
							"linescores": []any{
								Raw{"period": float64(1), "value": float64(3)},
								Raw{"period": float64(2), "value": float64(0)},
							},
						},
					},
				},
			},
		},
		"scoringPlays": []any{},
	}

	scoring := MapScoring(DetectShape(raw), "1", "2")

	require.Len(t, scoring.SummaryByQuarter, 2)
	assert.Equal(t, model.QuarterScore{Quarter: 1, HomePoints: 7, AwayPoints: 3}, scoring.SummaryByQuarter[0])
	assert.Equal(t, model.QuarterScore{Quarter: 2, HomePoints: 3, AwayPoints: 0}, scoring.SummaryByQuarter[1])
}

func TestMapScoring_QuarterTotalsFromEventsFallback(t *testing.T) {
	t.Parallel()

	// No line scores anywhere: totals are replayed from event point
	// values instead.
	raw := Raw{
		"header": Raw{
			"competitions": []any{
				Raw{
					"competitors": []any{
						Raw{"homeAway": "home", "team": Raw{"id": "1"}},
						Raw{"homeAway": "away", "team": Raw{"id": "2"}},
					},
				},
			},
		},
		"scoringPlays": []any{
			scoringEvent("p1", "1", "21 yard touchdown run", "Touchdown", 1, 7, "RB One"),
			scoringEvent("p2", "2", "44 yard field goal", "Field Goal", 1, 3, ""),
			scoringEvent("p3", "1", "3 yard touchdown pass", "Touchdown", 2, 7, "WR One"),
		},
	}

	scoring := MapScoring(DetectShape(raw), "1", "2")

	require.Len(t, scoring.SummaryByQuarter, 2)
	assert.Equal(t, model.QuarterScore{Quarter: 1, HomePoints: 7, AwayPoints: 3}, scoring.SummaryByQuarter[0])
	assert.Equal(t, model.QuarterScore{Quarter: 2, HomePoints: 7, AwayPoints: 0}, scoring.SummaryByQuarter[1])

	require.Len(t, scoring.Plays, 3)
	assert.Equal(t, model.ScoreTD, scoring.Plays[0].Type)
	require.NotNil(t, scoring.Plays[0].Yards)
	assert.Equal(t, 21, *scoring.Plays[0].Yards)
	assert.Equal(t, model.SideAway, scoring.Plays[1].Team)
}

func TestMapScoring_DropsUnattributableEvents(t *testing.T) {
	t.Parallel()

	raw := Raw{
		"header": Raw{
			"competitions": []any{
				Raw{
					"competitors": []any{
						Raw{"homeAway": "home", "team": Raw{"id": "1"}},
						Raw{"homeAway": "away", "team": Raw{"id": "2"}},
					},
				},
			},
		},
		"scoringPlays": []any{
			scoringEvent("p1", "999", "mystery score", "Touchdown", 1, 7, ""),
			scoringEvent("p2", "1", "1 yard touchdown run", "Touchdown", 1, 7, "RB One"),
		},
	}

	scoring := MapScoring(DetectShape(raw), "1", "2")
	require.Len(t, scoring.Plays, 1)
	assert.Equal(t, "p2", scoring.Plays[0].ID)
}

func TestTallyTouchdowns(t *testing.T) {
	t.Parallel()

	name := "RB One"
	other := "WR Two"
	plays := []model.ScoringEvent{
		{Type: model.ScoreTD, Team: model.SideHome, PlayerPrimary: &name},
		{Type: model.ScoreFG, Team: model.SideHome, PlayerPrimary: &name},
		{Type: model.ScoreTD, Team: model.SideHome, PlayerPrimary: &name},
		{Type: model.ScoreTD, Team: model.SideAway, PlayerPrimary: &other},
		{Type: model.ScoreTD, Team: model.SideAway, PlayerPrimary: nil},
	}

	scorers := tallyTouchdowns(plays)
	require.Len(t, scorers, 2)
	assert.Equal(t, model.TouchdownScorer{Player: name, Team: model.SideHome, Count: 2}, scorers[0])
	assert.Equal(t, model.TouchdownScorer{Player: other, Team: model.SideAway, Count: 1}, scorers[1])
}
