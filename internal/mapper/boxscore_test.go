package mapper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridirondash/gridiron/internal/model"
)

func statEntry(name string, value any) Raw {
	return Raw{"name": name, "displayValue": fmt.Sprint(value), "value": value}
}

func TestMapTeamStats_IndependentFields(t *testing.T) {
	t.Parallel()

	stats := mapTeamStats([]any{
		statEntry("totalYards", float64(412)),
		statEntry("totalPlays", float64(68)),
		statEntry("yardsPerPlay", float64(6.1)),
		Raw{"name": "turnovers", "value": "not a number"},
		Raw{"name": "totalPenaltiesYards", "displayValue": "5-45"},
		Raw{"name": "thirdDownEff", "displayValue": "7-13"},
		Raw{"name": "timeOfPossession", "displayValue": "31:24"},
	})

	require.NotNil(t, stats.TotalYards)
	assert.Equal(t, 412, *stats.TotalYards)
	require.NotNil(t, stats.Plays)
	assert.Equal(t, 68, *stats.Plays)
	require.NotNil(t, stats.YardsPerPlay)
	assert.InDelta(t, 6.1, *stats.YardsPerPlay, 1e-9)

	// A single uncastable stat is skipped while its siblings populate.
	assert.Nil(t, stats.Turnovers)

	require.NotNil(t, stats.Penalties)
	assert.Equal(t, 5, *stats.Penalties)
	require.NotNil(t, stats.PenaltyYards)
	assert.Equal(t, 45, *stats.PenaltyYards)
	require.NotNil(t, stats.ThirdDownMade)
	assert.Equal(t, 7, *stats.ThirdDownMade)
	assert.Equal(t, 13, *stats.ThirdDownAttempts)

	require.NotNil(t, stats.TimeOfPossession)
	assert.Equal(t, "31:24", *stats.TimeOfPossession)

	// Fields never mentioned stay nil.
	assert.Nil(t, stats.RedZoneTDs)
	assert.Nil(t, stats.RedZoneTrips)
}

func TestMapTeamStats_CompositeFailsAsPair(t *testing.T) {
	t.Parallel()

	stats := mapTeamStats([]any{
		Raw{"name": "totalPenaltiesYards", "displayValue": "garbage"},
	})
	assert.Nil(t, stats.Penalties)
	assert.Nil(t, stats.PenaltyYards)
}

func TestMapTeamStats_CompositePrefersDisplayValue(t *testing.T) {
	t.Parallel()

	// A composite that also carries a numeric conversion percentage
	// still splits from the display string.
	stats := mapTeamStats([]any{
		Raw{"name": "thirdDownEff", "value": float64(41.7), "displayValue": "5-12"},
		Raw{"name": "redZoneEff", "value": float64(66.7), "displayValue": "2-3"},
	})

	require.NotNil(t, stats.ThirdDownMade)
	assert.Equal(t, 5, *stats.ThirdDownMade)
	require.NotNil(t, stats.ThirdDownAttempts)
	assert.Equal(t, 12, *stats.ThirdDownAttempts)
	require.NotNil(t, stats.RedZoneTDs)
	assert.Equal(t, 2, *stats.RedZoneTDs)
	require.NotNil(t, stats.RedZoneTrips)
	assert.Equal(t, 3, *stats.RedZoneTrips)
}

func passingAthlete(name string, yards int) Raw {
	return Raw{
		"athlete": Raw{"displayName": name},
		"stats": Raw{
			"completions":   float64(20),
			"attempts":      float64(30),
			"yards":         float64(yards),
			"touchdowns":    float64(2),
			"interceptions": float64(1),
		},
	}
}

func boxscoreFixture() Raw {
	return Raw{
		"boxscore": Raw{
			"teams": []any{
				Raw{
					"team": Raw{"id": "8"},
					"statistics": []any{
						statEntry("totalYards", float64(350)),
					},
				},
				Raw{
					"team": Raw{"id": "9"},
					"statistics": []any{
						statEntry("totalYards", float64(290)),
					},
				},
			},
			"players": []any{
				Raw{
					"team": Raw{"id": "8"},
					"statistics": []any{
						Raw{
							"name": "passing",
							"athletes": []any{
								passingAthlete("QB One", 310),
								passingAthlete("QB Two", 12),
								passingAthlete("QB Three", 55),
								passingAthlete("QB Four", 140),
							},
						},
						Raw{
							"name": "rushing",
							"athletes": []any{
								Raw{
									"athlete": Raw{"displayName": "RB One"},
									"stats": Raw{
										"carries":    float64(18),
										"yards":      float64(92),
										"touchdowns": float64(1),
									},
								},
								// Missing yards drops the whole line.
								Raw{
									"athlete": Raw{"displayName": "RB Two"},
									"stats": Raw{
										"carries":    float64(4),
										"touchdowns": float64(0),
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestMapBoxscore(t *testing.T) {
	t.Parallel()

	box := MapBoxscore(boxscoreFixture(), "8", "9")

	require.NotNil(t, box.TeamStats.Home.TotalYards)
	assert.Equal(t, 350, *box.TeamStats.Home.TotalYards)
	require.NotNil(t, box.TeamStats.Away.TotalYards)
	assert.Equal(t, 290, *box.TeamStats.Away.TotalYards)

	// Four passers, only the top three by yards survive, in order.
	require.Len(t, box.PlayerStats.Passing, 3)
	assert.Equal(t, "QB One", box.PlayerStats.Passing[0].Player)
	assert.Equal(t, 310, box.PlayerStats.Passing[0].Yards)
	assert.Equal(t, "QB Four", box.PlayerStats.Passing[1].Player)
	assert.Equal(t, "QB Three", box.PlayerStats.Passing[2].Player)
	assert.Equal(t, model.SideHome, box.PlayerStats.Passing[0].Team)

	// The partial rushing line never surfaces.
	require.Len(t, box.PlayerStats.Rushing, 1)
	assert.Equal(t, "RB One", box.PlayerStats.Rushing[0].Player)
	assert.Equal(t, 92, box.PlayerStats.Rushing[0].Yards)
}

func TestMapBoxscore_Absent(t *testing.T) {
	t.Parallel()

	box := MapBoxscore(Raw{}, "1", "2")

	assert.NotNil(t, box.PlayerStats.Passing)
	assert.Empty(t, box.PlayerStats.Passing)
	assert.NotNil(t, box.PlayerStats.Rushing)
	assert.NotNil(t, box.PlayerStats.Receiving)
	assert.Nil(t, box.TeamStats.Home.TotalYards)
}
