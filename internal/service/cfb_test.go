package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridirondash/gridiron/internal/cache"
	"github.com/gridirondash/gridiron/internal/logos"
	"github.com/gridirondash/gridiron/internal/mapper"
	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/upstream/cfbd"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testLogos(t *testing.T) *logos.Table {
	t.Helper()
	table, err := logos.Load(strings.NewReader(
		"school,abbreviation,alt_name1,alt_name2,alt_name3,logo\n" +
			"Georgia,UGA,Georgia Bulldogs,,,https://example.com/uga.png\n" +
			"Alabama,ALA,Alabama Crimson Tide,,,https://example.com/ala.png\n"))
	require.NoError(t, err)
	return table
}

// newTestCFB wires a CFB service against an httptest provider.
func newTestCFB(t *testing.T, handler http.Handler) *CFB {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := testLogger()
	return &CFB{
		client: cfbd.NewClient(srv.URL, "", 5*time.Second, logger),
		cache:  cache.NewMemory(time.Minute),
		logos:  testLogos(t),
		log:    logger.WithField("service", "cfb"),
		clock:  func() time.Time { return time.Date(2023, 10, 14, 12, 0, 0, 0, time.UTC) },
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestCFB_SummaryRow_FieldVariants(t *testing.T) {
	t.Parallel()

	c := &CFB{logos: testLogos(t), log: testLogger().WithField("service", "cfb")}

	// snake_case variant with string scores.
	row, ok := c.summaryRow(mapper.Raw{
		"id":          float64(401520281),
		"home_team":   "Georgia",
		"away_team":   "Vanderbilt",
		"home_points": float64(37),
		"away_points": float64(20),
		"status":      "completed",
		"venue":       "Sanford Stadium",
		"start_date":  "2023-10-14T19:30:00.000Z",
	})
	require.True(t, ok)
	assert.Equal(t, "401520281", row.ID)
	assert.Equal(t, model.SportCFB, row.Sport)
	assert.Equal(t, "Final", row.Status)
	require.NotNil(t, row.Venue)
	assert.Equal(t, "Sanford Stadium", *row.Venue)

	// Away listed first.
	require.Len(t, row.Competitors, 2)
	assert.Equal(t, model.SideAway, row.Competitors[0].HomeAway)
	assert.Equal(t, "Vanderbilt", row.Competitors[0].Team.Name)
	assert.Equal(t, model.SideHome, row.Competitors[1].HomeAway)
	require.NotNil(t, row.Competitors[1].Score)
	assert.Equal(t, 37, *row.Competitors[1].Score)

	// Logo lookup applies only where the table knows the school.
	require.NotNil(t, row.Competitors[1].Team.Logo)
	assert.Equal(t, "https://example.com/uga.png", *row.Competitors[1].Team.Logo)
	assert.Nil(t, row.Competitors[0].Team.Logo)

	// camelCase variant resolves through the same row builder.
	row, ok = c.summaryRow(mapper.Raw{
		"id":         "99",
		"homeTeam":   "Alabama",
		"awayTeam":   "Auburn",
		"homePoints": float64(27),
		"awayPoints": float64(24),
		"completed":  false,
	})
	require.True(t, ok)
	assert.Equal(t, "Scheduled", row.Status)
	assert.Equal(t, "Alabama", row.Competitors[1].Team.Name)
}

func TestCFB_SummaryRow_Rejects(t *testing.T) {
	t.Parallel()

	c := &CFB{logos: testLogos(t), log: testLogger().WithField("service", "cfb")}

	_, ok := c.summaryRow(mapper.Raw{"home_team": "A", "away_team": "B"})
	assert.False(t, ok, "missing game id")

	_, ok = c.summaryRow(mapper.Raw{"id": "1", "home_team": "A"})
	assert.False(t, ok, "missing away team")
}

func TestPickScore(t *testing.T) {
	t.Parallel()

	// Booleans are never scores; the scan continues past them.
	assert.Equal(t, 21, pickScore(true, float64(21)))
	assert.Equal(t, 14, pickScore(nil, "14"))
	assert.Equal(t, 0, pickScore(nil, "not a number"))
	assert.Equal(t, 0, pickScore())

	assert.Nil(t, pickScorePtr(true, "14"))
	p := pickScorePtr(float64(7))
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2023-10-14", normalizeDate("2023-10-14T19:30:00.000Z"))
	assert.Equal(t, "2023-10-14", normalizeDate("20231014"))
	assert.Equal(t, "2023-10-14", normalizeDate(" 2023-10-14 "))
	assert.Equal(t, "", normalizeDate(""))
}

func TestStringField(t *testing.T) {
	t.Parallel()

	m := mapper.Raw{"a": "", "b": float64(42), "c": "hit"}
	assert.Equal(t, "42", stringField(m, "a", "b", "c"))
	assert.Equal(t, "hit", stringField(m, "missing", "c"))
	assert.Equal(t, "", stringField(m, "missing"))
}

func TestCFB_Board(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2023", r.URL.Query().Get("year"))
		assert.Equal(t, "7", r.URL.Query().Get("week"))
		writeJSON(t, w, []any{
			map[string]any{
				"id":              float64(401520281),
				"season":          float64(2023),
				"week":            float64(7),
				"home_team":       "Georgia",
				"home_points":     float64(37),
				"home_conference": "SEC",
				"away_team":       "Vanderbilt",
				"away_points":     float64(20),
				"away_conference": "SEC",
				"status":          "completed",
				"venue":           "Sanford Stadium",
				"tv":              "CBS",
				"neutral_site":    false,
				"start_date":      "2023-10-14T19:30:00.000Z",
			},
		})
	})
	mux.HandleFunc("/teams/fbs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{
			map[string]any{
				"id":           float64(61),
				"school":       "Georgia",
				"mascot":       "Bulldogs",
				"abbreviation": "UGA",
				"conference":   "SEC",
				"logos":        []any{"https://cdn.example/uga.png"},
			},
		})
	})
	mux.HandleFunc("/rankings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{
			map[string]any{
				"poll": "Coaches Poll",
				"ranks": []any{
					map[string]any{"school": "Georgia", "rank": float64(2)},
				},
			},
			map[string]any{
				"poll": "AP Top 25",
				"ranks": []any{
					map[string]any{"school": "Georgia", "rank": float64(1)},
				},
			},
		})
	})

	c := newTestCFB(t, mux)
	board, err := c.Board(context.Background(), 2023, 7)
	require.NoError(t, err)

	assert.Equal(t, 2023, board.Season)
	assert.Equal(t, 7, board.Week)
	require.Len(t, board.Games, 1)

	game := board.Games[0]
	assert.Equal(t, "401520281", game.GameID)
	assert.Equal(t, "CFB", game.League)
	assert.Equal(t, model.StatusFinal, game.Status)
	require.NotNil(t, game.TVNetwork)
	assert.Equal(t, "CBS", *game.TVNetwork)

	home := game.HomeTeam
	assert.Equal(t, "Georgia", home.Name)
	assert.Equal(t, "UGA", home.ShortName)
	require.NotNil(t, home.Score)
	assert.Equal(t, 37, *home.Score)
	require.NotNil(t, home.Conference)
	assert.Equal(t, "SEC", *home.Conference)

	// Provider metadata logo wins over the static table.
	require.NotNil(t, home.LogoURL)
	assert.Equal(t, "https://cdn.example/uga.png", *home.LogoURL)

	// The AP poll rank wins even though another poll is listed first.
	require.NotNil(t, home.Rank)
	assert.Equal(t, 1, *home.Rank)

	// Vanderbilt has no metadata row; the raw name carries through.
	away := game.AwayTeam
	assert.Equal(t, "Vanderbilt", away.Name)
	assert.Nil(t, away.Rank)
	assert.Nil(t, away.LogoURL)
}

func TestCFB_Board_DegradesWithoutEnrichment(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{
			map[string]any{
				"id":        "5",
				"home_team": "Georgia",
				"away_team": "Florida",
				"status":    "scheduled",
			},
		})
	})
	// Metadata and rankings endpoints fail; the board still serves.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	c := newTestCFB(t, mux)
	board, err := c.Board(context.Background(), 2023, 7)
	require.NoError(t, err)
	require.Len(t, board.Games, 1)
	assert.Nil(t, board.Games[0].HomeTeam.Rank)
	// Static logo table still applies.
	require.NotNil(t, board.Games[0].HomeTeam.LogoURL)
}

func TestCFB_GameSummaries_ResolvesWeekFromDate(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/calendar", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{
			map[string]any{
				"week":           float64(6),
				"firstGameStart": "2023-10-03T00:00:00.000Z",
				"lastGameStart":  "2023-10-09T23:59:00.000Z",
			},
			map[string]any{
				"week":           float64(7),
				"firstGameStart": "2023-10-10T00:00:00.000Z",
				"lastGameStart":  "2023-10-16T23:59:00.000Z",
			},
		})
	})
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("week"))
		writeJSON(t, w, []any{
			map[string]any{
				"id":          "1",
				"home_team":   "Georgia",
				"away_team":   "Vanderbilt",
				"home_points": float64(37),
				"away_points": float64(20),
				"completed":   true,
			},
		})
	})

	c := newTestCFB(t, mux)
	rows, err := c.GameSummaries(context.Background(), "20231014", 0, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Final", rows[0].Status)
}

func TestCFB_GameSummaries_ForwardsFilters(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2023", r.URL.Query().Get("year"))
		assert.Equal(t, "1", r.URL.Query().Get("week"))
		assert.Equal(t, "postseason", r.URL.Query().Get("seasonType"))
		assert.Equal(t, "SEC", r.URL.Query().Get("conference"))
		writeJSON(t, w, []any{
			map[string]any{
				"id":          "1",
				"home_team":   "Georgia",
				"away_team":   "Alabama",
				"home_points": float64(24),
				"away_points": float64(27),
				"completed":   true,
			},
		})
	})

	c := newTestCFB(t, mux)
	rows, err := c.GameSummaries(context.Background(), "20231202", 1, "postseason", "SEC")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestCFB_GameSummaries_NoResolvableWeek(t *testing.T) {
	t.Parallel()

	c := newTestCFB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	}))

	rows, err := c.GameSummaries(context.Background(), "", 0, "", "")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCFB_Weeks(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/calendar", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{
			map[string]any{
				"week":           float64(1),
				"seasonType":     "regular",
				"firstGameStart": "2023-08-26T00:00:00.000Z",
				"lastGameStart":  "2023-09-04T23:59:00.000Z",
			},
			map[string]any{
				"week":           float64(1),
				"seasonType":     "postseason",
				"firstGameStart": "2023-12-16T00:00:00.000Z",
				"lastGameStart":  "2024-01-08T23:59:00.000Z",
			},
		})
	})

	c := newTestCFB(t, mux)
	weeks, err := c.Weeks(context.Background(), 2023)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, "Week 1", weeks[0].Label)
	assert.Equal(t, 2, weeks[0].SeasonType)
	assert.Equal(t, 3, weeks[1].SeasonType)
	assert.Equal(t, "2023-08-25", weeks[0].StartDate)
}

func TestCFB_Analytics_NilOnError(t *testing.T) {
	t.Parallel()

	c := newTestCFB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))

	assert.Nil(t, c.Analytics(context.Background(), 401520281))
}
