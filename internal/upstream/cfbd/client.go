// Package cfbd wraps the college football data API. Every endpoint
// takes a Bearer token and returns top-level JSON arrays.
package cfbd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/upstream"
)

const DefaultBase = "https://api.collegefootballdata.com"

type Client struct {
	base    string
	fetcher *upstream.Fetcher
}

// NewClient builds a college data client. token may be empty; the
// provider then serves only unauthenticated rate limits.
func NewClient(base, token string, timeout time.Duration, logger *logrus.Logger) *Client {
	if base == "" {
		base = DefaultBase
	}
	var headers map[string]string
	if token != "" {
		headers = map[string]string{"Authorization": "Bearer " + token}
	}
	return &Client{
		base:    base,
		fetcher: upstream.NewFetcher("cfbd", timeout, logger, headers),
	}
}

func (c *Client) list(ctx context.Context, operation, path string, query url.Values) ([]any, error) {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.fetcher.GetJSONList(ctx, operation, endpoint)
}

// Games lists games for a season. week and conference are optional
// filters; seasonType defaults to "regular" when empty.
func (c *Client) Games(ctx context.Context, year, week int, seasonType, conference string) ([]any, error) {
	if seasonType == "" {
		seasonType = "regular"
	}
	query := url.Values{}
	query.Set("year", fmt.Sprintf("%d", year))
	query.Set("seasonType", seasonType)
	if week > 0 {
		query.Set("week", fmt.Sprintf("%d", week))
	}
	if conference != "" {
		query.Set("conference", conference)
	}
	return c.list(ctx, "games", "/games", query)
}

// Calendar lists the week calendar for a season.
func (c *Client) Calendar(ctx context.Context, year int) ([]any, error) {
	query := url.Values{}
	query.Set("year", fmt.Sprintf("%d", year))
	return c.list(ctx, "calendar", "/calendar", query)
}

// Conferences lists all conferences.
func (c *Client) Conferences(ctx context.Context) ([]any, error) {
	return c.list(ctx, "conferences", "/conferences", nil)
}

// FBSTeams lists FBS team metadata for a season.
func (c *Client) FBSTeams(ctx context.Context, year int) ([]any, error) {
	query := url.Values{}
	query.Set("year", fmt.Sprintf("%d", year))
	return c.list(ctx, "teams_fbs", "/teams/fbs", query)
}

// Rankings lists poll rankings for a season week.
func (c *Client) Rankings(ctx context.Context, year, week int) ([]any, error) {
	query := url.Values{}
	query.Set("year", fmt.Sprintf("%d", year))
	if week > 0 {
		query.Set("week", fmt.Sprintf("%d", week))
	}
	return c.list(ctx, "rankings", "/rankings", query)
}

// Plays lists play-by-play rows for one game.
func (c *Client) Plays(ctx context.Context, gameID int) ([]any, error) {
	query := url.Values{}
	query.Set("gameId", fmt.Sprintf("%d", gameID))
	return c.list(ctx, "plays", "/plays", query)
}

// TeamGameStats lists per-team statistics for one game.
func (c *Client) TeamGameStats(ctx context.Context, gameID int) ([]any, error) {
	query := url.Values{}
	query.Set("id", fmt.Sprintf("%d", gameID))
	return c.list(ctx, "team_game_stats", "/games/teams", query)
}

// PlayerGameStats lists per-player statistics for one game.
func (c *Client) PlayerGameStats(ctx context.Context, gameID int) ([]any, error) {
	query := url.Values{}
	query.Set("gameId", fmt.Sprintf("%d", gameID))
	return c.list(ctx, "player_game_stats", "/games/players", query)
}

// AdvancedGameStats returns the EPA, success rate, and explosiveness
// box for one game. This endpoint serves an object, not a list.
func (c *Client) AdvancedGameStats(ctx context.Context, gameID int) (map[string]any, error) {
	query := url.Values{}
	query.Set("gameId", fmt.Sprintf("%d", gameID))
	endpoint := c.base + "/game/box/advanced?" + query.Encode()
	return c.fetcher.GetJSON(ctx, "advanced_game_stats", endpoint)
}

// Drives lists drive rows for one game.
func (c *Client) Drives(ctx context.Context, gameID int) ([]any, error) {
	query := url.Values{}
	query.Set("gameId", fmt.Sprintf("%d", gameID))
	return c.list(ctx, "drives", "/drives", query)
}
