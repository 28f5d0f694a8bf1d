// Package espn wraps the sports site and core APIs the dashboard reads
// NFL and college football data from.
package espn

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/upstream"
)

const (
	DefaultSiteBase = "https://site.api.espn.com/apis/site/v2/sports"
	DefaultCoreBase = "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl/events"
)

// sportPaths maps our sport identifiers onto the provider's URL slugs.
var sportPaths = map[model.Sport]string{
	model.SportNFL: "football/nfl",
	model.SportCFB: "football/college-football",
}

type Client struct {
	siteBase string
	coreBase string
	fetcher  *upstream.Fetcher
}

func NewClient(siteBase, coreBase string, timeout time.Duration, logger *logrus.Logger) *Client {
	if siteBase == "" {
		siteBase = DefaultSiteBase
	}
	if coreBase == "" {
		coreBase = DefaultCoreBase
	}
	return &Client{
		siteBase: siteBase,
		coreBase: coreBase,
		fetcher:  upstream.NewFetcher("espn", timeout, logger, nil),
	}
}

// Scoreboard fetches the scoreboard for a sport. date (YYYYMMDD) and
// week are optional filters; zero values omit them.
func (c *Client) Scoreboard(ctx context.Context, sport model.Sport, date string, week int) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/%s/scoreboard", c.siteBase, sportPaths[sport])

	query := url.Values{}
	if date != "" {
		query.Set("dates", date)
	}
	if week > 0 {
		query.Set("week", fmt.Sprintf("%d", week))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return c.fetcher.GetJSON(ctx, "scoreboard", endpoint)
}

// Summary fetches the detail payload for one game.
func (c *Client) Summary(ctx context.Context, sport model.Sport, eventID string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/%s/summary?event=%s", c.siteBase, sportPaths[sport], url.QueryEscape(eventID))
	return c.fetcher.GetJSON(ctx, "summary", endpoint)
}

// CoreEvent fetches the archival event resource for a game. Sub-objects
// in this payload may be reference pointers rather than inline values.
func (c *Client) CoreEvent(ctx context.Context, gameID string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/%s", c.coreBase, url.PathEscape(gameID))
	return c.fetcher.GetJSON(ctx, "core_event", endpoint)
}
