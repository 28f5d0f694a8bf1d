package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/cache"
	"github.com/gridirondash/gridiron/internal/logos"
	"github.com/gridirondash/gridiron/internal/mapper"
	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/upstream"
	"github.com/gridirondash/gridiron/internal/upstream/espn"
)

// Games serves the single-game views: the full live response and the
// tabular details response.
type Games struct {
	espn  *espn.Client
	cfb   *CFB
	cache cache.Cache
	logos *logos.Table
	log   *logrus.Entry
	clock func() time.Time
}

func NewGames(espnClient *espn.Client, cfb *CFB, store cache.Cache, table *logos.Table, logger *logrus.Logger) *Games {
	return &Games{
		espn:  espnClient,
		cfb:   cfb,
		cache: store,
		logos: table,
		log:   logger.WithField("service", "games"),
		clock: time.Now,
	}
}

// summary fetches the detail payload, falling back to the synthesized
// archival payload when the primary endpoint answers 404.
func (g *Games) summary(ctx context.Context, sport model.Sport, eventID string) (mapper.Raw, error) {
	key := fmt.Sprintf("espn:summary:%s:%s", sport, eventID)
	value, err := g.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		raw, err := g.espn.Summary(ctx, sport, eventID)
		if err == nil {
			return raw, nil
		}
		if sport == model.SportNFL && upstream.IsNotFound(err) {
			g.log.WithField("game_id", eventID).Info("Summary not found, synthesizing from archive")
			return g.espn.SynthesizeSummary(ctx, eventID)
		}
		return nil, err
	})
	if err != nil {
		return nil, err
	}
	raw, _ := value.(map[string]any)
	return raw, nil
}

// Live builds the full live-game view for an NFL game.
func (g *Games) Live(ctx context.Context, gameID string) (model.GameLive, error) {
	raw, err := g.summary(ctx, model.SportNFL, gameID)
	if err != nil {
		return model.GameLive{}, err
	}
	return mapper.BuildGameLive(raw, "NFL", g.clock())
}

// Details builds the tabular per-game response. College games carry the
// advanced analytics box when the college provider has one.
func (g *Games) Details(ctx context.Context, sport model.Sport, eventID string) (model.GameDetails, error) {
	raw, err := g.summary(ctx, sport, eventID)
	if err != nil {
		return model.GameDetails{}, err
	}

	details := mapper.MapGameDetails(raw, sport, eventID, g.logos.Lookup)

	if sport == model.SportCFB {
		if id, err := strconv.Atoi(eventID); err == nil {
			details.CFBAnalytics = g.cfb.Analytics(ctx, id)
		}
	}

	return details, nil
}
