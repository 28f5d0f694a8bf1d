// Package service holds the application logic between the HTTP layer
// and the upstream providers: scoreboard assembly, live game reads, and
// week resolution, all behind the read-through cache.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridirondash/gridiron/internal/cache"
	"github.com/gridirondash/gridiron/internal/logos"
	"github.com/gridirondash/gridiron/internal/mapper"
	"github.com/gridirondash/gridiron/internal/model"
	"github.com/gridirondash/gridiron/internal/upstream/espn"
)

// Scoreboard serves scoreboard rows and week calendars for both
// leagues. College rows come from a different provider than NFL rows
// but share the same response shape.
type Scoreboard struct {
	espn  *espn.Client
	cfb   *CFB
	cache cache.Cache
	logos *logos.Table
	log   *logrus.Entry
	clock func() time.Time
}

func NewScoreboard(espnClient *espn.Client, cfb *CFB, store cache.Cache, table *logos.Table, logger *logrus.Logger) *Scoreboard {
	return &Scoreboard{
		espn:  espnClient,
		cfb:   cfb,
		cache: store,
		logos: table,
		log:   logger.WithField("service", "scoreboard"),
		clock: time.Now,
	}
}

// Games returns scoreboard rows for a sport. date (YYYYMMDD), week,
// seasonType, and conference are optional filters; seasonType and
// conference only apply to the college provider.
func (s *Scoreboard) Games(ctx context.Context, sport model.Sport, date string, week int, seasonType, conference string) ([]model.GameSummary, error) {
	switch sport {
	case model.SportNFL:
		raw, err := s.nflScoreboard(ctx, date, week)
		if err != nil {
			return nil, err
		}
		return s.parseNFL(raw), nil
	case model.SportCFB:
		return s.cfb.GameSummaries(ctx, date, week, seasonType, conference)
	default:
		return []model.GameSummary{}, nil
	}
}

func (s *Scoreboard) nflScoreboard(ctx context.Context, date string, week int) (mapper.Raw, error) {
	key := fmt.Sprintf("espn:scoreboard:nfl:%s:%d", date, week)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.espn.Scoreboard(ctx, model.SportNFL, date, week)
	})
	if err != nil {
		return nil, err
	}
	raw, _ := value.(map[string]any)
	return raw, nil
}

func (s *Scoreboard) parseNFL(raw mapper.Raw) []model.GameSummary {
	events, _ := raw["events"].([]any)
	out := make([]model.GameSummary, 0, len(events))
	for _, item := range events {
		event, ok := item.(map[string]any)
		if !ok {
			continue
		}
		env := mapper.DetectShape(event)
		out = append(out, mapper.MapGameSummary(env, model.SportNFL, "", s.logos.Lookup))
	}
	return out
}

// Today returns the compact today's-games list for the NFL.
func (s *Scoreboard) Today(ctx context.Context) ([]model.TodayGame, error) {
	date := s.clock().UTC().Format("20060102")
	raw, err := s.nflScoreboard(ctx, date, 0)
	if err != nil {
		return nil, err
	}

	var seasonYear *int
	if season, ok := raw["season"].(map[string]any); ok {
		if year, ok := season["year"].(float64); ok {
			y := int(year)
			seasonYear = &y
		}
	}

	events, _ := raw["events"].([]any)
	games := make([]model.TodayGame, 0, len(events))
	for _, item := range events {
		event, ok := item.(map[string]any)
		if !ok {
			continue
		}
		game, ok := mapper.MapTodayGame(event, seasonYear)
		if !ok {
			s.log.WithField("event_id", event["id"]).Warn("Skipping malformed scoreboard event")
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// NFLWeeks returns the full NFL season calendar.
func (s *Scoreboard) NFLWeeks(ctx context.Context) ([]model.Week, error) {
	raw, err := s.nflScoreboard(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	return mapper.MapCalendarWeeks(raw), nil
}

// CurrentNFLWeek resolves the week containing today, falling back to
// the last calendar week in the offseason.
func (s *Scoreboard) CurrentNFLWeek(ctx context.Context) (model.Week, error) {
	weeks, err := s.NFLWeeks(ctx)
	if err != nil {
		return model.Week{}, err
	}
	week, ok := mapper.CurrentWeek(weeks, s.clock())
	if !ok {
		return model.Week{}, errNoWeeks
	}
	return week, nil
}
