package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// statsWindow is how far back the dashboard aggregation reaches.
const statsWindow = 30 * 24 * time.Hour

// StatsService records streaming analytics points and serves the dashboard
// aggregation, cached between requests.
type StatsService struct {
	repo   ports.StreamRepository
	cache  ports.StatsCache // optional; nil disables caching
	logger zerolog.Logger
}

func NewStatsService(repo ports.StreamRepository, cache ports.StatsCache, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, cache: cache, logger: logger}
}

func (s *StatsService) RecordStream(ctx context.Context, input ports.RecordStreamInput) error {
	point := &domain.StreamData{
		ArtistID:  input.ArtistID,
		Platform:  input.Platform,
		Streams:   input.Streams,
		Listeners: input.Listeners,
		Revenue:   input.Revenue,
		Date:      input.Date,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, point)
}

// Dashboard returns the per-platform aggregation over the stats window.
// A cache miss recomputes from the store and refreshes the cache; cache
// failures fall through to the store.
func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	platforms, err := s.repo.AggregateByPlatform(ctx, time.Now().UTC().Add(-statsWindow))
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		Platforms:   platforms,
		GeneratedAt: time.Now().UTC(),
	}
	for _, p := range platforms {
		stats.TotalStreams += p.Streams
		stats.TotalListeners += p.Listeners
		stats.TotalRevenue += p.Revenue
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}
