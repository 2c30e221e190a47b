package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

type stubStreamRepo struct {
	points     []domain.StreamData
	aggregates []ports.PlatformStats
	calls      int
}

func (r *stubStreamRepo) Insert(_ context.Context, point *domain.StreamData) error {
	r.points = append(r.points, *point)
	return nil
}

func (r *stubStreamRepo) AggregateByPlatform(context.Context, time.Time) ([]ports.PlatformStats, error) {
	r.calls++
	return r.aggregates, nil
}

type stubStatsCache struct {
	stored *ports.DashboardStats
	getErr error
	sets   int
}

func (c *stubStatsCache) Get(context.Context) (*ports.DashboardStats, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if c.stored == nil {
		return nil, false, nil
	}
	return c.stored, true, nil
}

func (c *stubStatsCache) Set(_ context.Context, stats *ports.DashboardStats) error {
	c.stored = stats
	c.sets++
	return nil
}

func TestStatsService_RecordStream(t *testing.T) {
	repo := &stubStreamRepo{}
	svc := NewStatsService(repo, nil, zerolog.Nop())

	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	err := svc.RecordStream(context.Background(), ports.RecordStreamInput{
		ArtistID: "artist_1",
		Platform: "spotify",
		Streams:  1200,
		Revenue:  4.8,
		Date:     date,
	})
	if err != nil {
		t.Fatalf("RecordStream returned error: %v", err)
	}
	if len(repo.points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(repo.points))
	}
	p := repo.points[0]
	if p.ArtistID != "artist_1" || p.Platform != "spotify" || !p.Date.Equal(date) {
		t.Fatalf("unexpected point: %+v", p)
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}
}

func TestStatsService_Dashboard_TotalsAndCacheFill(t *testing.T) {
	repo := &stubStreamRepo{aggregates: []ports.PlatformStats{
		{Platform: "spotify", Streams: 1000, Listeners: 400, Revenue: 4.0},
		{Platform: "deezer", Streams: 500, Listeners: 150, Revenue: 1.5},
	}}
	cache := &stubStatsCache{}
	svc := NewStatsService(repo, cache, zerolog.Nop())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.TotalStreams != 1500 || stats.TotalListeners != 550 || stats.TotalRevenue != 5.5 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache fill, got %d sets", cache.sets)
	}

	// Second call is served from the cache.
	if _, err := svc.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 aggregation, got %d", repo.calls)
	}
}

func TestStatsService_Dashboard_CacheFailureFallsThrough(t *testing.T) {
	repo := &stubStreamRepo{aggregates: []ports.PlatformStats{{Platform: "spotify", Streams: 10}}}
	cache := &stubStatsCache{getErr: errors.New("redis down")}
	svc := NewStatsService(repo, cache, zerolog.Nop())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.TotalStreams != 10 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
}

func TestStatsService_Dashboard_NoCache(t *testing.T) {
	repo := &stubStreamRepo{}
	svc := NewStatsService(repo, nil, zerolog.Nop())

	if _, err := svc.Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected aggregation without cache, got %d calls", repo.calls)
	}
}
