package ports

import (
	"context"
	"time"

	"github.com/braizerecords/label-api/internal/core/domain"
)

// PlatformStats is the aggregate for one streaming platform.
type PlatformStats struct {
	Platform  string  `json:"platform"`
	Streams   int64   `json:"streams"`
	Listeners int64   `json:"listeners"`
	Revenue   float64 `json:"revenue"`
}

// DashboardStats is the payload behind the back-office dashboard charts.
type DashboardStats struct {
	TotalStreams   int64           `json:"total_streams"`
	TotalListeners int64           `json:"total_listeners"`
	TotalRevenue   float64         `json:"total_revenue"`
	Platforms      []PlatformStats `json:"platforms"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// StreamRepository persists analytics points and computes aggregates.
type StreamRepository interface {
	Insert(ctx context.Context, point *domain.StreamData) error
	AggregateByPlatform(ctx context.Context, since time.Time) ([]PlatformStats, error)
}

// StatsCache holds a computed dashboard payload for a bounded time.
type StatsCache interface {
	Get(ctx context.Context) (*DashboardStats, bool, error)
	Set(ctx context.Context, stats *DashboardStats) error
}

// RecordStreamInput is one analytics point as submitted by the importer.
type RecordStreamInput struct {
	ArtistID  string
	Platform  string
	Streams   int64
	Listeners int64
	Revenue   float64
	Date      time.Time
}

// StatsService records stream data and serves the cached dashboard view.
type StatsService interface {
	RecordStream(ctx context.Context, input RecordStreamInput) error
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
