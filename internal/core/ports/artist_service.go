package ports

import (
	"context"
	"time"

	"github.com/braizerecords/label-api/internal/core/domain"
)

// ArtistInput carries the writable fields of a catalog entry.
type ArtistInput struct {
	Name        string
	Slug        string
	Genre       string
	Contract    string
	Biography   domain.Biography
	Streaming   map[string]string
	Socials     map[string]string
	Discography []domain.Album
	Events      []domain.ArtistEvent
	Stats       domain.ArtistStats
}

// ArtistService exposes the public catalog reads and the back-office writes.
type ArtistService interface {
	List(ctx context.Context, filter ArtistFilter) ([]domain.Artist, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Artist, error)
	Create(ctx context.Context, input ArtistInput) (*domain.Artist, error)
	Update(ctx context.Context, id string, input ArtistInput) (*domain.Artist, error)
	Delete(ctx context.Context, id string) error
	// UpcomingEvents returns catalog-wide events after the given instant,
	// soonest first. Feeds the back-office calendar.
	UpcomingEvents(ctx context.Context, after time.Time) ([]domain.ArtistEvent, error)
}
