package ports

import (
	"context"

	"github.com/braizerecords/label-api/internal/core/domain"
)

// ArtistFilter narrows catalog listings.
type ArtistFilter struct {
	Genre    string
	Contract string
}

// ArtistRepository persists the artist catalog.
type ArtistRepository interface {
	FindBySlug(ctx context.Context, slug string) (*domain.Artist, error)
	List(ctx context.Context, filter ArtistFilter) ([]domain.Artist, error)
	Create(ctx context.Context, artist *domain.Artist) (*domain.Artist, error)
	Update(ctx context.Context, id string, artist *domain.Artist) (*domain.Artist, error)
	Delete(ctx context.Context, id string) error
}
