package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// ArtistService manages the label's catalog: public reads for the site,
// role-gated writes from the back office.
type ArtistService struct {
	repo   ports.ArtistRepository
	logger zerolog.Logger
}

func NewArtistService(repo ports.ArtistRepository, logger zerolog.Logger) *ArtistService {
	return &ArtistService{repo: repo, logger: logger}
}

func (s *ArtistService) List(ctx context.Context, filter ports.ArtistFilter) ([]domain.Artist, error) {
	if filter.Genre != "" {
		if _, err := domain.ParseGenre(filter.Genre); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *ArtistService) GetBySlug(ctx context.Context, slug string) (*domain.Artist, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *ArtistService) Create(ctx context.Context, input ports.ArtistInput) (*domain.Artist, error) {
	artist, err := artistFromInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	artist.CreatedAt = now
	artist.UpdatedAt = now

	created, err := s.repo.Create(ctx, artist)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("slug", created.Slug).Msg("artist created")
	return created, nil
}

func (s *ArtistService) Update(ctx context.Context, id string, input ports.ArtistInput) (*domain.Artist, error) {
	artist, err := artistFromInput(input)
	if err != nil {
		return nil, err
	}
	artist.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, id, artist)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("slug", updated.Slug).Msg("artist updated")
	return updated, nil
}

func (s *ArtistService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("artist_id", id).Msg("artist deleted")
	return nil
}

// UpcomingEvents flattens every artist's events after the given instant,
// soonest first.
func (s *ArtistService) UpcomingEvents(ctx context.Context, after time.Time) ([]domain.ArtistEvent, error) {
	artists, err := s.repo.List(ctx, ports.ArtistFilter{})
	if err != nil {
		return nil, err
	}

	var events []domain.ArtistEvent
	for _, a := range artists {
		for _, ev := range a.Events {
			if ev.Date.After(after) {
				events = append(events, ev)
			}
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

func artistFromInput(input ports.ArtistInput) (*domain.Artist, error) {
	genre, err := domain.ParseGenre(input.Genre)
	if err != nil {
		return nil, err
	}
	contract, err := domain.ParseContractType(input.Contract)
	if err != nil {
		return nil, err
	}

	return &domain.Artist{
		Name:        input.Name,
		Slug:        input.Slug,
		Genre:       genre,
		Contract:    contract,
		Biography:   input.Biography,
		Streaming:   input.Streaming,
		Socials:     input.Socials,
		Discography: input.Discography,
		Events:      input.Events,
		Stats:       input.Stats,
	}, nil
}
