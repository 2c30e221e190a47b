package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// SocialService manages the post lifecycle from draft through scheduled to
// published. The scheduler loop polls ListDue and publishes each result.
type SocialService struct {
	repo   ports.SocialRepository
	logger zerolog.Logger
}

func NewSocialService(repo ports.SocialRepository, logger zerolog.Logger) *SocialService {
	return &SocialService{repo: repo, logger: logger}
}

func (s *SocialService) List(ctx context.Context, filter ports.SocialPostFilter) ([]domain.SocialPost, error) {
	return s.repo.List(ctx, filter)
}

func (s *SocialService) CreateDraft(ctx context.Context, input ports.CreatePostInput) (*domain.SocialPost, error) {
	platform, err := domain.ParseSocialPlatform(input.Platform)
	if err != nil {
		return nil, err
	}

	post := &domain.SocialPost{
		ArtistID:  input.ArtistID,
		Platform:  platform,
		Content:   input.Content,
		Media:     input.Media,
		Status:    domain.PostDraft,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, post)
}

// Schedule moves a draft (or failed) post into the scheduled state for the
// given instant.
func (s *SocialService) Schedule(ctx context.Context, id string, at time.Time) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !post.Status.CanTransitionTo(domain.PostScheduled) {
		return fmt.Errorf("%w: %s cannot be scheduled", domain.ErrInvalidPostState, post.Status)
	}
	return s.repo.Schedule(ctx, id, post.Status, at.UTC())
}

// Publish immediately publishes a scheduled post.
func (s *SocialService) Publish(ctx context.Context, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !post.Status.CanTransitionTo(domain.PostPublished) {
		return fmt.Errorf("%w: %s cannot be published", domain.ErrInvalidPostState, post.Status)
	}
	if err := s.repo.UpdateStatus(ctx, id, post.Status, domain.PostPublished); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Msg("social post published")
	return nil
}

// ListDue returns scheduled posts whose publish time has come. The scheduler
// polls this and fans the posts out to its workers.
func (s *SocialService) ListDue(ctx context.Context) ([]domain.SocialPost, error) {
	return s.repo.ListDue(ctx, time.Now().UTC())
}
