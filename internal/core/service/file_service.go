package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// FileService manages the back-office file area. Private share links are
// random uuids, resolvable without a session until their expiry passes.
type FileService struct {
	repo   ports.FileRepository
	logger zerolog.Logger
}

func NewFileService(repo ports.FileRepository, logger zerolog.Logger) *FileService {
	return &FileService{repo: repo, logger: logger}
}

func (s *FileService) List(ctx context.Context) ([]domain.SharedFile, error) {
	return s.repo.List(ctx)
}

func (s *FileService) Create(ctx context.Context, uploadedBy string, input ports.CreateFileInput) (*domain.SharedFile, error) {
	now := time.Now().UTC()
	file := &domain.SharedFile{
		Name:        input.Name,
		Path:        input.Path,
		ContentType: input.ContentType,
		Size:        input.Size,
		UploadedBy:  uploadedBy,
		SharedWith:  input.SharedWith,
		CreatedAt:   now,
	}

	if input.LinkTTL > 0 {
		file.PrivateLink = uuid.NewString()
		file.ExpiresAt = now.Add(input.LinkTTL)
	}

	created, err := s.repo.Create(ctx, file)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("file", created.Name).Str("uploaded_by", uploadedBy).Msg("file registered")
	return created, nil
}

func (s *FileService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ResolveLink returns the file behind a private link. An expired link is
// reported distinctly so the edge can render 410-style messaging.
func (s *FileService) ResolveLink(ctx context.Context, link string) (*domain.SharedFile, error) {
	file, err := s.repo.FindByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if !file.ExpiresAt.IsZero() && time.Now().After(file.ExpiresAt) {
		return nil, domain.ErrLinkExpired
	}
	return file, nil
}
