package ports

import (
	"context"
	"time"

	"github.com/braizerecords/label-api/internal/core/domain"
)

// FileRepository persists shared file documents.
type FileRepository interface {
	List(ctx context.Context) ([]domain.SharedFile, error)
	FindByLink(ctx context.Context, link string) (*domain.SharedFile, error)
	Create(ctx context.Context, file *domain.SharedFile) (*domain.SharedFile, error)
	Delete(ctx context.Context, id string) error
}

// CreateFileInput carries the metadata of an uploaded file.
type CreateFileInput struct {
	Name        string
	Path        string
	ContentType string
	Size        int64
	SharedWith  []domain.FileShare
	// LinkTTL bounds the private share link lifetime; zero means no link.
	LinkTTL time.Duration
}

// FileService manages the back-office file area.
type FileService interface {
	List(ctx context.Context) ([]domain.SharedFile, error)
	Create(ctx context.Context, uploadedBy string, input CreateFileInput) (*domain.SharedFile, error)
	Delete(ctx context.Context, id string) error
	// ResolveLink returns the file behind a private link, or
	// domain.ErrLinkExpired once its expiry has passed.
	ResolveLink(ctx context.Context, link string) (*domain.SharedFile, error)
}

// SocialPostFilter narrows post listings.
type SocialPostFilter struct {
	ArtistID string
	Status   domain.PostStatus
}

// SocialRepository persists social posts.
type SocialRepository interface {
	List(ctx context.Context, filter SocialPostFilter) ([]domain.SocialPost, error)
	FindByID(ctx context.Context, id string) (*domain.SocialPost, error)
	Create(ctx context.Context, post *domain.SocialPost) (*domain.SocialPost, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.PostStatus) error
	// Schedule flips a post into the scheduled state and stamps its publish
	// time, with the same compare-and-set semantics as UpdateStatus.
	Schedule(ctx context.Context, id string, from domain.PostStatus, at time.Time) error
	// ListDue returns scheduled posts whose scheduled_for is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]domain.SocialPost, error)
}

// CreatePostInput carries a new draft post.
type CreatePostInput struct {
	ArtistID string
	Platform string
	Content  string
	Media    []string
}

// SocialService manages the post lifecycle. ListDue feeds the scheduler,
// whose workers call Publish per post.
type SocialService interface {
	List(ctx context.Context, filter SocialPostFilter) ([]domain.SocialPost, error)
	CreateDraft(ctx context.Context, input CreatePostInput) (*domain.SocialPost, error)
	Schedule(ctx context.Context, id string, at time.Time) error
	Publish(ctx context.Context, id string) error
	ListDue(ctx context.Context) ([]domain.SocialPost, error)
}
