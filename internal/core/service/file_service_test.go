package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

type stubFileRepo struct {
	files  map[string]*domain.SharedFile
	nextID int
}

func newStubFileRepo() *stubFileRepo {
	return &stubFileRepo{files: make(map[string]*domain.SharedFile)}
}

func (r *stubFileRepo) add(f domain.SharedFile) *domain.SharedFile {
	r.nextID++
	if f.ID == "" {
		f.ID = fmt.Sprintf("file_%d", r.nextID)
	}
	r.files[f.ID] = &f
	return &f
}

func (r *stubFileRepo) List(context.Context) ([]domain.SharedFile, error) {
	out := make([]domain.SharedFile, 0, len(r.files))
	for _, f := range r.files {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFileRepo) FindByLink(_ context.Context, link string) (*domain.SharedFile, error) {
	for _, f := range r.files {
		if f.PrivateLink == link {
			clone := *f
			return &clone, nil
		}
	}
	return nil, domain.ErrFileNotFound
}

func (r *stubFileRepo) Create(_ context.Context, file *domain.SharedFile) (*domain.SharedFile, error) {
	clone := r.add(*file)
	out := *clone
	return &out, nil
}

func (r *stubFileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.files[id]; !ok {
		return domain.ErrFileNotFound
	}
	delete(r.files, id)
	return nil
}

func TestFileService_Create_WithLink(t *testing.T) {
	repo := newStubFileRepo()
	svc := NewFileService(repo, zerolog.Nop())

	file, err := svc.Create(context.Background(), "user_1", ports.CreateFileInput{
		Name:        "contract.pdf",
		Path:        "/files/contract.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		LinkTTL:     7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if file.PrivateLink == "" {
		t.Fatalf("expected a private link")
	}
	if file.ExpiresAt.IsZero() || !file.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected a future expiry, got %v", file.ExpiresAt)
	}
	if file.UploadedBy != "user_1" {
		t.Fatalf("uploader not recorded: %q", file.UploadedBy)
	}
}

func TestFileService_Create_WithoutLink(t *testing.T) {
	svc := NewFileService(newStubFileRepo(), zerolog.Nop())

	file, err := svc.Create(context.Background(), "user_1", ports.CreateFileInput{
		Name: "notes.txt",
		Path: "/files/notes.txt",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if file.PrivateLink != "" || !file.ExpiresAt.IsZero() {
		t.Fatalf("no link requested but one was minted: %+v", file)
	}
}

func TestFileService_LinksAreUnique(t *testing.T) {
	svc := NewFileService(newStubFileRepo(), zerolog.Nop())

	input := ports.CreateFileInput{Name: "a", Path: "/a", LinkTTL: time.Hour}
	first, err := svc.Create(context.Background(), "user_1", input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := svc.Create(context.Background(), "user_1", input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.PrivateLink == second.PrivateLink {
		t.Fatalf("links must be unguessable and unique")
	}
}

func TestFileService_ResolveLink(t *testing.T) {
	repo := newStubFileRepo()
	live := repo.add(domain.SharedFile{
		Name:        "live.pdf",
		PrivateLink: "live-link",
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	repo.add(domain.SharedFile{
		Name:        "stale.pdf",
		PrivateLink: "stale-link",
		ExpiresAt:   time.Now().Add(-time.Hour),
	})
	svc := NewFileService(repo, zerolog.Nop())

	file, err := svc.ResolveLink(context.Background(), "live-link")
	if err != nil {
		t.Fatalf("ResolveLink returned error: %v", err)
	}
	if file.ID != live.ID {
		t.Fatalf("unexpected file: %+v", file)
	}

	if _, err := svc.ResolveLink(context.Background(), "stale-link"); !errors.Is(err, domain.ErrLinkExpired) {
		t.Fatalf("expected ErrLinkExpired, got %v", err)
	}
	if _, err := svc.ResolveLink(context.Background(), "no-such-link"); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}
