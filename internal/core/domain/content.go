package domain

import (
	"errors"
	"time"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrLinkExpired      = errors.New("share link expired")
	ErrPostNotFound     = errors.New("social post not found")
	ErrInvalidPostState = errors.New("invalid social post state")
)

// FileAccess is the level granted to a user a file is shared with.
type FileAccess string

const (
	AccessView FileAccess = "view"
	AccessEdit FileAccess = "edit"
)

// FileShare grants one user access to a shared file.
type FileShare struct {
	UserID string     `json:"user_id" bson:"user_id"`
	Access FileAccess `json:"access" bson:"access"`
}

// SharedFile is a document stored for the back office file area. PrivateLink
// is an unguessable token resolving to the file until ExpiresAt passes.
type SharedFile struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Path        string      `json:"path" bson:"path"`
	ContentType string      `json:"content_type" bson:"content_type"`
	Size        int64       `json:"size" bson:"size"`
	UploadedBy  string      `json:"uploaded_by" bson:"uploaded_by"`
	SharedWith  []FileShare `json:"shared_with,omitempty" bson:"shared_with,omitempty"`
	PrivateLink string      `json:"private_link,omitempty" bson:"private_link,omitempty"`
	ExpiresAt   time.Time   `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

// SocialPlatform is a network the label publishes to.
type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformTikTok    SocialPlatform = "tiktok"
)

var validSocialPlatforms = map[SocialPlatform]struct{}{
	PlatformInstagram: {},
	PlatformFacebook:  {},
	PlatformTwitter:   {},
	PlatformTikTok:    {},
}

// ParseSocialPlatform validates a platform string.
func ParseSocialPlatform(s string) (SocialPlatform, error) {
	p := SocialPlatform(s)
	if _, ok := validSocialPlatforms[p]; !ok {
		return "", ErrInvalidPostState
	}
	return p, nil
}

// PostStatus is the lifecycle state of a social post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
	PostFailed    PostStatus = "failed"
)

// postTransitions defines the allowed lifecycle moves.
var postTransitions = map[PostStatus][]PostStatus{
	PostDraft:     {PostScheduled},
	PostScheduled: {PostPublished, PostFailed, PostDraft},
	PostFailed:    {PostScheduled},
}

// CanTransitionTo reports whether a post may move from s to next.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	for _, allowed := range postTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PostAnalytics holds engagement numbers pulled back from the platform.
type PostAnalytics struct {
	Likes    int64 `json:"likes" bson:"likes"`
	Comments int64 `json:"comments" bson:"comments"`
	Shares   int64 `json:"shares" bson:"shares"`
	Reach    int64 `json:"reach" bson:"reach"`
}

// SocialPost is a piece of content drafted or scheduled for an artist.
type SocialPost struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	ArtistID     string         `json:"artist_id" bson:"artist_id"`
	Platform     SocialPlatform `json:"platform" bson:"platform"`
	Content      string         `json:"content" bson:"content"`
	Media        []string       `json:"media,omitempty" bson:"media,omitempty"`
	ScheduledFor time.Time      `json:"scheduled_for,omitempty" bson:"scheduled_for,omitempty"`
	Status       PostStatus     `json:"status" bson:"status"`
	Analytics    PostAnalytics  `json:"analytics" bson:"analytics"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
}

// StreamData is one analytics point: an artist's numbers on one platform for
// one day. The dashboard aggregates these per platform.
type StreamData struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ArtistID  string    `json:"artist_id" bson:"artist_id"`
	Platform  string    `json:"platform" bson:"platform"`
	Streams   int64     `json:"streams" bson:"streams"`
	Listeners int64     `json:"listeners" bson:"listeners"`
	Revenue   float64   `json:"revenue" bson:"revenue"`
	Date      time.Time `json:"date" bson:"date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
