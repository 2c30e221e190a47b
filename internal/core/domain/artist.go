package domain

import (
	"errors"
	"time"
)

// Genre classifies the artist's musical style from the label's fixed roster.
type Genre string

const (
	GenreRap        Genre = "rap"
	GenrePopUrbaine Genre = "pop_urbaine"
	GenreShatta     Genre = "shatta"
)

// ContractType is the kind of agreement binding the artist to the label.
type ContractType string

const (
	ContractLabel        ContractType = "label"
	ContractDistribution ContractType = "distribution"
	ContractLicence      ContractType = "licence"
	ContractEdition      ContractType = "edition"
	ContractManagement   ContractType = "management"
)

var validGenres = map[Genre]struct{}{
	GenreRap:        {},
	GenrePopUrbaine: {},
	GenreShatta:     {},
}

var validContracts = map[ContractType]struct{}{
	ContractLabel:        {},
	ContractDistribution: {},
	ContractLicence:      {},
	ContractEdition:      {},
	ContractManagement:   {},
}

// ParseGenre validates a genre string against the label's roster.
func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if _, ok := validGenres[g]; !ok {
		return "", ErrUnknownGenre
	}
	return g, nil
}

// ParseContractType validates a contract type string.
func ParseContractType(s string) (ContractType, error) {
	c := ContractType(s)
	if _, ok := validContracts[c]; !ok {
		return "", ErrUnknownContract
	}
	return c, nil
}

var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrSlugTaken       = errors.New("artist slug already used")
	ErrUnknownGenre    = errors.New("unknown genre")
	ErrUnknownContract = errors.New("unknown contract type")
)

// Biography keeps a teaser and the full press text.
type Biography struct {
	Short string `json:"short" bson:"short"`
	Full  string `json:"full" bson:"full"`
}

// Album is a release in the artist's discography.
type Album struct {
	Title       string            `json:"title" bson:"title"`
	ReleaseDate time.Time         `json:"release_date" bson:"release_date"`
	Type        string            `json:"type" bson:"type"` // album, ep, single
	CoverArt    string            `json:"cover_art,omitempty" bson:"cover_art,omitempty"`
	Streaming   map[string]string `json:"streaming,omitempty" bson:"streaming,omitempty"`
}

// ArtistEvent is a scheduled or past live appearance.
type ArtistEvent struct {
	Title     string    `json:"title" bson:"title"`
	Date      time.Time `json:"date" bson:"date"`
	Venue     string    `json:"venue" bson:"venue"`
	City      string    `json:"city" bson:"city"`
	Country   string    `json:"country" bson:"country"`
	TicketURL string    `json:"ticket_url,omitempty" bson:"ticket_url,omitempty"`
}

// ArtistStats holds headline audience numbers shown on the public profile.
type ArtistStats struct {
	MonthlyListeners int64 `json:"monthly_listeners,omitempty" bson:"monthly_listeners,omitempty"`
	Followers        int64 `json:"followers,omitempty" bson:"followers,omitempty"`
}

// Artist is the catalog aggregate served on the public pages and managed
// from the back office. Slug is unique and doubles as the public URL key.
type Artist struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	Name        string            `json:"name" bson:"name"`
	Slug        string            `json:"slug" bson:"slug"`
	Genre       Genre             `json:"genre" bson:"genre"`
	Contract    ContractType      `json:"contract" bson:"contract"`
	Biography   Biography         `json:"biography" bson:"biography"`
	Streaming   map[string]string `json:"streaming,omitempty" bson:"streaming,omitempty"`
	Socials     map[string]string `json:"socials,omitempty" bson:"socials,omitempty"`
	Discography []Album           `json:"discography,omitempty" bson:"discography,omitempty"`
	Events      []ArtistEvent     `json:"events,omitempty" bson:"events,omitempty"`
	Stats       ArtistStats       `json:"stats" bson:"stats"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
