package handler

import (
	"time"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

type biographyRequest struct {
	Short string `json:"short" validate:"required"`
	Full  string `json:"full"`
}

type albumRequest struct {
	Title       string            `json:"title"        validate:"required"`
	ReleaseDate time.Time         `json:"release_date" validate:"required"`
	Type        string            `json:"type"         validate:"required,oneof=album ep single"`
	CoverArt    string            `json:"cover_art"`
	Streaming   map[string]string `json:"streaming"`
}

type artistEventRequest struct {
	Title     string    `json:"title"   validate:"required"`
	Date      time.Time `json:"date"    validate:"required"`
	Venue     string    `json:"venue"   validate:"required"`
	City      string    `json:"city"    validate:"required"`
	Country   string    `json:"country" validate:"required"`
	TicketURL string    `json:"ticket_url" validate:"omitempty,url"`
}

type artistRequest struct {
	Name        string               `json:"name"     validate:"required"`
	Slug        string               `json:"slug"     validate:"required"`
	Genre       string               `json:"genre"    validate:"required,oneof=rap pop_urbaine shatta"`
	Contract    string               `json:"contract" validate:"required,oneof=label distribution licence edition management"`
	Biography   biographyRequest     `json:"biography" validate:"required"`
	Streaming   map[string]string    `json:"streaming"`
	Socials     map[string]string    `json:"socials"`
	Discography []albumRequest       `json:"discography" validate:"dive"`
	Events      []artistEventRequest `json:"events"      validate:"dive"`
	Stats       domain.ArtistStats   `json:"stats"`
}

func (r *artistRequest) toInput() ports.ArtistInput {
	albums := make([]domain.Album, 0, len(r.Discography))
	for _, a := range r.Discography {
		albums = append(albums, domain.Album{
			Title:       a.Title,
			ReleaseDate: a.ReleaseDate,
			Type:        a.Type,
			CoverArt:    a.CoverArt,
			Streaming:   a.Streaming,
		})
	}

	events := make([]domain.ArtistEvent, 0, len(r.Events))
	for _, ev := range r.Events {
		events = append(events, domain.ArtistEvent{
			Title:     ev.Title,
			Date:      ev.Date,
			Venue:     ev.Venue,
			City:      ev.City,
			Country:   ev.Country,
			TicketURL: ev.TicketURL,
		})
	}

	return ports.ArtistInput{
		Name:     r.Name,
		Slug:     r.Slug,
		Genre:    r.Genre,
		Contract: r.Contract,
		Biography: domain.Biography{
			Short: r.Biography.Short,
			Full:  r.Biography.Full,
		},
		Streaming:   r.Streaming,
		Socials:     r.Socials,
		Discography: albums,
		Events:      events,
		Stats:       r.Stats,
	}
}
