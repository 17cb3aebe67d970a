package catalog

import (
	"fmt"
	"strings"

	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

// techPlaceholder stands in for the tech/tag summary line when a record
// carries neither.
const techPlaceholder = "—"

// Card is the display shape of one record. Building it is pure so the
// mapping can be tested without any rendering surface.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TechLine    string `json:"techLine"`
	Image       string `json:"image,omitempty"`
	ImageAlt    string `json:"imageAlt,omitempty"`
	DetailsURL  string `json:"detailsUrl,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
}

// PageView is everything the frontend needs to paint one page of results:
// cards in order, the "Page X of Y" label, prev/next enablement, pagination
// visibility and the accessible results summary.
type PageView struct {
	Cards          []Card `json:"cards"`
	Empty          bool   `json:"empty"`
	Placeholder    string `json:"placeholder,omitempty"`
	Page           int    `json:"page"`
	TotalPages     int    `json:"totalPages"`
	PageLabel      string `json:"pageLabel"`
	HasPrev        bool   `json:"hasPrev"`
	HasNext        bool   `json:"hasNext"`
	ShowPagination bool   `json:"showPagination"`
	TotalItems     int    `json:"totalItems"`
	Shown          int    `json:"shown"`
	Summary        string `json:"summary"`
}

// BuildCard maps a record to its display fields. Missing optional fields
// degrade to placeholders or omitted values, never errors.
func BuildCard(rec domain.Record) Card {
	return Card{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		TechLine:    techLine(rec),
		Image:       rec.Image,
		ImageAlt:    rec.ImageAlt,
		DetailsURL:  rec.DetailsURL,
		SourceURL:   rec.SourceURL,
	}
}

func techLine(rec domain.Record) string {
	if len(rec.Tech) > 0 {
		return strings.Join(rec.Tech, ", ")
	}
	if len(rec.Tags) > 0 {
		return strings.Join(rec.Tags, ", ")
	}
	return techPlaceholder
}

// BuildPageView turns a paginated slice into the full view model. Card order
// matches the input slice exactly.
func BuildPageView(p Page) PageView {
	cards := make([]Card, 0, len(p.Items))
	for _, rec := range p.Items {
		cards = append(cards, BuildCard(rec))
	}

	view := PageView{
		Cards:      cards,
		Page:       p.Number,
		TotalPages: p.TotalPages,
		PageLabel:  fmt.Sprintf("Page %d of %d", p.Number, p.TotalPages),
		HasPrev:    p.Number > 1,
		HasNext:    p.Number < p.TotalPages,
		TotalItems: p.TotalItems,
		Shown:      len(cards),
		Summary:    fmt.Sprintf("Showing %d of %d projects", len(cards), p.TotalItems),
	}

	if p.TotalItems == 0 {
		view.Empty = true
		view.Placeholder = "No projects match your filters."
		view.Summary = "Showing 0 of 0 projects"
	}

	// Pagination stays hidden for a single page or an empty result set.
	view.ShowPagination = p.TotalPages > 1 && p.TotalItems > 0

	return view
}
