package domain

import (
	"encoding/json"
	"fmt"
)

// Record is one project entry from the catalog document.
// It is intentionally storage-agnostic and used across loader, filter and HTTP layers.
type Record struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Tech        StringList `json:"tech,omitempty"`
	Tags        StringList `json:"tags,omitempty"`
	Image       string     `json:"image,omitempty"`
	ImageAlt    string     `json:"imageAlt,omitempty"`
	DetailsURL  string     `json:"detailsUrl,omitempty"`
	SourceURL   string     `json:"sourceUrl,omitempty"`
}

// StringList accepts either a single JSON string or an array of strings,
// preserving element order. Catalog documents use both shapes for tech/tags.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = nil
		} else {
			*s = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("tech/tags must be a string or an array of strings: %w", err)
	}
	*s = StringList(many)
	return nil
}
