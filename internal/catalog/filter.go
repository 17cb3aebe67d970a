package catalog

import (
	"strings"

	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

// TagAll is the sentinel tag value meaning "no tag filter". An empty tag
// behaves the same way.
const TagAll = "all"

// Filter returns the subset of records matching the selected tag and the
// free-text query, preserving catalog order. It is pure: same inputs, same
// output, no hidden state.
//
// The query is trimmed, so a whitespace-only query matches everything, and
// searchable fields are joined with single spaces, so a match never spans
// two adjacent field values.
func Filter(records []domain.Record, tag, query string) []domain.Record {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if matchesTag(rec, tag) && matchesQuery(rec, query) {
			out = append(out, rec)
		}
	}
	return out
}

// matchesTag checks the record's tag and tech collections. Tag values
// compare case-sensitively; tech values are lower-cased at comparison time.
func matchesTag(rec domain.Record, tag string) bool {
	if tag == "" || tag == TagAll {
		return true
	}

	for _, t := range rec.Tags {
		if t == tag {
			return true
		}
	}

	lowered := strings.ToLower(tag)
	for _, t := range rec.Tech {
		if strings.ToLower(t) == lowered {
			return true
		}
	}
	return false
}

// matchesQuery does a case-folded substring match over the record's
// searchable text. An empty query matches everything.
func matchesQuery(rec domain.Record, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(searchText(rec), query)
}

func searchText(rec domain.Record) string {
	var b strings.Builder
	b.WriteString(rec.Title)
	b.WriteByte(' ')
	b.WriteString(rec.Description)
	for _, t := range rec.Tech {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	for _, t := range rec.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	return strings.ToLower(b.String())
}
