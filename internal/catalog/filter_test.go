package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{ID: "p1", Title: "Weather Dashboard", Description: "Live forecasts", Tech: domain.StringList{"React", "TypeScript"}, Tags: domain.StringList{"web"}},
		{ID: "p2", Title: "CLI Task Runner", Description: "Automation tool", Tech: domain.StringList{"Go"}, Tags: domain.StringList{"cli"}},
		{ID: "p3", Title: "Portfolio Site", Description: "Static site built with React", Tags: domain.StringList{"web"}},
		{ID: "p4", Title: "Image Resizer", Tech: domain.StringList{"Rust"}},
	}
}

func ids(records []domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter_NoFilterReturnsAllInOrder(t *testing.T) {
	records := sampleRecords()

	for _, tag := range []string{"", TagAll} {
		got := Filter(records, tag, "")
		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(got))
	}
}

func TestFilter_TagMatching(t *testing.T) {
	records := sampleRecords()

	t.Run("tag values are case-sensitive", func(t *testing.T) {
		assert.Equal(t, []string{"p1", "p3"}, ids(Filter(records, "web", "")))
		assert.Empty(t, Filter(records, "Web", ""))
	})

	t.Run("tech values match case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"p2"}, ids(Filter(records, "go", "")))
		assert.Equal(t, []string{"p2"}, ids(Filter(records, "GO", "")))
		assert.Equal(t, []string{"p4"}, ids(Filter(records, "rust", "")))
	})
}

func TestFilter_QueryMatching(t *testing.T) {
	records := sampleRecords()

	t.Run("matches title description tech and tags case-insensitively", func(t *testing.T) {
		got := Filter(records, "", "react")
		assert.Equal(t, []string{"p1", "p3"}, ids(got))
	})

	t.Run("unmatched query yields empty subset", func(t *testing.T) {
		assert.Empty(t, Filter(records, "", "kubernetes"))
	})

	t.Run("query whitespace is trimmed", func(t *testing.T) {
		got := Filter(records, "", "  ReAcT  ")
		assert.Equal(t, []string{"p1", "p3"}, ids(got))
	})

	t.Run("whitespace-only query matches everything", func(t *testing.T) {
		got := Filter(records, "", "   ")
		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(got))
	})

	t.Run("query never matches across field seams", func(t *testing.T) {
		recs := []domain.Record{
			{ID: "p1", Title: "Site", Tech: domain.StringList{"React"}},
		}
		assert.Empty(t, Filter(recs, "", "sitereact"))
		assert.Equal(t, []string{"p1"}, ids(Filter(recs, "", "react")))
	})
}

func TestFilter_TagAndQueryAreANDed(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, "web", "forecasts")
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestFilter_PreservesOrderAndIsPure(t *testing.T) {
	records := sampleRecords()

	first := Filter(records, "", "e")
	second := Filter(records, "", "e")

	assert.Equal(t, ids(first), ids(second))

	// Relative order always follows the catalog, never the match quality.
	prev := -1
	index := map[string]int{"p1": 0, "p2": 1, "p3": 2, "p4": 3}
	for _, r := range first {
		require.Greater(t, index[r.ID], prev)
		prev = index[r.ID]
	}
}
