package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

// Loader fetches the catalog document exactly once per Load call.
// Source is an http(s) URL or a local file path.
type Loader struct {
	source string
	client *http.Client
}

func NewLoader(source string, timeout time.Duration) *Loader {
	return &Loader{
		source: source,
		client: &http.Client{Timeout: timeout},
	}
}

func (l *Loader) Source() string { return l.source }

// IsFile reports whether the source is a local file path rather than a URL.
func (l *Loader) IsFile() bool {
	return !strings.HasPrefix(l.source, "http://") && !strings.HasPrefix(l.source, "https://")
}

// Load fetches and decodes the catalog document. The body must be a JSON
// array of objects; anything else is ErrMalformedCatalog. Records keep their
// source order and records without an id get "p"+position (1-based),
// assigned once per loaded snapshot.
func (l *Loader) Load(ctx context.Context) ([]domain.Record, error) {
	body, err := l.read(ctx)
	if err != nil {
		return nil, err
	}
	return decode(body)
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if l.IsFile() {
		body, err := os.ReadFile(l.source)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrFetchFailed, l.source, err)
		}
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	// Always fetch current content, never a cached copy.
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrFetchFailed, err)
	}
	return body, nil
}

// DuplicateIDs returns the ids carried by more than one record, in
// first-seen order. Ids must be unique for Get to reach every record;
// a positional id can collide with an explicit one (a record without an
// id at position 1 and another declaring "p1"), which loading does not
// reject, so pre-deploy checks report these.
func DuplicateIDs(records []domain.Record) []string {
	count := make(map[string]int, len(records))
	order := make([]string, 0, len(records))
	for _, rec := range records {
		count[rec.ID]++
		if count[rec.ID] == 2 {
			order = append(order, rec.ID)
		}
	}
	return order
}

func decode(body []byte) ([]domain.Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedCatalog, err)
	}

	records := make([]domain.Record, 0, len(raw))
	for i, item := range raw {
		var rec domain.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", domain.ErrMalformedCatalog, i+1, err)
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("p%d", i+1)
		}
		records = append(records, rec)
	}
	return records, nil
}
