package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio-app/portfolio-backend/internal/bootstrap"
	"github.com/devfolio-app/portfolio-backend/internal/catalog"
	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

func buildTestAPI(t *testing.T, records []domain.Record) *httptest.Server {
	t.Helper()

	bootstrap.SetGinMode("test")

	store := catalog.NewStore()
	if records != nil {
		store.SetRecords(records)
	} else {
		store.SetError(domain.ErrFetchFailed)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:       "portfolio-backend-test",
		Version:           "test",
		Store:             store,
		PageSize:          catalog.DefaultPageSize,
		ContactRatePerMin: 60,
		ContactBurst:      10,
		ContactDupWindow:  time.Minute,
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func catalogOf(n int) []domain.Record {
	out := make([]domain.Record, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.Record{
			ID:    fmt.Sprintf("p%d", i),
			Title: fmt.Sprintf("Project %d", i),
			Tech:  domain.StringList{"Go"},
		})
	}
	return out
}

type listView struct {
	OK   bool `json:"ok"`
	View struct {
		Cards []struct {
			ID string `json:"id"`
		} `json:"cards"`
		Page           int    `json:"page"`
		TotalPages     int    `json:"totalPages"`
		PageLabel      string `json:"pageLabel"`
		HasNext        bool   `json:"hasNext"`
		ShowPagination bool   `json:"showPagination"`
		Empty          bool   `json:"empty"`
	} `json:"view"`
}

func fetchList(t *testing.T, base, query string) (int, listView) {
	t.Helper()

	resp, err := http.Get(base + "/api/v1/projects" + query)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out listView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestAPI_PageWalk(t *testing.T) {
	server := buildTestAPI(t, catalogOf(14))

	code, page1 := fetchList(t, server.URL, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Page 1 of 3", page1.View.PageLabel)
	assert.Len(t, page1.View.Cards, 6)
	assert.True(t, page1.View.ShowPagination)

	// Two clicks of "next" from page 1.
	_, page3 := fetchList(t, server.URL, "?page=3")
	assert.Equal(t, "Page 3 of 3", page3.View.PageLabel)
	assert.Len(t, page3.View.Cards, 2)
	assert.Equal(t, "p13", page3.View.Cards[0].ID)
	assert.False(t, page3.View.HasNext)

	// Next past the end stays on the last page.
	_, clamped := fetchList(t, server.URL, "?page=4")
	assert.Equal(t, 3, clamped.View.Page)
}

func TestAPI_SearchEmptyState(t *testing.T) {
	server := buildTestAPI(t, catalogOf(5))

	code, out := fetchList(t, server.URL, "?q=nomatch")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, out.View.Empty)
	assert.False(t, out.View.ShowPagination)
}

func TestAPI_UnableToLoad(t *testing.T) {
	server := buildTestAPI(t, nil)

	resp, err := http.Get(server.URL + "/api/v1/projects")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAPI_Health(t *testing.T) {
	server := buildTestAPI(t, catalogOf(3))

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status   string `json:"status"`
		Catalog  string `json:"catalog"`
		Projects int    `json:"projects"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "loaded", body.Catalog)
	assert.Equal(t, 3, body.Projects)
}
