package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

func TestStore_EmptyUntilLoaded(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Loaded())
	assert.Equal(t, 0, s.Len())

	_, err := s.Snapshot()
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
}

func TestStore_LoadFailureIsTerminal(t *testing.T) {
	s := NewStore()
	boom := errors.New("boom")
	s.SetError(boom)

	_, err := s.Snapshot()
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Loaded())
}

func TestStore_SetRecordsClearsError(t *testing.T) {
	s := NewStore()
	s.SetError(errors.New("transient"))
	s.SetRecords(makeRecords(3))

	records, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.True(t, s.Loaded())
	assert.False(t, s.LoadedAt().IsZero())
}

func TestStore_FailedReloadKeepsSnapshot(t *testing.T) {
	s := NewStore()
	s.SetRecords(makeRecords(5))
	s.SetError(errors.New("reload failed"))

	records, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	s.SetRecords(makeRecords(3))

	rec, err := s.Get("p2")
	require.NoError(t, err)
	assert.Equal(t, "Project 2", rec.Title)

	_, err = s.Get("nope")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStore_GetDuplicateIDReturnsFirst(t *testing.T) {
	s := NewStore()
	s.SetRecords([]domain.Record{
		{ID: "p1", Title: "First"},
		{ID: "p1", Title: "Shadowed"},
	})

	rec, err := s.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "First", rec.Title)
}

func TestStore_TagsFirstSeenOrder(t *testing.T) {
	s := NewStore()
	s.SetRecords([]domain.Record{
		{ID: "p1", Tags: domain.StringList{"web", "api"}},
		{ID: "p2", Tags: domain.StringList{"cli"}},
		{ID: "p3", Tags: domain.StringList{"api", "web"}},
	})

	tags, err := s.Tags()
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "api", "cli"}, tags)
}
