// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/candidate-split/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{Enabled: true, Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)

	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	id, err := store.Record(types.RunRecord{
		Source:  "R007_bundle.pdf",
		Started: started,
		Pages:   10,
		Written: 2,
		Failed:  1,
		Sections: []types.Section{
			{Name: "Smith_John", Title: "Smith, John", PageFrom: 1, PageThru: 4, Path: "candidates/Smith_John/Smith_John.pdf"},
			{Name: "Doe_Jane", Title: "Doe, Jane", PageFrom: 5, PageThru: 10},
		},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "R007_bundle.pdf", run.Source)
	assert.True(t, run.Started.Equal(started))
	assert.Equal(t, 10, run.Pages)
	assert.Equal(t, 2, run.Written)
	assert.Equal(t, 1, run.Failed)
	require.Len(t, run.Sections, 2)
	assert.Equal(t, "Smith_John", run.Sections[0].Name)
	assert.Equal(t, "candidates/Smith_John/Smith_John.pdf", run.Sections[0].Path)
}

func TestRecentOrderAndLimit(t *testing.T) {
	store := newTestStore(t)

	for i, source := range []string{"first.pdf", "second.pdf", "third.pdf"} {
		_, err := store.Record(types.RunRecord{
			Source:  source,
			Started: time.Now().UTC().Add(time.Duration(i) * time.Minute),
			Pages:   3,
			Written: 1,
		})
		require.NoError(t, err)
	}

	runs, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third.pdf", runs[0].Source)
	assert.Equal(t, "second.pdf", runs[1].Source)
}

func TestRecentEmpty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{Enabled: true, Dir: dir}

	store, err := NewStore(cfg)
	require.NoError(t, err)
	_, err = store.Record(types.RunRecord{Source: "a.pdf", Started: time.Now().UTC(), Pages: 1, Written: 1})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
