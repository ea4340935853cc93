package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (i *item) RecordID() int      { return i.ID }
func (i *item) SetRecordID(id int) { i.ID = id }

func newTestStore(t *testing.T) *Store[*item] {
	t.Helper()
	return New[*item](filepath.Join(t.TempDir(), "items.json"))
}

func TestLoadAllBootstrap(t *testing.T) {
	s := newTestStore(t)

	recs, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)

	// Bootstrap does not create the file either.
	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 3; i++ {
		rec, err := s.Append(&item{Name: fmt.Sprintf("n%d", i)})
		require.NoError(t, err)
		assert.Equal(t, i, rec.ID)
	}

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "n2", recs[1].Name)
}

func TestAppendAfterTailDelete(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 3; i++ {
		_, err := s.Append(&item{Name: "x"})
		require.NoError(t, err)
	}

	removed, err := s.DeleteByID(3)
	require.NoError(t, err)
	require.True(t, removed)

	// The tail now carries id 2, so the next id is 3 again. The old record
	// is gone, so reuse cannot collide.
	rec, err := s.Append(&item{Name: "y"})
	require.NoError(t, err)
	assert.Equal(t, 3, rec.ID)
}

func TestFindByID(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Append(&item{Name: "a"})
	require.NoError(t, err)

	rec, found, err := s.FindByID(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "a", rec.Name)

	_, found, err = s.FindByID(99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateByID(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Append(&item{Name: "old"})
	require.NoError(t, err)

	rec, found, err := s.UpdateByID(1, &item{Name: "new"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "new", rec.Name)

	_, found, err = s.UpdateByID(42, &item{Name: "ghost"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteByIDIdempotent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Append(&item{Name: "a"})
	require.NoError(t, err)

	removed, err := s.DeleteByID(1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.DeleteByID(1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	s := New[*item](path)
	_, err := s.Append(&item{Name: "survivor"})
	require.NoError(t, err)

	reopened := New[*item](path)
	recs, err := reopened.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "survivor", recs[0].Name)
	assert.Equal(t, 1, recs[0].ID)
}

func TestConcurrentAppendsLoseNothing(t *testing.T) {
	s := newTestStore(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Append(&item{Name: "c"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	recs, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, recs, n)

	seen := map[int]bool{}
	for _, r := range recs {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}

func TestDeleteAbsentLeavesFileUntouched(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Append(&item{Name: "a"})
	require.NoError(t, err)
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	removed, err := s.DeleteByID(99)
	require.NoError(t, err)
	assert.False(t, removed)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
