package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func torvalds() UserRecord {
	return UserRecord{
		ID:          1024025,
		Login:       "torvalds",
		AvatarURL:   "https://avatars.githubusercontent.com/u/1024025",
		Name:        "Linus Torvalds",
		Followers:   200000,
		PublicRepos: 7,
	}
}

func TestUpsertAllAndAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	records := []UserRecord{
		{ID: 2, Login: "beta"},
		{ID: 1, Login: "alpha"},
	}
	require.NoError(t, s.UpsertAll(ctx, records))

	got, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Login, "All() should order by id")
	assert.Equal(t, "beta", got[1].Login)
}

func TestUpsertIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := torvalds()
	require.NoError(t, s.UpsertAll(ctx, []UserRecord{rec}))
	require.NoError(t, s.UpsertAll(ctx, []UserRecord{rec}))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "upserting the same record twice should leave one row")

	got, err := s.ByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestUpsertReplacesOnConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := torvalds()
	require.NoError(t, s.UpsertAll(ctx, []UserRecord{rec}))

	// Same primary key, different field values: last write wins wholesale.
	updated := rec
	updated.Name = ""
	updated.Followers = 200001
	require.NoError(t, s.UpsertAll(ctx, []UserRecord{updated}))

	got, err := s.ByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Empty(t, got.Name, "replace should not merge old field values")
}

func TestByIDNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ByID(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrNotFound), "ByID() on empty cache should return ErrNotFound, got %v", err)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertAll(ctx, []UserRecord{torvalds()}))
	require.NoError(t, s.Clear(ctx))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpsertAllEmptyBatch(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.UpsertAll(context.Background(), nil))
}

func TestMemoryDatabaseSharedAcrossQueries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertAll(ctx, []UserRecord{torvalds()}))

	// Concurrent reads would each claim a pooled connection; with an
	// in-memory database every connection must still see the same data.
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ByID(ctx, 1024025); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent ByID() error = %v", err)
	}
}
