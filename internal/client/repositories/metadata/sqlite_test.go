package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "userId", "u1"))

	v, ok, err := r.Get(ctx, "userId")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "u1", v)
}

func TestGet_NotExists(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, v)
}

func TestGet_EmptyValueIsPresent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "userName", ""))

	_, ok, err := r.Get(ctx, "userName")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, _, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestGetMany_ReturnsPresentSubset(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", "1"))
	require.NoError(t, r.Set(ctx, "b", "2"))
	require.NoError(t, r.Set(ctx, "c", "3"))

	m, err := r.GetMany(ctx, "a", "c", "zzz")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "c": "3"}, m)

	empty, err := r.GetMany(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestList_ReturnsAllPairs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", "x"))
	require.NoError(t, r.Set(ctx, "b", "y"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "x", "b": "y"}, m)
}

func TestDelete_RemovesKeys_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Set(ctx, "y", "2"))
	require.NoError(t, r.Set(ctx, "keep", "3"))
	require.NoError(t, r.Delete(ctx, "x", "y"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"keep": "3"}, m)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", "1"))
	require.NoError(t, r.Set(ctx, "b", "2"))
	require.NoError(t, r.Clear(ctx))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	_, err = r.GetMany(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata")

	require.ErrorContains(t, r.Set(ctx, "k", "v"), "failed to set metadata[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata[k]")
	require.ErrorContains(t, r.Clear(ctx), "failed to clear metadata")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list metadata")
}
