package catalog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shapespace/internal/space"
)

// createTestCatalog creates a new in-memory catalog for testing.
func createTestCatalog(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	c, err := Open(":memory:", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func categoryMembers() map[string]any {
	return map[string]any{
		"category": map[string]any{
			"name":          "string",
			"subcategories": "category[]",
		},
	}
}

func TestOpen_CreatesFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)

	var mode string
	require.NoError(t, c.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.Put(ctx, "taxonomy", categoryMembers())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	for i := 0; i < 3; i++ {
		c, err := Open(path)
		require.NoError(t, err, "iteration %d", i)
		require.NoError(t, c.Close())
	}

	c, err := Open(path)
	require.NoError(t, err)
	defer c.Close()

	v, err := c.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)

	e, err := c.Get(ctx, "taxonomy")
	require.NoError(t, err)
	assert.Equal(t, 1, e.Version)
}

func TestPut_StoresCanonicalEntry(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	e, err := c.Put(ctx, "taxonomy", categoryMembers())
	require.NoError(t, err)

	assert.Equal(t, "taxonomy", e.Name)
	assert.Equal(t, 1, e.Version)
	assert.Len(t, e.ContentHash, 64)

	id, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	var stored string
	require.NoError(t, c.db.QueryRow("SELECT members FROM spaces WHERE id = ?", e.ID).Scan(&stored))
	assert.Equal(t, `{"category":{"name":"string","subcategories":"category[]"}}`, stored)

	got, err := c.Get(ctx, "taxonomy")
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestPut_IdenticalContentIsIdempotent(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	first, err := c.Put(ctx, "taxonomy", categoryMembers())
	require.NoError(t, err)

	// Same content in a different container type hashes the same.
	again, err := c.Put(ctx, "taxonomy", map[string]any{
		"category": map[string]string{
			"subcategories": "category[]",
			"name":          "string",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, first, again)

	versions, err := c.Versions(ctx, "taxonomy")
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestPut_NewContentAddsVersion(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	v1, err := c.Put(ctx, "taxonomy", categoryMembers())
	require.NoError(t, err)

	changed := categoryMembers()
	changed["tag"] = "string"
	v2, err := c.Put(ctx, "taxonomy", changed)
	require.NoError(t, err)

	assert.Equal(t, 2, v2.Version)
	assert.NotEqual(t, v1.ContentHash, v2.ContentHash)
	assert.NotEqual(t, v1.ID, v2.ID)

	versions, err := c.Versions(ctx, "taxonomy")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, []int{1, 2}, []int{versions[0].Version, versions[1].Version})

	old, err := c.GetVersion(ctx, "taxonomy", 1)
	require.NoError(t, err)
	assert.Equal(t, v1, old)

	latest, err := c.Get(ctx, "taxonomy")
	require.NoError(t, err)
	assert.Equal(t, v2, latest)

	// Reverting to the first content is a new version, not a rollback.
	v3, err := c.Put(ctx, "taxonomy", categoryMembers())
	require.NoError(t, err)
	assert.Equal(t, 3, v3.Version)
	assert.Equal(t, v1.ContentHash, v3.ContentHash)
}

func TestPut_RejectsInvalidSpace(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	_, err := c.Put(ctx, "broken", map[string]any{"user": map[string]any{"team": "team"}})
	require.Error(t, err)
	assert.True(t, space.IsBuildError(err))

	_, err = c.Get(ctx, "broken")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPut_StrictNames(t *testing.T) {
	c := createTestCatalog(t, WithSpaceOptions(space.WithStrictNames()))

	_, err := c.Put(context.Background(), "shadow", map[string]any{"number": "string"})
	assert.True(t, space.IsBuildError(err))
}

func TestGet_NotFound(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetVersion(ctx, "missing", 1)
	assert.True(t, errors.Is(err, ErrNotFound))

	versions, err := c.Versions(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, versions)
	assert.Empty(t, versions)
}

func TestList_LatestPerName(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	_, err := c.Put(ctx, "b", map[string]any{"id": "number"})
	require.NoError(t, err)
	_, err = c.Put(ctx, "a", map[string]any{"id": "string"})
	require.NoError(t, err)
	_, err = c.Put(ctx, "b", map[string]any{"id": "number|string"})
	require.NoError(t, err)

	entries, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, "b", entries[1].Name)
	assert.Equal(t, 2, entries[1].Version)
	assert.Equal(t, map[string]any{"id": "number|string"}, entries[1].Members)
}

func TestDelete(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	_, err := c.Put(ctx, "x", map[string]any{"id": "number"})
	require.NoError(t, err)
	_, err = c.Put(ctx, "x", map[string]any{"id": "string"})
	require.NoError(t, err)

	n, err := c.Delete(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = c.Delete(ctx, "x")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = c.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	e, err := c.Put(ctx, "x", map[string]any{"id": "number"})
	require.NoError(t, err)
	assert.Equal(t, 1, e.Version)
}

func TestSpace_ChecksLikeFreshBuild(t *testing.T) {
	c := createTestCatalog(t)
	ctx := context.Background()

	members := map[string]any{
		"user": map[string]any{
			"name":    "string",
			"friends": "user[]",
			"groups":  "group[]",
		},
		"group": map[string]any{
			"members":  "user[]",
			"category": "category?",
		},
		"category": categoryMembers()["category"],
	}
	_, err := c.Put(ctx, "social", members)
	require.NoError(t, err)

	stored, err := c.Space(ctx, "social")
	require.NoError(t, err)
	fresh := space.MustBuild(members)

	assert.Equal(t, fresh.Describe(), stored.Describe())
	assert.Equal(t, fresh.Recursive(), stored.Recursive())

	values := []any{
		map[string]any{"name": "a", "friends": []any{}, "groups": []any{}},
		map[string]any{"name": "a", "friends": []any{1}, "groups": []any{}},
		map[string]any{"name": "a", "friends": []any{}, "groups": []any{map[string]any{"members": []any{}}}},
		map[string]any{"name": "a"},
		"a",
	}
	for _, v := range values {
		assert.Equal(t, fresh.Check(v, "user") == nil, stored.Check(v, "user") == nil, "%v", v)
	}

	_, err = c.Space(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_LogsWrites(t *testing.T) {
	var logs bytes.Buffer
	c := createTestCatalog(t, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	ctx := context.Background()

	_, err := c.Put(ctx, "taxonomy", categoryMembers())
	require.NoError(t, err)
	_, err = c.Delete(ctx, "taxonomy")
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "space stored")
	assert.Contains(t, logs.String(), "name=taxonomy")
	assert.Contains(t, logs.String(), "space deleted")
}
