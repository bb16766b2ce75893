package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/shapespace/internal/space"
	"github.com/roach88/shapespace/internal/value"
)

// ErrNotFound is returned when no stored version matches a lookup.
var ErrNotFound = errors.New("catalog: space not found")

// Entry is one stored version of a named Space.
type Entry struct {
	ID          string
	Name        string
	Version     int
	ContentHash string
	Members     map[string]any
}

// Put validates members as a Space and stores them under name.
// Identical content (by canonical hash) returns the latest existing
// entry instead of adding a version. Invalid members are never stored;
// the *space.BuildError is returned as is.
func (c *Catalog) Put(ctx context.Context, name string, members map[string]any) (Entry, error) {
	sp, err := space.Build(members, c.spaceOpts...)
	if err != nil {
		return Entry{}, err
	}

	desc := sp.Describe()
	canonical, err := value.MarshalCanonical(desc)
	if err != nil {
		return Entry{}, fmt.Errorf("put %s: %w", name, err)
	}
	hash, err := value.Hash(value.DomainSpace, desc)
	if err != nil {
		return Entry{}, fmt.Errorf("put %s: %w", name, err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("put %s: begin: %w", name, err)
	}
	defer tx.Rollback()

	latest, err := scanEntry(tx.QueryRowContext(ctx, `
		SELECT id, name, version, content_hash, members
		FROM spaces
		WHERE name = ?
		ORDER BY version DESC
		LIMIT 1
	`, name))
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return Entry{}, fmt.Errorf("put %s: %w", name, err)
	case latest.ContentHash == hash:
		c.logger.Debug("space unchanged", "name", name, "version", latest.Version)
		return latest, nil
	}

	entry := Entry{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        name,
		Version:     latest.Version + 1,
		ContentHash: hash,
		Members:     desc,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO spaces (id, name, version, content_hash, members, member_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Name, entry.Version, entry.ContentHash, string(canonical), len(desc))
	if err != nil {
		return Entry{}, fmt.Errorf("put %s: insert: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("put %s: commit: %w", name, err)
	}

	c.logger.Info("space stored",
		"name", name,
		"version", entry.Version,
		"members", len(desc),
		"hash", hash,
	)
	return entry, nil
}

// Get returns the latest version stored under name.
func (c *Catalog) Get(ctx context.Context, name string) (Entry, error) {
	return scanEntry(c.db.QueryRowContext(ctx, `
		SELECT id, name, version, content_hash, members
		FROM spaces
		WHERE name = ?
		ORDER BY version DESC
		LIMIT 1
	`, name))
}

// GetVersion returns one specific version of name.
func (c *Catalog) GetVersion(ctx context.Context, name string, version int) (Entry, error) {
	return scanEntry(c.db.QueryRowContext(ctx, `
		SELECT id, name, version, content_hash, members
		FROM spaces
		WHERE name = ? AND version = ?
	`, name, version))
}

// Versions returns every version of name, oldest first.
// Returns an empty slice (not nil) if name is unknown.
func (c *Catalog) Versions(ctx context.Context, name string) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, version, content_hash, members
		FROM spaces
		WHERE name = ?
		ORDER BY version ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query versions: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}
	return entries, nil
}

// List returns the latest version of every stored name, ordered by name.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.version, s.content_hash, s.members
		FROM spaces s
		JOIN (
			SELECT name, MAX(version) AS version FROM spaces GROUP BY name
		) latest ON latest.name = s.name AND latest.version = s.version
		ORDER BY s.name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query spaces: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spaces: %w", err)
	}
	return entries, nil
}

// Delete removes every version of name and reports how many were removed.
func (c *Catalog) Delete(ctx context.Context, name string) (int, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM spaces WHERE name = ?`, name)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", name, err)
	}
	if n > 0 {
		c.logger.Info("space deleted", "name", name, "versions", n)
	}
	return int(n), nil
}

// Space rebuilds the latest stored version of name.
func (c *Catalog) Space(ctx context.Context, name string) (*space.Space, error) {
	e, err := c.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.Build(c.spaceOpts...)
}

// Build builds the entry's members into a Space.
func (e Entry) Build(opts ...space.Option) (*space.Space, error) {
	return space.Build(e.Members, opts...)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		e       Entry
		members string
	)
	err := row.Scan(&e.ID, &e.Name, &e.Version, &e.ContentHash, &members)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("scan space: %w", err)
	}
	if err := json.Unmarshal([]byte(members), &e.Members); err != nil {
		return Entry{}, fmt.Errorf("unmarshal members of %s v%d: %w", e.Name, e.Version, err)
	}
	return e, nil
}
