package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PostgresBookmarkStore is the Postgres-backed implementation of BookmarkStore.
type PostgresBookmarkStore struct {
	db *sql.DB
}

func NewPostgresBookmarkStore(db *sql.DB) *PostgresBookmarkStore {
	return &PostgresBookmarkStore{db: db}
}

// Init creates the bookmarks table if it does not exist.
func (s *PostgresBookmarkStore) Init(ctx context.Context) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS bookmarks (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		city TEXT,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		note TEXT,
		created_at TIMESTAMPTZ NOT NULL
	);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create bookmarks table: %w", err)
	}
	return nil
}

// Create inserts a bookmark inside a transaction and returns it with its
// assigned id and creation time.
func (s *PostgresBookmarkStore) Create(ctx context.Context, b Bookmark) (Bookmark, error) {
	if b.Name == "" {
		return Bookmark{}, errors.New("bookmark name must not be empty")
	}
	b.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Bookmark{}, fmt.Errorf("create bookmark: begin: %w", err)
	}
	defer tx.Rollback()

	const query = `
	INSERT INTO bookmarks (name, address, city, latitude, longitude, note, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id;`
	if err := tx.QueryRowContext(ctx, query,
		b.Name, b.Address, b.City, b.Latitude, b.Longitude, b.Note, b.CreatedAt,
	).Scan(&b.ID); err != nil {
		return Bookmark{}, fmt.Errorf("create bookmark: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Bookmark{}, fmt.Errorf("create bookmark: commit: %w", err)
	}
	return b, nil
}

// List returns all bookmarks, most recently created first.
func (s *PostgresBookmarkStore) List(ctx context.Context) ([]Bookmark, error) {
	const query = `
	SELECT id, name, address, city, latitude, longitude, note, created_at
	FROM bookmarks
	ORDER BY created_at DESC, id DESC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]Bookmark, 0, 16)
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.Latitude, &b.Longitude, &b.Note, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("list bookmarks: scan row: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: row iteration: %w", err)
	}
	return bookmarks, nil
}

// Delete removes the bookmark with the given id inside a transaction and
// reports ErrNotFound for unknown ids.
func (s *PostgresBookmarkStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete bookmark: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete bookmark %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete bookmark %d: commit: %w", id, err)
	}
	return nil
}

func (s *PostgresBookmarkStore) Close() error {
	return s.db.Close()
}
