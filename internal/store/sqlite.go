package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SqliteBookmarkStore is the SQLite-backed implementation of BookmarkStore,
// the default for local runs. Timestamps are stored as RFC3339 text.
type SqliteBookmarkStore struct {
	db *sql.DB
}

func NewSqliteBookmarkStore(db *sql.DB) *SqliteBookmarkStore {
	return &SqliteBookmarkStore{db: db}
}

// Init creates the bookmarks table if it does not exist.
func (s *SqliteBookmarkStore) Init(ctx context.Context) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS bookmarks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT,
		city TEXT,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		note TEXT,
		created_at TEXT NOT NULL
	);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create bookmarks table: %w", err)
	}
	return nil
}

func (s *SqliteBookmarkStore) Create(ctx context.Context, b Bookmark) (Bookmark, error) {
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
	VALUES (?, ?, ?, ?, ?, ?, ?);`
	res, err := tx.ExecContext(ctx, query,
		b.Name, b.Address, b.City, b.Latitude, b.Longitude, b.Note, b.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Bookmark{}, fmt.Errorf("create bookmark: insert: %w", err)
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return Bookmark{}, fmt.Errorf("create bookmark: last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Bookmark{}, fmt.Errorf("create bookmark: commit: %w", err)
	}
	return b, nil
}

func (s *SqliteBookmarkStore) List(ctx context.Context) ([]Bookmark, error) {
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
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.Latitude, &b.Longitude, &b.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("list bookmarks: scan row: %w", err)
		}
		b.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list bookmarks: parse created_at %q: %w", createdAt, err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: row iteration: %w", err)
	}
	return bookmarks, nil
}

func (s *SqliteBookmarkStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete bookmark: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?;`, id)
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

func (s *SqliteBookmarkStore) Close() error {
	return s.db.Close()
}
