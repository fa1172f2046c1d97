package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when no bookmark exists for a given id.
	ErrNotFound = errors.New("bookmark not found")
)

// Bookmark is a saved place. Latitude and longitude are stored as given;
// range validation is intentionally not enforced here.
type Bookmark struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkStore is the persistence contract for bookmarks.
type BookmarkStore interface {
	Create(ctx context.Context, b Bookmark) (Bookmark, error)
	List(ctx context.Context) ([]Bookmark, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}

// Open connects the bookmark store named by databaseURL: postgres:// (or
// postgresql://) URLs use the pgx driver, anything else is treated as a
// SQLite file path. The schema is created on open.
func Open(ctx context.Context, databaseURL string) (BookmarkStore, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		db, err := sql.Open("pgx", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres database: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("verify postgres connection: %w", err)
		}

		s := NewPostgresBookmarkStore(db)
		if err := s.Init(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	db, err := sql.Open("sqlite", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", databaseURL, err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", databaseURL, err)
	}

	s := NewSqliteBookmarkStore(db)
	if err := s.Init(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
