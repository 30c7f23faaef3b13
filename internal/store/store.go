// Package store persists mood entries in an embedded SQLite database.
package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/chaz8081/moodlog/internal/mood"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultSlowQueryThreshold is the duration above which queries log at warn.
const DefaultSlowQueryThreshold = 200 * time.Millisecond

const createTableSQL = `CREATE TABLE IF NOT EXISTS mood (
	id         INTEGER PRIMARY KEY,
	timestamp  INTEGER NOT NULL,
	value      REAL NOT NULL,
	message    TEXT
)`

// moodRow maps mood.Entry onto the mood table.
type moodRow struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	Timestamp int64   `gorm:"column:timestamp;not null"`
	Value     float64 `gorm:"column:value;not null"`
	Message   *string `gorm:"column:message"`
}

func (moodRow) TableName() string { return "mood" }

// Store wraps a gorm connection to a single mood database file.
type Store struct {
	db   *gorm.DB
	path string
}

type options struct {
	logger        *slog.Logger
	slowThreshold time.Duration
}

// Option configures Open.
type Option func(*options)

// WithLogger routes gorm's query log to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSlowThreshold overrides DefaultSlowQueryThreshold. Zero disables slow query warnings.
func WithSlowThreshold(d time.Duration) Option {
	return func(o *options) { o.slowThreshold = d }
}

// Open opens the database at path, creating the file if it does not exist.
func Open(path string, opts ...Option) (*Store, error) {
	o := options{slowThreshold: DefaultSlowQueryThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(o.logger, o.slowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file the store was opened on.
func (s *Store) Path() string { return s.path }

// DB exposes the underlying gorm handle.
func (s *Store) DB() *gorm.DB { return s.db }

// EnsureSchema creates the mood table if it is not there yet. Safe to call on
// every run.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Insert appends e and returns the number of rows written. On success e.ID
// holds the assigned key.
func (s *Store) Insert(ctx context.Context, e *mood.Entry) (int64, error) {
	row := moodRow{
		Timestamp: e.Timestamp,
		Value:     e.Value,
		Message:   e.Message,
	}
	res := s.db.WithContext(ctx).Create(&row)
	if res.Error != nil {
		return 0, fmt.Errorf("insert mood: %w", res.Error)
	}
	e.ID = row.ID
	return res.RowsAffected, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return sqlDB.Close()
}
