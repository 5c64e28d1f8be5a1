// Package gormstore persists scan history in SQLite through GORM. The
// schema matches the scan_history table of the original scoring service, so
// a database written by either is readable by both.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/phishguard/guardkit/pkg/history"
)

var _ history.Store = (*Store)(nil)

// ErrNilDB rejects construction without a database handle.
var ErrNilDB = errors.New("gormstore: nil database handle")

// scanRecord mirrors the scan_history table.
type scanRecord struct {
	ID         string    `gorm:"column:id;primaryKey"`
	URL        string    `gorm:"column:url;not null;index"`
	Prediction string    `gorm:"column:prediction;not null"`
	Confidence float64   `gorm:"column:confidence"`
	RiskLevel  string    `gorm:"column:risk_level"`
	ScannedAt  time.Time `gorm:"column:scanned_at;index"`
}

func (scanRecord) TableName() string { return "scan_history" }

// Store is a history.Store backed by a GORM database.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// Option mutates store construction.
type Option func(*Store)

// WithNow replaces the timestamp source used to stamp entries.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New wraps an open GORM handle and migrates the scan_history table.
func New(db *gorm.DB, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if err := db.AutoMigrate(&scanRecord{}); err != nil {
		return nil, fmt.Errorf("gormstore: migrate: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// Open opens (or creates) the SQLite database at path and migrates it.
// Path accepts any SQLite DSN, including in-memory forms.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("gormstore: empty database path")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gormstore: open %s: %w", path, err)
	}
	return New(db, opts...)
}

// Record implements history.Store.
func (s *Store) Record(ctx context.Context, e history.Entry) (history.Entry, error) {
	e = history.Stamp(e, s.now())
	rec := scanRecord{
		ID:         e.ID,
		URL:        e.URL,
		Prediction: e.Verdict,
		Confidence: e.Confidence,
		RiskLevel:  e.RiskLevel,
		ScannedAt:  e.ScannedAt,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return history.Entry{}, fmt.Errorf("gormstore: record: %w", err)
	}
	return e, nil
}

// Recent implements history.Store.
func (s *Store) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	if limit <= 0 {
		limit = history.DefaultRecentLimit
	}

	var rows []scanRecord
	err := s.db.WithContext(ctx).
		Order("scanned_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gormstore: recent: %w", err)
	}

	entries := make([]history.Entry, 0, len(rows))
	for _, rec := range rows {
		entries = append(entries, history.Entry{
			ID:         rec.ID,
			URL:        rec.URL,
			Verdict:    rec.Prediction,
			Confidence: rec.Confidence,
			RiskLevel:  rec.RiskLevel,
			ScannedAt:  rec.ScannedAt,
		})
	}
	return entries, nil
}

// Stats implements history.Store.
func (s *Store) Stats(ctx context.Context) (history.Stats, error) {
	var total, phishing int64
	if err := s.db.WithContext(ctx).Model(&scanRecord{}).Count(&total).Error; err != nil {
		return history.Stats{}, fmt.Errorf("gormstore: stats: %w", err)
	}
	err := s.db.WithContext(ctx).
		Model(&scanRecord{}).
		Where("prediction = ?", history.VerdictPhishing).
		Count(&phishing).Error
	if err != nil {
		return history.Stats{}, fmt.Errorf("gormstore: stats: %w", err)
	}
	return history.Stats{TotalScans: int(total), PhishingDetected: int(phishing)}, nil
}

// Clear implements history.Store.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&scanRecord{}).Error; err != nil {
		return fmt.Errorf("gormstore: clear: %w", err)
	}
	return nil
}
