// Package history records URL scan outcomes and answers recency and
// aggregate queries over them. Store is the seam: the in-memory
// implementation lives here, the SQLite-backed one in the gormstore
// subpackage.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultRecentLimit bounds Recent when the caller passes a non-positive
// limit.
const DefaultRecentLimit = 10

// VerdictPhishing is the verdict string counted by Stats.PhishingDetected.
const VerdictPhishing = "phishing"

// Entry is one recorded scan. JSON names match the history payload of the
// scoring service.
type Entry struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Verdict    string    `json:"prediction"`
	Confidence float64   `json:"confidence"`
	RiskLevel  string    `json:"risk_level"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// Stats aggregates a store.
type Stats struct {
	TotalScans       int `json:"total_scans"`
	PhishingDetected int `json:"phishing_detected"`
}

// Store persists scan entries.
type Store interface {
	// Record persists the entry, stamping ID and ScannedAt when unset, and
	// returns the stored form.
	Record(ctx context.Context, e Entry) (Entry, error)
	// Recent returns up to limit entries, newest first. Non-positive limits
	// fall back to DefaultRecentLimit.
	Recent(ctx context.Context, limit int) ([]Entry, error)
	// Stats returns aggregate counts over every stored entry.
	Stats(ctx context.Context) (Stats, error)
	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Stamp fills identity and scan time on entries that lack them.
func Stamp(e Entry, now time.Time) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.ScannedAt.IsZero() {
		e.ScannedAt = now.UTC()
	}
	return e
}
