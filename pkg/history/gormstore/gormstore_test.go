package gormstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/phishguard/guardkit/pkg/history"
	"github.com/phishguard/guardkit/pkg/history/gormstore"
)

func openStore(t *testing.T, opts ...gormstore.Option) *gormstore.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s, err := gormstore.New(db, opts...)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

// stepClock returns a time source that advances one step per call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestNewRejectsNilDB(t *testing.T) {
	if _, err := gormstore.New(nil); !errors.Is(err, gormstore.ErrNilDB) {
		t.Fatalf("nil db: got %v", err)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := gormstore.Open(""); err == nil {
		t.Fatal("empty path accepted")
	}
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	now := stepClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Second)
	s := openStore(t, gormstore.WithNow(now))

	urls := []string{"https://a.com", "http://192.168.1.1/login", "https://c.com"}
	verdicts := []string{"legitimate", "phishing", "legitimate"}
	for i, url := range urls {
		got, err := s.Record(ctx, history.Entry{
			URL:        url,
			Verdict:    verdicts[i],
			Confidence: 0.9,
			RiskLevel:  "low",
		})
		if err != nil {
			t.Fatalf("record %s: %v", url, err)
		}
		if got.ID == "" || got.ScannedAt.IsZero() {
			t.Fatalf("identity not stamped: %+v", got)
		}
	}

	recent, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	var gotURLs []string
	for _, e := range recent {
		gotURLs = append(gotURLs, e.URL)
	}
	want := []string{"https://c.com", "http://192.168.1.1/login"}
	if diff := cmp.Diff(want, gotURLs); diff != "" {
		t.Fatalf("recent urls (-want +got):\n%s", diff)
	}
}

func TestRecentRoundTripsFields(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := openStore(t)

	stored, err := s.Record(ctx, history.Entry{
		ID:         "scan-1",
		URL:        "http://paypal.com.fake-login-secure.tk",
		Verdict:    "phishing",
		Confidence: 1,
		RiskLevel:  "high",
		ScannedAt:  at,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	recent, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("entry count: got %d", len(recent))
	}
	if diff := cmp.Diff(stored, recent[0]); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestStatsAndClear(t *testing.T) {
	ctx := context.Background()
	now := stepClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Second)
	s := openStore(t, gormstore.WithNow(now))

	entries := []history.Entry{
		{URL: "http://192.168.1.1/login", Verdict: "phishing", RiskLevel: "high"},
		{URL: "https://example.com", Verdict: "legitimate", RiskLevel: "low"},
		{URL: "http://paypal.com.fake.tk", Verdict: "phishing", RiskLevel: "high"},
	}
	for _, e := range entries {
		if _, err := s.Record(ctx, e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	wantStats := history.Stats{TotalScans: 3, PhishingDetected: 2}
	if diff := cmp.Diff(wantStats, stats); diff != "" {
		t.Fatalf("stats (-want +got):\n%s", diff)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	stats, err = s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats after clear: %v", err)
	}
	if stats.TotalScans != 0 || stats.PhishingDetected != 0 {
		t.Fatalf("stats after clear: %+v", stats)
	}
}
