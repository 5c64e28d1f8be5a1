package policy_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/phishguard/guardkit/pkg/policy"
)

func TestDefaultCarriesShippedLists(t *testing.T) {
	p := policy.Default()

	if got := len(p.SuspiciousKeywords); got != 20 {
		t.Fatalf("suspicious keywords: got %d, want 20", got)
	}
	if got := len(p.ScoringKeywords); got != 15 {
		t.Fatalf("scoring keywords: got %d, want 15", got)
	}
	if got := len(p.SuspiciousTLDs); got != 13 {
		t.Fatalf("suspicious TLDs: got %d, want 13", got)
	}
	if got := len(p.ScoringTLDs); got != 7 {
		t.Fatalf("scoring TLDs: got %d, want 7", got)
	}
	if got := len(p.BrandDomains); got != 15 {
		t.Fatalf("brand domains: got %d, want 15", got)
	}

	wantTrusted := []string{".com", ".org", ".net", ".edu", ".gov", ".mil"}
	if diff := cmp.Diff(wantTrusted, p.TrustedTLDs); diff != "" {
		t.Fatalf("trusted TLDs mismatch (-want +got):\n%s", diff)
	}

	want := policy.Thresholds{Phishing: 0.5, LowRisk: 0.3, HighRisk: 0.7}
	if diff := cmp.Diff(want, p.Thresholds); diff != "" {
		t.Fatalf("thresholds mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	first := policy.Default()
	first.TrustedTLDs[0] = ".evil"
	first.Thresholds.Phishing = 0.99

	second := policy.Default()
	if second.TrustedTLDs[0] != ".com" {
		t.Fatalf("default lists shared between calls: %v", second.TrustedTLDs)
	}
	if second.Thresholds.Phishing != 0.5 {
		t.Fatalf("default thresholds shared between calls: %v", second.Thresholds)
	}
}

func TestLoadBytesMergesDefaults(t *testing.T) {
	p, err := policy.LoadBytes([]byte("scoringTLDs:\n  - .example\nthresholds:\n  phishing: 0.6\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{".example"}, p.ScoringTLDs); diff != "" {
		t.Fatalf("override lost (-want +got):\n%s", diff)
	}
	if got := len(p.SuspiciousKeywords); got != 20 {
		t.Fatalf("defaults not merged: %d suspicious keywords", got)
	}
	want := policy.Thresholds{Phishing: 0.6, LowRisk: 0.3, HighRisk: 0.7}
	if diff := cmp.Diff(want, p.Thresholds); diff != "" {
		t.Fatalf("thresholds mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBytesAcceptsJSON(t *testing.T) {
	p, err := policy.LoadBytes([]byte(`{"brandDomains": ["example.com"]}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"example.com"}, p.BrandDomains); diff != "" {
		t.Fatalf("brand override mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBytesRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "empty", data: "   \n"},
		{name: "not a document", data: "{{nope"},
		{name: "threshold above one", data: "thresholds:\n  phishing: 1.5\n"},
		{name: "negative threshold", data: "thresholds:\n  lowRisk: -0.1\n"},
		{name: "inverted band", data: "thresholds:\n  lowRisk: 0.9\n  highRisk: 0.4\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := policy.LoadBytes([]byte(tc.data)); err == nil {
				t.Fatalf("expected error for %q", tc.data)
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/policy.yaml": &fstest.MapFile{
			Data: []byte("brandDomains:\n  - internal.example\n"),
		},
	}

	p, err := policy.LoadFS(fsys, "conf/policy.yaml")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if diff := cmp.Diff([]string{"internal.example"}, p.BrandDomains); diff != "" {
		t.Fatalf("brand override mismatch (-want +got):\n%s", diff)
	}

	if _, err := policy.LoadFS(fsys, "conf/missing.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := policy.LoadFS(nil, "conf/policy.yaml"); err == nil {
		t.Fatal("expected error for nil filesystem")
	}
}

func TestDefaultYAMLRoundTrips(t *testing.T) {
	p, err := policy.LoadBytes(policy.DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to load: %v", err)
	}
	if diff := cmp.Diff(policy.Default(), p); diff != "" {
		t.Fatalf("embedded document drifted from defaults (-want +got):\n%s", diff)
	}
}
