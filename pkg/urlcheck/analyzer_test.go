package urlcheck_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phishguard/guardkit/pkg/policy"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

func TestScore(t *testing.T) {
	a := urlcheck.New()

	cases := []struct {
		name string
		url  string
		want float64
	}{
		{
			name: "trusted https domain scores zero",
			url:  "https://www.google.com",
			want: 0,
		},
		{
			name: "plain trusted domain scores zero",
			url:  "https://example.com",
			want: 0,
		},
		{
			name: "ip host with login path",
			url:  "http://192.168.1.1/login",
			want: 0.8, // keyword 0.1 + ip 0.5 + http login gate 0.2
		},
		{
			name: "bare ip host",
			url:  "http://192.168.1.1",
			want: 0.5,
		},
		{
			name: "single keyword over http",
			url:  "http://login.example.com",
			want: 0.3,
		},
		{
			name: "uppercase brand host reads as impersonation",
			url:  "https://PayPal.com",
			want: 0.6,
		},
		{
			name: "lowercase brand host scores zero",
			url:  "https://paypal.com",
			want: 0,
		},
		{
			name: "brand impersonation stack caps at one",
			url:  "http://paypal.com.fake-login-secure.tk",
			want: 1,
		},
		{
			name: "keyword and hyphen stack reaches one over https",
			url:  "https://secure-login-update-account.xyz",
			want: 1,
		},
		{
			name: "scheme-less brand impersonation",
			url:  "paypal.com-security-alert.xyz",
			want: 1, // keywords 0.25 + tld 0.3 + brand 0.6, capped
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := a.Score(tc.url)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Score(%q): got %v, want %v", tc.url, got, tc.want)
			}
		})
	}
}

func TestAnalyzeLegitimate(t *testing.T) {
	got := urlcheck.New().Analyze("https://www.google.com")

	if got.Verdict != urlcheck.VerdictLegitimate || !got.Safe() {
		t.Fatalf("verdict: %+v", got)
	}
	if got.Score != 0 || got.Confidence != 1 {
		t.Fatalf("score/confidence: got %v/%v", got.Score, got.Confidence)
	}
	if got.RiskLevel != urlcheck.RiskLow {
		t.Fatalf("risk level: got %q", got.RiskLevel)
	}

	wantIndicators := []urlcheck.Indicator{
		{
			Feature:     "HTTPS Enabled",
			Value:       "Secure",
			Severity:    urlcheck.SeverityPositive,
			Description: "Site uses secure HTTPS protocol",
		},
		{
			Feature:     "Trusted TLD",
			Value:       "Verified",
			Severity:    urlcheck.SeverityPositive,
			Description: "Uses trusted top-level domain (.com, .org, .net)",
		},
		{
			Feature:     "No Suspicious Keywords",
			Value:       "Clean",
			Severity:    urlcheck.SeverityPositive,
			Description: "URL does not contain common phishing keywords",
		},
	}
	if diff := cmp.Diff(wantIndicators, got.Indicators); diff != "" {
		t.Fatalf("indicators (-want +got):\n%s", diff)
	}

	wantExplanation := "This URL appears LEGITIMATE with 100.0% confidence. " +
		"Positive indicators include: HTTPS encryption, trusted domain, no suspicious keywords."
	if got.Explanation != wantExplanation {
		t.Fatalf("explanation:\n got %q\nwant %q", got.Explanation, wantExplanation)
	}
}

func TestAnalyzePhishing(t *testing.T) {
	got := urlcheck.New().Analyze("http://192.168.1.1/login")

	if got.Verdict != urlcheck.VerdictPhishing || got.Safe() {
		t.Fatalf("verdict: %+v", got)
	}
	if got.Score != 0.8 || got.Confidence != 0.8 {
		t.Fatalf("score/confidence: got %v/%v", got.Score, got.Confidence)
	}
	if got.RiskLevel != urlcheck.RiskHigh {
		t.Fatalf("risk level: got %q", got.RiskLevel)
	}

	wantIndicators := []urlcheck.Indicator{
		{
			Feature:     "IP Address in URL",
			Value:       "Present",
			Severity:    urlcheck.SeverityHigh,
			Description: "URLs with IP addresses are often used in phishing attacks",
		},
		{
			Feature:     "No HTTPS",
			Value:       "HTTP only",
			Severity:    urlcheck.SeverityMedium,
			Description: "Legitimate sites typically use HTTPS for security",
		},
	}
	if diff := cmp.Diff(wantIndicators, got.Indicators); diff != "" {
		t.Fatalf("indicators (-want +got):\n%s", diff)
	}

	wantExplanation := "This URL is classified as PHISHING with 80.0% confidence. " +
		"Suspicious indicators include: IP address in URL, no HTTPS encryption."
	if got.Explanation != wantExplanation {
		t.Fatalf("explanation:\n got %q\nwant %q", got.Explanation, wantExplanation)
	}
}

func TestAnalyzeRoundsScore(t *testing.T) {
	// 0.1 + 0.2 accumulates float noise; the report carries the rounded value.
	got := urlcheck.New().Analyze("http://login.example.com")

	if got.Score != 0.3 {
		t.Fatalf("score: got %v, want 0.3", got.Score)
	}
	if got.Confidence != 0.7 {
		t.Fatalf("confidence: got %v, want 0.7", got.Confidence)
	}
	if got.Verdict != urlcheck.VerdictLegitimate {
		t.Fatalf("verdict: got %q", got.Verdict)
	}
	if got.RiskLevel != urlcheck.RiskMedium {
		t.Fatalf("risk level: got %q", got.RiskLevel)
	}
}

func TestAnalyzePhishingThresholdIsExclusive(t *testing.T) {
	// A bare IP scores exactly the phishing threshold and stays legitimate.
	got := urlcheck.New().Analyze("http://192.168.1.1")

	if got.Verdict != urlcheck.VerdictLegitimate {
		t.Fatalf("verdict at threshold: got %q", got.Verdict)
	}
	if got.Score != 0.5 || got.Confidence != 0.5 {
		t.Fatalf("score/confidence: got %v/%v", got.Score, got.Confidence)
	}
	if got.RiskLevel != urlcheck.RiskMedium {
		t.Fatalf("risk level: got %q", got.RiskLevel)
	}

	want := "This URL appears LEGITIMATE with 50.0% confidence. " +
		"Positive indicators include: no suspicious keywords."
	if got.Explanation != want {
		t.Fatalf("explanation:\n got %q\nwant %q", got.Explanation, want)
	}
	if len(got.Indicators) != 1 || got.Indicators[0].Feature != "No Suspicious Keywords" {
		t.Fatalf("indicators: %+v", got.Indicators)
	}
}

func TestAnalyzeKeywordAndHyphenExplanation(t *testing.T) {
	got := urlcheck.New().Analyze("http://secure-login-update-account-verify.tk")

	if got.Verdict != urlcheck.VerdictPhishing || got.Score != 1 {
		t.Fatalf("verdict/score: %q/%v", got.Verdict, got.Score)
	}

	want := "This URL is classified as PHISHING with 100.0% confidence. " +
		"Suspicious indicators include: 5 suspicious keywords, no HTTPS encryption, excessive hyphens."
	if got.Explanation != want {
		t.Fatalf("explanation:\n got %q\nwant %q", got.Explanation, want)
	}

	if len(got.Indicators) != 2 {
		t.Fatalf("indicator count: got %d, want 2", len(got.Indicators))
	}
	if got.Indicators[0].Feature != "Suspicious Keywords" || got.Indicators[0].Value != "5" {
		t.Fatalf("first indicator: %+v", got.Indicators[0])
	}
}

func TestAnalyzeExplanationWithoutPositiveSignals(t *testing.T) {
	// Legitimate verdict with no reassuring signals keeps the scaffold
	// sentence and an empty indicator list.
	got := urlcheck.New().Analyze("http://alert.example.io")

	if got.Verdict != urlcheck.VerdictLegitimate {
		t.Fatalf("verdict: got %q", got.Verdict)
	}
	if got.Score != 0.1 || got.Confidence != 0.9 {
		t.Fatalf("score/confidence: got %v/%v", got.Score, got.Confidence)
	}
	if len(got.Indicators) != 0 {
		t.Fatalf("indicators: %+v", got.Indicators)
	}

	want := "This URL appears LEGITIMATE with 90.0% confidence. Positive indicators include: ."
	if got.Explanation != want {
		t.Fatalf("explanation:\n got %q\nwant %q", got.Explanation, want)
	}
}

func TestAnalyzeCustomThresholds(t *testing.T) {
	p := policy.Default()
	p.Thresholds = policy.Thresholds{Phishing: 0.05, LowRisk: 0.1, HighRisk: 0.2}

	got := urlcheck.New(urlcheck.WithPolicy(p)).Analyze("http://login.example.com")

	if got.Verdict != urlcheck.VerdictPhishing {
		t.Fatalf("verdict: got %q", got.Verdict)
	}
	if got.Confidence != 0.3 {
		t.Fatalf("confidence: got %v", got.Confidence)
	}
	if got.RiskLevel != urlcheck.RiskHigh {
		t.Fatalf("risk level: got %q", got.RiskLevel)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := urlcheck.New()
	first := a.Analyze("http://paypal.com.fake-login-secure.tk")
	second := a.Analyze("http://paypal.com.fake-login-secure.tk")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("reports differ across calls (-first +second):\n%s", diff)
	}
}
