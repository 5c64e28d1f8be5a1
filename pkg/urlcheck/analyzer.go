package urlcheck

import (
	"math"
	"net/url"
	"strings"

	"github.com/phishguard/guardkit/pkg/policy"
)

// Analyzer scores URLs against a policy. The zero value is not usable;
// construct with New. Analyzers are safe for concurrent use once built.
type Analyzer struct {
	policy policy.Policy
}

// Option mutates analyzer construction.
type Option func(*Analyzer)

// WithPolicy replaces the default policy.
func WithPolicy(p policy.Policy) Option {
	return func(a *Analyzer) {
		a.policy = p
	}
}

// New builds an analyzer, defaulting to the embedded policy.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{policy: policy.Default()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Policy returns the policy the analyzer was built with.
func (a *Analyzer) Policy() policy.Policy {
	return a.policy
}

// loginKeywords gate the missing-HTTPS penalty: plain HTTP only scores when
// the URL looks credential-related.
var loginKeywords = []string{"login", "signin", "account", "secure"}

// Score applies the additive heuristics and returns a value in [0,1].
// Weights are cumulative across signals and capped at 1.
func (a *Analyzer) Score(rawURL string) float64 {
	score := 0.0
	lower := strings.ToLower(rawURL)

	keywordHits := 0
	for _, keyword := range a.policy.ScoringKeywords {
		if strings.Contains(lower, keyword) {
			keywordHits++
		}
	}
	switch {
	case keywordHits >= 3:
		score += 0.4
	case keywordHits >= 2:
		score += 0.25
	case keywordHits >= 1:
		score += 0.1
	}

	if ipv4Pattern.MatchString(rawURL) {
		score += 0.5
	}

	for _, tld := range a.policy.ScoringTLDs {
		if strings.HasSuffix(lower, tld) {
			score += 0.3
			break
		}
	}

	if strings.Contains(rawURL, "@") {
		score += 0.4
	}

	host := hostOf(rawURL)
	switch hyphens := strings.Count(host, "-"); {
	case hyphens >= 3:
		score += 0.3
	case hyphens >= 2:
		score += 0.2
	}

	for _, brand := range a.policy.BrandDomains {
		if strings.Contains(lower, brand) && !strings.HasSuffix(host, brand) {
			score += 0.6
			break
		}
	}

	if len(rawURL) > 100 {
		score += 0.2
	}

	if !strings.HasPrefix(rawURL, "https://") && containsAnyKeyword(lower, loginKeywords) {
		score += 0.2
	}

	return math.Min(score, 1.0)
}

// hostOf keeps the host's original case and port. The brand check compares
// suffixes case-sensitively, so "https://PayPal.com" reads as an
// impersonation attempt rather than the brand's own host.
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Analyze runs extraction and scoring and assembles the full report.
func (a *Analyzer) Analyze(rawURL string) Report {
	features := a.Extract(rawURL)
	score := round4(a.Score(rawURL))

	verdict := VerdictLegitimate
	if score > a.policy.Thresholds.Phishing {
		verdict = VerdictPhishing
	}

	confidence := score
	if verdict == VerdictLegitimate {
		confidence = round4(1 - score)
	}

	return Report{
		URL:         rawURL,
		Verdict:     verdict,
		Score:       score,
		Confidence:  confidence,
		RiskLevel:   a.riskLevel(score),
		Features:    features,
		Indicators:  topIndicators(features, verdict),
		Explanation: explanation(features, verdict, confidence),
	}
}

func (a *Analyzer) riskLevel(score float64) RiskLevel {
	switch {
	case score < a.policy.Thresholds.LowRisk:
		return RiskLow
	case score < a.policy.Thresholds.HighRisk:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
