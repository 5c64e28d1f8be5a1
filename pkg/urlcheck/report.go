package urlcheck

import (
	"fmt"
	"strconv"
	"strings"
)

// Verdict is the binary classification of a URL.
type Verdict string

const (
	VerdictLegitimate Verdict = "legitimate"
	VerdictPhishing   Verdict = "phishing"
)

// RiskLevel is the coarse band derived from the heuristic score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Severity grades an indicator. Positive marks reassuring signals on
// legitimate verdicts.
type Severity string

const (
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityPositive Severity = "positive"
)

// Indicator is one human-readable signal backing the verdict.
type Indicator struct {
	Feature     string   `json:"feature"`
	Value       string   `json:"value"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Report is the complete analysis result for one URL.
type Report struct {
	URL         string      `json:"url"`
	Verdict     Verdict     `json:"prediction"`
	Score       float64     `json:"probability"`
	Confidence  float64     `json:"confidence"`
	RiskLevel   RiskLevel   `json:"risk_level"`
	Features    Features    `json:"features"`
	Indicators  []Indicator `json:"top_indicators,omitempty"`
	Explanation string      `json:"explanation"`
}

// Safe reports whether the verdict allows treating the URL as legitimate.
func (r Report) Safe() bool {
	return r.Verdict == VerdictLegitimate
}

const maxIndicators = 5

// topIndicators selects at most five signals, checked in a fixed order so
// reports stay stable for identical inputs.
func topIndicators(f Features, verdict Verdict) []Indicator {
	var indicators []Indicator

	if verdict == VerdictPhishing {
		if f.HasIPAddress {
			indicators = append(indicators, Indicator{
				Feature:     "IP Address in URL",
				Value:       "Present",
				Severity:    SeverityHigh,
				Description: "URLs with IP addresses are often used in phishing attacks",
			})
		}
		if f.SuspiciousKeywordCount >= 2 {
			indicators = append(indicators, Indicator{
				Feature:     "Suspicious Keywords",
				Value:       strconv.Itoa(f.SuspiciousKeywordCount),
				Severity:    SeverityHigh,
				Description: "Multiple suspicious keywords detected (login, verify, secure, etc.)",
			})
		}
		if !f.UsesHTTPS {
			indicators = append(indicators, Indicator{
				Feature:     "No HTTPS",
				Value:       "HTTP only",
				Severity:    SeverityMedium,
				Description: "Legitimate sites typically use HTTPS for security",
			})
		}
		if f.URLLength > 75 {
			indicators = append(indicators, Indicator{
				Feature:     "Long URL",
				Value:       strconv.Itoa(f.URLLength),
				Severity:    SeverityMedium,
				Description: "Unusually long URLs are common in phishing attempts",
			})
		}
		if f.ShannonEntropy > 4.5 {
			indicators = append(indicators, Indicator{
				Feature:     "High Entropy",
				Value:       fmt.Sprintf("%.2f", f.ShannonEntropy),
				Severity:    SeverityMedium,
				Description: "Random-looking URL structure suggests obfuscation",
			})
		}
	} else {
		if f.UsesHTTPS {
			indicators = append(indicators, Indicator{
				Feature:     "HTTPS Enabled",
				Value:       "Secure",
				Severity:    SeverityPositive,
				Description: "Site uses secure HTTPS protocol",
			})
		}
		if f.TLDCategory == TLDTrusted {
			indicators = append(indicators, Indicator{
				Feature:     "Trusted TLD",
				Value:       "Verified",
				Severity:    SeverityPositive,
				Description: "Uses trusted top-level domain (.com, .org, .net)",
			})
		}
		if f.SuspiciousKeywordCount == 0 {
			indicators = append(indicators, Indicator{
				Feature:     "No Suspicious Keywords",
				Value:       "Clean",
				Severity:    SeverityPositive,
				Description: "URL does not contain common phishing keywords",
			})
		}
	}

	if len(indicators) > maxIndicators {
		indicators = indicators[:maxIndicators]
	}
	return indicators
}

// explanation builds the one-sentence summary shown above the feature
// breakdown.
func explanation(f Features, verdict Verdict, confidence float64) string {
	var b strings.Builder
	var reasons []string

	if verdict == VerdictPhishing {
		fmt.Fprintf(&b, "This URL is classified as PHISHING with %.1f%% confidence. ", confidence*100)
		b.WriteString("Suspicious indicators include: ")

		if f.HasIPAddress {
			reasons = append(reasons, "IP address in URL")
		}
		if f.SuspiciousKeywordCount >= 2 {
			reasons = append(reasons, fmt.Sprintf("%d suspicious keywords", f.SuspiciousKeywordCount))
		}
		if !f.UsesHTTPS {
			reasons = append(reasons, "no HTTPS encryption")
		}
		if f.NumHyphens >= 3 {
			reasons = append(reasons, "excessive hyphens")
		}
	} else {
		fmt.Fprintf(&b, "This URL appears LEGITIMATE with %.1f%% confidence. ", confidence*100)
		b.WriteString("Positive indicators include: ")

		if f.UsesHTTPS {
			reasons = append(reasons, "HTTPS encryption")
		}
		if f.TLDCategory == TLDTrusted {
			reasons = append(reasons, "trusted domain")
		}
		if f.SuspiciousKeywordCount == 0 {
			reasons = append(reasons, "no suspicious keywords")
		}
	}

	b.WriteString(strings.Join(reasons, ", "))
	b.WriteString(".")
	return b.String()
}
