package policy

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Policy is the complete rule data consumed by URL analysis. Values are
// plain slices so callers can inspect them; analyzers must treat a Policy as
// read-only once wired.
type Policy struct {
	// SuspiciousKeywords are counted per occurrence by feature extraction.
	SuspiciousKeywords []string `json:"suspiciousKeywords" yaml:"suspiciousKeywords"`
	// ScoringKeywords drive the tiered keyword weight during heuristic
	// scoring. Historically a subset of SuspiciousKeywords.
	ScoringKeywords []string `json:"scoringKeywords" yaml:"scoringKeywords"`
	// TrustedTLDs map to feature category 0.
	TrustedTLDs []string `json:"trustedTLDs" yaml:"trustedTLDs"`
	// SuspiciousTLDs map to feature category 2.
	SuspiciousTLDs []string `json:"suspiciousTLDs" yaml:"suspiciousTLDs"`
	// ScoringTLDs add weight when the URL ends with one of them.
	ScoringTLDs []string `json:"scoringTLDs" yaml:"scoringTLDs"`
	// BrandDomains are hosts whose appearance outside their own registrable
	// domain counts as impersonation.
	BrandDomains []string `json:"brandDomains" yaml:"brandDomains"`

	Thresholds Thresholds `json:"thresholds" yaml:"thresholds"`
}

// Thresholds carve the heuristic score into verdict and risk bands.
type Thresholds struct {
	// Phishing is the verdict cutoff: score above it classifies as phishing.
	Phishing float64 `json:"phishing" yaml:"phishing"`
	// LowRisk is the exclusive upper bound of the low band.
	LowRisk float64 `json:"lowRisk" yaml:"lowRisk"`
	// HighRisk is the inclusive lower bound of the high band.
	HighRisk float64 `json:"highRisk" yaml:"highRisk"`
}

var (
	defaultsOnce   sync.Once
	defaultsParsed Policy
	defaultsErr    error
)

// Default returns the embedded baseline policy. The result is a deep copy;
// mutating it does not affect later calls.
func Default() Policy {
	defaultsOnce.Do(func() {
		var p Policy
		if err := yaml.Unmarshal(defaultPolicyYAML, &p); err != nil {
			defaultsErr = fmt.Errorf("policy: parse embedded defaults: %w", err)
			return
		}
		defaultsErr = p.Validate()
		defaultsParsed = p
	})
	if defaultsErr != nil {
		// The embedded document ships with the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic(defaultsErr)
	}
	return defaultsParsed.clone()
}

// Validate checks the policy invariants: thresholds stay inside [0,1] and
// the risk band is not inverted.
func (p Policy) Validate() error {
	for _, bound := range []struct {
		name  string
		value float64
	}{
		{"phishing", p.Thresholds.Phishing},
		{"lowRisk", p.Thresholds.LowRisk},
		{"highRisk", p.Thresholds.HighRisk},
	} {
		if bound.value < 0 || bound.value > 1 {
			return fmt.Errorf("policy: threshold %s %v outside [0,1]", bound.name, bound.value)
		}
	}
	if p.Thresholds.LowRisk > p.Thresholds.HighRisk {
		return fmt.Errorf("policy: lowRisk %v exceeds highRisk %v", p.Thresholds.LowRisk, p.Thresholds.HighRisk)
	}
	return nil
}

// applyDefaults fills lists an override left empty. Thresholds are zero-
// filled individually: a band bound of exactly zero is expressible only via
// the defaults, which keeps partial override files short.
func (p *Policy) applyDefaults(base Policy) {
	if len(p.SuspiciousKeywords) == 0 {
		p.SuspiciousKeywords = cloneList(base.SuspiciousKeywords)
	}
	if len(p.ScoringKeywords) == 0 {
		p.ScoringKeywords = cloneList(base.ScoringKeywords)
	}
	if len(p.TrustedTLDs) == 0 {
		p.TrustedTLDs = cloneList(base.TrustedTLDs)
	}
	if len(p.SuspiciousTLDs) == 0 {
		p.SuspiciousTLDs = cloneList(base.SuspiciousTLDs)
	}
	if len(p.ScoringTLDs) == 0 {
		p.ScoringTLDs = cloneList(base.ScoringTLDs)
	}
	if len(p.BrandDomains) == 0 {
		p.BrandDomains = cloneList(base.BrandDomains)
	}
	if p.Thresholds.Phishing == 0 {
		p.Thresholds.Phishing = base.Thresholds.Phishing
	}
	if p.Thresholds.LowRisk == 0 {
		p.Thresholds.LowRisk = base.Thresholds.LowRisk
	}
	if p.Thresholds.HighRisk == 0 {
		p.Thresholds.HighRisk = base.Thresholds.HighRisk
	}
}

func (p Policy) clone() Policy {
	out := p
	out.SuspiciousKeywords = cloneList(p.SuspiciousKeywords)
	out.ScoringKeywords = cloneList(p.ScoringKeywords)
	out.TrustedTLDs = cloneList(p.TrustedTLDs)
	out.SuspiciousTLDs = cloneList(p.SuspiciousTLDs)
	out.ScoringTLDs = cloneList(p.ScoringTLDs)
	out.BrandDomains = cloneList(p.BrandDomains)
	return out
}

func cloneList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
