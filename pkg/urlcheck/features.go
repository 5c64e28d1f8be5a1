package urlcheck

import (
	"math"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/publicsuffix"
)

// Features is the full extracted vector: eight lexical, five statistical,
// and seven domain-based signals. JSON names are the wire names used by the
// scoring service; for the remote explain payload shape, which carries
// booleans as 0/1, use Map.
type Features struct {
	// Lexical
	URLLength              int  `json:"url_length"`
	NumDots                int  `json:"num_dots"`
	NumSlashes             int  `json:"num_slashes"`
	NumHyphens             int  `json:"num_hyphens"`
	NumDigits              int  `json:"num_digits"`
	HasIPAddress           bool `json:"has_ip_address"`
	SuspiciousKeywordCount int  `json:"suspicious_keyword_count"`
	UsesHTTPS              bool `json:"uses_https"`

	// Statistical
	ShannonEntropy      float64 `json:"shannon_entropy"`
	VowelConsonantRatio float64 `json:"vowel_consonant_ratio"`
	DigitLetterRatio    float64 `json:"digit_letter_ratio"`
	SpecialCharRatio    float64 `json:"special_char_ratio"`
	URLRandomnessScore  float64 `json:"url_randomness_score"`

	// Domain-based
	DomainLength    int     `json:"domain_length"`
	NumSubdomains   int     `json:"num_subdomains"`
	TLDCategory     int     `json:"tld_category"`
	DomainHasDigits bool    `json:"domain_has_digits"`
	DomainEntropy   float64 `json:"domain_entropy"`
	PathLength      int     `json:"path_length"`
	QueryLength     int     `json:"query_length"`
}

// TLD categories reported by Features.TLDCategory.
const (
	TLDTrusted    = 0
	TLDNeutral    = 1
	TLDSuspicious = 2
)

var ipv4Pattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// FeatureNames returns the canonical feature order used by Map and by the
// scoring service's model metadata.
func FeatureNames() []string {
	return []string{
		"url_length",
		"num_dots",
		"num_slashes",
		"num_hyphens",
		"num_digits",
		"has_ip_address",
		"suspicious_keyword_count",
		"uses_https",
		"shannon_entropy",
		"vowel_consonant_ratio",
		"digit_letter_ratio",
		"special_char_ratio",
		"url_randomness_score",
		"domain_length",
		"num_subdomains",
		"tld_category",
		"domain_has_digits",
		"domain_entropy",
		"path_length",
		"query_length",
	}
}

// Map flattens the vector into name -> value form, booleans as 0/1. The map
// is rebuilt on every call.
func (f Features) Map() map[string]float64 {
	return map[string]float64{
		"url_length":               float64(f.URLLength),
		"num_dots":                 float64(f.NumDots),
		"num_slashes":              float64(f.NumSlashes),
		"num_hyphens":              float64(f.NumHyphens),
		"num_digits":               float64(f.NumDigits),
		"has_ip_address":           boolFeature(f.HasIPAddress),
		"suspicious_keyword_count": float64(f.SuspiciousKeywordCount),
		"uses_https":               boolFeature(f.UsesHTTPS),
		"shannon_entropy":          f.ShannonEntropy,
		"vowel_consonant_ratio":    f.VowelConsonantRatio,
		"digit_letter_ratio":       f.DigitLetterRatio,
		"special_char_ratio":       f.SpecialCharRatio,
		"url_randomness_score":     f.URLRandomnessScore,
		"domain_length":            float64(f.DomainLength),
		"num_subdomains":           float64(f.NumSubdomains),
		"tld_category":             float64(f.TLDCategory),
		"domain_has_digits":        boolFeature(f.DomainHasDigits),
		"domain_entropy":           f.DomainEntropy,
		"path_length":              float64(f.PathLength),
		"query_length":             float64(f.QueryLength),
	}
}

func boolFeature(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// Extract computes the full feature vector for a raw URL string.
func (a *Analyzer) Extract(rawURL string) Features {
	f := Features{
		URLLength:    len(rawURL),
		NumDots:      strings.Count(rawURL, "."),
		NumSlashes:   strings.Count(rawURL, "/"),
		NumHyphens:   strings.Count(rawURL, "-"),
		NumDigits:    countDigits(rawURL),
		HasIPAddress: ipv4Pattern.MatchString(rawURL),
		UsesHTTPS:    strings.HasPrefix(rawURL, "https://"),

		ShannonEntropy:      shannonEntropy(rawURL),
		VowelConsonantRatio: vowelConsonantRatio(rawURL),
		DigitLetterRatio:    digitLetterRatio(rawURL),
		SpecialCharRatio:    specialCharRatio(rawURL),
		URLRandomnessScore:  randomnessScore(rawURL),
	}

	lower := strings.ToLower(rawURL)
	for _, keyword := range a.policy.SuspiciousKeywords {
		if strings.Contains(lower, keyword) {
			f.SuspiciousKeywordCount++
		}
	}

	a.extractDomainFeatures(rawURL, &f)
	return f
}

// extractDomainFeatures fills the domain group. Unparseable URLs leave the
// group zeroed rather than failing the extraction.
func (a *Analyzer) extractDomainFeatures(rawURL string, f *Features) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		// Scheme-less input ("google.com/x") parses as a bare path; recover
		// the leading authority so domain features still resolve.
		host = fallbackHost(rawURL)
	}
	domain, subdomains, suffix := splitHost(host)

	f.DomainLength = len(domain)
	f.NumSubdomains = subdomains
	f.TLDCategory = a.tldCategory(suffix)
	f.DomainHasDigits = countDigits(domain) > 0
	f.DomainEntropy = shannonEntropy(domain)
	f.PathLength = len(parsed.Path)
	f.QueryLength = len(parsed.RawQuery)
}

func fallbackHost(rawURL string) string {
	host := rawURL
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if at := strings.LastIndex(host, "@"); at >= 0 {
		host = host[at+1:]
	}
	if colon := strings.Index(host, ":"); colon >= 0 {
		host = host[:colon]
	}
	return strings.ToLower(host)
}

// splitHost separates a host into registrable domain, subdomain count, and
// public suffix. Suffixes come from the public suffix list, so multi-label
// suffixes like "co.uk" resolve as a unit. Unlisted TLDs keep their last
// label as the domain (bare hosts like "localhost" have no suffix), and
// IPv4 hosts count as a bare domain.
func splitHost(host string) (domain string, subdomains int, suffix string) {
	if host == "" {
		return "", 0, ""
	}
	if ipv4Pattern.MatchString(host) {
		return host, 0, ""
	}

	suffix, icann := publicsuffix.PublicSuffix(host)
	if !icann && !strings.Contains(suffix, ".") {
		suffix = ""
	}

	rest := strings.TrimSuffix(host, suffix)
	rest = strings.TrimSuffix(rest, ".")
	if rest == "" {
		return "", 0, suffix
	}

	labels := strings.Split(rest, ".")
	return labels[len(labels)-1], len(labels) - 1, suffix
}

func (a *Analyzer) tldCategory(suffix string) int {
	if suffix == "" {
		return TLDNeutral
	}
	tld := "." + suffix
	for _, trusted := range a.policy.TrustedTLDs {
		if tld == trusted {
			return TLDTrusted
		}
	}
	for _, suspicious := range a.policy.SuspiciousTLDs {
		if strings.HasSuffix(tld, suspicious) {
			return TLDSuspicious
		}
	}
	return TLDNeutral
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

func shannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}

	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

func vowelConsonantRatio(s string) float64 {
	const vowels = "aeiouAEIOU"
	const consonants = "bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ"

	vowelCount := 0
	consonantCount := 0
	for _, r := range s {
		switch {
		case strings.ContainsRune(vowels, r):
			vowelCount++
		case strings.ContainsRune(consonants, r):
			consonantCount++
		}
	}
	if consonantCount == 0 {
		return 0
	}
	return float64(vowelCount) / float64(consonantCount)
}

func digitLetterRatio(s string) float64 {
	digits := 0
	letters := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(digits) / float64(letters)
}

func specialCharRatio(s string) float64 {
	if s == "" {
		return 0
	}
	special := 0
	total := 0
	for _, r := range s {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			special++
		}
	}
	return float64(special) / float64(total)
}

// randomnessScore is the share of adjacent alphanumeric pairs that differ;
// strings with fewer than two alphanumerics score zero.
func randomnessScore(s string) float64 {
	var alphanum []rune
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alphanum = append(alphanum, r)
		}
	}
	if len(alphanum) < 2 {
		return 0
	}

	changes := 0
	for i := 0; i < len(alphanum)-1; i++ {
		if alphanum[i] != alphanum[i+1] {
			changes++
		}
	}
	return float64(changes) / float64(len(alphanum)-1)
}
