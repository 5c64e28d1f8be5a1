package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// emailPattern is deliberately loose: anything@anything.anything with no
	// whitespace. It accepts some technically invalid addresses and rejects
	// some valid ones; matching the historically accepted inputs matters
	// more here than RFC compliance.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// specialCharset is the symbol set shared by the password rule and the
// strength meter.
const specialCharset = `!@#$%^&*(),.?":{}|<>`

const maxFullNameLength = 255

// rule pairs a failure predicate with the message reported when it trips.
type rule struct {
	failed  func(string) bool
	message string
}

// firstFailure walks a rule chain in order and returns the first message
// that applies. Chains short-circuit: a field reports at most one message
// per validation pass.
func firstFailure(value string, chain []rule) (string, bool) {
	for _, r := range chain {
		if r.failed(value) {
			return r.message, true
		}
	}
	return "", false
}

func fullNameChain() []rule {
	return []rule{
		{
			failed:  func(v string) bool { return strings.TrimSpace(v) == "" },
			message: "Full name is required",
		},
		{
			failed:  func(v string) bool { return utf8.RuneCountInString(strings.TrimSpace(v)) < 2 },
			message: "Name must be at least 2 characters",
		},
		{
			failed:  func(v string) bool { return !namePattern.MatchString(strings.TrimSpace(v)) },
			message: "Name can only contain letters and spaces",
		},
	}
}

// profileNameChain is the registration chain plus the storage bound enforced
// on profile edits.
func profileNameChain() []rule {
	chain := fullNameChain()
	return append(chain, rule{
		failed:  func(v string) bool { return utf8.RuneCountInString(strings.TrimSpace(v)) > maxFullNameLength },
		message: "Name must be at most 255 characters",
	})
}

func emailChain() []rule {
	return []rule{
		{
			failed:  func(v string) bool { return v == "" },
			message: "Email is required",
		},
		{
			failed:  func(v string) bool { return !emailPattern.MatchString(v) },
			message: "Please enter a valid email address",
		},
	}
}

func passwordChain() []rule {
	return []rule{
		{
			failed:  func(v string) bool { return v == "" },
			message: "Password is required",
		},
		{
			failed:  func(v string) bool { return utf8.RuneCountInString(v) < 8 },
			message: "Password must be at least 8 characters",
		},
		{
			failed:  func(v string) bool { return !strings.ContainsAny(v, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") },
			message: "Password must contain at least one uppercase letter",
		},
		{
			failed:  func(v string) bool { return !strings.ContainsAny(v, "abcdefghijklmnopqrstuvwxyz") },
			message: "Password must contain at least one lowercase letter",
		},
		{
			failed:  func(v string) bool { return !strings.ContainsAny(v, "0123456789") },
			message: "Password must contain at least one number",
		},
		{
			failed:  func(v string) bool { return !strings.ContainsAny(v, specialCharset) },
			message: "Password must contain at least one special character",
		},
	}
}

// loginPasswordChain stops at presence; login never re-runs the composition
// rules against a stored credential.
func loginPasswordChain() []rule {
	return passwordChain()[:1]
}

func confirmPasswordFailure(password, confirm string) (string, bool) {
	if confirm == "" {
		return "Please confirm your password", true
	}
	if confirm != password {
		return "Passwords do not match", true
	}
	return "", false
}
