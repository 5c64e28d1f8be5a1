// Package forms validates the credential payloads accepted by the PhishGuard
// front end: account registration, login, and profile updates.
//
// Validation is pure and total. Every operation takes a form snapshot by
// value and returns a FieldErrors map rebuilt from scratch; nothing is
// mutated, nothing fails, and identical inputs always produce identical
// output. Messages are the exact strings the surrounding UI surfaces next to
// each field, so callers must not rewrite them.
package forms
