// Package urlcheck analyzes URLs for phishing signals without touching the
// network. It mirrors the server-side scoring pipeline — the same twenty
// features, the same additive heuristics, the same risk bands — so the UI
// can show an instant local assessment while (or instead of) asking the
// remote service.
//
// Everything here is deterministic and total: any string is analyzable, an
// unparseable URL simply zeroes the domain features, and no call performs
// I/O. Tuning lives in the policy package.
package urlcheck
