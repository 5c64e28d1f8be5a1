// Package contract exposes the public loader and parser seams for the
// canonical API contract. Implementations live under internal/contract so
// kin-openapi stays hidden from consumers; construction helpers sit in the
// top-level guardkit package to avoid import cycles.
package contract
