// Package tui drives the interactive terminal flows: account registration
// with per-field re-validation and live strength feedback, and URL scanning
// with report rendering and history recording. Prompts go through the
// PromptDriver seam so flows are testable without a real terminal; the
// default driver is survey-backed.
package tui
