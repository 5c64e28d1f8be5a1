package tui

import (
	"github.com/phishguard/guardkit/pkg/history"
	"github.com/phishguard/guardkit/pkg/report"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

// Theme captures optional prefixes applied when printing messages. Keep
// minimal to avoid coupling flow logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithAnalyzer overrides the URL analyzer used by scan flows.
func WithAnalyzer(analyzer *urlcheck.Analyzer) Option {
	return func(s *Session) {
		if analyzer != nil {
			s.analyzer = analyzer
		}
	}
}

// WithRenderer sets the renderer scan flows print reports through. Without
// one, RunScan returns the report but prints only the verdict line.
func WithRenderer(renderer report.Renderer) Option {
	return func(s *Session) {
		s.renderer = renderer
	}
}

// WithHistory sets the store scan flows record to. Without one, scans are
// not persisted.
func WithHistory(store history.Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
