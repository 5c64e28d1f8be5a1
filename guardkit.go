// Package guardkit is the client-side engine for the PhishGuard phishing
// URL checking service: credential form validation, password strength
// scoring, local URL risk analysis, scan history, and report rendering. The
// library performs no network I/O; the surrounding application owns
// transport, session persistence, and display.
package guardkit

import (
	"context"
	"fmt"
	"time"

	"github.com/phishguard/guardkit/pkg/forms"
	"github.com/phishguard/guardkit/pkg/history"
	"github.com/phishguard/guardkit/pkg/policy"
	"github.com/phishguard/guardkit/pkg/report"
	"github.com/phishguard/guardkit/pkg/report/text"
	"github.com/phishguard/guardkit/pkg/strength"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

// Engine wires the analysis policy, URL analyzer, history store, and
// renderer registry behind one facade. The zero configuration is usable:
// default policy, in-memory history, text renderer.
type Engine struct {
	analyzer        *urlcheck.Analyzer
	store           history.Store
	renderers       *report.Registry
	defaultRenderer string
	now             func() time.Time
}

// Option configures an Engine during construction.
type Option func(*Engine) error

// WithPolicy replaces the default analysis policy. The policy is validated
// before the analyzer adopts it.
func WithPolicy(p policy.Policy) Option {
	return func(e *Engine) error {
		if err := p.Validate(); err != nil {
			return err
		}
		e.analyzer = urlcheck.New(urlcheck.WithPolicy(p))
		return nil
	}
}

// WithHistory replaces the default in-memory scan store.
func WithHistory(store history.Store) Option {
	return func(e *Engine) error {
		if store == nil {
			return fmt.Errorf("guardkit: history store is required")
		}
		e.store = store
		return nil
	}
}

// WithRenderer registers an additional renderer alongside the built-in
// text one.
func WithRenderer(renderer report.Renderer) Option {
	return func(e *Engine) error {
		return e.renderers.Register(renderer)
	}
}

// WithDefaultRenderer selects the renderer RenderReport falls back to when
// no name is given. The renderer must already be registered.
func WithDefaultRenderer(name string) Option {
	return func(e *Engine) error {
		if !e.renderers.Has(name) {
			return fmt.Errorf("guardkit: default renderer %q not registered", name)
		}
		e.defaultRenderer = name
		return nil
	}
}

// WithClock overrides the timestamp source used when recording scans. Tests
// use it to pin ScannedAt values.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			return fmt.Errorf("guardkit: clock is required")
		}
		e.now = now
		return nil
	}
}

// New constructs an Engine. With no options it uses the embedded default
// policy, an in-memory history store, and the text renderer.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		analyzer:        urlcheck.New(),
		store:           history.NewMemoryStore(),
		renderers:       report.NewRegistry(),
		defaultRenderer: "text",
		now:             time.Now,
	}
	if err := e.renderers.Register(text.New()); err != nil {
		return nil, err
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// ValidateRegistration checks a signup snapshot against the full rule set.
func (e *Engine) ValidateRegistration(form forms.RegistrationForm) forms.FieldErrors {
	return forms.Validate(form)
}

// ValidateLogin checks a login snapshot.
func (e *Engine) ValidateLogin(form forms.LoginForm) forms.FieldErrors {
	return forms.ValidateLogin(form)
}

// ValidateProfileUpdate checks a partial profile edit.
func (e *Engine) ValidateProfileUpdate(update forms.ProfileUpdate) forms.FieldErrors {
	return forms.ValidateProfileUpdate(update)
}

// PasswordStrength scores a password for the signup meter.
func (e *Engine) PasswordStrength(password string) strength.Strength {
	return strength.Evaluate(password)
}

// AnalyzeURL runs the local heuristic analysis without touching history.
func (e *Engine) AnalyzeURL(rawURL string) urlcheck.Report {
	return e.analyzer.Analyze(rawURL)
}

// ScanURL analyzes a URL and records the outcome in the history store.
func (e *Engine) ScanURL(ctx context.Context, rawURL string) (urlcheck.Report, history.Entry, error) {
	rep := e.analyzer.Analyze(rawURL)

	entry := history.Stamp(history.Entry{
		URL:        rep.URL,
		Verdict:    string(rep.Verdict),
		Confidence: rep.Confidence,
		RiskLevel:  string(rep.RiskLevel),
	}, e.now())

	stored, err := e.store.Record(ctx, entry)
	if err != nil {
		return urlcheck.Report{}, history.Entry{}, fmt.Errorf("guardkit: record scan: %w", err)
	}
	return rep, stored, nil
}

// RecentScans returns up to limit history entries, newest first.
func (e *Engine) RecentScans(ctx context.Context, limit int) ([]history.Entry, error) {
	return e.store.Recent(ctx, limit)
}

// ScanStats returns aggregate counts over the history store.
func (e *Engine) ScanStats(ctx context.Context) (history.Stats, error) {
	return e.store.Stats(ctx)
}

// History exposes the configured store for callers that need direct access.
func (e *Engine) History() history.Store {
	return e.store
}

// Renderers exposes the renderer registry.
func (e *Engine) Renderers() *report.Registry {
	return e.renderers
}

// RenderReport renders an analysis report with the named renderer, or the
// default renderer when name is empty.
func (e *Engine) RenderReport(ctx context.Context, name string, rep urlcheck.Report, options report.Options) ([]byte, error) {
	if name == "" {
		name = e.defaultRenderer
	}
	return e.renderers.RenderReport(ctx, name, rep, options)
}
