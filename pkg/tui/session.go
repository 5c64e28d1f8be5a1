package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/forms"
	"github.com/phishguard/guardkit/pkg/history"
	"github.com/phishguard/guardkit/pkg/report"
	"github.com/phishguard/guardkit/pkg/strength"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

// Session runs the interactive flows. Construct one with New; the zero
// value is not usable.
type Session struct {
	driver   PromptDriver
	analyzer *urlcheck.Analyzer
	renderer report.Renderer
	store    history.Store
	theme    Theme
}

// New constructs a session with defaults (survey driver, default analyzer).
func New(options ...Option) (*Session, error) {
	s := &Session{
		driver:   newSurveyDriver(),
		analyzer: urlcheck.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return s, nil
}

// RunRegistration walks the signup descriptor field by field. Text fields
// re-prompt until their rule chain passes, the password prompt prints live
// strength feedback, confirm-password re-prompts until it matches, and the
// required agreement boxes re-prompt until accepted. The returned form has
// passed a full validation pass.
func (s *Session) RunRegistration(ctx context.Context) (forms.RegistrationForm, error) {
	var form forms.RegistrationForm
	descriptor := formmodel.RegistrationForm()

	for _, field := range descriptor.Fields {
		if err := s.promptRegistrationField(ctx, field, &form); err != nil {
			return forms.RegistrationForm{}, err
		}
	}

	if errs := forms.Validate(form); !errs.Valid() {
		// Prompt loops enforce each rule individually, so a failure here
		// means a flow bug, not bad input.
		for _, name := range errs.Fields() {
			if err := s.info(ctx, errs.Message(name)); err != nil {
				return forms.RegistrationForm{}, err
			}
		}
		return form, fmt.Errorf("tui: registration form invalid after prompts: %s", strings.Join(errs.Fields(), ", "))
	}

	return form, nil
}

func (s *Session) promptRegistrationField(ctx context.Context, field formmodel.Field, form *forms.RegistrationForm) error {
	switch field.Name {
	case forms.FieldFullName, forms.FieldEmail:
		value, err := s.promptValidated(ctx, field)
		if err != nil {
			return err
		}
		if field.Name == forms.FieldFullName {
			form.FullName = value
		} else {
			form.Email = value
		}
		return nil

	case forms.FieldPassword:
		value, err := s.promptValidated(ctx, field)
		if err != nil {
			return err
		}
		form.Password = value
		meter := strength.Evaluate(value)
		return s.info(ctx, fmt.Sprintf("Password strength: %s (%d/5)", meter.Level, meter.Score))

	case forms.FieldConfirmPassword:
		for {
			value, err := s.driver.Password(ctx, InputConfig{Message: promptLabel(field)})
			if err != nil {
				return err
			}
			if value == "" {
				if err := s.errorInfo(ctx, "Please confirm your password"); err != nil {
					return err
				}
				continue
			}
			if value != form.Password {
				if err := s.errorInfo(ctx, "Passwords do not match"); err != nil {
					return err
				}
				continue
			}
			form.ConfirmPassword = value
			return nil
		}

	case forms.FieldAgreeToTerms:
		ok, err := s.promptRequiredConfirm(ctx, field, "You must agree to the Terms of Service")
		if err != nil {
			return err
		}
		form.AgreeToTerms = ok
		return nil

	case forms.FieldAgreeToPrivacy:
		ok, err := s.promptRequiredConfirm(ctx, field, "You must agree to the Privacy Policy")
		if err != nil {
			return err
		}
		form.AgreeToPrivacy = ok
		return nil

	case forms.FieldSubscribeNewsletter:
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: promptLabel(field)})
		if err != nil {
			return err
		}
		form.SubscribeNewsletter = ok
		return nil

	default:
		return fmt.Errorf("tui: unexpected registration field %q", field.Name)
	}
}

// promptValidated loops a single text field until its registration rule
// chain passes, echoing the first failing message between attempts.
func (s *Session) promptValidated(ctx context.Context, field formmodel.Field) (string, error) {
	prompt := s.driver.Input
	if field.Kind == formmodel.KindPassword {
		prompt = s.driver.Password
	}

	for {
		value, err := prompt(ctx, InputConfig{
			Message: promptLabel(field),
			Help:    field.Description,
		})
		if err != nil {
			return "", err
		}
		if msg, failed := forms.ValidateField(field.Name, value); failed {
			if err := s.errorInfo(ctx, msg); err != nil {
				return "", err
			}
			continue
		}
		return value, nil
	}
}

func (s *Session) promptRequiredConfirm(ctx context.Context, field formmodel.Field, message string) (bool, error) {
	for {
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: promptLabel(field)})
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if err := s.errorInfo(ctx, message); err != nil {
			return false, err
		}
	}
}

// RunScan prompts for a URL, analyzes it, prints the report, and records
// the outcome when a history store is configured.
func (s *Session) RunScan(ctx context.Context) (urlcheck.Report, error) {
	rawURL, err := s.driver.Input(ctx, InputConfig{
		Message: "URL to scan",
		Validator: func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("a URL is required")
			}
			return nil
		},
	})
	if err != nil {
		return urlcheck.Report{}, err
	}
	rawURL = strings.TrimSpace(rawURL)

	rep := s.analyzer.Analyze(rawURL)

	if s.renderer != nil {
		out, err := s.renderer.RenderReport(ctx, rep, report.Options{})
		if err != nil {
			return urlcheck.Report{}, fmt.Errorf("tui: render report: %w", err)
		}
		if err := s.info(ctx, strings.TrimRight(string(out), "\n")); err != nil {
			return urlcheck.Report{}, err
		}
	} else {
		verdict := strings.ToUpper(string(rep.Verdict))
		if err := s.info(ctx, fmt.Sprintf("%s (%.1f%% confidence, risk %s)", verdict, rep.Confidence*100, rep.RiskLevel)); err != nil {
			return urlcheck.Report{}, err
		}
	}

	if s.store != nil {
		entry := history.Entry{
			URL:        rep.URL,
			Verdict:    string(rep.Verdict),
			Confidence: rep.Confidence,
			RiskLevel:  string(rep.RiskLevel),
		}
		if _, err := s.store.Record(ctx, entry); err != nil {
			return urlcheck.Report{}, fmt.Errorf("tui: record scan: %w", err)
		}
	}

	return rep, nil
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) errorInfo(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}

func promptLabel(field formmodel.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}
