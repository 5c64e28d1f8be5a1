package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phishguard/guardkit/pkg/forms"
	"github.com/phishguard/guardkit/pkg/history"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	infoMessages []string
	inputPos     int
	passPos      int
	confirmPos   int
	failWith     error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) sawMessage(substr string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func TestRunRegistration(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace", "ada@example.com"},
		passwords: []string{"Abcdefgh1!", "Abcdefgh1!"},
		confirm:   []bool{true, true, false},
	}
	session := newSession(t, WithPromptDriver(driver))

	form, err := session.RunRegistration(context.Background())
	if err != nil {
		t.Fatalf("run registration: %v", err)
	}

	want := forms.RegistrationForm{
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "Abcdefgh1!",
		ConfirmPassword: "Abcdefgh1!",
		AgreeToTerms:    true,
		AgreeToPrivacy:  true,
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	if !driver.sawMessage("Password strength: Strong (4/5)") {
		t.Fatalf("expected strength feedback, got %v", driver.infoMessages)
	}
}

func TestRunRegistrationRepromptsInvalidFields(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"A", "Ada", "bad", "ada@example.com"},
		passwords: []string{"short", "Abcdefgh1!", "nope", "Abcdefgh1!"},
		confirm:   []bool{false, true, true, true},
	}
	session := newSession(t, WithPromptDriver(driver))

	form, err := session.RunRegistration(context.Background())
	if err != nil {
		t.Fatalf("run registration: %v", err)
	}

	if form.FullName != "Ada" || form.Email != "ada@example.com" {
		t.Fatalf("unexpected form after reprompts: %+v", form)
	}
	for _, want := range []string{
		"Name must be at least 2 characters",
		"Please enter a valid email address",
		"Password must be at least 8 characters",
		"Passwords do not match",
		"You must agree to the Terms of Service",
	} {
		if !driver.sawMessage(want) {
			t.Errorf("expected reprompt message %q, got %v", want, driver.infoMessages)
		}
	}
	if driver.inputPos != 4 || driver.passPos != 4 || driver.confirmPos != 4 {
		t.Fatalf("prompt consumption = (%d, %d, %d), want (4, 4, 4)",
			driver.inputPos, driver.passPos, driver.confirmPos)
	}
}

func TestRunRegistrationSurfacesAbort(t *testing.T) {
	driver := &stubDriver{failWith: ErrAborted}
	session := newSession(t, WithPromptDriver(driver))

	if _, err := session.RunRegistration(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRunScanRecordsHistory(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"http://192.168.0.1/secure-login-verify"},
	}
	store := history.NewMemoryStore()
	session := newSession(t, WithPromptDriver(driver), WithHistory(store))

	rep, err := session.RunScan(context.Background())
	if err != nil {
		t.Fatalf("run scan: %v", err)
	}
	if rep.Safe() {
		t.Fatalf("expected phishing verdict for %q", rep.URL)
	}
	if !driver.sawMessage("PHISHING") {
		t.Fatalf("expected verdict line, got %v", driver.infoMessages)
	}

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one recorded scan, got %d", len(entries))
	}
	if entries[0].URL != rep.URL || entries[0].Verdict != string(rep.Verdict) {
		t.Fatalf("recorded entry mismatch: %+v vs report %+v", entries[0], rep)
	}
}

func TestRunScanWithoutStoreDoesNotPersist(t *testing.T) {
	driver := &stubDriver{inputs: []string{"https://example.com"}}
	session := newSession(t, WithPromptDriver(driver))

	rep, err := session.RunScan(context.Background())
	if err != nil {
		t.Fatalf("run scan: %v", err)
	}
	if !rep.Safe() {
		t.Fatalf("expected legitimate verdict, got %+v", rep)
	}
}

func newSession(t *testing.T, options ...Option) *Session {
	t.Helper()
	session, err := New(options...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}
