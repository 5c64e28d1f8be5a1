package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/forms"
	"github.com/phishguard/guardkit/pkg/strength"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

type fakeRenderer struct {
	name    string
	reports int
	forms   int
}

func (f *fakeRenderer) Name() string        { return f.name }
func (f *fakeRenderer) ContentType() string { return "text/plain" }

func (f *fakeRenderer) RenderReport(context.Context, urlcheck.Report, Options) ([]byte, error) {
	f.reports++
	return []byte(f.name + ":report"), nil
}

func (f *fakeRenderer) RenderValidation(context.Context, formmodel.Form, Options) ([]byte, error) {
	f.forms++
	return []byte(f.name + ":form"), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	renderer := &fakeRenderer{name: "text"}

	if err := registry.Register(renderer); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := registry.Get("TEXT")
	if err != nil {
		t.Fatalf("get with upper-cased name: %v", err)
	}
	if got != Renderer(renderer) {
		t.Fatalf("lookup returned a different renderer")
	}
	if !registry.Has(" text ") {
		t.Fatalf("expected Has to trim and lower the name")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&fakeRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := registry.Register(&fakeRenderer{name: "HTML"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestRegistryUnknownName(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := registry.RenderReport(context.Background(), "missing", urlcheck.Report{}, Options{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("dispatch should surface ErrNotFound, got %v", err)
	}
}

func TestRegistryDispatch(t *testing.T) {
	registry := NewRegistry()
	renderer := &fakeRenderer{name: "text"}
	registry.MustRegister(renderer)

	out, err := registry.RenderReport(context.Background(), "text", urlcheck.Report{}, Options{})
	if err != nil {
		t.Fatalf("render report: %v", err)
	}
	if string(out) != "text:report" {
		t.Fatalf("unexpected report payload %q", out)
	}

	out, err = registry.RenderValidation(context.Background(), "text", formmodel.Form{}, Options{})
	if err != nil {
		t.Fatalf("render validation: %v", err)
	}
	if string(out) != "text:form" {
		t.Fatalf("unexpected validation payload %q", out)
	}
	if renderer.reports != 1 || renderer.forms != 1 {
		t.Fatalf("dispatch counts = (%d, %d), want (1, 1)", renderer.reports, renderer.forms)
	}
}

func TestRegistryList(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&fakeRenderer{name: "Web"})
	registry.MustRegister(&fakeRenderer{name: "text"})

	if diff := cmp.Diff([]string{"text", "web"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsClone(t *testing.T) {
	meter := strength.Evaluate("Abcdefgh1!")
	original := Options{
		Values:   map[string]string{"email": "a@b.co"},
		Errors:   forms.FieldErrors{"email": "Email is required"},
		Strength: &meter,
	}

	clone := original.Clone()
	clone.Values["email"] = "mutated"
	clone.Errors["email"] = "mutated"
	clone.Strength.Score = -1

	if original.Values["email"] != "a@b.co" {
		t.Fatalf("clone aliased Values")
	}
	if original.Errors["email"] != "Email is required" {
		t.Fatalf("clone aliased Errors")
	}
	if original.Strength.Score == -1 {
		t.Fatalf("clone aliased Strength")
	}
}
