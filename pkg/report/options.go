package report

import (
	theme "github.com/goliatone/go-theme"

	"github.com/phishguard/guardkit/pkg/forms"
	"github.com/phishguard/guardkit/pkg/strength"
)

// Options carry per-request data renderers can use to decorate their output
// without mutating the inputs. Renderers receive a defensive copy, so
// callers may reuse an Options value across calls.
type Options struct {
	// Values pre-populates rendered fields keyed by wire field name.
	// Password-kind fields are masked by renderers regardless of the value.
	Values map[string]string
	// Errors surfaces the field messages of one validation pass.
	Errors forms.FieldErrors
	// Strength attaches the meter result for the password field, when the
	// caller evaluated one.
	Strength *strength.Strength
	// Theme resolves partials, tokens, and CSS variables for HTML output.
	// Text renderers ignore it.
	Theme *theme.RendererConfig
}

// Clone deep-copies the maps so renderers can hold the options past the call
// without aliasing caller state. The Theme pointer is shared: renderer
// configs are read-only by convention.
func (o Options) Clone() Options {
	out := o
	if len(o.Values) > 0 {
		out.Values = make(map[string]string, len(o.Values))
		for k, v := range o.Values {
			out.Values[k] = v
		}
	}
	if len(o.Errors) > 0 {
		out.Errors = make(forms.FieldErrors, len(o.Errors))
		for k, v := range o.Errors {
			out.Errors[k] = v
		}
	}
	if o.Strength != nil {
		s := *o.Strength
		out.Strength = &s
	}
	return out
}
