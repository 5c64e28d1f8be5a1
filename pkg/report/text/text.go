// Package text renders analysis reports and validation summaries as fixed
// layout plain text for terminals and logs.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/report"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

const maskedValue = "********"

// Renderer implements report.Renderer with no configuration. The zero value
// is ready to use.
type Renderer struct{}

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// RenderReport writes an analysis report as an aligned key/value block
// followed by the indicator list and the explanation sentence.
func (r *Renderer) RenderReport(ctx context.Context, rep urlcheck.Report, _ report.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	writeHeading(&b, "URL Analysis")

	fmt.Fprintf(&b, "URL:        %s\n", rep.URL)
	fmt.Fprintf(&b, "Verdict:    %s\n", strings.ToUpper(string(rep.Verdict)))
	fmt.Fprintf(&b, "Risk level: %s\n", rep.RiskLevel)
	fmt.Fprintf(&b, "Confidence: %.1f%%\n", rep.Confidence*100)
	fmt.Fprintf(&b, "Score:      %.4f\n", rep.Score)

	if len(rep.Indicators) > 0 {
		b.WriteString("\nTop indicators:\n")
		for _, ind := range rep.Indicators {
			fmt.Fprintf(&b, "  [%-8s] %s: %s\n", ind.Severity, ind.Feature, ind.Value)
		}
	}

	if rep.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(rep.Explanation)
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// RenderValidation writes each field with its current value and, when the
// field failed, its message indented beneath it. Password values are masked.
// A strength line and a submit verdict close the summary.
func (r *Renderer) RenderValidation(ctx context.Context, form formmodel.Form, options report.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options = options.Clone()

	var b strings.Builder
	title := form.Title
	if title == "" {
		title = form.OperationID
	}
	writeHeading(&b, title)

	width := labelWidth(form)
	for _, field := range form.Fields {
		label := field.Label
		if label == "" {
			label = field.Name
		}
		value := options.Values[field.Name]
		if field.Kind == formmodel.KindPassword && value != "" {
			value = maskedValue
		}
		fmt.Fprintf(&b, "%-*s %s\n", width+1, label+":", value)
		if msg, ok := options.Errors[field.Name]; ok {
			fmt.Fprintf(&b, "%-*s ! %s\n", width+1, "", msg)
		}
	}

	if options.Strength != nil {
		fmt.Fprintf(&b, "\nPassword strength: %s (%d/5)\n", options.Strength.Level, options.Strength.Score)
	}

	b.WriteString("\n")
	if len(options.Errors) == 0 {
		b.WriteString("Form is ready to submit.\n")
	} else {
		fmt.Fprintf(&b, "%d field(s) need attention.\n", len(options.Errors))
	}

	return []byte(b.String()), nil
}

func writeHeading(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n\n")
}

func labelWidth(form formmodel.Form) int {
	width := 0
	for _, field := range form.Fields {
		label := field.Label
		if label == "" {
			label = field.Name
		}
		if len(label) > width {
			width = len(label)
		}
	}
	return width
}
