package report

import (
	"context"

	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

// Renderer converts analysis results and form summaries into a byte
// representation (plain text, HTML, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	// RenderReport renders a URL analysis report.
	RenderReport(ctx context.Context, rep urlcheck.Report, options Options) ([]byte, error)
	// RenderValidation renders a form descriptor together with the values
	// and field errors of one validation pass.
	RenderValidation(ctx context.Context, form formmodel.Form, options Options) ([]byte, error)
}
