// Package web renders analysis reports and form summaries as standalone
// HTML documents. Templates are pongo2 and ship embedded; theme selections
// resolve to CSS variables injected into the page head.
package web

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/phishguard/guardkit/pkg/formmodel"
	"github.com/phishguard/guardkit/pkg/report"
	rendertemplate "github.com/phishguard/guardkit/pkg/report/template"
	"github.com/phishguard/guardkit/pkg/report/template/gotemplate"
	"github.com/phishguard/guardkit/pkg/urlcheck"
)

const (
	reportTemplate = "templates/report.html"
	formTemplate   = "templates/form.html"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer turns reports and form descriptors into HTML documents.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("web renderer: configure template engine: %w", err)
		}
		templateRenderer = engine
	}

	return &Renderer{templates: templateRenderer}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderReport produces a standalone report page.
func (r *Renderer) RenderReport(ctx context.Context, rep urlcheck.Report, options report.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("web renderer: template engine is nil")
	}

	indicators := make([]map[string]any, 0, len(rep.Indicators))
	for _, ind := range rep.Indicators {
		indicators = append(indicators, map[string]any{
			"feature":     sanitizeFragment(ind.Feature),
			"value":       sanitizeFragment(ind.Value),
			"severity":    string(ind.Severity),
			"description": sanitizeFragment(ind.Description),
		})
	}

	data := map[string]any{
		"url":            sanitizeFragment(rep.URL),
		"verdict":        strings.ToUpper(string(rep.Verdict)),
		"safe":           rep.Safe(),
		"risk_level":     string(rep.RiskLevel),
		"confidence_pct": fmt.Sprintf("%.1f%%", rep.Confidence*100),
		"score":          fmt.Sprintf("%.4f", rep.Score),
		"indicators":     indicators,
		"explanation":    sanitizeFragment(rep.Explanation),
		"theme":          buildThemeContext(options.Theme),
	}

	rendered, err := r.templates.RenderTemplate(reportTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("web renderer: render report: %w", err)
	}
	return []byte(rendered), nil
}

// RenderValidation produces a form page with inline field errors and the
// strength meter when one was supplied.
func (r *Renderer) RenderValidation(ctx context.Context, form formmodel.Form, options report.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("web renderer: template engine is nil")
	}
	options = options.Clone()

	fields := make([]map[string]any, 0, len(form.Fields))
	for _, field := range form.Fields {
		fields = append(fields, fieldContext(field, options))
	}

	title := form.Title
	if title == "" {
		title = form.OperationID
	}

	data := map[string]any{
		"title":       sanitizeFragment(title),
		"endpoint":    sanitizeFragment(form.Endpoint),
		"method":      form.Method,
		"fields":      fields,
		"error_count": len(options.Errors),
		"valid":       len(options.Errors) == 0,
		"theme":       buildThemeContext(options.Theme),
	}
	if options.Strength != nil {
		data["strength"] = map[string]any{
			"level":   string(options.Strength.Level),
			"score":   options.Strength.Score,
			"percent": options.Strength.Score * 20,
		}
	}

	rendered, err := r.templates.RenderTemplate(formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("web renderer: render form: %w", err)
	}
	return []byte(rendered), nil
}

func fieldContext(field formmodel.Field, options report.Options) map[string]any {
	label := field.Label
	if label == "" {
		label = field.Name
	}

	value := options.Values[field.Name]
	checked := false
	switch field.Kind {
	case formmodel.KindPassword:
		// Never echo passwords back into markup.
		value = ""
	case formmodel.KindCheckbox:
		checked = value == "true" || value == "on" || value == "1"
		value = ""
	default:
		value = sanitizeFragment(value)
	}

	return map[string]any{
		"name":     field.Name,
		"label":    sanitizeFragment(label),
		"type":     inputType(field.Kind),
		"checkbox": field.Kind == formmodel.KindCheckbox,
		"required": field.Required,
		"value":    value,
		"checked":  checked,
		"help":     sanitizeFragment(field.Description),
		"error":    sanitizeFragment(options.Errors[field.Name]),
	}
}

func inputType(kind formmodel.Kind) string {
	switch kind {
	case formmodel.KindEmail:
		return "email"
	case formmodel.KindPassword:
		return "password"
	case formmodel.KindCheckbox:
		return "checkbox"
	default:
		return "text"
	}
}

func buildThemeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"tokens":         copyStringMap(cfg.Tokens),
		"css_vars_style": cssVarsStyle(cfg.CSSVars),
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
