package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to extend the default layouts.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
