// Package template defines the engine seam HTML renderers draw from. The
// gotemplate subpackage adapts a pongo2 template set to this contract.
package template
