// Package report defines the rendering seam for analysis reports and form
// validation summaries. Renderers register by name in a Registry; the text
// and web subpackages provide the built-in implementations.
package report
