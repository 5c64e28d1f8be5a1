package web

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// sanitizeFragment strips any markup from user-supplied strings (URLs,
// values, messages) before they reach a template. Escaping still happens at
// interpolation time; sanitizing first keeps pasted markup out of attribute
// contexts entirely.
func sanitizeFragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(fragmentSanitizer().Sanitize(trimmed))
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		fragmentPolicy = bluemonday.StrictPolicy()
	})
	return fragmentPolicy
}
