// Package policy carries the tunable inputs of URL analysis: the keyword,
// TLD, and brand lists plus the score thresholds. The shipped defaults are
// embedded as a YAML document; deployments can override them with their own
// JSON or YAML policy files. Lists omitted from an override fall back to the
// defaults, so a policy file only needs to state what it changes.
package policy
