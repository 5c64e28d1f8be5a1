package policy

import _ "embed"

// defaultPolicyYAML is the baseline shipped with the binary. Keep the file
// authoritative: Default() parses it rather than mirroring the lists in Go.
//
//go:embed defaults/policy.yaml
var defaultPolicyYAML []byte

// DefaultYAML returns the embedded default policy document verbatim, handy
// for seeding an editable policy file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultPolicyYAML))
	copy(out, defaultPolicyYAML)
	return out
}
