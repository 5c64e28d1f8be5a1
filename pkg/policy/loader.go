package policy

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadBytes parses a policy override document. JSON is attempted first, then
// YAML, matching how the rest of the toolchain treats config files. Lists
// absent from the document inherit the embedded defaults; the merged policy
// is validated before it is returned.
func LoadBytes(data []byte) (Policy, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Policy{}, fmt.Errorf("policy: document is empty")
	}

	p, err := parseDocument(data)
	if err != nil {
		return Policy{}, err
	}

	p.applyDefaults(Default())
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// LoadFS reads a policy document from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (Policy, error) {
	if fsys == nil {
		return Policy{}, fmt.Errorf("policy: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Policy{}, fmt.Errorf("policy: read %s: %w", path, err)
	}
	p, err := LoadBytes(data)
	if err != nil {
		return Policy{}, fmt.Errorf("policy: load %s: %w", path, err)
	}
	return p, nil
}

// LoadFile reads a policy document from disk.
func LoadFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("policy: read %s: %w", path, err)
	}
	p, err := LoadBytes(data)
	if err != nil {
		return Policy{}, fmt.Errorf("policy: load %s: %w", path, err)
	}
	return p, nil
}

func parseDocument(data []byte) (Policy, error) {
	var p Policy
	if err := json.Unmarshal(data, &p); err == nil {
		return p, nil
	}
	p = Policy{}
	if err := yaml.Unmarshal(data, &p); err == nil {
		return p, nil
	}
	return Policy{}, fmt.Errorf("policy: parse document: invalid JSON or YAML")
}
