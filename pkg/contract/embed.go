package contract

import (
	_ "embed"
)

//go:embed phishguard-api.yaml
var canonical []byte

// DefaultDocument returns the embedded canonical API contract. The payload
// is copied on construction, so callers cannot corrupt the embedded bytes.
func DefaultDocument() Document {
	return MustNewDocument(SourceFromBytes("embedded: phishguard-api.yaml"), canonical)
}
