package contract

import "path/filepath"

// Source identifies where a contract document originated so loaders can
// operate on files, fs.FS entries, or in-memory payloads without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// bytesSource labels an in-memory payload. The bytes themselves travel with
// the Document, not the Source.
type bytesSource struct {
	label string
}

func (s bytesSource) Location() string { return s.label }
func (s bytesSource) Kind() SourceKind { return SourceKindBytes }

// SourceFromBytes returns a Source labelling an in-memory document. Pair it
// with NewDocument; loaders reject it since there is nothing to fetch.
func SourceFromBytes(label string) Source {
	if label == "" {
		label = "inline"
	}
	return bytesSource{label: label}
}
