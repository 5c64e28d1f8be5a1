// Package loader implements the contract.Loader seam for file and fs.FS
// sources.
package loader

import (
	"context"
	"errors"
	"io/fs"

	pkgcontract "github.com/phishguard/guardkit/pkg/contract"
)

// Loader implements pkgcontract.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level guardkit package.
type Loader struct {
	fs fs.FS
}

var _ pkgcontract.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgcontract.LoaderOptions) pkgcontract.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a document from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgcontract.Source) (pkgcontract.Document, error) {
	if src == nil {
		return pkgcontract.Document{}, errors.New("contract loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgcontract.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgcontract.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgcontract.SourceKindBytes:
		return pkgcontract.Document{}, errors.New("contract loader: bytes sources construct documents directly")
	default:
		err = errors.New("contract loader: unsupported source kind")
	}
	if err != nil {
		return pkgcontract.Document{}, err
	}

	return pkgcontract.NewDocument(src, data)
}
