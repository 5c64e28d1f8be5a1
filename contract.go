package guardkit

import (
	internalLoader "github.com/phishguard/guardkit/internal/contract/loader"
	internalParser "github.com/phishguard/guardkit/internal/contract/parser"
	pkgcontract "github.com/phishguard/guardkit/pkg/contract"
)

// NewContractLoader constructs a contract loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewContractLoader(options ...pkgcontract.LoaderOption) pkgcontract.Loader {
	cfg := pkgcontract.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewContractParser constructs a contract parser backed by the internal
// implementation.
func NewContractParser(options ...pkgcontract.ParserOption) pkgcontract.Parser {
	cfg := pkgcontract.NewParserOptions(options...)
	return internalParser.New(cfg)
}
