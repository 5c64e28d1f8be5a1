package formmodel

import (
	internalformmodel "github.com/phishguard/guardkit/internal/formmodel"
	pkgcontract "github.com/phishguard/guardkit/pkg/contract"
)

// Builder converts contract operations into form descriptors.
type Builder interface {
	Build(op pkgcontract.Operation) (Form, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler func(string) string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := internalformmodel.Options{}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}

	return internalformmodel.New(internalOpts)
}
