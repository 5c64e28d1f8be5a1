package formmodel

import internalformmodel "github.com/phishguard/guardkit/internal/formmodel"

// Kind re-exports the internal field kind enumeration.
type Kind = internalformmodel.Kind

const (
	KindText     = internalformmodel.KindText
	KindEmail    = internalformmodel.KindEmail
	KindPassword = internalformmodel.KindPassword
	KindCheckbox = internalformmodel.KindCheckbox
)

type Field = internalformmodel.Field
type Form = internalformmodel.Form

// DefaultLabeler re-exports the internal label generator.
func DefaultLabeler(name string) string {
	return internalformmodel.DefaultLabeler(name)
}
