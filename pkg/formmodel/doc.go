// Package formmodel defines the typed form descriptors consumed by prompt
// flows and renderers. Forms are flat field lists with four input kinds
// (text, email, password, checkbox); the builder derives them from contract
// operations, while the descriptor functions return the canonical forms
// without touching a parser. Field ordering follows the contract's x-order
// extension.
package formmodel
