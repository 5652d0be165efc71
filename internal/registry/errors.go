package registry

import (
	"fmt"

	"github.com/sisgea/unispec/internal/schema"
)

// Namespaces checked for duplicate names
const (
	NamespaceView       = "view"
	NamespaceDeclarator = "declarator"
	NamespaceOperation  = "operation"

	// NamespaceToken reports a view and an operation sharing a token
	NamespaceToken = "token"
)

// DuplicateNodeNameError is returned when two nodes claim the same name
// within one namespace, or when a view and an operation share a token. First and Second are positions in the flattened
// node sequence.
type DuplicateNodeNameError struct {
	Namespace string
	Name      schema.Token
	First     int
	Second    int
}

func (e *DuplicateNodeNameError) Error() string {
	return fmt.Sprintf("duplicate %s name %q (nodes #%d and #%d)", e.Namespace, e.Name, e.First, e.Second)
}

// UnresolvedReferenceError is returned by the link pass for a token that
// names neither a registered node nor a declared external.
type UnresolvedReferenceError struct {
	From  string       // node holding the reference
	Path  string       // location of the reference inside that node
	Token schema.Token // the missing target
}

func (e *UnresolvedReferenceError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("unresolved reference %q", e.Token)
	}
	return fmt.Sprintf("unresolved reference %q at %s (%s)", e.Token, e.Path, e.From)
}

// ProviderCycleError is returned when a provider contains itself, directly
// or through nested providers.
type ProviderCycleError struct {
	Depth int // nesting depth at which the provider reappeared
}

func (e *ProviderCycleError) Error() string {
	return fmt.Sprintf("provider cycle detected at depth %d", e.Depth)
}
