package schema

import (
	"fmt"
	"strings"
)

// UnknownPropertyError is returned when an operator names a property that
// does not exist on its source.
type UnknownPropertyError struct {
	Op        string   // operator that failed, e.g. "pick" or "extends"
	Key       string   // the missing property
	Available []string // properties of the source, in order
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("%s: unknown property %q (available: %s)", e.Op, e.Key, strings.Join(e.Available, ", "))
}

// InvalidVariantError is returned for a node whose shape is malformed,
// such as an array without an element type or a patch field that does not
// apply to the patched variant.
type InvalidVariantError struct {
	Path    string // location of the node, e.g. "DiaCalendario.properties.calendario"
	Variant string // type discriminant of the offending node
	Reason  string
}

func (e *InvalidVariantError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid %s node: %s", e.Variant, e.Reason)
	}
	return fmt.Sprintf("invalid %s node at %s: %s", e.Variant, e.Path, e.Reason)
}

func invalid(path string, t Type, reason string, args ...any) *InvalidVariantError {
	variant := "unknown"
	if t != nil {
		variant = t.TypeKind().String()
	}
	return &InvalidVariantError{Path: path, Variant: variant, Reason: fmt.Sprintf(reason, args...)}
}
