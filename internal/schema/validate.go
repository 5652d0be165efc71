package schema

import (
	"sort"
	"strings"
)

// Validate checks the shape of t and every nested type, returning the first
// *InvalidVariantError found. Tokens are not resolved here.
func Validate(path string, t Type) error {
	return Walk(path, t, func(p string, n Type) error {
		if n == nil {
			return &InvalidVariantError{Path: p, Variant: "unknown", Reason: "missing type definition"}
		}
		switch v := n.(type) {
		case *String:
			return validateString(p, v)
		case *Integer:
			c := v.Constraints
			if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
				return invalid(p, v, "min %d is greater than max %d", *c.Min, *c.Max)
			}
		case *Reference:
			if v.TargetsTo == "" {
				return invalid(p, v, "reference has no target")
			}
		case *Array:
			if v.Of == nil {
				return invalid(p, v, "array has no element type")
			}
		case *View:
			if v.Name == "" {
				return invalid(p, v, "view has no name")
			}
		}
		return nil
	})
}

func validateString(path string, s *String) error {
	if s.Format < FormatNone || s.Format > FormatEmail {
		return invalid(path, s, "unknown format %d", int(s.Format))
	}
	c := s.Constraints
	if c.MinLength != nil && *c.MinLength < 0 {
		return invalid(path, s, "negative minLength %d", *c.MinLength)
	}
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return invalid(path, s, "minLength %d is greater than maxLength %d", *c.MinLength, *c.MaxLength)
	}
	keys := make([]string, 0, len(c.Extensions))
	for k := range c.Extensions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !strings.HasPrefix(k, "x-") {
			return invalid(path, s, "constraint extension %q must start with \"x-\"", k)
		}
	}
	return nil
}
