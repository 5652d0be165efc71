package schema

import "sort"

// Selector chooses properties for Pick
type Selector interface {
	// Selects reports whether key is picked
	Selects(key string) bool
	// Named returns the keys the selector asks for, in a stable order
	Named() []string
}

type keySelector []string

// Keys selects the listed properties
func Keys(keys ...string) Selector {
	return keySelector(keys)
}

func (s keySelector) Selects(key string) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

func (s keySelector) Named() []string {
	return append([]string(nil), s...)
}

type maskSelector map[string]bool

// Mask selects the properties mapped to true
func Mask(mask map[string]bool) Selector {
	return maskSelector(mask)
}

func (s maskSelector) Selects(key string) bool {
	return s[key]
}

func (s maskSelector) Named() []string {
	out := make([]string, 0, len(s))
	for k, v := range s {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Pick returns the properties of src selected by sel, in src's order.
// Selected keys missing from src are ignored; see PickStrict.
func Pick(src Shape, sel Selector) *Properties {
	out := Props()
	src.Props().Each(func(k string, t Type) bool {
		if sel.Selects(k) {
			out.set(k, t)
		}
		return true
	})
	return out
}

// PickStrict is Pick but fails with *UnknownPropertyError when sel names a
// property src does not have.
func PickStrict(src Shape, sel Selector) (*Properties, error) {
	props := src.Props()
	for _, k := range sel.Named() {
		if !props.Has(k) {
			return nil, &UnknownPropertyError{Op: "pick", Key: k, Available: props.Keys()}
		}
	}
	return Pick(src, sel), nil
}

// Partial returns the properties of src with every value marked as not
// required. Only the top level is touched: nested object and array types
// keep their own requiredness.
func Partial(src Shape) *Properties {
	out := Props()
	src.Props().Each(func(k string, t Type) bool {
		if t == nil {
			out.set(k, nil)
			return true
		}
		c := t.clone()
		c.base().Required = false
		out.set(k, c)
		return true
	})
	return out
}

// Merge combines srcs left to right. For a key defined by several sources
// the last definition wins as a whole; the base attributes of the result
// come from the last source.
func Merge(srcs ...Shape) *Object {
	acc := NewObject(nil)
	for _, src := range srcs {
		props := acc.Properties.copy()
		src.Props().Each(func(k string, t Type) bool {
			props.set(k, t)
			return true
		})
		acc.Properties = props
		acc.Base = src.Attrs()
	}
	return acc
}

// FieldPatch overlays named fields onto an existing property definition.
// Nil (or empty) fields are left untouched. Replace, when set, substitutes
// the whole definition before the remaining fields are applied.
type FieldPatch struct {
	Replace Type

	Nullable    *bool
	Required    *bool
	Description *string
	Default     any

	Format     *StringFormat // String only
	TargetsTo  Token         // Reference only
	Of         Type          // Array only
	Items      *FieldPatch   // Array only, applied to the element type
	Properties *Properties   // Object and View only
}

// Retarget is a FieldPatch that points a reference at another token
func Retarget(target Token) FieldPatch {
	return FieldPatch{TargetsTo: target}
}

// Replace is a FieldPatch that substitutes the whole property definition
func Replace(t Type) FieldPatch {
	return FieldPatch{Replace: t}
}

// Ptr returns a pointer to v, for the optional fields of FieldPatch
func Ptr[T any](v T) *T {
	return &v
}

// Patch is the overlay applied by Extends. PartialOf and Description, when
// set, replace the corresponding top-level fields of the source.
type Patch struct {
	Properties  map[string]FieldPatch
	PartialOf   Token
	Description string
}

// Extends returns the properties of src with patch.Properties applied.
// Each patched property is shallow-merged: fields named by its FieldPatch
// replace the base fields and everything else is kept.
//
// Only properties are returned, so patch.PartialOf and patch.Description
// are ignored here. Use the Transformer.Extends stage to replace those
// top-level fields as well.
func Extends(src Shape, patch Patch) (*Properties, error) {
	props := src.Props()

	names := make([]string, 0, len(patch.Properties))
	for k := range patch.Properties {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if !props.Has(k) {
			return nil, &UnknownPropertyError{Op: "extends", Key: k, Available: props.Keys()}
		}
	}

	out := Props()
	var err error
	props.Each(func(k string, t Type) bool {
		fp, ok := patch.Properties[k]
		if !ok {
			out.set(k, t)
			return true
		}
		var patched Type
		patched, err = fp.apply(k, t)
		if err != nil {
			return false
		}
		out.set(k, patched)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (fp FieldPatch) apply(path string, t Type) (Type, error) {
	if fp.Replace != nil {
		t = fp.Replace
	}
	if t == nil {
		return nil, invalid(path, nil, "property has no definition")
	}
	c := t.clone()

	b := c.base()
	if fp.Nullable != nil {
		b.Nullable = *fp.Nullable
	}
	if fp.Required != nil {
		b.Required = *fp.Required
	}
	if fp.Description != nil {
		b.Description = *fp.Description
	}
	if fp.Default != nil {
		b.Default = fp.Default
	}

	if fp.Format != nil {
		s, ok := c.(*String)
		if !ok {
			return nil, invalid(path, c, "format only applies to string")
		}
		s.Format = *fp.Format
	}
	if fp.TargetsTo != "" {
		r, ok := c.(*Reference)
		if !ok {
			return nil, invalid(path, c, "targetsTo only applies to reference")
		}
		r.TargetsTo = fp.TargetsTo
	}
	if fp.Of != nil {
		a, ok := c.(*Array)
		if !ok {
			return nil, invalid(path, c, "of only applies to array")
		}
		a.Of = fp.Of
	}
	if fp.Items != nil {
		a, ok := c.(*Array)
		if !ok {
			return nil, invalid(path, c, "items only applies to array")
		}
		of, err := fp.Items.apply(path+"[]", a.Of)
		if err != nil {
			return nil, err
		}
		a.Of = of
	}
	if fp.Properties != nil {
		switch v := c.(type) {
		case *Object:
			v.Properties = fp.Properties
		case *View:
			v.Properties = fp.Properties
		default:
			return nil, invalid(path, c, "properties only apply to object or view")
		}
	}
	return c, nil
}
