// Package schema provides the type algebra of unispec: tagged schema nodes,
// their constructors, and the structural operators (Pick, Partial, Merge,
// Extends) used to derive API views from canonical entity definitions.
//
// Every node is built once at startup and treated as immutable afterwards.
// Operators never mutate their inputs; they always return new values.
package schema

import "fmt"

// DefaultDescription is used when a node is built without a description.
const DefaultDescription = "Descrição não fornecida."

// Token names a node for cross-module reference. Tokens are opaque at this
// layer and are only resolved by the registry link pass.
type Token string

// String returns the token text
func (t Token) String() string {
	return string(t)
}

// NodeKind discriminates between type nodes, declarators and providers
type NodeKind int

const (
	KindType NodeKind = iota
	KindDeclarator
	KindProvider
)

// String returns the string representation of the node kind
func (k NodeKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindDeclarator:
		return "declarator"
	case KindProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// Node is anything that can be added to a provider
type Node interface {
	NodeKind() NodeKind
}

// TypeKind is the type discriminant of a type node
type TypeKind int

const (
	TypeString TypeKind = iota
	TypeInteger
	TypeBoolean
	TypeReference
	TypeObject
	TypeArray
	TypeView
)

// String returns the string representation of the type kind
func (k TypeKind) String() string {
	switch k {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeReference:
		return "reference"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeView:
		return "view"
	default:
		return "unknown"
	}
}

// ParseTypeKind converts a string to a TypeKind
func ParseTypeKind(s string) (TypeKind, error) {
	switch s {
	case "string":
		return TypeString, nil
	case "integer":
		return TypeInteger, nil
	case "boolean":
		return TypeBoolean, nil
	case "reference":
		return TypeReference, nil
	case "object":
		return TypeObject, nil
	case "array":
		return TypeArray, nil
	case "view":
		return TypeView, nil
	default:
		return 0, fmt.Errorf("unknown type kind: %s", s)
	}
}

// StringFormat is the optional format of a string node
type StringFormat int

const (
	FormatNone StringFormat = iota
	FormatUUID
	FormatDate
	FormatDateTime
	FormatTime
	FormatEmail
)

// String returns the string representation of the format
func (f StringFormat) String() string {
	switch f {
	case FormatNone:
		return ""
	case FormatUUID:
		return "uuid"
	case FormatDate:
		return "date"
	case FormatDateTime:
		return "date-time"
	case FormatTime:
		return "time"
	case FormatEmail:
		return "e-mail"
	default:
		return "unknown"
	}
}

// ParseStringFormat converts a string to a StringFormat. The empty string
// maps to FormatNone.
func ParseStringFormat(s string) (StringFormat, error) {
	switch s {
	case "":
		return FormatNone, nil
	case "uuid":
		return FormatUUID, nil
	case "date":
		return FormatDate, nil
	case "date-time":
		return FormatDateTime, nil
	case "time":
		return FormatTime, nil
	case "e-mail":
		return FormatEmail, nil
	default:
		return 0, fmt.Errorf("unknown string format: %s", s)
	}
}

// Base holds the attributes shared by every type node
type Base struct {
	Nullable    bool
	Required    bool
	Description string
	Default     any // nil means no default
}

func defaultBase() Base {
	return Base{
		Nullable:    false,
		Required:    true,
		Description: DefaultDescription,
	}
}

// Type is the sum type of all schema nodes. The set of variants is closed:
// String, Integer, Boolean, Reference, Array, Object and View.
type Type interface {
	Node
	TypeKind() TypeKind
	Attrs() Base

	base() *Base
	clone() Type
}

// Shape is a type node that carries properties (Object and View)
type Shape interface {
	Type
	Props() *Properties
}

// StringConstraints holds optional length constraints of a string node
type StringConstraints struct {
	MinLength *int
	MaxLength *int

	// Extensions carries vendor keys; every key must start with "x-".
	Extensions map[string]any
}

// String is a string schema node
type String struct {
	Base
	Format      StringFormat
	Constraints StringConstraints
}

// IntegerConstraints holds optional numeric constraints of an integer node
type IntegerConstraints struct {
	Min      *int64
	Max      *int64
	Integer  bool
	Positive bool
}

// Integer is an integer schema node
type Integer struct {
	Base
	Constraints IntegerConstraints
}

// Boolean is a boolean schema node
type Boolean struct {
	Base
}

// Reference is a weak, by-name link to another entity or view
type Reference struct {
	Base
	TargetsTo Token
}

// Array is an array schema node
type Array struct {
	Base
	Of Type
}

// Object is an object schema node with ordered properties
type Object struct {
	Base
	Properties *Properties
}

// View is a named Object exposed to API consumers. PartialOf records the
// entity the view derives from; it is lineage metadata only and is empty
// when the view has no lineage.
type View struct {
	Base
	Name       Token
	PartialOf  Token
	Properties *Properties
}

func (*String) NodeKind() NodeKind    { return KindType }
func (*Integer) NodeKind() NodeKind   { return KindType }
func (*Boolean) NodeKind() NodeKind   { return KindType }
func (*Reference) NodeKind() NodeKind { return KindType }
func (*Array) NodeKind() NodeKind     { return KindType }
func (*Object) NodeKind() NodeKind    { return KindType }
func (*View) NodeKind() NodeKind      { return KindType }

func (*String) TypeKind() TypeKind    { return TypeString }
func (*Integer) TypeKind() TypeKind   { return TypeInteger }
func (*Boolean) TypeKind() TypeKind   { return TypeBoolean }
func (*Reference) TypeKind() TypeKind { return TypeReference }
func (*Array) TypeKind() TypeKind     { return TypeArray }
func (*Object) TypeKind() TypeKind    { return TypeObject }
func (*View) TypeKind() TypeKind      { return TypeView }

func (t *String) Attrs() Base    { return t.Base }
func (t *Integer) Attrs() Base   { return t.Base }
func (t *Boolean) Attrs() Base   { return t.Base }
func (t *Reference) Attrs() Base { return t.Base }
func (t *Array) Attrs() Base     { return t.Base }
func (t *Object) Attrs() Base    { return t.Base }
func (t *View) Attrs() Base      { return t.Base }

func (t *String) base() *Base    { return &t.Base }
func (t *Integer) base() *Base   { return &t.Base }
func (t *Boolean) base() *Base   { return &t.Base }
func (t *Reference) base() *Base { return &t.Base }
func (t *Array) base() *Base     { return &t.Base }
func (t *Object) base() *Base    { return &t.Base }
func (t *View) base() *Base      { return &t.Base }

// Props returns the ordered properties of the object
func (t *Object) Props() *Properties { return t.Properties }

// Props returns the ordered properties of the view
func (t *View) Props() *Properties { return t.Properties }

// Object returns the view's structure as a plain object, dropping its name
// and lineage.
func (t *View) Object() *Object {
	return &Object{Base: t.Base, Properties: t.Properties}
}

// Shallow copies. Properties are immutable, so sharing them is safe; the
// extensions map is copied so the clone owns it.

func (t *String) clone() Type {
	c := *t
	if t.Constraints.Extensions != nil {
		c.Constraints.Extensions = make(map[string]any, len(t.Constraints.Extensions))
		for k, v := range t.Constraints.Extensions {
			c.Constraints.Extensions[k] = v
		}
	}
	return &c
}

func (t *Integer) clone() Type   { c := *t; return &c }
func (t *Boolean) clone() Type   { c := *t; return &c }
func (t *Reference) clone() Type { c := *t; return &c }
func (t *Array) clone() Type     { c := *t; return &c }
func (t *Object) clone() Type    { c := *t; return &c }
func (t *View) clone() Type      { c := *t; return &c }

// Clone returns a shallow copy of t. Nested element and property types are
// shared with the original.
func Clone(t Type) Type {
	if t == nil {
		return nil
	}
	return t.clone()
}
