package schema

// IDStrategy selects the synthesized identifier of an entity
type IDStrategy int

const (
	IDNone IDStrategy = iota
	IDNumeric
	IDUUID
)

// String returns the string representation of the id strategy
func (s IDStrategy) String() string {
	switch s {
	case IDNone:
		return "none"
	case IDNumeric:
		return "numeric"
	case IDUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// Names of the synthesized entity properties
const (
	PropID          = "id"
	PropDateCreated = "dateCreated"
	PropDateUpdated = "dateUpdated"
	PropDateDeleted = "dateDeleted"
)

// EntityOptions configures Entity
type EntityOptions struct {
	ID          IDStrategy
	Dated       bool
	Description string
	Nullable    bool
	Properties  *Properties
}

// Entity builds the canonical object of a persisted domain concept.
//
// The synthesized properties take precedence over user properties sharing
// their names: "id" is always the first property, and when Dated is set the
// audit timestamps dateCreated, dateUpdated and dateDeleted are always the
// last three, in that order.
func Entity(opts EntityOptions) *Object {
	// id leads so picks, which keep source order, list it first; user
	// properties keep their declaration order after it.
	var synthesized []string
	props := make([]Prop, 0, opts.Properties.Len()+4)

	switch opts.ID {
	case IDNumeric:
		props = append(props, P(PropID, NewInteger(Describe("ID do Registro."))))
		synthesized = append(synthesized, PropID)
	case IDUUID:
		props = append(props, P(PropID, NewString(Describe("ID do Registro."), WithFormat(FormatUUID))))
		synthesized = append(synthesized, PropID)
	}

	var dates []Prop
	if opts.Dated {
		dates = []Prop{
			P(PropDateCreated, NewString(Describe("Data de Criação do Registro."), WithFormat(FormatDateTime))),
			P(PropDateUpdated, NewString(Describe("Data de Atualização do Registro."), WithFormat(FormatDateTime))),
			P(PropDateDeleted, NewString(Describe("Data de Exclusão do Registro."), WithFormat(FormatDateTime), Nullable())),
		}
		synthesized = append(synthesized, PropDateCreated, PropDateUpdated, PropDateDeleted)
	}

	user := opts.Properties.Without(synthesized...)
	user.Each(func(k string, t Type) bool {
		props = append(props, P(k, t))
		return true
	})
	props = append(props, dates...)

	obj := NewObject(Props(props...))
	if opts.Description != "" {
		obj.Description = opts.Description
	}
	obj.Nullable = opts.Nullable
	return obj
}
