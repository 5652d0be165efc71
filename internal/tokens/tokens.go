// Package tokens allocates the names of an entity's views and operations
// from its base name.
package tokens

import "github.com/sisgea/unispec/internal/schema"

// Views holds the standard view names of an entity
type Views struct {
	FindOneInput  schema.Token
	FindOneResult schema.Token
	InputCreate   schema.Token
	InputUpdate   schema.Token
	FindAllResult schema.Token
}

// Operations holds the standard operation names of an entity
type Operations struct {
	FindByID   schema.Token
	DeleteByID schema.Token
	Create     schema.Token
	UpdateByID schema.Token
	List       schema.Token
}

// Set is the full token namespace of one entity
type Set struct {
	Entity     schema.Token
	Views      Views
	Operations Operations
}

// For returns the tokens of the entity called name, e.g. For("DiaCalendario")
// yields "DiaCalendarioFindOneResult" and "DiaCalendarioList".
func For(name string) Set {
	e := schema.Token(name)
	return Set{
		Entity: e,
		Views: Views{
			FindOneInput:  e + "FindOneInput",
			FindOneResult: e + "FindOneResult",
			InputCreate:   e + "InputCreate",
			InputUpdate:   e + "InputUpdate",
			FindAllResult: e + "FindAllResult",
		},
		Operations: Operations{
			FindByID:   e + "FindOneById",
			DeleteByID: e + "DeleteOneById",
			Create:     e + "Create",
			UpdateByID: e + "UpdateOneById",
			List:       e + "List",
		},
	}
}

// Operation returns the name of an extra operation of the entity, e.g.
// For("Usuario").Operation("GetCoverImage") is "UsuarioGetCoverImage".
func (s Set) Operation(suffix string) schema.Token {
	return s.Entity + schema.Token(suffix)
}

// All returns the entity token followed by every view and operation token
func (s Set) All() []schema.Token {
	return []schema.Token{
		s.Entity,
		s.Views.FindOneInput,
		s.Views.FindOneResult,
		s.Views.InputCreate,
		s.Views.InputUpdate,
		s.Views.FindAllResult,
		s.Operations.FindByID,
		s.Operations.DeleteByID,
		s.Operations.Create,
		s.Operations.UpdateByID,
		s.Operations.List,
	}
}
