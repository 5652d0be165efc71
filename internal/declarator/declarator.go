// Package declarator binds an entity to its CRUD and extra operation
// descriptors. Declarators only carry tokens; whether those tokens name
// real nodes is decided later by the registry link pass.
package declarator

import "github.com/sisgea/unispec/internal/schema"

// FindByID configures the find-by-id operation
type FindByID struct {
	Name   schema.Token
	Input  schema.Token
	Output schema.Token
}

// DeleteByID configures the delete-by-id operation
type DeleteByID struct {
	Name schema.Token
}

// Create configures the create operation
type Create struct {
	Name  schema.Token
	Input schema.Token
}

// UpdateByID configures the update-by-id operation
type UpdateByID struct {
	Name  schema.Token
	Input schema.Token
}

// List configures the list operation. Filters keep their declaration order.
type List struct {
	Name    schema.Token
	View    schema.Token
	Filters []Filter
}

// CRUD holds the fixed operation vocabulary. Every slot is absent unless
// set.
type CRUD struct {
	FindByID   Op[FindByID]
	DeleteByID Op[DeleteByID]
	Create     Op[Create]
	UpdateByID Op[UpdateByID]
	List       Op[List]
}

// Extra describes an operation outside the CRUD vocabulary, such as
// reading or replacing an entity's cover image.
type Extra struct {
	Key         string
	Name        schema.Token
	Description string
	Input       schema.Token
	Output      schema.Token
	Attributes  map[string]any
}

// Operations is the input of Compile
type Operations struct {
	CRUD  CRUD
	Extra []Extra
}

// Declarator is the compiled set of operations of one entity
type Declarator struct {
	Entity schema.Token
	CRUD   CRUD
	Extra  []Extra
}

// NodeKind implements schema.Node
func (*Declarator) NodeKind() schema.NodeKind {
	return schema.KindDeclarator
}

// Compile packages the operations declared for entity. Tokens are not
// checked.
func Compile(entity schema.Token, ops Operations) *Declarator {
	d := &Declarator{
		Entity: entity,
		CRUD:   ops.CRUD,
	}
	if len(ops.Extra) > 0 {
		d.Extra = make([]Extra, len(ops.Extra))
		copy(d.Extra, ops.Extra)
	}
	if l, ok := d.CRUD.List.Config(); ok && len(l.Filters) > 0 {
		l.Filters = append([]Filter(nil), l.Filters...)
		d.CRUD.List = Enabled(l)
	}
	return d
}

// Ref is a token a declarator points at, with its location inside the
// declarator.
type Ref struct {
	Path  string
	Token schema.Token
}

// References returns the entity and every view token used by enabled
// operations, in a fixed order: entity, findById, create, updateById,
// list, then extras in declaration order. Empty tokens are skipped.
func (d *Declarator) References() []Ref {
	refs := []Ref{{Path: "entity", Token: d.Entity}}
	add := func(path string, tok schema.Token) {
		if tok != "" {
			refs = append(refs, Ref{Path: path, Token: tok})
		}
	}

	if op, ok := d.CRUD.FindByID.Config(); ok {
		add("crud.findById.input", op.Input)
		add("crud.findById.output", op.Output)
	}
	if op, ok := d.CRUD.Create.Config(); ok {
		add("crud.create.input", op.Input)
	}
	if op, ok := d.CRUD.UpdateByID.Config(); ok {
		add("crud.updateById.input", op.Input)
	}
	if op, ok := d.CRUD.List.Config(); ok {
		add("crud.list.view", op.View)
	}
	for _, e := range d.Extra {
		add("extra."+e.Key+".input", e.Input)
		add("extra."+e.Key+".output", e.Output)
	}
	return refs
}

// OperationNames returns the names of enabled operations: findById,
// deleteById, create, updateById, list, then extras. Unnamed operations
// are skipped.
func (d *Declarator) OperationNames() []schema.Token {
	var names []schema.Token
	add := func(tok schema.Token) {
		if tok != "" {
			names = append(names, tok)
		}
	}

	if op, ok := d.CRUD.FindByID.Config(); ok {
		add(op.Name)
	}
	if op, ok := d.CRUD.DeleteByID.Config(); ok {
		add(op.Name)
	}
	if op, ok := d.CRUD.Create.Config(); ok {
		add(op.Name)
	}
	if op, ok := d.CRUD.UpdateByID.Config(); ok {
		add(op.Name)
	}
	if op, ok := d.CRUD.List.Config(); ok {
		add(op.Name)
	}
	for _, e := range d.Extra {
		add(e.Name)
	}
	return names
}
