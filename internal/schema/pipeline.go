package schema

// Transformer is a value-typed composition pipeline over a Shape. Every
// stage returns a new Transformer and leaves the receiver untouched, so
// partial pipelines can be reused. Stages run left to right; once a stage
// fails, later stages are skipped and the error surfaces at the terminal.
//
//	view, err := schema.From(entity).
//		Extends(schema.Patch{PartialOf: "DiaCalendario"}).
//		Pick(schema.Keys("id", "data")).
//		View("DiaCalendarioFindOneResult", "Visão FindOne de um DiaCalendario.")
type Transformer struct {
	base      Base
	props     *Properties
	partialOf Token
	err       error
}

// From starts a pipeline. A View source carries its lineage into the
// pipeline; an Object source starts without lineage.
func From(src Shape) Transformer {
	switch v := src.(type) {
	case nil:
		return Transformer{err: invalid("", nil, "pipeline source is nil")}
	case *Object:
		if v == nil {
			return Transformer{err: invalid("", nil, "pipeline source is nil")}
		}
	case *View:
		if v == nil {
			return Transformer{err: invalid("", nil, "pipeline source is nil")}
		}
		return Transformer{base: v.Base, props: v.Properties, partialOf: v.PartialOf}
	}
	return Transformer{base: src.Attrs(), props: src.Props()}
}

// Err returns the first error raised by the pipeline
func (t Transformer) Err() error {
	return t.err
}

// Extends applies patch to the pipeline's properties and replaces the
// top-level fields the patch sets.
func (t Transformer) Extends(patch Patch) Transformer {
	if t.err != nil {
		return t
	}
	props, err := Extends(t.shape(), patch)
	if err != nil {
		t.err = err
		return t
	}
	t.props = props
	if patch.PartialOf != "" {
		t.partialOf = patch.PartialOf
	}
	if patch.Description != "" {
		t.base.Description = patch.Description
	}
	return t
}

// Pick keeps the selected properties. Unknown keys fail the pipeline.
func (t Transformer) Pick(sel Selector) Transformer {
	if t.err != nil {
		return t
	}
	props, err := PickStrict(t.shape(), sel)
	if err != nil {
		t.err = err
		return t
	}
	t.props = props
	return t
}

// PickAny keeps the selected properties and ignores unknown keys
func (t Transformer) PickAny(sel Selector) Transformer {
	if t.err != nil {
		return t
	}
	t.props = Pick(t.shape(), sel)
	return t
}

// Partial marks every top-level property as not required
func (t Transformer) Partial() Transformer {
	if t.err != nil {
		return t
	}
	t.props = Partial(t.shape())
	return t
}

// Merge merges others after the pipeline's current shape
func (t Transformer) Merge(others ...Shape) Transformer {
	if t.err != nil {
		return t
	}
	srcs := append([]Shape{t.shape()}, others...)
	merged := Merge(srcs...)
	t.base = merged.Base
	t.props = merged.Properties
	return t
}

// Object ends the pipeline with a plain object. Lineage is dropped.
func (t Transformer) Object() (*Object, error) {
	if t.err != nil {
		return nil, t.err
	}
	return &Object{Base: t.base, Properties: t.props}, nil
}

// View ends the pipeline with a named view that keeps the pipeline's lineage
func (t Transformer) View(name Token, description string) (*View, error) {
	if t.err != nil {
		return nil, t.err
	}
	return NewView(ViewOptions{
		Name:        name,
		Description: description,
		Type:        t.shape(),
	}), nil
}

// MustObject is like Object but panics on error
func (t Transformer) MustObject() *Object {
	obj, err := t.Object()
	if err != nil {
		panic("schema: " + err.Error())
	}
	return obj
}

// MustView is like View but panics on error
func (t Transformer) MustView(name Token, description string) *View {
	v, err := t.View(name, description)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return v
}

func (t Transformer) shape() *View {
	return &View{Base: t.base, PartialOf: t.partialOf, Properties: t.props}
}
