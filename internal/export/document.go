// Package export renders a registry as an ordered JSON or YAML document
// and computes its fingerprint.
package export

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
)

// DocumentVersion is bumped whenever the document layout changes
const DocumentVersion = 1

// Format is an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format: %s", s)
	}
}

// Document renders every node of reg in registry order
func Document(reg *registry.Registry) Doc {
	nodes := make([]any, 0, reg.Len())
	for _, n := range reg.Nodes() {
		nodes = append(nodes, Node(n))
	}
	return Doc{
		{Key: "version", Value: DocumentVersion},
		{Key: "nodes", Value: nodes},
	}
}

// Encode renders reg in the given format
func Encode(reg *registry.Registry, format Format) ([]byte, error) {
	return EncodeDoc(Document(reg), format)
}

// EncodeDoc encodes an already built document
func EncodeDoc(doc Doc, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// Node renders a single node. Providers and unknown nodes render their
// kind only.
func Node(n schema.Node) Doc {
	switch v := n.(type) {
	case *declarator.Declarator:
		return declaratorDoc(v)
	case *registry.External:
		return Doc{
			{Key: "kind", Value: "external"},
			{Key: "token", Value: string(v.Token)},
		}
	case schema.Type:
		return typeDoc(v)
	default:
		return Doc{{Key: "kind", Value: n.NodeKind().String()}}
	}
}

type typeRenderer struct {
	doc Doc
}

func typeDoc(t schema.Type) Doc {
	r := &typeRenderer{}
	schema.Accept(t, r)
	return r.doc
}

func (r *typeRenderer) base(t schema.Type) {
	b := t.Attrs()
	r.doc = Doc{
		{Key: "kind", Value: t.NodeKind().String()},
		{Key: "type", Value: t.TypeKind().String()},
		{Key: "nullable", Value: b.Nullable},
		{Key: "required", Value: b.Required},
		{Key: "description", Value: b.Description},
	}
	if b.Default != nil {
		r.doc.Set("default", b.Default)
	}
}

func (r *typeRenderer) VisitString(t *schema.String) {
	r.base(t)
	if t.Format != schema.FormatNone {
		r.doc.Set("format", t.Format.String())
	}
	c := t.Constraints
	var cons Doc
	if c.MinLength != nil {
		cons.Set("minLength", *c.MinLength)
	}
	if c.MaxLength != nil {
		cons.Set("maxLength", *c.MaxLength)
	}
	for _, k := range sortedKeys(c.Extensions) {
		cons.Set(k, c.Extensions[k])
	}
	if len(cons) > 0 {
		r.doc.Set("constraints", cons)
	}
}

func (r *typeRenderer) VisitInteger(t *schema.Integer) {
	r.base(t)
	c := t.Constraints
	var cons Doc
	if c.Min != nil {
		cons.Set("min", *c.Min)
	}
	if c.Max != nil {
		cons.Set("max", *c.Max)
	}
	if c.Integer {
		cons.Set("integer", true)
	}
	if c.Positive {
		cons.Set("positive", true)
	}
	if len(cons) > 0 {
		r.doc.Set("constraints", cons)
	}
}

func (r *typeRenderer) VisitBoolean(t *schema.Boolean) {
	r.base(t)
}

func (r *typeRenderer) VisitReference(t *schema.Reference) {
	r.base(t)
	r.doc.Set("targetsTo", string(t.TargetsTo))
}

func (r *typeRenderer) VisitArray(t *schema.Array) {
	r.base(t)
	if t.Of != nil {
		r.doc.Set("of", typeDoc(t.Of))
	}
}

func (r *typeRenderer) VisitObject(t *schema.Object) {
	r.base(t)
	r.doc.Set("properties", propertiesDoc(t.Properties))
}

func (r *typeRenderer) VisitView(t *schema.View) {
	r.base(t)
	r.doc.Set("name", string(t.Name))
	if t.PartialOf != "" {
		r.doc.Set("partialOf", string(t.PartialOf))
	} else {
		r.doc.Set("partialOf", nil)
	}
	r.doc.Set("properties", propertiesDoc(t.Properties))
}

func propertiesDoc(p *schema.Properties) Doc {
	out := Doc{}
	p.Each(func(k string, t schema.Type) bool {
		if t == nil {
			out.Set(k, nil)
			return true
		}
		out.Set(k, typeDoc(t))
		return true
	})
	return out
}

func declaratorDoc(d *declarator.Declarator) Doc {
	crud := Doc{}
	setOp(&crud, "findById", d.CRUD.FindByID, func(op declarator.FindByID) Doc {
		return Doc{
			{Key: "name", Value: string(op.Name)},
			{Key: "input", Value: string(op.Input)},
			{Key: "output", Value: string(op.Output)},
		}
	})
	setOp(&crud, "deleteById", d.CRUD.DeleteByID, func(op declarator.DeleteByID) Doc {
		return Doc{{Key: "name", Value: string(op.Name)}}
	})
	setOp(&crud, "create", d.CRUD.Create, func(op declarator.Create) Doc {
		return Doc{
			{Key: "name", Value: string(op.Name)},
			{Key: "input", Value: string(op.Input)},
		}
	})
	setOp(&crud, "updateById", d.CRUD.UpdateByID, func(op declarator.UpdateByID) Doc {
		return Doc{
			{Key: "name", Value: string(op.Name)},
			{Key: "input", Value: string(op.Input)},
		}
	})
	setOp(&crud, "list", d.CRUD.List, func(op declarator.List) Doc {
		filters := make([]any, 0, len(op.Filters))
		for _, f := range op.Filters {
			ops := make([]any, 0, len(f.Operators))
			for _, o := range f.Operators {
				ops = append(ops, o.String())
			}
			filters = append(filters, []any{f.Path, ops})
		}
		return Doc{
			{Key: "name", Value: string(op.Name)},
			{Key: "view", Value: string(op.View)},
			{Key: "filters", Value: filters},
		}
	})

	ops := Doc{{Key: "crud", Value: crud}}
	if len(d.Extra) > 0 {
		extra := Doc{}
		for _, e := range d.Extra {
			ed := Doc{
				{Key: "name", Value: string(e.Name)},
				{Key: "description", Value: e.Description},
			}
			if e.Input != "" {
				ed.Set("input", string(e.Input))
			}
			if e.Output != "" {
				ed.Set("output", string(e.Output))
			}
			if len(e.Attributes) > 0 {
				attrs := Doc{}
				for _, k := range sortedKeys(e.Attributes) {
					attrs.Set(k, e.Attributes[k])
				}
				ed.Set("attributes", attrs)
			}
			extra.Set(e.Key, ed)
		}
		ops.Set("extra", extra)
	}

	return Doc{
		{Key: "kind", Value: d.NodeKind().String()},
		{Key: "entity", Value: string(d.Entity)},
		{Key: "operations", Value: ops},
	}
}

// setOp renders an operation slot: configured slots as a document,
// disabled slots as false, absent slots not at all.
func setOp[T any](crud *Doc, key string, op declarator.Op[T], render func(T) Doc) {
	switch op.State() {
	case declarator.StateDisabled:
		crud.Set(key, false)
	case declarator.StateEnabled:
		cfg, _ := op.Config()
		crud.Set(key, render(cfg))
	}
}
