package registry

import (
	"fmt"

	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/schema"
)

// Provider is a composition node. Its build function adds entities, views,
// declarators and nested providers to a Context; the provider itself has
// no identity beyond its position in its parent.
type Provider struct {
	build func(*Context)
}

// NewProvider creates a provider from a build function. The function runs
// every time the provider is flattened.
func NewProvider(build func(*Context)) *Provider {
	return &Provider{build: build}
}

// Module creates a provider that adds a fixed list of nodes
func Module(nodes ...schema.Node) *Provider {
	return NewProvider(func(ctx *Context) {
		ctx.Add(nodes...)
	})
}

// NodeKind implements schema.Node
func (*Provider) NodeKind() schema.NodeKind {
	return schema.KindProvider
}

// Context collects the children of a provider during flattening
type Context struct {
	nodes []schema.Node
	err   error
}

// Add appends nodes in order. A nil node fails the build.
func (c *Context) Add(nodes ...schema.Node) {
	for _, n := range nodes {
		if isNil(n) {
			c.fail(fmt.Errorf("provider child %d is nil", len(c.nodes)))
			continue
		}
		c.nodes = append(c.nodes, n)
	}
}

// View adds the result of a pipeline terminal. A non-nil err is recorded
// and fails the build; the view is returned so it can feed later
// pipelines.
//
//	full := ctx.View(schema.From(entity).View(tokens.Entity, "..."))
func (c *Context) View(v *schema.View, err error) *schema.View {
	if err != nil {
		c.fail(err)
		return v
	}
	c.Add(v)
	return v
}

// Fail records err as the build error if none was recorded yet
func (c *Context) Fail(err error) {
	c.fail(err)
}

func (c *Context) fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

func isNil(n schema.Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Provider:
		return v == nil
	case *schema.View:
		return v == nil
	case *schema.Object:
		return v == nil
	case *declarator.Declarator:
		return v == nil
	}
	return false
}

// Flatten expands p depth-first in preorder and returns the terminal nodes
// in declaration order. Provider wrappers are removed.
func Flatten(p *Provider) ([]schema.Node, error) {
	f := &flattener{active: make(map[*Provider]bool)}
	if err := f.expand(p, 0); err != nil {
		return nil, err
	}
	return f.out, nil
}

type flattener struct {
	active map[*Provider]bool
	out    []schema.Node
	visit  func(depth, children int)
}

func (f *flattener) expand(p *Provider, depth int) error {
	if p == nil {
		return nil
	}
	if f.active[p] {
		return &ProviderCycleError{Depth: depth}
	}
	f.active[p] = true
	defer delete(f.active, p)

	ctx := &Context{}
	if p.build != nil {
		p.build(ctx)
	}
	if ctx.err != nil {
		return fmt.Errorf("provider at depth %d: %w", depth, ctx.err)
	}
	if f.visit != nil {
		f.visit(depth, len(ctx.nodes))
	}

	for _, n := range ctx.nodes {
		if child, ok := n.(*Provider); ok {
			if err := f.expand(child, depth+1); err != nil {
				return err
			}
			continue
		}
		f.out = append(f.out, n)
	}
	return nil
}
