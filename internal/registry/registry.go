// Package registry flattens provider trees into an immutable, ordered
// registry of entities, views and declarators, and links the tokens those
// nodes carry.
package registry

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/schema"
)

// Registry is the flattened, ordered result of a build. It is read-only.
type Registry struct {
	nodes []schema.Node

	views       map[schema.Token]int
	declarators map[schema.Token]int
	operations  map[schema.Token]int
}

// BuildOption configures Build
type BuildOption func(*buildOptions)

type buildOptions struct {
	logger *zap.Logger
}

// WithLogger sets the logger used by Build. The default discards output.
func WithLogger(logger *zap.Logger) BuildOption {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Build flattens p, validates every node and indexes names. The first
// error aborts the build.
func Build(p *Provider, opts ...BuildOption) (*Registry, error) {
	o := buildOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	f := &flattener{
		active: make(map[*Provider]bool),
		visit: func(depth, children int) {
			log.Debug("expanded provider", zap.Int("depth", depth), zap.Int("children", children))
		},
	}
	if p == nil {
		return nil, fmt.Errorf("build registry: nil root provider")
	}
	if err := f.expand(p, 0); err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	r := &Registry{
		nodes:       f.out,
		views:       make(map[schema.Token]int),
		declarators: make(map[schema.Token]int),
		operations:  make(map[schema.Token]int),
	}
	for i, n := range r.nodes {
		if err := r.index(i, n); err != nil {
			return nil, fmt.Errorf("build registry: %w", err)
		}
		log.Debug("registered node", zap.Int("index", i), zap.String("node", Label(i, n)))
	}

	log.Info("registry built",
		zap.Int("nodes", len(r.nodes)),
		zap.Int("views", len(r.views)),
		zap.Int("declarators", len(r.declarators)),
		zap.Int("operations", len(r.operations)),
	)
	return r, nil
}

func (r *Registry) index(i int, n schema.Node) error {
	switch v := n.(type) {
	case *schema.Object:
		return schema.Validate(Label(i, n), v)
	case *schema.View:
		if err := schema.Validate(Label(i, n), v); err != nil {
			return err
		}
		if first, exists := r.operations[v.Name]; exists {
			return &DuplicateNodeNameError{Namespace: NamespaceToken, Name: v.Name, First: first, Second: i}
		}
		return claim(r.views, NamespaceView, v.Name, i)
	case *declarator.Declarator:
		if v.Entity == "" {
			return &schema.InvalidVariantError{Path: Label(i, n), Variant: "declarator", Reason: "declarator has no entity"}
		}
		if err := claim(r.declarators, NamespaceDeclarator, v.Entity, i); err != nil {
			return err
		}
		for _, name := range v.OperationNames() {
			if first, exists := r.views[name]; exists {
				return &DuplicateNodeNameError{Namespace: NamespaceToken, Name: name, First: first, Second: i}
			}
			if err := claim(r.operations, NamespaceOperation, name, i); err != nil {
				return err
			}
		}
		return nil
	case schema.Type:
		return &schema.InvalidVariantError{
			Path:    Label(i, n),
			Variant: v.TypeKind().String(),
			Reason:  "only entities, views and declarators can be registered",
		}
	default:
		return &schema.InvalidVariantError{Path: Label(i, n), Variant: n.NodeKind().String(), Reason: "unsupported node"}
	}
}

func claim(names map[schema.Token]int, namespace string, name schema.Token, i int) error {
	if first, exists := names[name]; exists {
		return &DuplicateNodeNameError{Namespace: namespace, Name: name, First: first, Second: i}
	}
	names[name] = i
	return nil
}

// Label returns a human readable name for the node at index i
func Label(i int, n schema.Node) string {
	switch v := n.(type) {
	case *schema.View:
		return string(v.Name)
	case *declarator.Declarator:
		return "declarator " + string(v.Entity)
	case *schema.Object:
		return fmt.Sprintf("entity #%d", i)
	default:
		return fmt.Sprintf("node #%d", i)
	}
}

// Nodes returns the registered nodes in order
func (r *Registry) Nodes() []schema.Node {
	out := make([]schema.Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Len returns the number of registered nodes
func (r *Registry) Len() int {
	return len(r.nodes)
}

// Lookup returns the node named by tok. Views are searched first, then
// operation names, which resolve to their declarator.
func (r *Registry) Lookup(tok schema.Token) (schema.Node, bool) {
	if i, ok := r.views[tok]; ok {
		return r.nodes[i], true
	}
	if i, ok := r.operations[tok]; ok {
		return r.nodes[i], true
	}
	return nil, false
}

// View returns the view named tok
func (r *Registry) View(tok schema.Token) (*schema.View, bool) {
	i, ok := r.views[tok]
	if !ok {
		return nil, false
	}
	return r.nodes[i].(*schema.View), true
}

// Views returns every view in registry order
func (r *Registry) Views() []*schema.View {
	var out []*schema.View
	for _, n := range r.nodes {
		if v, ok := n.(*schema.View); ok {
			out = append(out, v)
		}
	}
	return out
}

// Entities returns every bare entity object in registry order
func (r *Registry) Entities() []*schema.Object {
	var out []*schema.Object
	for _, n := range r.nodes {
		if o, ok := n.(*schema.Object); ok {
			out = append(out, o)
		}
	}
	return out
}

// Declarator returns the declarator of entity
func (r *Registry) Declarator(entity schema.Token) (*declarator.Declarator, bool) {
	i, ok := r.declarators[entity]
	if !ok {
		return nil, false
	}
	return r.nodes[i].(*declarator.Declarator), true
}

// Declarators returns every declarator in registry order
func (r *Registry) Declarators() []*declarator.Declarator {
	var out []*declarator.Declarator
	for _, n := range r.nodes {
		if d, ok := n.(*declarator.Declarator); ok {
			out = append(out, d)
		}
	}
	return out
}

// Operation returns the declarator owning the operation named tok
func (r *Registry) Operation(tok schema.Token) (*declarator.Declarator, bool) {
	i, ok := r.operations[tok]
	if !ok {
		return nil, false
	}
	return r.nodes[i].(*declarator.Declarator), true
}

// Tokens returns every addressable name: view names followed by operation
// names, each in registry order.
func (r *Registry) Tokens() []schema.Token {
	var out []schema.Token
	for _, v := range r.Views() {
		out = append(out, v.Name)
	}
	for _, d := range r.Declarators() {
		out = append(out, d.OperationNames()...)
	}
	return out
}
