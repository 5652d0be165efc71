package registry

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/schema"
)

// External stands in for a token declared outside the registry, such as an
// entity of a module that is not part of the build.
type External struct {
	Token schema.Token
}

// NodeKind implements schema.Node
func (*External) NodeKind() schema.NodeKind {
	return schema.KindType
}

// Edge is one resolved reference
type Edge struct {
	From     string
	Path     string
	Token    schema.Token
	External bool
}

// LinkOption configures Link and Unresolved
type LinkOption func(*linkOptions)

type linkOptions struct {
	externals map[schema.Token]struct{}
	logger    *zap.Logger
}

// WithExternals declares tokens that resolve outside the registry
func WithExternals(tokens ...schema.Token) LinkOption {
	return func(o *linkOptions) {
		for _, t := range tokens {
			o.externals[t] = struct{}{}
		}
	}
}

// WithLinkLogger sets the logger used by the link pass
func WithLinkLogger(logger *zap.Logger) LinkOption {
	return func(o *linkOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Linked is a registry whose tokens all resolve
type Linked struct {
	reg       *Registry
	externals map[schema.Token]struct{}
	edges     []Edge
}

// Link resolves every reference target, view lineage and declarator token
// in reg. It fails with the first *UnresolvedReferenceError, in registry
// order.
func Link(reg *Registry, opts ...LinkOption) (*Linked, error) {
	o := newLinkOptions(opts)
	edges, missing := walkReferences(reg, o.externals)
	if len(missing) > 0 {
		o.logger.Debug("link failed", zap.Int("unresolved", len(missing)))
		return nil, fmt.Errorf("link registry: %w", missing[0])
	}

	o.logger.Info("registry linked",
		zap.Int("references", len(edges)),
		zap.Int("externals", len(o.externals)),
	)
	return &Linked{reg: reg, externals: o.externals, edges: edges}, nil
}

// Unresolved runs the link pass without failing and returns every
// unresolved reference, in registry order.
func Unresolved(reg *Registry, opts ...LinkOption) []*UnresolvedReferenceError {
	o := newLinkOptions(opts)
	_, missing := walkReferences(reg, o.externals)
	for _, m := range missing {
		o.logger.Debug("unresolved reference",
			zap.String("from", m.From),
			zap.String("path", m.Path),
			zap.String("token", string(m.Token)),
		)
	}
	return missing
}

func newLinkOptions(opts []LinkOption) linkOptions {
	o := linkOptions{
		externals: make(map[schema.Token]struct{}),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func walkReferences(reg *Registry, externals map[schema.Token]struct{}) ([]Edge, []*UnresolvedReferenceError) {
	var (
		edges   []Edge
		missing []*UnresolvedReferenceError
	)
	check := func(from, path string, tok schema.Token) {
		if _, ok := reg.views[tok]; ok {
			edges = append(edges, Edge{From: from, Path: path, Token: tok})
			return
		}
		if _, ok := externals[tok]; ok {
			edges = append(edges, Edge{From: from, Path: path, Token: tok, External: true})
			return
		}
		missing = append(missing, &UnresolvedReferenceError{From: from, Path: path, Token: tok})
	}

	for i, n := range reg.nodes {
		from := Label(i, n)
		switch v := n.(type) {
		case *schema.View:
			if v.PartialOf != "" {
				check(from, "partialOf", v.PartialOf)
			}
			walkType(from, v, check)
		case *schema.Object:
			walkType(from, v, check)
		case *declarator.Declarator:
			for _, ref := range v.References() {
				check(from, ref.Path, ref.Token)
			}
		}
	}
	return edges, missing
}

func walkType(from string, t schema.Type, check func(from, path string, tok schema.Token)) {
	_ = schema.Walk("", t, func(path string, n schema.Type) error {
		if ref, ok := n.(*schema.Reference); ok {
			check(from, path, ref.TargetsTo)
		}
		return nil
	})
}

// Registry returns the linked registry
func (l *Linked) Registry() *Registry {
	return l.reg
}

// Edges returns every resolved reference in registry order
func (l *Linked) Edges() []Edge {
	out := make([]Edge, len(l.edges))
	copy(out, l.edges)
	return out
}

// Externals returns the declared externals, sorted
func (l *Linked) Externals() []schema.Token {
	out := make([]schema.Token, 0, len(l.externals))
	for t := range l.externals {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resolve returns the node named by tok: a registered view or operation,
// or an *External for declared externals. Unknown tokens fail with
// *UnresolvedReferenceError.
func (l *Linked) Resolve(tok schema.Token) (schema.Node, error) {
	if n, ok := l.reg.Lookup(tok); ok {
		return n, nil
	}
	if _, ok := l.externals[tok]; ok {
		return &External{Token: tok}, nil
	}
	return nil, &UnresolvedReferenceError{Token: tok}
}

// Dependents returns the resolved edges pointing at tok
func (l *Linked) Dependents(tok schema.Token) []Edge {
	var out []Edge
	for _, e := range l.edges {
		if e.Token == tok {
			out = append(out, e)
		}
	}
	return out
}
