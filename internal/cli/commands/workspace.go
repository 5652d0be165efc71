package commands

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sisgea/unispec/internal/catalog"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
)

// provider returns the catalog root, or the selected modules in catalog
// registration order
func (s *session) provider() (*registry.Provider, error) {
	if len(s.modules) == 0 {
		return catalog.Root(), nil
	}

	modules := catalog.Modules()
	for _, name := range s.modules {
		if _, ok := modules[name]; !ok {
			names := make([]string, 0, len(modules))
			for n := range modules {
				names = append(names, n)
			}
			sort.Strings(names)
			return nil, fmt.Errorf("unknown module %q (available: %s)", name, strings.Join(names, ", "))
		}
	}

	selected := make(map[string]bool, len(s.modules))
	for _, name := range s.modules {
		selected[name] = true
	}

	return registry.NewProvider(func(ctx *registry.Context) {
		for _, name := range catalog.ModuleOrder() {
			if selected[name] {
				ctx.Add(modules[name]())
			}
		}
	}), nil
}

// build flattens and indexes the catalog
func (s *session) build() (*registry.Registry, error) {
	p, err := s.provider()
	if err != nil {
		return nil, err
	}
	return registry.Build(p, registry.WithLogger(s.logger))
}

// externals returns the catalog externals followed by the configured ones
func (s *session) externals() []schema.Token {
	out := catalog.Externals()
	for _, ext := range s.cfg.Link.Externals {
		out = append(out, schema.Token(ext))
	}
	return out
}

func (s *session) linkOptions() []registry.LinkOption {
	return []registry.LinkOption{
		registry.WithExternals(s.externals()...),
		registry.WithLinkLogger(s.logger),
	}
}

// link runs the link pass. Outside strict mode unresolved references are
// logged and the registry is linked against them as externals.
func (s *session) link(reg *registry.Registry) (*registry.Linked, error) {
	opts := s.linkOptions()
	if !s.cfg.Link.Strict {
		for _, m := range registry.Unresolved(reg, opts...) {
			s.logger.Warn("unresolved reference",
				zap.String("from", m.From),
				zap.String("path", m.Path),
				zap.String("token", string(m.Token)),
			)
			opts = append(opts, registry.WithExternals(m.Token))
		}
	}
	return registry.Link(reg, opts...)
}

// linked builds and links the catalog
func (s *session) linked() (*registry.Linked, error) {
	reg, err := s.build()
	if err != nil {
		return nil, err
	}
	return s.link(reg)
}
