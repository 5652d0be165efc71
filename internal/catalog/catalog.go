// Package catalog declares the SISGEA entities, their views and their
// operations, grouped in module providers.
package catalog

import (
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
	"github.com/sisgea/unispec/internal/tokens"
)

// Name identifies this catalog in snapshots
const Name = "sisgea"

// Token sets of entities owned by modules outside this catalog
var (
	Campus                   = tokens.For("Campus")
	OfertaFormacao           = tokens.For("OfertaFormacao")
	Vinculo                  = tokens.For("Vinculo")
	DisponibilidadeProfessor = tokens.For("DisponibilidadeProfessor")
)

// Root returns the provider of every module, in the order the modules are
// registered.
func Root() *registry.Provider {
	modules := Modules()
	return registry.NewProvider(func(ctx *registry.Context) {
		for _, name := range ModuleOrder() {
			ctx.Add(modules[name]())
		}
	})
}

// ModuleOrder returns the module names in registration order
func ModuleOrder() []string {
	return []string{"shared", "autenticacao", "ambientes", "calendario", "horarios"}
}

// Externals returns the tokens referenced by the catalog but owned by
// modules outside it. Pass them to registry.WithExternals when linking.
func Externals() []schema.Token {
	return []schema.Token{
		Campus.Entity,
		Campus.Views.FindOneInput,
		Campus.Views.FindOneResult,
		OfertaFormacao.Entity,
		OfertaFormacao.Views.FindOneInput,
		OfertaFormacao.Views.FindOneResult,
		Vinculo.Entity,
		Vinculo.Views.FindOneResult,
		DisponibilidadeProfessor.Entity,
		DisponibilidadeProfessor.Views.FindOneResult,
	}
}

// Modules returns the module providers by name, for building a subset of
// the catalog.
func Modules() map[string]func() *registry.Provider {
	return map[string]func() *registry.Provider{
		"shared":       SharedProvider,
		"autenticacao": AutenticacaoProvider,
		"ambientes":    AmbientesProvider,
		"calendario":   CalendarioProvider,
		"horarios":     HorariosProvider,
	}
}
