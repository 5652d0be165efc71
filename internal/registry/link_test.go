package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sisgea/unispec/internal/schema"
)

func linkFixture(t *testing.T) *Registry {
	t.Helper()

	entity := schema.Entity(schema.EntityOptions{
		ID: schema.IDUUID,
		Properties: schema.Props(
			schema.P("campus", schema.NewReference("Campus")),
		),
	})
	full := schema.NewView(schema.ViewOptions{
		Name: "Bloco",
		Type: schema.NewObject(schema.Props(
			schema.P("campus", schema.NewReference("CampusFindOneResult")),
			schema.P("ambientes", schema.NewArray(schema.NewReference("AmbienteFindOneResult"))),
		)),
	})
	input := schema.NewView(schema.ViewOptions{Name: "BlocoFindOneInput", Type: schema.NewObject(nil), PartialOf: "Bloco"})
	result := schema.NewView(schema.ViewOptions{Name: "BlocoFindOneResult", Type: full, PartialOf: "Bloco"})

	reg, err := Build(Module(entity, full, input, result, crud("Bloco")))
	require.NoError(t, err)
	return reg
}

func TestLinkUnresolved(t *testing.T) {
	reg := linkFixture(t)

	_, err := Link(reg)
	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "entity #0", unresolved.From)
	assert.Equal(t, "campus", unresolved.Path)
	assert.Equal(t, schema.Token("Campus"), unresolved.Token)

	missing := Unresolved(reg)
	var got []string
	for _, m := range missing {
		got = append(got, m.From+" "+m.Path+" "+string(m.Token))
	}
	assert.Equal(t, []string{
		"entity #0 campus Campus",
		"Bloco campus CampusFindOneResult",
		"Bloco ambientes[] AmbienteFindOneResult",
		"BlocoFindOneResult campus CampusFindOneResult",
		"BlocoFindOneResult ambientes[] AmbienteFindOneResult",
	}, got)
}

func TestLinkWithExternals(t *testing.T) {
	reg := linkFixture(t)

	linked, err := Link(reg, WithExternals("Campus", "CampusFindOneResult", "AmbienteFindOneResult"))
	require.NoError(t, err)
	assert.Same(t, reg, linked.Registry())
	assert.Equal(t, []schema.Token{"AmbienteFindOneResult", "Campus", "CampusFindOneResult"}, linked.Externals())

	n, err := linked.Resolve("BlocoFindOneResult")
	require.NoError(t, err)
	assert.IsType(t, &schema.View{}, n)

	n, err = linked.Resolve("Campus")
	require.NoError(t, err)
	assert.Equal(t, &External{Token: "Campus"}, n)

	n, err = linked.Resolve("BlocoFindOneById")
	require.NoError(t, err)
	assert.Equal(t, schema.KindDeclarator, n.NodeKind())

	n, err = linked.Resolve("Nope")
	assert.Nil(t, n)
	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, schema.Token("Nope"), unresolved.Token)

	deps := linked.Dependents("Bloco")
	var paths []string
	for _, e := range deps {
		paths = append(paths, e.From+" "+e.Path)
	}
	assert.Equal(t, []string{
		"BlocoFindOneInput partialOf",
		"BlocoFindOneResult partialOf",
		"declarator Bloco entity",
	}, paths)

	for _, e := range linked.Edges() {
		if e.Token == "Campus" {
			assert.True(t, e.External)
		}
	}
}

func TestLinkDeclaratorTokens(t *testing.T) {
	reg, err := Build(Module(view("Bloco"), crud("Bloco")))
	require.NoError(t, err)

	_, err = Link(reg)
	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "declarator Bloco", unresolved.From)
	assert.Equal(t, "crud.findById.input", unresolved.Path)
	assert.Contains(t, err.Error(), "BlocoFindOneInput")
}

func TestLinkLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reg, err := Build(Module(view("A")))
	require.NoError(t, err)

	_, err = Link(reg, WithLinkLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("registry linked").Len())
}

func TestUnresolvedReferenceErrorMessage(t *testing.T) {
	err := &UnresolvedReferenceError{From: "Bloco", Path: "campus", Token: "Campus"}
	assert.Equal(t, `unresolved reference "Campus" at campus (Bloco)`, err.Error())

	err = &UnresolvedReferenceError{Token: "Campus"}
	assert.Equal(t, `unresolved reference "Campus"`, err.Error())
}
