package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
)

func build(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Build(Root())
	require.NoError(t, err)
	return reg
}

func TestRootBuildsAndLinks(t *testing.T) {
	reg := build(t)

	linked, err := registry.Link(reg, registry.WithExternals(Externals()...))
	require.NoError(t, err)
	assert.NotEmpty(t, linked.Edges())

	assert.Len(t, reg.Entities(), 9)
	assert.Len(t, reg.Declarators(), 8)
}

func TestRootWithoutExternalsFails(t *testing.T) {
	_, err := registry.Link(build(t))
	var unresolved *registry.UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, Vinculo.Entity, unresolved.Token)
}

func TestDiaCalendarioFindOneResult(t *testing.T) {
	reg := build(t)

	v, ok := reg.View(DiaCalendario.Views.FindOneResult)
	require.True(t, ok)
	assert.Equal(t, []string{
		"id", "data", "diaLetivo", "feriado", "calendario",
		"dateCreated", "dateUpdated", "dateDeleted",
	}, v.Properties.Keys())
	assert.Equal(t, DiaCalendario.Entity, v.PartialOf)

	calendario, _ := v.Properties.Get("calendario")
	ref := calendario.(*schema.Reference)
	assert.Equal(t, CalendarioLetivo.Views.FindOneResult, ref.TargetsTo)
	assert.True(t, ref.Nullable)
	assert.Equal(t, "Calendario.", ref.Description)
}

func TestDiaCalendarioInputs(t *testing.T) {
	reg := build(t)

	create, ok := reg.View(DiaCalendario.Views.InputCreate)
	require.True(t, ok)
	assert.Equal(t, []string{"data", "diaLetivo", "feriado", "calendario"}, create.Properties.Keys())
	calendario, _ := create.Properties.Get("calendario")
	assert.Equal(t, CalendarioLetivo.Views.FindOneInput, calendario.(*schema.Reference).TargetsTo)

	update, ok := reg.View(DiaCalendario.Views.InputUpdate)
	require.True(t, ok)
	assert.Equal(t, create.Properties.Keys(), update.Properties.Keys())
	update.Properties.Each(func(k string, v schema.Type) bool {
		assert.False(t, v.Attrs().Required, k)
		return true
	})
	create.Properties.Each(func(k string, v schema.Type) bool {
		assert.True(t, v.Attrs().Required, k)
		return true
	})

	input, ok := reg.View(DiaCalendario.Views.FindOneInput)
	require.True(t, ok)
	assert.Equal(t, []string{"id"}, input.Properties.Keys())
}

func TestDiaCalendarioDeclarator(t *testing.T) {
	reg := build(t)

	d, ok := reg.Declarator(DiaCalendario.Entity)
	require.True(t, ok)

	list, ok := d.CRUD.List.Config()
	require.True(t, ok)
	assert.Equal(t, DiaCalendario.Views.FindAllResult, list.View)
	assert.Equal(t, []declarator.Filter{declarator.F("calendario.id", declarator.OpEq)}, list.Filters)

	find, ok := d.CRUD.FindByID.Config()
	require.True(t, ok)
	assert.Equal(t, DiaCalendario.Views.FindOneInput, find.Input)
	assert.Equal(t, DiaCalendario.Views.FindOneResult, find.Output)
}

func TestUsuario(t *testing.T) {
	reg := build(t)

	full, ok := reg.View(Usuario.Entity)
	require.True(t, ok)

	capa, _ := full.Properties.Get("imagemCapa")
	assert.Equal(t, Imagem.Views.FindOneResult, capa.(*schema.Reference).TargetsTo)

	vinculos, _ := full.Properties.Get("vinculosAtivos")
	item := vinculos.(*schema.Array).Of.(*schema.Reference)
	assert.Equal(t, Vinculo.Views.FindOneResult, item.TargetsTo)

	d, ok := reg.Declarator(Usuario.Entity)
	require.True(t, ok)
	require.Len(t, d.Extra, 4)
	assert.Equal(t, "getCoverImage", d.Extra[0].Key)
	assert.Equal(t, Usuario.Operation("SetProfileImage"), d.Extra[3].Name)
	assert.Equal(t, "file", d.Extra[1].Attributes["input.strategy"])

	op, ok := reg.Operation("UsuarioGetProfileImage")
	require.True(t, ok)
	assert.Same(t, d, op)
}

func TestIntervaloDeTempoDisabledOperations(t *testing.T) {
	d, ok := build(t).Declarator(IntervaloDeTempo.Entity)
	require.True(t, ok)

	assert.True(t, d.CRUD.FindByID.Enabled())
	assert.True(t, d.CRUD.Create.Disabled())
	assert.True(t, d.CRUD.DeleteByID.Disabled())
	assert.Equal(t, declarator.StateAbsent, d.CRUD.List.State())
}

func TestPaginatedResultView(t *testing.T) {
	v := PaginatedResultView("XFindAllResult", "Resultados.", "XFindOneResult")

	assert.Equal(t, []string{"meta", "data"}, v.Properties.Keys())
	data, _ := v.Properties.Get("data")
	assert.Equal(t, schema.Token("XFindOneResult"), data.(*schema.Array).Of.(*schema.Reference).TargetsTo)
	assert.NoError(t, schema.Validate("X", v))
}

func TestRootIsDeterministic(t *testing.T) {
	a := build(t)
	b := build(t)

	require.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Tokens(), b.Tokens())
	for i, n := range a.Nodes() {
		assert.Equal(t, registry.Label(i, n), registry.Label(i, b.Nodes()[i]))
	}
}

func TestModules(t *testing.T) {
	for name, provider := range Modules() {
		t.Run(name, func(t *testing.T) {
			_, err := registry.Build(provider())
			assert.NoError(t, err)
		})
	}
}

func TestModuleOrderCoversModules(t *testing.T) {
	order := ModuleOrder()
	modules := Modules()
	assert.Len(t, order, len(modules))
	for _, name := range order {
		assert.Contains(t, modules, name)
	}
}
