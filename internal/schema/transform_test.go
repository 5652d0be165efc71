package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ambiente() *Object {
	return Entity(EntityOptions{
		ID:    IDUUID,
		Dated: true,
		Properties: Props(
			P("nome", NewString(Describe("Nome do ambiente."))),
			P("capacidade", NewInteger(Nullable())),
			P("bloco", NewReference("BlocoFindOneResult")),
			P("tipo", NewObject(Props(P("codigo", NewString())))),
		),
	})
}

func TestPick(t *testing.T) {
	src := ambiente()

	tests := []struct {
		name string
		sel  Selector
		want []string
	}{
		{"keys follow source order", Keys("bloco", "id", "nome"), []string{"id", "nome", "bloco"}},
		{"unknown keys ignored", Keys("nome", "missing"), []string{"nome"}},
		{"mask", Mask(map[string]bool{"capacidade": true, "nome": false, "id": true}), []string{"id", "capacidade"}},
		{"empty", Keys(), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pick(src, tt.sel)
			assert.Equal(t, tt.want, got.Keys())
			got.Each(func(k string, v Type) bool {
				orig, _ := src.Properties.Get(k)
				assert.Same(t, orig, v)
				return true
			})
		})
	}
}

func TestPickStrict(t *testing.T) {
	src := ambiente()

	props, err := PickStrict(src, Keys("nome", "id"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "nome"}, props.Keys())

	_, err = PickStrict(src, Keys("nome", "andar"))
	var unknown *UnknownPropertyError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "pick", unknown.Op)
	assert.Equal(t, "andar", unknown.Key)
	assert.Contains(t, unknown.Available, "nome")
	assert.Contains(t, err.Error(), `unknown property "andar"`)
}

func TestPartial(t *testing.T) {
	src := ambiente()
	before := src.Properties.Keys()

	got := Partial(src)
	assert.Equal(t, before, got.Keys())

	got.Each(func(k string, v Type) bool {
		orig, _ := src.Properties.Get(k)
		assert.False(t, v.Attrs().Required, k)
		assert.True(t, orig.Attrs().Required, k)

		want := orig.Attrs()
		want.Required = false
		assert.Equal(t, want, v.Attrs(), k)
		assert.Equal(t, orig.TypeKind(), v.TypeKind(), k)
		return true
	})

	// nested properties keep their own requiredness
	tipo, _ := got.Get("tipo")
	codigo, _ := tipo.(*Object).Properties.Get("codigo")
	assert.True(t, codigo.Attrs().Required)
}

func TestMerge(t *testing.T) {
	a := NewObject(Props(
		P("k", NewString(Describe("from a"))),
		P("onlyA", NewBoolean()),
	), Describe("A"))
	bk := NewInteger(Nullable(), Describe("from b"))
	b := NewObject(Props(
		P("onlyB", NewBoolean()),
		P("k", bk),
	), Describe("B"))

	merged := Merge(a, b)
	assert.Equal(t, []string{"k", "onlyA", "onlyB"}, merged.Properties.Keys())
	got, _ := merged.Properties.Get("k")
	assert.Same(t, bk, got)
	assert.Equal(t, "B", merged.Description)

	// inputs are untouched
	assert.Equal(t, []string{"k", "onlyA"}, a.Properties.Keys())
	assert.Equal(t, []string{"onlyB", "k"}, b.Properties.Keys())
}

func TestMergeSingleIsCopy(t *testing.T) {
	a := ambiente()
	merged := Merge(a)

	assert.Equal(t, a.Base, merged.Base)
	assert.Equal(t, a.Properties.Keys(), merged.Properties.Keys())
	a.Properties.Each(func(k string, v Type) bool {
		got, _ := merged.Properties.Get(k)
		assert.Same(t, v, got)
		return true
	})
	assert.NotSame(t, a, merged)
}

func TestExtendsRetarget(t *testing.T) {
	src := NewObject(Props(P("x", NewReference("Z"))))

	props, err := Extends(src, Patch{Properties: map[string]FieldPatch{"x": Retarget("Y")}})
	require.NoError(t, err)

	x, _ := props.Get("x")
	ref := x.(*Reference)
	assert.Equal(t, Token("Y"), ref.TargetsTo)
	assert.False(t, ref.Nullable)
	assert.True(t, ref.Required)
	assert.Equal(t, DefaultDescription, ref.Description)

	orig, _ := src.Properties.Get("x")
	assert.Equal(t, Token("Z"), orig.(*Reference).TargetsTo)
}

func TestExtendsFields(t *testing.T) {
	src := ambiente()

	props, err := Extends(src, Patch{Properties: map[string]FieldPatch{
		"nome":       {Nullable: Ptr(true), Description: Ptr("Apelido.")},
		"capacidade": {Required: Ptr(false), Default: int64(30)},
		"tipo":       Replace(NewString(WithFormat(FormatUUID))),
	}})
	require.NoError(t, err)
	assert.Equal(t, src.Properties.Keys(), props.Keys())

	nome, _ := props.Get("nome")
	assert.True(t, nome.Attrs().Nullable)
	assert.True(t, nome.Attrs().Required)
	assert.Equal(t, "Apelido.", nome.Attrs().Description)

	capacidade, _ := props.Get("capacidade")
	assert.False(t, capacidade.Attrs().Required)
	assert.True(t, capacidade.Attrs().Nullable)
	assert.Equal(t, int64(30), capacidade.Attrs().Default)

	tipo, _ := props.Get("tipo")
	require.IsType(t, &String{}, tipo)
	assert.Equal(t, FormatUUID, tipo.(*String).Format)
}

func TestExtendsErrors(t *testing.T) {
	src := ambiente()

	tests := []struct {
		name    string
		patch   Patch
		unknown string
		variant string
	}{
		{
			name:    "unknown key",
			patch:   Patch{Properties: map[string]FieldPatch{"andar": Retarget("X")}},
			unknown: "andar",
		},
		{
			name:    "targetsTo on string",
			patch:   Patch{Properties: map[string]FieldPatch{"nome": Retarget("X")}},
			variant: "string",
		},
		{
			name:    "format on integer",
			patch:   Patch{Properties: map[string]FieldPatch{"capacidade": {Format: Ptr(FormatDate)}}},
			variant: "integer",
		},
		{
			name:    "of on reference",
			patch:   Patch{Properties: map[string]FieldPatch{"bloco": {Of: NewString()}}},
			variant: "reference",
		},
		{
			name:    "properties on string",
			patch:   Patch{Properties: map[string]FieldPatch{"nome": {Properties: Props()}}},
			variant: "string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extends(src, tt.patch)
			require.Error(t, err)

			if tt.unknown != "" {
				var unknown *UnknownPropertyError
				require.True(t, errors.As(err, &unknown))
				assert.Equal(t, "extends", unknown.Op)
				assert.Equal(t, tt.unknown, unknown.Key)
				return
			}
			var iv *InvalidVariantError
			require.True(t, errors.As(err, &iv))
			assert.Equal(t, tt.variant, iv.Variant)
		})
	}
}

func TestExtendsTopLevelFields(t *testing.T) {
	src := ambiente()
	patch := Patch{
		Properties:  map[string]FieldPatch{"nome": {Nullable: Ptr(true)}},
		PartialOf:   "Ambiente",
		Description: "Ambiente estendido.",
	}

	props, err := Extends(src, patch)
	require.NoError(t, err)
	assert.Equal(t, src.Properties.Keys(), props.Keys())
	assert.NotEqual(t, "Ambiente estendido.", src.Description)

	tr := From(src).Extends(patch)
	require.NoError(t, tr.Err())
	assert.Equal(t, Token("Ambiente"), tr.shape().PartialOf)

	obj, err := tr.Object()
	require.NoError(t, err)
	assert.Equal(t, "Ambiente estendido.", obj.Description)
	nome, _ := obj.Properties.Get("nome")
	assert.True(t, nome.Attrs().Nullable)
}

func TestExtendsShallow(t *testing.T) {
	src := ambiente()
	nested := Props(P("sigla", NewString()))

	props, err := Extends(src, Patch{Properties: map[string]FieldPatch{
		"tipo": {Properties: nested},
	}})
	require.NoError(t, err)

	tipo, _ := props.Get("tipo")
	assert.Equal(t, []string{"sigla"}, tipo.(*Object).Properties.Keys())

	orig, _ := src.Properties.Get("tipo")
	assert.Equal(t, []string{"codigo"}, orig.(*Object).Properties.Keys())
}

func TestExtendsItems(t *testing.T) {
	src := NewObject(Props(
		P("vinculos", NewArray(NewReference("Vinculo", Describe("Vínculo.")))),
		P("nome", NewString()),
	))

	props, err := Extends(src, Patch{Properties: map[string]FieldPatch{
		"vinculos": {Items: Ptr(Retarget("VinculoFindOneResult"))},
	}})
	require.NoError(t, err)

	vinculos, _ := props.Get("vinculos")
	item := vinculos.(*Array).Of.(*Reference)
	assert.Equal(t, Token("VinculoFindOneResult"), item.TargetsTo)
	assert.Equal(t, "Vínculo.", item.Description)

	orig, _ := src.Properties.Get("vinculos")
	assert.Equal(t, Token("Vinculo"), orig.(*Array).Of.(*Reference).TargetsTo)

	_, err = Extends(src, Patch{Properties: map[string]FieldPatch{
		"nome": {Items: Ptr(Retarget("X"))},
	}})
	var iv *InvalidVariantError
	require.True(t, errors.As(err, &iv))
	assert.Equal(t, "string", iv.Variant)
}
