package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/schema"
)

func view(name schema.Token, props ...schema.Prop) *schema.View {
	return schema.NewView(schema.ViewOptions{Name: name, Type: schema.NewObject(schema.Props(props...))})
}

func TestFlattenPreorder(t *testing.T) {
	x := schema.NewObject(nil)
	z := view("Z")
	w := view("W")

	nodes, err := Flatten(Module(x, Module(z, w)))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Same(t, x, nodes[0])
	assert.Same(t, z, nodes[1])
	assert.Same(t, w, nodes[2])
}

func TestFlattenDeepNesting(t *testing.T) {
	a, b, c, d, e := view("A"), view("B"), view("C"), view("D"), view("E")

	root := NewProvider(func(ctx *Context) {
		ctx.Add(a)
		ctx.Add(Module(b, Module(c)))
		ctx.Add(NewProvider(func(ctx *Context) {
			ctx.Add(Module(), d)
		}))
		ctx.Add(e)
	})

	nodes, err := Flatten(root)
	require.NoError(t, err)

	var names []schema.Token
	for _, n := range nodes {
		names = append(names, n.(*schema.View).Name)
	}
	assert.Equal(t, []schema.Token{"A", "B", "C", "D", "E"}, names)
}

func TestFlattenIsDeterministic(t *testing.T) {
	root := Module(view("A"), Module(view("B")))

	first, err := Flatten(root)
	require.NoError(t, err)
	second, err := Flatten(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFlattenCycle(t *testing.T) {
	var root *Provider
	root = NewProvider(func(ctx *Context) {
		ctx.Add(view("A"), Module(NewProvider(func(ctx *Context) {
			ctx.Add(root)
		})))
	})

	_, err := Flatten(root)
	var cycle *ProviderCycleError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, 3, cycle.Depth)
}

func TestFlattenSharedProviderIsNotCycle(t *testing.T) {
	shared := Module(view("S"))
	nodes, err := Flatten(Module(shared, shared))
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestContextErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("view error", func(t *testing.T) {
		root := NewProvider(func(ctx *Context) {
			v := ctx.View(schema.From(schema.NewObject(nil)).Pick(schema.Keys("x")).View("X", ""))
			assert.Nil(t, v)
			ctx.Add(view("A"))
		})
		_, err := Flatten(root)
		var unknown *schema.UnknownPropertyError
		assert.True(t, errors.As(err, &unknown))
	})

	t.Run("first error wins", func(t *testing.T) {
		root := NewProvider(func(ctx *Context) {
			ctx.Fail(boom)
			ctx.Fail(errors.New("later"))
		})
		_, err := Flatten(root)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil node", func(t *testing.T) {
		var v *schema.View
		_, err := Flatten(Module(v))
		assert.Error(t, err)
	})

	t.Run("view added", func(t *testing.T) {
		var got *schema.View
		root := NewProvider(func(ctx *Context) {
			got = ctx.View(schema.From(schema.NewObject(nil)).View("X", ""))
		})
		nodes, err := Flatten(root)
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		assert.Same(t, got, nodes[0])
	})
}

func crud(entity schema.Token) *declarator.Declarator {
	return declarator.Compile(entity, declarator.Operations{CRUD: declarator.CRUD{
		FindByID: declarator.Enabled(declarator.FindByID{
			Name:   entity + "FindOneById",
			Input:  entity + "FindOneInput",
			Output: entity + "FindOneResult",
		}),
		DeleteByID: declarator.Disabled[declarator.DeleteByID](),
	}})
}

func TestBuild(t *testing.T) {
	entity := schema.Entity(schema.EntityOptions{ID: schema.IDUUID})
	root := Module(
		entity,
		view("Bloco", schema.P("id", schema.NewString())),
		view("BlocoFindOneInput"),
		view("BlocoFindOneResult"),
		crud("Bloco"),
	)

	reg, err := Build(root)
	require.NoError(t, err)
	assert.Equal(t, 5, reg.Len())
	assert.Len(t, reg.Nodes(), 5)
	assert.Equal(t, []*schema.Object{entity}, reg.Entities())
	assert.Len(t, reg.Views(), 3)
	assert.Len(t, reg.Declarators(), 1)

	v, ok := reg.View("BlocoFindOneInput")
	require.True(t, ok)
	assert.Equal(t, schema.Token("BlocoFindOneInput"), v.Name)

	d, ok := reg.Declarator("Bloco")
	require.True(t, ok)
	assert.Equal(t, schema.Token("Bloco"), d.Entity)

	op, ok := reg.Operation("BlocoFindOneById")
	require.True(t, ok)
	assert.Same(t, d, op)

	n, ok := reg.Lookup("Bloco")
	require.True(t, ok)
	assert.IsType(t, &schema.View{}, n)
	n, ok = reg.Lookup("BlocoFindOneById")
	require.True(t, ok)
	assert.Same(t, d, n)
	_, ok = reg.Lookup("Missing")
	assert.False(t, ok)

	assert.Equal(t, []schema.Token{"Bloco", "BlocoFindOneInput", "BlocoFindOneResult", "BlocoFindOneById"}, reg.Tokens())
}

func TestBuildDuplicates(t *testing.T) {
	tests := []struct {
		name      string
		root      *Provider
		namespace string
		dup       schema.Token
		first     int
		second    int
	}{
		{
			name:      "view",
			root:      Module(view("A"), Module(view("B"), view("A"))),
			namespace: NamespaceView,
			dup:       "A",
			first:     0,
			second:    2,
		},
		{
			name:      "declarator",
			root:      Module(crud("Bloco"), view("X"), declarator.Compile("Bloco", declarator.Operations{})),
			namespace: NamespaceDeclarator,
			dup:       "Bloco",
			first:     0,
			second:    2,
		},
		{
			name:      "operation",
			root:      Module(crud("Bloco"), declarator.Compile("Campus", declarator.Operations{CRUD: declarator.CRUD{List: declarator.Enabled(declarator.List{Name: "BlocoFindOneById"})}})),
			namespace: NamespaceOperation,
			dup:       "BlocoFindOneById",
			first:     0,
			second:    1,
		},
		{
			name:      "operation after view",
			root:      Module(view("X"), declarator.Compile("Bloco", declarator.Operations{CRUD: declarator.CRUD{DeleteByID: declarator.Enabled(declarator.DeleteByID{Name: "X"})}})),
			namespace: NamespaceToken,
			dup:       "X",
			first:     0,
			second:    1,
		},
		{
			name:      "view after operation",
			root:      Module(crud("Bloco"), view("BlocoFindOneById")),
			namespace: NamespaceToken,
			dup:       "BlocoFindOneById",
			first:     0,
			second:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.root)
			var dup *DuplicateNodeNameError
			require.True(t, errors.As(err, &dup), "got %v", err)
			assert.Equal(t, tt.namespace, dup.Namespace)
			assert.Equal(t, tt.dup, dup.Name)
			assert.Equal(t, tt.first, dup.First)
			assert.Equal(t, tt.second, dup.Second)
		})
	}
}

func TestBuildInvalidNodes(t *testing.T) {
	tests := []struct {
		name    string
		root    *Provider
		variant string
	}{
		{"bare string", Module(schema.NewString()), "string"},
		{"malformed view", Module(view("A", schema.P("tags", schema.NewArray(nil)))), "array"},
		{"declarator without entity", Module(declarator.Compile("", declarator.Operations{})), "declarator"},
		{"unnamed view", Module(view("")), "view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.root)
			var iv *schema.InvalidVariantError
			require.True(t, errors.As(err, &iv), "got %v", err)
			assert.Equal(t, tt.variant, iv.Variant)
		})
	}

	_, err := Build(nil)
	assert.Error(t, err)
}

func TestBuildLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	_, err := Build(Module(view("A"), Module(view("B"))), WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("expanded provider").Len())
	assert.Equal(t, 2, logs.FilterMessage("registered node").Len())

	built := logs.FilterMessage("registry built").All()
	require.Len(t, built, 1)
	assert.Equal(t, int64(2), built[0].ContextMap()["views"])
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "A", Label(0, view("A")))
	assert.Equal(t, "declarator Bloco", Label(1, crud("Bloco")))
	assert.Equal(t, "entity #2", Label(2, schema.NewObject(nil)))
	assert.Equal(t, "node #3", Label(3, NewProvider(nil)))
}
