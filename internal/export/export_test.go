package export

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sisgea/unispec/internal/catalog"
	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
)

func TestDocJSONKeepsOrder(t *testing.T) {
	d := Doc{
		{Key: "z", Value: 1},
		{Key: "a", Value: Doc{{Key: "y", Value: true}, {Key: "b", Value: nil}}},
		{Key: "m", Value: []any{"x", Doc{{Key: "k", Value: "v"}}}},
	}

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"y":true,"b":null},"m":["x",{"k":"v"}]}`, string(out))

	empty, err := json.Marshal(Doc(nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestDocYAMLKeepsOrder(t *testing.T) {
	d := Doc{
		{Key: "z", Value: 1},
		{Key: "a", Value: Doc{{Key: "k", Value: true}, {Key: "b", Value: "v"}}},
		{Key: "m", Value: []any{"x", "w"}},
	}

	out, err := yaml.Marshal(d)
	require.NoError(t, err)

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &root))
	require.Len(t, root.Content, 1)
	top := root.Content[0]
	require.Equal(t, yaml.MappingNode, top.Kind)
	assert.Equal(t, []string{"z", "a", "m"}, mappingKeys(top))
	assert.Equal(t, []string{"k", "b"}, mappingKeys(top.Content[3]))
	assert.Equal(t, yaml.SequenceNode, top.Content[5].Kind)
	assert.Len(t, top.Content[5].Content, 2)
}

func mappingKeys(n *yaml.Node) []string {
	var keys []string
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}

func TestDocSetGet(t *testing.T) {
	var d Doc
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, d.Keys())
	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = d.Get("c")
	assert.False(t, ok)
}

func TestNodeTypes(t *testing.T) {
	s := Node(schema.NewString(schema.WithFormat(schema.FormatUUID), schema.MinLength(1), schema.Extension("x-trim", true)))
	assert.Equal(t, []string{"kind", "type", "nullable", "required", "description", "format", "constraints"}, s.Keys())
	format, _ := s.Get("format")
	assert.Equal(t, "uuid", format)
	cons, _ := s.Get("constraints")
	assert.Equal(t, []string{"minLength", "x-trim"}, cons.(Doc).Keys())

	i := Node(schema.NewInteger(schema.Default(int64(3))))
	def, ok := i.Get("default")
	assert.True(t, ok)
	assert.Equal(t, int64(3), def)
	_, ok = i.Get("constraints")
	assert.False(t, ok)

	ref := Node(schema.NewReference("Bloco"))
	target, _ := ref.Get("targetsTo")
	assert.Equal(t, "Bloco", target)

	arr := Node(schema.NewArray(schema.NewBoolean()))
	of, _ := arr.Get("of")
	typ, _ := of.(Doc).Get("type")
	assert.Equal(t, "boolean", typ)

	v := Node(schema.NewView(schema.ViewOptions{Name: "V", Type: schema.NewObject(schema.Props(schema.P("id", schema.NewString())))}))
	partialOf, ok := v.Get("partialOf")
	assert.True(t, ok)
	assert.Nil(t, partialOf)
	props, _ := v.Get("properties")
	assert.Equal(t, []string{"id"}, props.(Doc).Keys())

	ext := Node(&registry.External{Token: "Campus"})
	kind, _ := ext.Get("kind")
	assert.Equal(t, "external", kind)
}

func TestNodeDeclarator(t *testing.T) {
	d := declarator.Compile("Bloco", declarator.Operations{
		CRUD: declarator.CRUD{
			FindByID: declarator.Enabled(declarator.FindByID{Name: "BlocoFindOneById", Input: "BlocoFindOneInput", Output: "BlocoFindOneResult"}),
			Create:   declarator.Disabled[declarator.Create](),
			List: declarator.Enabled(declarator.List{
				Name:    "BlocoList",
				View:    "BlocoFindAllResult",
				Filters: []declarator.Filter{declarator.F("campus.id", declarator.OpEq, declarator.OpIn)},
			}),
		},
		Extra: []declarator.Extra{{
			Key:        "getCoverImage",
			Name:       "BlocoGetCoverImage",
			Input:      "BlocoFindOneInput",
			Attributes: map[string]any{"output.strategy": "file"},
		}},
	})

	out, err := json.Marshal(Node(d))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "declarator",
		"entity": "Bloco",
		"operations": {
			"crud": {
				"findById": {"name": "BlocoFindOneById", "input": "BlocoFindOneInput", "output": "BlocoFindOneResult"},
				"create": false,
				"list": {"name": "BlocoList", "view": "BlocoFindAllResult", "filters": [["campus.id", ["$eq", "$in"]]]}
			},
			"extra": {
				"getCoverImage": {
					"name": "BlocoGetCoverImage",
					"description": "",
					"input": "BlocoFindOneInput",
					"attributes": {"output.strategy": "file"}
				}
			}
		}
	}`, string(out))

	crud := Node(d)[2].Value.(Doc)[0].Value.(Doc)
	assert.Equal(t, []string{"findById", "create", "list"}, crud.Keys())
}

func TestEncodeCatalog(t *testing.T) {
	reg, err := registry.Build(catalog.Root())
	require.NoError(t, err)

	js, err := Encode(reg, FormatJSON)
	require.NoError(t, err)
	assert.True(t, json.Valid(js))
	assert.True(t, strings.HasPrefix(string(js), "{"))
	assert.Less(t, strings.Index(string(js), `"version"`), strings.Index(string(js), `"nodes"`))

	ym, err := Encode(reg, FormatYAML)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(ym, &decoded))
	assert.Len(t, decoded["nodes"], reg.Len())
	assert.True(t, strings.HasPrefix(string(ym), "version: 1\nnodes:\n"))

	_, err = Encode(reg, Format("toml"))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := registry.Build(catalog.Root())
	require.NoError(t, err)
	b, err := registry.Build(catalog.Root())
	require.NoError(t, err)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.Len(t, fa, 64)

	c, err := registry.Build(catalog.CalendarioProvider())
	require.NoError(t, err)
	fc, err := Fingerprint(c)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
