package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropsOrder(t *testing.T) {
	a, b := NewString(), NewInteger()
	p := Props(P("nome", a), P("capacidade", b), P("nome", b))

	assert.Equal(t, []string{"nome", "capacidade"}, p.Keys())
	got, ok := p.Get("nome")
	assert.True(t, ok)
	assert.Same(t, b, got)
}

func TestPropertiesNil(t *testing.T) {
	var p *Properties

	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Keys())
	assert.False(t, p.Has("id"))
	p.Each(func(string, Type) bool {
		t.Fatal("Each must not call fn on nil properties")
		return true
	})
	assert.Equal(t, []string{"id"}, p.With("id", NewString()).Keys())
}

func TestPropertiesWithWithout(t *testing.T) {
	p := Props(P("a", NewString()), P("b", NewString()), P("c", NewString()))

	with := p.With("b", NewBoolean()).With("d", NewBoolean())
	assert.Equal(t, []string{"a", "b", "c", "d"}, with.Keys())
	got, _ := with.Get("b")
	assert.Equal(t, TypeBoolean, got.TypeKind())

	without := p.Without("a", "c", "missing")
	assert.Equal(t, []string{"b"}, without.Keys())

	// p is untouched
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
	orig, _ := p.Get("b")
	assert.Equal(t, TypeString, orig.TypeKind())
}

func TestPropertiesKeysIsCopy(t *testing.T) {
	p := Props(P("a", NewString()))
	keys := p.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"a"}, p.Keys())
}

func TestPropertiesEachStops(t *testing.T) {
	p := Props(P("a", NewString()), P("b", NewString()), P("c", NewString()))
	var seen []string
	p.Each(func(k string, _ Type) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}
