package schema

// Prop is a single key/type pair used to build Properties
type Prop struct {
	Key  string
	Type Type
}

// P is shorthand for Prop{Key: key, Type: t}
func P(key string, t Type) Prop {
	return Prop{Key: key, Type: t}
}

// Properties is an immutable ordered map from property name to type.
// Keys are unique and insertion order is preserved. A nil *Properties
// behaves like an empty map.
type Properties struct {
	keys   []string
	values map[string]Type
}

// Props builds Properties in the given order. A repeated key replaces the
// earlier value but keeps the position of its first occurrence.
func Props(props ...Prop) *Properties {
	p := &Properties{
		keys:   make([]string, 0, len(props)),
		values: make(map[string]Type, len(props)),
	}
	for _, prop := range props {
		p.set(prop.Key, prop.Type)
	}
	return p
}

func (p *Properties) set(key string, t Type) {
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = t
}

func (p *Properties) copy() *Properties {
	if p == nil {
		return Props()
	}
	c := &Properties{
		keys:   make([]string, len(p.keys), len(p.keys)+4),
		values: make(map[string]Type, len(p.values)),
	}
	copy(c.keys, p.keys)
	for k, v := range p.values {
		c.values[k] = v
	}
	return c
}

// Len returns the number of properties
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property names in order
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Get returns the type stored under key
func (p *Properties) Get(key string) (Type, bool) {
	if p == nil {
		return nil, false
	}
	t, ok := p.values[key]
	return t, ok
}

// Has reports whether key is present
func (p *Properties) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Each calls fn for every property in order, stopping early if fn returns false
func (p *Properties) Each(fn func(key string, t Type) bool) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		if !fn(k, p.values[k]) {
			return
		}
	}
}

// With returns a copy of p with key set to t. An existing key keeps its
// position.
func (p *Properties) With(key string, t Type) *Properties {
	c := p.copy()
	c.set(key, t)
	return c
}

// Without returns a copy of p without the given keys
func (p *Properties) Without(keys ...string) *Properties {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	c := Props()
	p.Each(func(k string, t Type) bool {
		if _, skip := drop[k]; !skip {
			c.set(k, t)
		}
		return true
	})
	return c
}
