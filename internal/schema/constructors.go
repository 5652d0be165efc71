package schema

// StringOption configures a String node
type StringOption interface {
	applyString(*String)
}

// IntegerOption configures an Integer node
type IntegerOption interface {
	applyInteger(*Integer)
}

// Option configures the base attributes shared by every variant. It can be
// passed to any constructor.
type Option func(*Base)

func (o Option) applyString(t *String)   { o(&t.Base) }
func (o Option) applyInteger(t *Integer) { o(&t.Base) }

type stringOption func(*String)

func (o stringOption) applyString(t *String) { o(t) }

type integerOption func(*Integer)

func (o integerOption) applyInteger(t *Integer) { o(t) }

// Nullable marks the node as accepting null
func Nullable() Option {
	return func(b *Base) { b.Nullable = true }
}

// Optional marks the node as not required
func Optional() Option {
	return func(b *Base) { b.Required = false }
}

// Describe sets the node description
func Describe(description string) Option {
	return func(b *Base) { b.Description = description }
}

// Default sets the node default value
func Default(v any) Option {
	return func(b *Base) { b.Default = v }
}

// WithFormat sets the format of a string node
func WithFormat(f StringFormat) StringOption {
	return stringOption(func(t *String) { t.Format = f })
}

// MinLength sets the minimum length of a string node
func MinLength(n int) StringOption {
	return stringOption(func(t *String) { t.Constraints.MinLength = &n })
}

// MaxLength sets the maximum length of a string node
func MaxLength(n int) StringOption {
	return stringOption(func(t *String) { t.Constraints.MaxLength = &n })
}

// Extension adds a vendor constraint to a string node. Keys must start with "x-".
func Extension(key string, v any) StringOption {
	return stringOption(func(t *String) {
		if t.Constraints.Extensions == nil {
			t.Constraints.Extensions = make(map[string]any)
		}
		t.Constraints.Extensions[key] = v
	})
}

// Min sets the minimum value of an integer node
func Min(n int64) IntegerOption {
	return integerOption(func(t *Integer) { t.Constraints.Min = &n })
}

// Max sets the maximum value of an integer node
func Max(n int64) IntegerOption {
	return integerOption(func(t *Integer) { t.Constraints.Max = &n })
}

// Positive requires an integer node to be positive
func Positive() IntegerOption {
	return integerOption(func(t *Integer) { t.Constraints.Positive = true })
}

// IntegerOnly rejects fractional values on an integer node
func IntegerOnly() IntegerOption {
	return integerOption(func(t *Integer) { t.Constraints.Integer = true })
}

// NewString builds a string node
func NewString(opts ...StringOption) *String {
	t := &String{Base: defaultBase()}
	for _, opt := range opts {
		opt.applyString(t)
	}
	return t
}

// NewInteger builds an integer node
func NewInteger(opts ...IntegerOption) *Integer {
	t := &Integer{Base: defaultBase()}
	for _, opt := range opts {
		opt.applyInteger(t)
	}
	return t
}

// NewBoolean builds a boolean node
func NewBoolean(opts ...Option) *Boolean {
	t := &Boolean{Base: defaultBase()}
	applyBase(&t.Base, opts)
	return t
}

// NewReference builds a reference to the node named by target
func NewReference(target Token, opts ...Option) *Reference {
	t := &Reference{Base: defaultBase(), TargetsTo: target}
	applyBase(&t.Base, opts)
	return t
}

// NewArray builds an array whose elements are of type of
func NewArray(of Type, opts ...Option) *Array {
	t := &Array{Base: defaultBase(), Of: of}
	applyBase(&t.Base, opts)
	return t
}

// NewObject builds an object with the given properties. A nil props yields
// an empty object.
func NewObject(props *Properties, opts ...Option) *Object {
	if props == nil {
		props = Props()
	}
	t := &Object{Base: defaultBase(), Properties: props}
	applyBase(&t.Base, opts)
	return t
}

func applyBase(b *Base, opts []Option) {
	for _, opt := range opts {
		opt(b)
	}
}
