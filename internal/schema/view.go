package schema

// ViewOptions configures NewView
type ViewOptions struct {
	Name        Token
	Description string

	// Type is the structure exposed by the view, usually the result of a
	// Transformer pipeline. Its properties and base attributes are copied.
	Type Shape

	// PartialOf overrides the lineage inherited from Type
	PartialOf Token
}

// NewView wraps a structure into a named, externally addressable view
func NewView(opts ViewOptions) *View {
	v := &View{Base: defaultBase(), Properties: Props()}
	if opts.Type != nil {
		v.Base = opts.Type.Attrs()
		v.Properties = opts.Type.Props()
		if src, ok := opts.Type.(*View); ok {
			v.PartialOf = src.PartialOf
		}
	}
	v.Name = opts.Name
	if opts.Description != "" {
		v.Description = opts.Description
	}
	if opts.PartialOf != "" {
		v.PartialOf = opts.PartialOf
	}
	return v
}
