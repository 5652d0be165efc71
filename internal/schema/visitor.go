package schema

// Visitor has one method per type variant. Implementations are checked by
// the compiler, so adding a variant breaks every visitor until it handles it.
type Visitor interface {
	VisitString(*String)
	VisitInteger(*Integer)
	VisitBoolean(*Boolean)
	VisitReference(*Reference)
	VisitArray(*Array)
	VisitObject(*Object)
	VisitView(*View)
}

// Accept dispatches t to the matching Visitor method. A nil t is ignored.
func Accept(t Type, v Visitor) {
	switch n := t.(type) {
	case *String:
		v.VisitString(n)
	case *Integer:
		v.VisitInteger(n)
	case *Boolean:
		v.VisitBoolean(n)
	case *Reference:
		v.VisitReference(n)
	case *Array:
		v.VisitArray(n)
	case *Object:
		v.VisitObject(n)
	case *View:
		v.VisitView(n)
	}
}

// WalkFunc is called for every node reached by Walk. path is a dotted
// location relative to the root, with "[]" marking array elements.
type WalkFunc func(path string, t Type) error

// Walk visits t and every nested element and property type in preorder,
// stopping at the first error returned by fn.
func Walk(path string, t Type, fn WalkFunc) error {
	if err := fn(path, t); err != nil {
		return err
	}
	switch n := t.(type) {
	case *Array:
		if n.Of != nil {
			return Walk(path+"[]", n.Of, fn)
		}
	case Shape:
		var err error
		n.Props().Each(func(k string, child Type) bool {
			err = Walk(join(path, k), child, fn)
			return err == nil
		})
		return err
	}
	return nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
