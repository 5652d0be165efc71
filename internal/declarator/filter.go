package declarator

import (
	"fmt"
	"strings"
)

// Operator is a comparison a query layer may apply to a filtered path
type Operator int

const (
	OpEq Operator = iota
	OpNeq
	OpGt
	OpGte
	OpLt
	OpLte
	OpIn
	OpNin
	OpILike
	OpNull
)

var operatorNames = [...]string{
	OpEq:    "$eq",
	OpNeq:   "$neq",
	OpGt:    "$gt",
	OpGte:   "$gte",
	OpLt:    "$lt",
	OpLte:   "$lte",
	OpIn:    "$in",
	OpNin:   "$nin",
	OpILike: "$ilike",
	OpNull:  "$null",
}

// String returns the operator as written in filter declarations, e.g. "$eq"
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "unknown"
	}
	return operatorNames[o]
}

// ParseOperator converts "$eq" style text to an Operator
func ParseOperator(s string) (Operator, error) {
	for i, name := range operatorNames {
		if name == s {
			return Operator(i), nil
		}
	}
	return 0, fmt.Errorf("unknown filter operator: %s", s)
}

// Filter allows a set of operators on a field path. Path may be dotted to
// reach fields of related entities, e.g. "bloco.campus.id".
type Filter struct {
	Path      string
	Operators []Operator
}

// F builds a Filter
func F(path string, ops ...Operator) Filter {
	return Filter{Path: path, Operators: ops}
}

// Segments splits the path on dots
func (f Filter) Segments() []string {
	if f.Path == "" {
		return nil
	}
	return strings.Split(f.Path, ".")
}

// Allows reports whether op is permitted on the path
func (f Filter) Allows(op Operator) bool {
	for _, o := range f.Operators {
		if o == op {
			return true
		}
	}
	return false
}
