package sdkgen

import "github.com/vektah/gqlparser/v2/ast"

// UnknownType is emitted in place of a type name when a reference has no
// recognizable shape. Generation degrades to a visible placeholder instead of
// failing on schema drift.
const UnknownType = "UNKNOWN_TYPE"

// ReduceTypeName strips list wrappers (non-null is a flag in this AST, so it
// falls away for free) and returns the innermost named type.
func ReduceTypeName(t *ast.Type) string {
	for t != nil {
		if t.NamedType != "" {
			return t.NamedType
		}
		t = t.Elem
	}
	return UnknownType
}

// ReduceListType returns the element type name when the reference is a
// (possibly non-null) list, and ok=false for bare named types or nil.
func ReduceListType(t *ast.Type) (string, bool) {
	if t == nil || t.Elem == nil {
		return "", false
	}
	return ReduceTypeName(t.Elem), true
}
