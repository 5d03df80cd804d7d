package sdkgen

import "github.com/vektah/gqlparser/v2/ast"

// HasVariable reports whether the operation declares a variable with the
// given name.
func HasVariable(op *ast.OperationDefinition, name string) bool {
	for _, vd := range op.VariableDefinitions {
		if vd.Variable == name {
			return true
		}
	}
	return false
}

// HasOtherVariable reports whether the operation declares any variable with a
// different name.
func HasOtherVariable(op *ast.OperationDefinition, name string) bool {
	for _, vd := range op.VariableDefinitions {
		if vd.Variable != name {
			return true
		}
	}
	return false
}

// HasOptionalVariable reports whether any declared variable is nullable or
// carries a default value. One optional variable is enough to make the whole
// generated variables parameter optional.
func HasOptionalVariable(op *ast.OperationDefinition) bool {
	for _, vd := range op.VariableDefinitions {
		if vd.Type == nil || !vd.Type.NonNull || vd.DefaultValue != nil {
			return true
		}
	}
	return false
}

// IsIDVariable reports whether a single variable definition matches the id
// convention. Both the name and the reduced type must match; a variable
// merely named "id" with another type does not count.
func IsIDVariable(vd *ast.VariableDefinition, cfg Config) bool {
	return vd.Variable == cfg.IDName && ReduceTypeName(vd.Type) == cfg.IDTypeName
}

// HasIDVariable reports whether the operation declares an id-variable.
func HasIDVariable(op *ast.OperationDefinition, cfg Config) bool {
	for _, vd := range op.VariableDefinitions {
		if IsIDVariable(vd, cfg) {
			return true
		}
	}
	return false
}
