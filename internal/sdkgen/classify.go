package sdkgen

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// ChainRole places an operation in the chaining hierarchy.
type ChainRole int

const (
	// RoleRoot operations hang directly off the root SDK.
	RoleRoot ChainRole = iota
	// RoleParent operations return "the thing itself" and expose a nested
	// scoped API on their result.
	RoleParent
	// RoleChild operations only appear inside their chain key's scoped API.
	RoleChild
)

func (r ChainRole) String() string {
	switch r {
	case RoleParent:
		return "parent"
	case RoleChild:
		return "child"
	default:
		return "root"
	}
}

// ClassifiedOperation annotates an operation definition with its derived
// role. ChainKey is non-empty exactly when Role is not RoleRoot.
type ClassifiedOperation struct {
	Def      *ast.OperationDefinition
	Role     ChainRole
	ChainKey string
}

// firstFieldName returns the name of the first field selection at the top
// level of the operation, skipping fragment spreads and inline fragments.
func firstFieldName(op *ast.OperationDefinition) string {
	for _, sel := range op.SelectionSet {
		if f, ok := sel.(*ast.Field); ok {
			return f.Name
		}
	}
	return ""
}

// Classify derives an operation's chain role from its name and shape.
//
// An operation is a parent when it has an id-variable and its name equals its
// first selected field exactly; a child when it has an id-variable and its
// name merely starts with that field name (case-insensitively); anything else
// is root. The parent rule wins when both match.
//
// This is a purely syntactic heuristic with no schema verification: an
// operation named teamArchive classifies as a child of "team" even when the
// two are unrelated. Callers accept that risk.
func Classify(op *ast.OperationDefinition, cfg Config) ClassifiedOperation {
	cfg = cfg.normalized()
	first := firstFieldName(op)
	if first != "" && HasIDVariable(op, cfg) {
		if op.Name == first {
			return ClassifiedOperation{Def: op, Role: RoleParent, ChainKey: first}
		}
		if len(op.Name) >= len(first) && strings.EqualFold(op.Name[:len(first)], first) {
			return ClassifiedOperation{Def: op, Role: RoleChild, ChainKey: first}
		}
	}
	return ClassifiedOperation{Def: op, Role: RoleRoot}
}
