package sdkgen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vektah/gqlparser/v2/ast"
)

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func titleFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// stripPrefixFold removes a case-insensitive prefix. The empty-result and
// no-match cases both return the input unchanged.
func stripPrefixFold(s, prefix string) string {
	if len(s) <= len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s
	}
	return s[len(prefix):]
}

// opTypeSuffix maps the operation kind to the suffix used by the external
// typed-documents generator (TeamQuery, CreateIssueMutation, ...).
func opTypeSuffix(op *ast.OperationDefinition) string {
	switch op.Operation {
	case ast.Mutation:
		return "Mutation"
	case ast.Subscription:
		return "Subscription"
	default:
		return "Query"
	}
}

func resultTypeName(op *ast.OperationDefinition) string {
	return titleFirst(op.Name) + opTypeSuffix(op)
}

func variablesTypeName(op *ast.OperationDefinition) string {
	return resultTypeName(op) + "Variables"
}

// DocumentName is the exported constant name for an operation's document
// text (team -> TeamDocument).
func DocumentName(op *ast.OperationDefinition) string {
	return titleFirst(op.Name) + "Document"
}

// ScopeFuncName is the generated factory function name for a chain key; the
// empty key names the root SDK. Deterministic in the key alone so sibling
// scopes can reference each other without inspecting contents.
func ScopeFuncName(chainKey string) string {
	if chainKey == "" {
		return "createSdk"
	}
	return "create" + titleFirst(chainKey) + "Sdk"
}

// ScopeTypeName is the companion return-type alias name for a chain key.
func ScopeTypeName(chainKey string) string {
	if chainKey == "" {
		return "Sdk"
	}
	return titleFirst(chainKey) + "Sdk"
}
