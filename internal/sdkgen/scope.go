package sdkgen

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// ScopedAPI is the unit of generation: the operations belonging to one chain
// key, or to the root when ChainKey is empty.
type ScopedAPI struct {
	ChainKey   string
	Operations []ClassifiedOperation
}

// BuildScopes classifies every operation exactly once and groups the result:
// root and parent operations land on the root scope (parents are callable
// from the root and link to their chain's scope from inside their body),
// children land on their chain key's scope. Scopes are ordered root first,
// then chain keys by first encounter. A parent without children still forces
// its scope into existence, so the synthesized scope set always equals the
// set of distinct chain keys.
func BuildScopes(ops []*ast.OperationDefinition, cfg Config) []*ScopedAPI {
	cfg = cfg.normalized()
	root := &ScopedAPI{}
	scopes := []*ScopedAPI{root}
	byKey := make(map[string]*ScopedAPI)
	scopeFor := func(key string) *ScopedAPI {
		s, ok := byKey[key]
		if !ok {
			s = &ScopedAPI{ChainKey: key}
			byKey[key] = s
			scopes = append(scopes, s)
		}
		return s
	}
	for _, op := range ops {
		c := Classify(op, cfg)
		switch c.Role {
		case RoleParent:
			scopeFor(c.ChainKey)
			root.Operations = append(root.Operations, c)
		case RoleChild:
			s := scopeFor(c.ChainKey)
			s.Operations = append(s.Operations, c)
		default:
			root.Operations = append(root.Operations, c)
		}
	}
	return scopes
}

// SynthesizeScope produces the two declarations for one scope: the factory
// function returning one method per operation, and the companion type alias
// other scopes use to reference this scope's return type.
func SynthesizeScope(s *ScopedAPI, cfg Config) []Decl {
	cfg = cfg.normalized()

	var descs []*ArgDescriptor
	if s.ChainKey != "" {
		descs = append(descs, &ArgDescriptor{
			Name:        cfg.IDName,
			Type:        "string",
			Description: fmt.Sprintf("%s of the %s to scope the returned operations by", cfg.IDName, s.ChainKey),
		})
	}
	descs = append(descs,
		&ArgDescriptor{
			Name:        cfg.RequesterName,
			Type:        cfg.RequesterTypeName,
			Description: "function to call the graphql client",
		},
		&ArgDescriptor{
			Name:        cfg.WrapperName,
			Type:        cfg.WrapperTypeName,
			Optional:    true,
			DefaultExpr: cfg.WrapperDefaultName,
			Description: fmt.Sprintf("wrapper function to process around each request (default %s)", cfg.WrapperDefaultName),
		})
	list := BuildArgList(descs...)

	members := make([]ObjectMember, 0, len(s.Operations))
	for _, c := range s.Operations {
		members = append(members, SynthesizeMethod(c, cfg))
	}

	funcName := ScopeFuncName(s.ChainKey)
	typeName := ScopeTypeName(s.ChainKey)

	summary := "Initialize a set of operations to run against the api"
	if s.ChainKey != "" {
		summary = fmt.Sprintf("Initialize a set of operations, scoped to %s, to run against the api", s.ChainKey)
	}
	doc := []string{summary, ""}
	doc = append(doc, list.DocLines...)
	doc = append(doc, fmt.Sprintf("@returns The set of available operations%s", scopedSuffix(s.ChainKey)))

	fn := FuncDecl{
		Doc:    doc,
		Name:   funcName,
		Params: list.Printed,
		Body: []Stmt{
			Return{X: Object{Multiline: true, Members: members}},
		},
	}
	alias := TypeAlias{
		Doc:  []string{fmt.Sprintf("The returned type from calling %s", funcName)},
		Name: typeName,
		Type: fmt.Sprintf("ReturnType<typeof %s>", funcName),
	}
	return []Decl{fn, alias}
}

func scopedSuffix(chainKey string) string {
	if chainKey == "" {
		return ""
	}
	return fmt.Sprintf(" scoped to %s", chainKey)
}
