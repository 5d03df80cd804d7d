package gqldoc

import (
	"bytes"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// OperationSource renders one operation back to canonical GraphQL text,
// together with every fragment it (transitively) spreads, so the text is
// executable on its own.
func (s *DocumentSet) OperationSource(op *ast.OperationDefinition) string {
	byName := make(map[string]*ast.FragmentDefinition, len(s.Fragments))
	for _, f := range s.Fragments {
		byName[f.Name] = f
	}

	var frags []*ast.FragmentDefinition
	used := make(map[string]struct{})
	var collect func(set ast.SelectionSet)
	collect = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch v := sel.(type) {
			case *ast.Field:
				collect(v.SelectionSet)
			case *ast.InlineFragment:
				collect(v.SelectionSet)
			case *ast.FragmentSpread:
				if _, ok := used[v.Name]; ok {
					continue
				}
				used[v.Name] = struct{}{}
				if f, ok := byName[v.Name]; ok {
					frags = append(frags, f)
					collect(f.SelectionSet)
				}
			}
		}
	}
	collect(op.SelectionSet)

	doc := &ast.QueryDocument{
		Operations: ast.OperationList{op},
		Fragments:  ast.FragmentDefinitionList(frags),
	}
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String()
}
