package sdkgen

import "fmt"

// SynthesizeMethod produces the method entry for one classified operation:
// its name, parameter list, return type, documentation and body.
func SynthesizeMethod(c ClassifiedOperation, cfg Config) Method {
	cfg = cfg.normalized()
	op := c.Def

	hasID := HasIDVariable(op, cfg)
	hasOther := HasOtherVariable(op, cfg.IDName)
	hasVars := len(op.VariableDefinitions) > 0
	optionalVars := HasOptionalVariable(op)

	resultType := cfg.qualify(resultTypeName(op))
	varsType := cfg.qualify(variablesTypeName(op))
	document := cfg.qualify(DocumentName(op))

	// The method's own parameters. A child never takes the id: it is already
	// in lexical scope from the enclosing scoped-API function.
	var descs []*ArgDescriptor
	if hasID && c.Role != RoleChild {
		descs = append(descs, &ArgDescriptor{
			Name:        cfg.IDName,
			Type:        "string",
			Description: fmt.Sprintf("%s to pass into the %s", cfg.IDName, resultTypeName(op)),
		})
	}
	switch {
	case hasID && hasOther:
		// The id arrives separately, so the variables type excludes it.
		descs = append(descs, &ArgDescriptor{
			Name:        cfg.VarsName,
			Type:        fmt.Sprintf("Omit<%s, %q>", varsType, cfg.IDName),
			Optional:    optionalVars,
			Description: fmt.Sprintf("variables without %s to pass into the %s", cfg.IDName, resultTypeName(op)),
		})
	case !hasID && hasVars:
		descs = append(descs, &ArgDescriptor{
			Name:        cfg.VarsName,
			Type:        varsType,
			Optional:    optionalVars,
			Description: fmt.Sprintf("variables to pass into the %s", resultTypeName(op)),
		})
	}
	descs = append(descs, &ArgDescriptor{
		Name:        cfg.OptionsName,
		Type:        cfg.OptionsTypeName,
		Optional:    true,
		Description: "options to pass to the graphql client",
	})
	list := BuildArgList(descs...)

	// Variables handed to the transport call.
	var varsExpr Expr
	switch {
	case hasID && hasOther:
		varsExpr = Object{Members: []ObjectMember{
			Entry{Key: cfg.IDName, Value: Ident(cfg.IDName)},
			Spread{X: Ident(cfg.VarsName)},
		}}
	case hasID:
		varsExpr = Object{Members: []ObjectMember{
			Entry{Key: cfg.IDName, Value: Ident(cfg.IDName)},
		}}
	case hasVars:
		varsExpr = Ident(cfg.VarsName)
	default:
		varsExpr = Ident("undefined")
	}

	transport := Call{
		Callee:   Ident(cfg.RequesterName),
		TypeArgs: []string{resultType, varsType},
		Args:     []Expr{Ident(document), varsExpr, Ident(cfg.OptionsName)},
	}
	wrapped := Call{Callee: Ident(cfg.WrapperName), Args: []Expr{Arrow{Body: transport}}}

	respType := fmt.Sprintf("%s<%s>", cfg.ResponseTypeName, resultType)
	name := methodName(c)

	doc := []string{fmt.Sprintf("%s %s for %s", titleFirst(string(op.Operation)), op.Name, respType), ""}
	doc = append(doc, list.DocLines...)

	if c.Role == RoleParent {
		doc = append(doc, fmt.Sprintf("@returns The result of the %s plus the %s-scoped api", resultTypeName(op), c.ChainKey))
		scopedCall := Call{
			Callee: Ident(ScopeFuncName(c.ChainKey)),
			Args:   []Expr{Ident(cfg.IDName), Ident(cfg.RequesterName), Ident(cfg.WrapperName)},
		}
		return Method{
			Doc:    doc,
			Async:  true,
			Name:   name,
			Params: list.Printed,
			Return: fmt.Sprintf("Promise<%s & %s>", respType, ScopeTypeName(c.ChainKey)),
			Body: []Stmt{
				Const{Name: "response", X: Await{X: wrapped}},
				Return{X: Object{Multiline: true, Members: []ObjectMember{
					Spread{X: Ident("response")},
					Spread{X: scopedCall},
				}}},
			},
		}
	}

	doc = append(doc, fmt.Sprintf("@returns The result of the %s", resultTypeName(op)))
	return Method{
		Doc:    doc,
		Name:   name,
		Params: list.Printed,
		Return: fmt.Sprintf("Promise<%s>", respType),
		Body:   []Stmt{Return{X: wrapped}},
	}
}

// methodName derives the emitted method name. Child operations drop the
// chain-key prefix (teamIssues inside the team scope becomes issues); every
// method name starts lowercase.
func methodName(c ClassifiedOperation) string {
	name := c.Def.Name
	if c.Role == RoleChild {
		name = stripPrefixFold(name, c.ChainKey)
	}
	return lowerFirst(name)
}
