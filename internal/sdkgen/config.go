package sdkgen

import "strings"

// Config names every identifier the generator references in its output. All
// components take it by parameter; nothing reads naming conventions from
// package state.
type Config struct {
	// IDName is the conventional identifier variable name, usually "id".
	IDName string
	// IDTypeName is the GraphQL scalar a variable must reduce to before it
	// counts as an id-variable, usually "ID".
	IDTypeName string
	// VarsName is the parameter name for the generated variables object.
	VarsName string
	// RequesterName / RequesterTypeName name the transport function parameter
	// and its type in generated output.
	RequesterName     string
	RequesterTypeName string
	// WrapperName / WrapperTypeName / WrapperDefaultName name the wrapper
	// parameter, its type, and the default implementation it falls back to.
	WrapperName        string
	WrapperTypeName    string
	WrapperDefaultName string
	// ResponseTypeName is the generic response type wrapped around every
	// operation result.
	ResponseTypeName string
	// OptionsName / OptionsTypeName name the per-call options parameter.
	OptionsName     string
	OptionsTypeName string
	// Namespace qualifies references to externally generated operation types
	// and documents (e.g. "D" produces "D.TeamQuery").
	Namespace string
}

// DefaultConfig returns the conventional identifier set.
func DefaultConfig() Config {
	return Config{
		IDName:             "id",
		IDTypeName:         "ID",
		VarsName:           "vars",
		RequesterName:      "requester",
		RequesterTypeName:  "Requester",
		WrapperName:        "wrapper",
		WrapperTypeName:    "Wrapper",
		WrapperDefaultName: "defaultWrapper",
		ResponseTypeName:   "Response",
		OptionsName:        "opts",
		OptionsTypeName:    "RequestOptions",
		Namespace:          "D",
	}
}

// normalized fills any blank field from the defaults so callers may set only
// the names they care about.
func (c Config) normalized() Config {
	d := DefaultConfig()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&c.IDName, d.IDName)
	fill(&c.IDTypeName, d.IDTypeName)
	fill(&c.VarsName, d.VarsName)
	fill(&c.RequesterName, d.RequesterName)
	fill(&c.RequesterTypeName, d.RequesterTypeName)
	fill(&c.WrapperName, d.WrapperName)
	fill(&c.WrapperTypeName, d.WrapperTypeName)
	fill(&c.WrapperDefaultName, d.WrapperDefaultName)
	fill(&c.ResponseTypeName, d.ResponseTypeName)
	fill(&c.OptionsName, d.OptionsName)
	fill(&c.OptionsTypeName, d.OptionsTypeName)
	fill(&c.Namespace, d.Namespace)
	return c
}

// qualify prefixes a generated type or document identifier with the
// configured namespace.
func (c Config) qualify(name string) string {
	if c.Namespace == "" {
		return name
	}
	return c.Namespace + "." + name
}
