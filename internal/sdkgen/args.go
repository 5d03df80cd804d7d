package sdkgen

import "fmt"

// ArgDescriptor describes one parameter of a generated function or method.
type ArgDescriptor struct {
	Name        string
	Type        string
	Optional    bool
	Description string
	// DefaultExpr, when set on an optional argument, renders as a default
	// value instead of a "?" marker.
	DefaultExpr string
}

// ArgList is the ordered, deduplicated output of BuildArgList.
type ArgList struct {
	Args []ArgDescriptor
	// Printed holds one rendered parameter fragment per argument, in the
	// same order as Args.
	Printed []string
	// DocLines holds one @param documentation line per argument, independent
	// of the rendered signature.
	DocLines []string
}

// BuildArgList filters out absent descriptors, deduplicates by name (the
// last occurrence's content wins, the first occurrence's position is kept)
// and stably partitions required arguments before optional ones. Relative
// order within each partition is preserved.
func BuildArgList(args ...*ArgDescriptor) ArgList {
	index := make(map[string]int)
	merged := make([]ArgDescriptor, 0, len(args))
	for _, a := range args {
		if a == nil {
			continue
		}
		if at, ok := index[a.Name]; ok {
			merged[at] = *a
			continue
		}
		index[a.Name] = len(merged)
		merged = append(merged, *a)
	}

	ordered := make([]ArgDescriptor, 0, len(merged))
	for _, a := range merged {
		if !a.Optional {
			ordered = append(ordered, a)
		}
	}
	for _, a := range merged {
		if a.Optional {
			ordered = append(ordered, a)
		}
	}

	out := ArgList{Args: ordered}
	for _, a := range ordered {
		out.Printed = append(out.Printed, printArg(a))
		out.DocLines = append(out.DocLines, fmt.Sprintf("@param %s - %s", a.Name, a.Description))
	}
	return out
}

func printArg(a ArgDescriptor) string {
	switch {
	case a.Optional && a.DefaultExpr != "":
		return fmt.Sprintf("%s: %s = %s", a.Name, a.Type, a.DefaultExpr)
	case a.Optional:
		return fmt.Sprintf("%s?: %s", a.Name, a.Type)
	default:
		return fmt.Sprintf("%s: %s", a.Name, a.Type)
	}
}
