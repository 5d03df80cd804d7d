package sdkgen

import (
	"fmt"
	"strings"
)

// Preamble renders the support declarations every generated scope depends
// on: the namespace import for externally generated operation types, the
// response/options shapes, the requester and wrapper signatures, and the
// default wrapper. The scope blocks from Generate are appended after it.
func Preamble(cfg Config, typesModule string) string {
	cfg = cfg.normalized()
	if strings.TrimSpace(typesModule) == "" {
		typesModule = "./types"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "import { DocumentNode } from \"graphql\";\n")
	fmt.Fprintf(&b, "import * as %s from %q;\n\n", cfg.Namespace, typesModule)
	fmt.Fprintf(&b, "/** Options passed through to the graphql client on each call. */\n")
	fmt.Fprintf(&b, "export type %s = Record<string, unknown>;\n\n", cfg.OptionsTypeName)
	fmt.Fprintf(&b, "/** Normalized result of a single operation. */\n")
	fmt.Fprintf(&b, "export type %s<T> = {\n", cfg.ResponseTypeName)
	fmt.Fprintf(&b, "  status: number;\n")
	fmt.Fprintf(&b, "  data?: T;\n")
	fmt.Fprintf(&b, "  error?: string;\n")
	fmt.Fprintf(&b, "};\n\n")
	fmt.Fprintf(&b, "/** The transport function the caller supplies to execute operations. */\n")
	fmt.Fprintf(&b, "export type %s = <R, V>(doc: DocumentNode | string, %s?: V, %s?: %s) => Promise<%s<R>>;\n\n",
		cfg.RequesterTypeName, cfg.VarsName, cfg.OptionsName, cfg.OptionsTypeName, cfg.ResponseTypeName)
	fmt.Fprintf(&b, "/** A function composed around every transport call. */\n")
	fmt.Fprintf(&b, "export type %s = <T>(action: () => Promise<T>) => Promise<T>;\n\n", cfg.WrapperTypeName)
	fmt.Fprintf(&b, "/** The identity wrapper used when the caller supplies none. */\n")
	fmt.Fprintf(&b, "export const %s: %s = (action) => action();\n", cfg.WrapperDefaultName, cfg.WrapperTypeName)
	return b.String()
}
