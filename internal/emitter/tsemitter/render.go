package tsemitter

import (
	"fmt"
	"strings"

	"github.com/laurenfazah/gql2sdk/internal/gqldoc"
	"github.com/laurenfazah/gql2sdk/internal/sdkgen"
)

const generatedHeader = "// Generated by gql2sdk - DO NOT EDIT\n"

func renderSdkTs(gen *sdkgen.Result, cfg sdkgen.Config, typesModule string) string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n")
	b.WriteString(sdkgen.Preamble(cfg, typesModule))
	b.WriteString("\n")
	b.WriteString(gen.Source())
	return b.String()
}

func renderDocumentsTs(set *gqldoc.DocumentSet) string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	for _, op := range set.Operations {
		src := strings.TrimRight(set.OperationSource(op), "\n")
		// Backticks would terminate the template literal early.
		src = strings.ReplaceAll(src, "`", "\\`")
		fmt.Fprintf(&b, "\n/** Document for the %s %s. */\n", op.Name, op.Operation)
		fmt.Fprintf(&b, "export const %s = `\n%s\n`;\n", sdkgen.DocumentName(op), src)
	}
	return b.String()
}

func renderIndexTs() string {
	return generatedHeader + `
export * from "./sdk";
export * from "./documents";
`
}

func renderPackageJSON(packageName string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "version": "0.1.0",
  "description": "Generated GraphQL client SDK",
  "main": "dist/index.js",
  "types": "dist/index.d.ts",
  "scripts": {
    "build": "tsc -p tsconfig.json"
  },
  "peerDependencies": {
    "graphql": "^15.0.0 || ^16.0.0"
  },
  "devDependencies": {
    "typescript": "^5.0.0"
  }
}
`, packageName)
}

func renderTsconfig() string {
	return `{
  "compilerOptions": {
    "target": "ES2019",
    "module": "commonjs",
    "declaration": true,
    "outDir": "dist",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`
}

func renderReadme(sdkName string, gen *sdkgen.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", sdkName)
	b.WriteString("Generated GraphQL client SDK. Call the root factory with a requester that\n")
	b.WriteString("executes operations against your server:\n\n")
	b.WriteString("```ts\n")
	b.WriteString("const sdk = createSdk(requester);\n")
	b.WriteString("```\n\n")
	b.WriteString("The requester conforms to\n")
	b.WriteString("`(document, variables, options) => Promise<{ status, data, error }>` and is\n")
	b.WriteString("supplied by the caller; an optional wrapper function composes cross-cutting\n")
	b.WriteString("behavior (logging, retry) around every call.\n\n")
	b.WriteString("Generated scopes:\n\n")
	for _, s := range gen.Scopes {
		key := s.ChainKey
		if key == "" {
			key = "root"
		}
		fmt.Fprintf(&b, "- `%s` (%s scope), return type `%s`\n", s.FuncName, key, s.TypeName)
	}
	b.WriteString("\nThe `src/sdk.ts` module imports operation result/variable types and\n")
	b.WriteString("documents from a `types` module produced by your typed-documents generator;\n")
	b.WriteString("`src/documents.ts` additionally exports the raw operation texts.\n")
	return b.String()
}
