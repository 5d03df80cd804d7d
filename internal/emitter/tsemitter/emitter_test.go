package tsemitter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/laurenfazah/gql2sdk/internal/gqldoc"
	"github.com/laurenfazah/gql2sdk/internal/sdkgen"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func sampleSet(t *testing.T) *gqldoc.DocumentSet {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Name: "sample.graphql", Input: `
query team($id: ID!) {
  team {
    id
    name
  }
}

query teamIssues($id: ID!) {
  team {
    issues {
      nodes {
        id
      }
    }
  }
}

query viewer {
  viewer {
    id
  }
}
`})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return &gqldoc.DocumentSet{Operations: doc.Operations, Fragments: doc.Fragments}
}

func TestEmit_DryRun_Plan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	res, err := Emit(ctx, sampleSet(t), sdkgen.DefaultConfig(), Options{
		OutDir:  dir,
		SdkName: "mysdk",
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.SdkName != "mysdk" || res.PackageName != "mysdk" {
		t.Fatalf("names mismatch: %+v", res)
	}
	want := []string{
		"package.json",
		"tsconfig.json",
		"README.md",
		filepath.ToSlash(filepath.Join("src", "sdk.ts")),
		filepath.ToSlash(filepath.Join("src", "documents.ts")),
		filepath.ToSlash(filepath.Join("src", "index.ts")),
	}
	have := make(map[string]bool, len(res.Planned))
	for _, pf := range res.Planned {
		have[pf.RelPath] = true
	}
	for _, p := range want {
		if !have[p] {
			t.Fatalf("planned missing %s", p)
		}
	}
	// Dry-run should not have written files
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("expected no files written on dry-run")
	}
}

func TestEmit_WriteAndContents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	_, err := Emit(ctx, sampleSet(t), sdkgen.DefaultConfig(), Options{
		OutDir:      dir,
		SdkName:     "mysdk",
		PackageName: "@acme/mysdk",
		Force:       true,
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	pkg, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}
	if !strings.Contains(string(pkg), `"name": "@acme/mysdk"`) {
		t.Fatalf("package.json missing name: %s", string(pkg))
	}

	sdk, err := os.ReadFile(filepath.Join(dir, "src", "sdk.ts"))
	if err != nil {
		t.Fatalf("read sdk.ts: %v", err)
	}
	for _, frag := range []string{
		"export const defaultWrapper: Wrapper",
		"export function createSdk(requester: Requester, wrapper: Wrapper = defaultWrapper) {",
		"export function createTeamSdk(id: string, requester: Requester, wrapper: Wrapper = defaultWrapper) {",
		"...createTeamSdk(id, requester, wrapper),",
	} {
		if !strings.Contains(string(sdk), frag) {
			t.Fatalf("sdk.ts missing %q:\n%s", frag, string(sdk))
		}
	}

	docs, err := os.ReadFile(filepath.Join(dir, "src", "documents.ts"))
	if err != nil {
		t.Fatalf("read documents.ts: %v", err)
	}
	for _, frag := range []string{"export const TeamDocument", "export const TeamIssuesDocument", "export const ViewerDocument"} {
		if !strings.Contains(string(docs), frag) {
			t.Fatalf("documents.ts missing %q:\n%s", frag, string(docs))
		}
	}
}

func TestEmit_NoForce_NonEmptyDir(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("prewrite: %v", err)
	}
	_, err := Emit(ctx, sampleSet(t), sdkgen.DefaultConfig(), Options{OutDir: dir, SdkName: "sdk"})
	if err == nil {
		t.Fatalf("expected error on non-empty dir without force")
	}
}

func TestEmit_NilSet(t *testing.T) {
	t.Parallel()
	if _, err := Emit(context.Background(), nil, sdkgen.DefaultConfig(), Options{OutDir: t.TempDir()}); err == nil {
		t.Fatalf("expected error for nil document set")
	}
}
