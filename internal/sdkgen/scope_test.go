package sdkgen

import (
	"strings"
	"testing"
)

const sampleOperations = `
query team($id: ID!) {
  team {
    id
    name
  }
}

query teamIssues($id: ID!, $first: Int) {
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

query issue($id: ID!) {
  issue {
    id
    assignee {
      id
    }
  }
}
`

func TestBuildScopes_Grouping(t *testing.T) {
	t.Parallel()
	scopes := BuildScopes(parseOps(t, sampleOperations), DefaultConfig())

	if len(scopes) != 3 {
		t.Fatalf("expected root + team + issue, got %d scopes", len(scopes))
	}
	root := scopes[0]
	if root.ChainKey != "" {
		t.Fatalf("first scope must be root, got %q", root.ChainKey)
	}
	// Parents and roots accumulate on the root scope in encounter order.
	names := make([]string, 0, len(root.Operations))
	for _, c := range root.Operations {
		names = append(names, c.Def.Name)
	}
	if strings.Join(names, ",") != "team,viewer,issue" {
		t.Fatalf("root operations: got %v", names)
	}

	if scopes[1].ChainKey != "team" || len(scopes[1].Operations) != 1 {
		t.Fatalf("team scope: got %q with %d ops", scopes[1].ChainKey, len(scopes[1].Operations))
	}
	if scopes[1].Operations[0].Def.Name != "teamIssues" {
		t.Fatalf("team scope op: got %q", scopes[1].Operations[0].Def.Name)
	}
	// issue has no children but its scope still exists.
	if scopes[2].ChainKey != "issue" || len(scopes[2].Operations) != 0 {
		t.Fatalf("issue scope: got %q with %d ops", scopes[2].ChainKey, len(scopes[2].Operations))
	}
}

func TestBuildScopes_ScopeSetMatchesChainKeys(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	ops := parseOps(t, sampleOperations)

	want := make(map[string]bool)
	for _, op := range ops {
		if c := Classify(op, cfg); c.Role != RoleRoot {
			want[c.ChainKey] = true
		}
	}

	got := make(map[string]bool)
	for _, s := range BuildScopes(ops, cfg) {
		if s.ChainKey != "" {
			got[s.ChainKey] = true
		}
	}
	if len(got) != len(want) {
		t.Fatalf("scope set mismatch: got %v, want %v", got, want)
	}
	for k := range want {
		if !got[k] {
			t.Fatalf("missing scope %q", k)
		}
	}
}

func TestSynthesizeScope_RootSignature(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	scopes := BuildScopes(parseOps(t, sampleOperations), cfg)
	src := RenderDecls(SynthesizeScope(scopes[0], cfg))

	if !strings.Contains(src, "export function createSdk(requester: Requester, wrapper: Wrapper = defaultWrapper) {") {
		t.Fatalf("root signature missing:\n%s", src)
	}
	if !strings.Contains(src, "export type Sdk = ReturnType<typeof createSdk>;") {
		t.Fatalf("root type alias missing:\n%s", src)
	}
	// Parent methods are reachable from the root.
	if !strings.Contains(src, "async team(id: string, opts?: RequestOptions): Promise<Response<D.TeamQuery> & TeamSdk> {") {
		t.Fatalf("parent method missing:\n%s", src)
	}
	if !strings.Contains(src, "viewer(opts?: RequestOptions): Promise<Response<D.ViewerQuery>> {") {
		t.Fatalf("root method missing:\n%s", src)
	}
}

func TestSynthesizeScope_ScopedSignature(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	scopes := BuildScopes(parseOps(t, sampleOperations), cfg)
	src := RenderDecls(SynthesizeScope(scopes[1], cfg))

	if !strings.Contains(src, "export function createTeamSdk(id: string, requester: Requester, wrapper: Wrapper = defaultWrapper) {") {
		t.Fatalf("scoped signature missing:\n%s", src)
	}
	if !strings.Contains(src, "export type TeamSdk = ReturnType<typeof createTeamSdk>;") {
		t.Fatalf("scoped type alias missing:\n%s", src)
	}
	if !strings.Contains(src, `issues(vars?: Omit<D.TeamIssuesQueryVariables, "id">, opts?: RequestOptions): Promise<Response<D.TeamIssuesQuery>> {`) {
		t.Fatalf("child method missing:\n%s", src)
	}
	// Scoped docs mention the wrapper default.
	if !strings.Contains(src, "@param wrapper - wrapper function to process around each request (default defaultWrapper)") {
		t.Fatalf("wrapper doc missing:\n%s", src)
	}
}
