package sdkgen

import (
	"strings"
	"testing"
)

func TestGenerate_ScopeOrderAndNames(t *testing.T) {
	t.Parallel()
	res := Generate(parseOps(t, sampleOperations), DefaultConfig())

	if len(res.Scopes) != 3 {
		t.Fatalf("expected 3 scopes, got %d", len(res.Scopes))
	}
	if res.Scopes[0].FuncName != "createSdk" || res.Scopes[0].TypeName != "Sdk" {
		t.Fatalf("root names: %+v", res.Scopes[0])
	}
	if res.Scopes[1].FuncName != "createTeamSdk" || res.Scopes[1].TypeName != "TeamSdk" {
		t.Fatalf("team names: %+v", res.Scopes[1])
	}
	if res.Scopes[2].FuncName != "createIssueSdk" || res.Scopes[2].TypeName != "IssueSdk" {
		t.Fatalf("issue names: %+v", res.Scopes[2])
	}
}

func TestGenerate_CrossScopeLinkage(t *testing.T) {
	t.Parallel()
	res := Generate(parseOps(t, sampleOperations), DefaultConfig())
	src := res.Source()

	// The parent method in the root block calls into the team scope's
	// factory, which is generated in the same module.
	if !strings.Contains(src, "...createTeamSdk(id, requester, wrapper),") {
		t.Fatalf("root should link to team scope:\n%s", src)
	}
	if !strings.Contains(src, "export function createTeamSdk(") {
		t.Fatalf("team scope block missing")
	}
	// A parent with no children still produces an (empty) scope so the
	// linkage above can never dangle.
	if !strings.Contains(src, "export function createIssueSdk(") {
		t.Fatalf("issue scope block missing")
	}
	if !strings.Contains(src, "...createIssueSdk(id, requester, wrapper),") {
		t.Fatalf("root should link to issue scope:\n%s", src)
	}
}

func TestGenerate_CustomConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Namespace = "T"
	cfg.RequesterName = "execute"
	cfg.RequesterTypeName = "Executor"
	res := Generate(parseOps(t, `query team($id: ID!) { team { id } }`), cfg)
	src := res.Source()

	if !strings.Contains(src, "execute<T.TeamQuery, T.TeamQueryVariables>(T.TeamDocument, { id }, opts)") {
		t.Fatalf("custom names not applied:\n%s", src)
	}
	if !strings.Contains(src, "createSdk(execute: Executor, wrapper: Wrapper = defaultWrapper)") {
		t.Fatalf("custom requester parameter not applied:\n%s", src)
	}
}

func TestGenerate_BlankConfigFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	res := Generate(parseOps(t, `query viewer { viewer { id } }`), Config{})
	if !strings.Contains(res.Source(), "export function createSdk(requester: Requester, wrapper: Wrapper = defaultWrapper) {") {
		t.Fatalf("defaults not applied:\n%s", res.Source())
	}
}
