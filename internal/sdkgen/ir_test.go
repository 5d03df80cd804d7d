package sdkgen

import (
	"strings"
	"testing"
)

func renderExpr(e Expr) string {
	var b strings.Builder
	e.writeExpr(&b, "")
	return b.String()
}

func TestIR_InlineObject(t *testing.T) {
	t.Parallel()
	obj := Object{Members: []ObjectMember{
		Entry{Key: "id", Value: Ident("id")},
		Spread{X: Ident("vars")},
	}}
	if got := renderExpr(obj); got != "{ id, ...vars }" {
		t.Fatalf("got %q", got)
	}
	// Non-shorthand entry keeps the key.
	named := Object{Members: []ObjectMember{Entry{Key: "status", Value: Ident("code")}}}
	if got := renderExpr(named); got != "{ status: code }" {
		t.Fatalf("got %q", got)
	}
	if got := renderExpr(Object{}); got != "{}" {
		t.Fatalf("empty: got %q", got)
	}
}

func TestIR_CallWithTypeArgs(t *testing.T) {
	t.Parallel()
	call := Call{
		Callee:   Ident("requester"),
		TypeArgs: []string{"D.TeamQuery", "D.TeamQueryVariables"},
		Args:     []Expr{Ident("D.TeamDocument"), Ident("vars"), Ident("opts")},
	}
	want := "requester<D.TeamQuery, D.TeamQueryVariables>(D.TeamDocument, vars, opts)"
	if got := renderExpr(call); got != want {
		t.Fatalf("got %q", got)
	}
}

func TestIR_ArrowAndAwait(t *testing.T) {
	t.Parallel()
	e := Await{X: Call{Callee: Ident("wrapper"), Args: []Expr{Arrow{Body: Ident("x")}}}}
	if got := renderExpr(e); got != "await wrapper(() => x)" {
		t.Fatalf("got %q", got)
	}
}

func TestIR_FuncDeclRender(t *testing.T) {
	t.Parallel()
	fn := FuncDecl{
		Doc:    []string{"Build the sdk", "", "@param requester - the transport"},
		Name:   "createSdk",
		Params: []string{"requester: Requester"},
		Body: []Stmt{Return{X: Object{Multiline: true, Members: []ObjectMember{
			Method{
				Name:   "viewer",
				Params: []string{"opts?: RequestOptions"},
				Return: "Promise<Response<D.ViewerQuery>>",
				Body:   []Stmt{Return{X: Ident("result")}},
			},
		}}}},
	}
	got := RenderDecls([]Decl{fn, TypeAlias{Name: "Sdk", Type: "ReturnType<typeof createSdk>"}})

	want := `/**
 * Build the sdk
 *
 * @param requester - the transport
 */
export function createSdk(requester: Requester) {
  return {
    viewer(opts?: RequestOptions): Promise<Response<D.ViewerQuery>> {
      return result;
    },
  };
}

export type Sdk = ReturnType<typeof createSdk>;
`
	if got != want {
		t.Fatalf("render mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestIR_ConstStatement(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	Const{Name: "response", X: Await{X: Ident("call")}}.writeStmt(&b, "  ")
	if b.String() != "  const response = await call;\n" {
		t.Fatalf("got %q", b.String())
	}
}
