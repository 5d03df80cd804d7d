package sdkgen

import "strings"

// The generator builds a small typed representation of the output and renders
// it to TypeScript text only at the very end, so synthesis logic never
// concatenates target syntax directly.

const indentUnit = "  "

// Expr is a TypeScript expression node.
type Expr interface {
	writeExpr(b *strings.Builder, indent string)
}

// Stmt is a TypeScript statement node.
type Stmt interface {
	writeStmt(b *strings.Builder, indent string)
}

// Decl is a top-level exported declaration.
type Decl interface {
	writeDecl(b *strings.Builder)
}

// Ident is a bare identifier or dotted reference.
type Ident string

func (i Ident) writeExpr(b *strings.Builder, _ string) { b.WriteString(string(i)) }

// Str is a double-quoted string literal.
type Str string

func (s Str) writeExpr(b *strings.Builder, _ string) {
	b.WriteString(`"`)
	b.WriteString(string(s))
	b.WriteString(`"`)
}

// Call is a function invocation, optionally with type arguments.
type Call struct {
	Callee   Expr
	TypeArgs []string
	Args     []Expr
}

func (c Call) writeExpr(b *strings.Builder, indent string) {
	c.Callee.writeExpr(b, indent)
	if len(c.TypeArgs) > 0 {
		b.WriteString("<")
		b.WriteString(strings.Join(c.TypeArgs, ", "))
		b.WriteString(">")
	}
	b.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.writeExpr(b, indent)
	}
	b.WriteString(")")
}

// Arrow is an arrow function whose body is a single expression.
type Arrow struct {
	Params []string
	Body   Expr
}

func (a Arrow) writeExpr(b *strings.Builder, indent string) {
	b.WriteString("(")
	b.WriteString(strings.Join(a.Params, ", "))
	b.WriteString(") => ")
	a.Body.writeExpr(b, indent)
}

// Await marks an awaited expression.
type Await struct{ X Expr }

func (a Await) writeExpr(b *strings.Builder, indent string) {
	b.WriteString("await ")
	a.X.writeExpr(b, indent)
}

// ObjectMember is anything that can appear inside an object literal.
type ObjectMember interface {
	writeMember(b *strings.Builder, indent string)
}

// Entry is a key/value member. When the value is an identifier equal to the
// key, it renders in shorthand form.
type Entry struct {
	Key   string
	Value Expr
}

func (e Entry) writeMember(b *strings.Builder, indent string) {
	if id, ok := e.Value.(Ident); ok && string(id) == e.Key {
		b.WriteString(e.Key)
		return
	}
	b.WriteString(e.Key)
	b.WriteString(": ")
	e.Value.writeExpr(b, indent)
}

// Spread is a ...expr member.
type Spread struct{ X Expr }

func (s Spread) writeMember(b *strings.Builder, indent string) {
	b.WriteString("...")
	s.X.writeExpr(b, indent)
}

// Object is an object literal. Multiline objects place one member per line
// with trailing commas.
type Object struct {
	Members   []ObjectMember
	Multiline bool
}

func (o Object) writeExpr(b *strings.Builder, indent string) {
	if !o.Multiline {
		b.WriteString("{")
		for i, m := range o.Members {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(" ")
			m.writeMember(b, indent)
		}
		if len(o.Members) > 0 {
			b.WriteString(" ")
		}
		b.WriteString("}")
		return
	}
	inner := indent + indentUnit
	b.WriteString("{\n")
	for _, m := range o.Members {
		b.WriteString(inner)
		m.writeMember(b, inner)
		b.WriteString(",\n")
	}
	b.WriteString(indent)
	b.WriteString("}")
}

// Return is a return statement.
type Return struct{ X Expr }

func (r Return) writeStmt(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString("return ")
	r.X.writeExpr(b, indent)
	b.WriteString(";\n")
}

// Const is a const binding.
type Const struct {
	Name string
	X    Expr
}

func (c Const) writeStmt(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString("const ")
	b.WriteString(c.Name)
	b.WriteString(" = ")
	c.X.writeExpr(b, indent)
	b.WriteString(";\n")
}

// Method is a method member of an object literal. Params holds rendered
// parameter fragments from BuildArgList.
type Method struct {
	Doc    []string
	Async  bool
	Name   string
	Params []string
	Return string
	Body   []Stmt
}

func (m Method) writeMember(b *strings.Builder, indent string) {
	if len(m.Doc) > 0 {
		// writeMember is called with the member's own indentation already
		// emitted, so only continuation lines carry the indent.
		writeDocFrom(b, indent, m.Doc)
		b.WriteString(indent)
	}
	if m.Async {
		b.WriteString("async ")
	}
	b.WriteString(m.Name)
	b.WriteString("(")
	b.WriteString(strings.Join(m.Params, ", "))
	b.WriteString(")")
	if m.Return != "" {
		b.WriteString(": ")
		b.WriteString(m.Return)
	}
	b.WriteString(" {\n")
	for _, s := range m.Body {
		s.writeStmt(b, indent+indentUnit)
	}
	b.WriteString(indent)
	b.WriteString("}")
}

// FuncDecl is an exported function declaration.
type FuncDecl struct {
	Doc    []string
	Name   string
	Params []string
	Return string
	Body   []Stmt
}

func (f FuncDecl) writeDecl(b *strings.Builder) {
	writeDoc(b, "", f.Doc)
	b.WriteString("export function ")
	b.WriteString(f.Name)
	b.WriteString("(")
	b.WriteString(strings.Join(f.Params, ", "))
	b.WriteString(")")
	if f.Return != "" {
		b.WriteString(": ")
		b.WriteString(f.Return)
	}
	b.WriteString(" {\n")
	for _, s := range f.Body {
		s.writeStmt(b, indentUnit)
	}
	b.WriteString("}\n")
}

// TypeAlias is an exported type alias declaration.
type TypeAlias struct {
	Doc  []string
	Name string
	Type string
}

func (t TypeAlias) writeDecl(b *strings.Builder) {
	writeDoc(b, "", t.Doc)
	b.WriteString("export type ")
	b.WriteString(t.Name)
	b.WriteString(" = ")
	b.WriteString(t.Type)
	b.WriteString(";\n")
}

// RenderDecls renders declarations separated by blank lines.
func RenderDecls(decls []Decl) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteString("\n")
		}
		d.writeDecl(&b)
	}
	return b.String()
}

// writeDoc emits a JSDoc block at the given indentation.
func writeDoc(b *strings.Builder, indent string, doc []string) {
	if len(doc) == 0 {
		return
	}
	b.WriteString(indent)
	writeDocFrom(b, indent, doc)
	b.WriteString(indent)
}

// writeDocFrom emits a JSDoc block assuming the opening line's indentation
// was already written; it leaves the builder at the start of the line after
// the block.
func writeDocFrom(b *strings.Builder, indent string, doc []string) {
	b.WriteString("/**\n")
	for _, line := range doc {
		b.WriteString(indent)
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString(" */\n")
}
