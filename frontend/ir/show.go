package ir

import (
	"fmt"
	"strings"

	"github.com/bigH/sorbet/frontend/names"
)

// ExprString renders expr as an indented tree for logs, tests and the
// CLI. Name refs are resolved against tbl.
func ExprString(tbl *names.Table, expr Expr) string {
	ctx := newShowContext(tbl)
	ctx.walk(expr)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
	tbl    *names.Table
	indent int
}

func newShowContext(tbl *names.Table) *showContext {
	return &showContext{Builder: &strings.Builder{}, tbl: tbl}
}

func (ctx *showContext) nl() {
	ctx.WriteString("\n")
	ctx.WriteString(strings.Repeat("  ", ctx.indent))
}

func (ctx *showContext) open(kind string) {
	ctx.WriteString(kind)
	ctx.WriteString("{")
	ctx.indent++
}

func (ctx *showContext) close() {
	ctx.indent--
	ctx.nl()
	ctx.WriteString("}")
}

func (ctx *showContext) field(name string, child Expr) {
	ctx.nl()
	ctx.WriteString(name)
	ctx.WriteString(" = ")
	ctx.walk(child)
}

func (ctx *showContext) fields(name string, children []Expr) {
	ctx.nl()
	ctx.WriteString(name)
	ctx.WriteString(" = [")
	ctx.indent++
	for _, c := range children {
		ctx.nl()
		ctx.walk(c)
	}
	ctx.indent--
	ctx.nl()
	ctx.WriteString("]")
}

func (ctx *showContext) name(ref names.Ref) string {
	return ctx.tbl.Str(ref)
}

func (ctx *showContext) walk(expr Expr) {
	if expr == nil {
		ctx.WriteString("<nil>")
		return
	}
	switch expr := expr.(type) {
	case *EmptyTree:
		ctx.WriteString("EmptyTree")
	case *Literal:
		switch expr.Kind {
		case LitNil:
			ctx.WriteString("Literal{nil}")
		case LitTrue:
			ctx.WriteString("Literal{true}")
		case LitFalse:
			ctx.WriteString("Literal{false}")
		case LitInt:
			fmt.Fprintf(ctx, "Literal{%d}", expr.Int)
		case LitFloat:
			fmt.Fprintf(ctx, "Literal{%g}", expr.Float)
		case LitString:
			fmt.Fprintf(ctx, "Literal{%q}", ctx.name(expr.Val))
		case LitSymbol:
			fmt.Fprintf(ctx, "Literal{:%s}", ctx.name(expr.Val))
		}
	case *Local:
		fmt.Fprintf(ctx, "Local{%s}", ctx.name(expr.Name))
	case *UnresolvedIdent:
		fmt.Fprintf(ctx, "UnresolvedIdent{%s %s}", expr.Kind, ctx.name(expr.Name))
	case *UnresolvedConstant:
		ctx.open("UnresolvedConstant")
		ctx.field("scope", expr.Scope)
		ctx.nl()
		ctx.WriteString("name = " + ctx.name(expr.Name))
		ctx.close()
	case *Constant:
		fmt.Fprintf(ctx, "Constant{%s}", expr.Symbol.Name())
	case *Self:
		ctx.WriteString("Self")
	case *Assign:
		ctx.open("Assign")
		ctx.field("lhs", expr.Lhs)
		ctx.field("rhs", expr.Rhs)
		ctx.close()
	case *InsSeq:
		ctx.open("InsSeq")
		ctx.fields("stats", expr.Stats)
		ctx.field("expr", expr.Expr)
		ctx.close()
	case *If:
		ctx.open("If")
		ctx.field("cond", expr.Cond)
		ctx.field("then", expr.Then)
		ctx.field("else", expr.Else)
		ctx.close()
	case *While:
		ctx.open("While")
		ctx.field("cond", expr.Cond)
		ctx.field("body", expr.Body)
		ctx.close()
	case *Send:
		ctx.open("Send")
		ctx.field("recv", expr.Receiver)
		ctx.nl()
		ctx.WriteString("method = " + ctx.name(expr.Method))
		if expr.Flags&PrivateOk != 0 {
			ctx.WriteString(" [privateOk]")
		}
		ctx.fields("args", expr.Args)
		if expr.Block != nil {
			ctx.field("block", expr.Block)
		}
		ctx.close()
	case *Block:
		ctx.open("Block")
		ctx.fields("args", expr.Args)
		ctx.field("body", expr.Body)
		ctx.close()
	case *Array:
		ctx.open("Array")
		ctx.fields("elems", expr.Elems)
		ctx.close()
	case *Hash:
		ctx.open("Hash")
		ctx.fields("keys", expr.Keys)
		ctx.fields("values", expr.Values)
		ctx.close()
	case *Return:
		ctx.open("Return")
		ctx.field("expr", expr.Expr)
		ctx.close()
	case *Break:
		ctx.open("Break")
		ctx.field("expr", expr.Expr)
		ctx.close()
	case *Next:
		ctx.open("Next")
		ctx.field("expr", expr.Expr)
		ctx.close()
	case *Yield:
		ctx.open("Yield")
		ctx.fields("args", expr.Args)
		ctx.close()
	case *Retry:
		ctx.WriteString("Retry")
	case *ZSuperArgs:
		ctx.WriteString("ZSuperArgs")
	case *RestArg:
		ctx.WriteString("RestArg(")
		ctx.walk(expr.Inner)
		ctx.WriteString(")")
	case *KeywordArg:
		ctx.WriteString("KeywordArg(")
		ctx.walk(expr.Inner)
		ctx.WriteString(")")
	case *OptionalArg:
		ctx.open("OptionalArg")
		ctx.field("arg", expr.Inner)
		ctx.field("default", expr.Default)
		ctx.close()
	case *BlockArg:
		ctx.WriteString("BlockArg(")
		ctx.walk(expr.Inner)
		ctx.WriteString(")")
	case *ShadowArg:
		ctx.WriteString("ShadowArg(")
		ctx.walk(expr.Inner)
		ctx.WriteString(")")
	case *ClassDef:
		ctx.open("ClassDef")
		ctx.nl()
		ctx.WriteString("kind = " + expr.Kind.String())
		ctx.field("name", expr.Name)
		ctx.fields("ancestors", expr.Ancestors)
		ctx.fields("rhs", expr.RHS)
		ctx.close()
	case *MethodDef:
		ctx.open("MethodDef")
		ctx.nl()
		ctx.WriteString("name = " + ctx.name(expr.Name))
		if expr.Flags&SelfMethod != 0 {
			ctx.WriteString(" [self]")
		}
		ctx.fields("args", expr.Args)
		ctx.field("body", expr.Body)
		ctx.close()
	case *Rescue:
		ctx.open("Rescue")
		ctx.field("body", expr.Body)
		ctx.nl()
		ctx.WriteString("cases = [")
		ctx.indent++
		for _, c := range expr.Cases {
			ctx.nl()
			ctx.walk(c)
		}
		ctx.indent--
		ctx.nl()
		ctx.WriteString("]")
		ctx.field("else", expr.Else)
		ctx.field("ensure", expr.Ensure)
		ctx.close()
	case *RescueCase:
		ctx.open("RescueCase")
		ctx.fields("exceptions", expr.Exceptions)
		ctx.field("var", expr.Var)
		ctx.field("body", expr.Body)
		ctx.close()
	default:
		ctx.WriteString(expr.ExprName())
	}
}
