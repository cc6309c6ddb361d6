// Package construct holds thin builders for lowered-tree nodes. Each
// accepts a location and child nodes and returns an owned node; no
// logic lives here.
package construct

import (
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
)

func rangeOf(p ir.Positioner) ir.Range {
	if p == nil {
		return ir.Range{}
	}
	return ir.RangeOf(p)
}

// EmptyTree: the absent expression
func EmptyTree() *ir.EmptyTree {
	return &ir.EmptyTree{}
}

// Nil literal: `nil`
func Nil(in ir.Positioner) *ir.Literal {
	return &ir.Literal{Range: rangeOf(in), Kind: ir.LitNil}
}

// True literal: `true`
func True(in ir.Positioner) *ir.Literal {
	return &ir.Literal{Range: rangeOf(in), Kind: ir.LitTrue}
}

// False literal: `false`
func False(in ir.Positioner) *ir.Literal {
	return &ir.Literal{Range: rangeOf(in), Kind: ir.LitFalse}
}

// Integer literal: `42`
func Int(in ir.Positioner, val int64) *ir.Literal {
	return &ir.Literal{Range: rangeOf(in), Kind: ir.LitInt, Int: val}
}

// Float literal: `4.2`
func Float(in ir.Positioner, val float64) *ir.Literal {
	return &ir.Literal{Range: rangeOf(in), Kind: ir.LitFloat, Float: val}
}

// String literal: `"foo"`, value interned
func String(in ir.Positioner, val names.Ref) *ir.Literal {
	return &ir.Literal{Range: rangeOf(in), Kind: ir.LitString, Val: val}
}

// Symbol literal: `:foo`
func Symbol(in ir.Positioner, val names.Ref) *ir.Literal {
	return &ir.Literal{Range: rangeOf(in), Kind: ir.LitSymbol, Val: val}
}

// Local variable reference
func Local(in ir.Positioner, name names.Ref) *ir.Local {
	return &ir.Local{Range: rangeOf(in), Name: name}
}

// Unresolved variable reference of the given kind
func Ident(in ir.Positioner, kind ir.IdentKind, name names.Ref) *ir.UnresolvedIdent {
	return &ir.UnresolvedIdent{Range: rangeOf(in), Kind: kind, Name: name}
}

// Constant reference: `scope::Name`
func UnresolvedConstant(in ir.Positioner, scope ir.Expr, name names.Ref) *ir.UnresolvedConstant {
	return &ir.UnresolvedConstant{Range: rangeOf(in), Scope: scope, Name: name}
}

// Direct reference to a well-known symbol
func Constant(in ir.Positioner, sym names.Symbol) *ir.Constant {
	return &ir.Constant{Range: rangeOf(in), Symbol: sym}
}

// The current receiver: `self`
func Self(in ir.Positioner) *ir.Self {
	return &ir.Self{Range: rangeOf(in)}
}

// Assignment: `lhs = rhs`
func Assign(in ir.Positioner, lhs, rhs ir.Expr) *ir.Assign {
	return &ir.Assign{Range: rangeOf(in), Lhs: lhs, Rhs: rhs}
}

// Statement sequence yielding expr
func InsSeq(in ir.Positioner, stats []ir.Expr, expr ir.Expr) *ir.InsSeq {
	return &ir.InsSeq{Range: rangeOf(in), Stats: stats, Expr: expr}
}

// Statement sequence with a single leading statement
func InsSeq1(in ir.Positioner, stat ir.Expr, expr ir.Expr) *ir.InsSeq {
	return InsSeq(in, []ir.Expr{stat}, expr)
}

// Conditional: `if cond then a else b end`
func If(in ir.Positioner, cond, thenp, elsep ir.Expr) *ir.If {
	return &ir.If{Range: rangeOf(in), Cond: cond, Then: thenp, Else: elsep}
}

// Loop: `while cond; body; end`
func While(in ir.Positioner, cond, body ir.Expr) *ir.While {
	return &ir.While{Range: rangeOf(in), Cond: cond, Body: body}
}

// Method call: `recv.method(args...)`
func Send(in ir.Positioner, recv ir.Expr, method names.Ref, args ...ir.Expr) *ir.Send {
	return &ir.Send{Range: rangeOf(in), Receiver: recv, Method: method, Args: args}
}

// Method call with explicit flags and block
func SendFull(in ir.Positioner, recv ir.Expr, method names.Ref, flags ir.SendFlags, args []ir.Expr, block *ir.Block) *ir.Send {
	return &ir.Send{Range: rangeOf(in), Receiver: recv, Method: method, Flags: flags, Args: args, Block: block}
}

// Literal block hanging off a call
func Block(in ir.Positioner, args []ir.Expr, body ir.Expr) *ir.Block {
	return &ir.Block{Range: rangeOf(in), Args: args, Body: body}
}

// Array literal
func Array(in ir.Positioner, elems []ir.Expr) *ir.Array {
	return &ir.Array{Range: rangeOf(in), Elems: elems}
}

// Hash literal; keys and values run in parallel
func Hash(in ir.Positioner, keys, values []ir.Expr) *ir.Hash {
	return &ir.Hash{Range: rangeOf(in), Keys: keys, Values: values}
}

// Return: `return expr`
func Return(in ir.Positioner, expr ir.Expr) *ir.Return {
	return &ir.Return{Range: rangeOf(in), Expr: expr}
}

// Break: `break expr`
func Break(in ir.Positioner, expr ir.Expr) *ir.Break {
	return &ir.Break{Range: rangeOf(in), Expr: expr}
}

// Next: `next expr`
func Next(in ir.Positioner, expr ir.Expr) *ir.Next {
	return &ir.Next{Range: rangeOf(in), Expr: expr}
}

// Yield: `yield args...`
func Yield(in ir.Positioner, args []ir.Expr) *ir.Yield {
	return &ir.Yield{Range: rangeOf(in), Args: args}
}

// Retry keyword
func Retry(in ir.Positioner) *ir.Retry {
	return &ir.Retry{Range: rangeOf(in)}
}

// Argument placeholder of a bare `super`
func ZSuperArgs(in ir.Positioner) *ir.ZSuperArgs {
	return &ir.ZSuperArgs{Range: rangeOf(in)}
}

// Rest-parameter wrapper: `*rest`
func RestArg(in ir.Positioner, inner ir.Expr) *ir.RestArg {
	return &ir.RestArg{Range: rangeOf(in), Inner: inner}
}

// Keyword-parameter wrapper: `name:`
func KeywordArg(in ir.Positioner, inner ir.Expr) *ir.KeywordArg {
	return &ir.KeywordArg{Range: rangeOf(in), Inner: inner}
}

// Defaulted-parameter wrapper: `name = default`
func OptionalArg(in ir.Positioner, inner, def ir.Expr) *ir.OptionalArg {
	return &ir.OptionalArg{Range: rangeOf(in), Inner: inner, Default: def}
}

// Block-parameter wrapper: `&blk`
func BlockArg(in ir.Positioner, inner ir.Expr) *ir.BlockArg {
	return &ir.BlockArg{Range: rangeOf(in), Inner: inner}
}

// Shadow-parameter wrapper: `|;x|`
func ShadowArg(in ir.Positioner, inner ir.Expr) *ir.ShadowArg {
	return &ir.ShadowArg{Range: rangeOf(in), Inner: inner}
}

// Class or module definition
func ClassDef(in ir.Positioner, declLoc ir.Range, kind ir.ClassKind, name ir.Expr, ancestors []ir.Expr, rhs []ir.Expr) *ir.ClassDef {
	return &ir.ClassDef{Range: rangeOf(in), DeclLoc: declLoc, Kind: kind, Name: name, Ancestors: ancestors, RHS: rhs}
}

// Method definition
func MethodDef(in ir.Positioner, declLoc ir.Range, name names.Ref, flags ir.MethodFlags, args []ir.Expr, body ir.Expr) *ir.MethodDef {
	return &ir.MethodDef{Range: rangeOf(in), DeclLoc: declLoc, Name: name, Flags: flags, Args: args, Body: body}
}

// Protected body with handlers, else and ensure
func Rescue(in ir.Positioner, body ir.Expr, cases []*ir.RescueCase, elsep, ensure ir.Expr) *ir.Rescue {
	return &ir.Rescue{Range: rangeOf(in), Body: body, Cases: cases, Else: elsep, Ensure: ensure}
}

// One handler arm of a Rescue
func RescueCase(in ir.Positioner, exceptions []ir.Expr, v ir.Expr, body ir.Expr) *ir.RescueCase {
	return &ir.RescueCase{Range: rangeOf(in), Exceptions: exceptions, Var: v, Body: body}
}
