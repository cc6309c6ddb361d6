package ir

import "github.com/bigH/sorbet/frontend/names"

// Expr is the interface of all lowered-tree nodes. Lowering produces
// exactly these kinds and later passes dispatch on the concrete type.
type Expr interface {
	Positioner
	// ExprName returns the kind tag of the node, e.g. "Send".
	ExprName() string
}

// Reference is an Expr that names a storage location and can appear on
// the left-hand side of an Assign.
type Reference interface {
	Expr
	isReference()
}

// EmptyTree is the absent expression. It stands in for empty bodies,
// missing else branches, and nodes dropped after a diagnostic.
type EmptyTree struct {
	Range
}

func (*EmptyTree) ExprName() string { return "EmptyTree" }

// LiteralKind discriminates the value stored in a Literal.
type LiteralKind uint8

const (
	LitNil LiteralKind = iota
	LitTrue
	LitFalse
	LitInt
	LitFloat
	LitString
	LitSymbol
)

var literalKindNames = [...]string{
	LitNil:    "NilLit",
	LitTrue:   "TrueLit",
	LitFalse:  "FalseLit",
	LitInt:    "IntLit",
	LitFloat:  "FloatLit",
	LitString: "StringLit",
	LitSymbol: "SymbolLit",
}

// Literal is an immediate value. Int and Float are populated for the
// numeric kinds, Val for strings and symbols.
type Literal struct {
	Range
	Kind  LiteralKind
	Int   int64
	Float float64
	Val   names.Ref
}

func (*Literal) ExprName() string { return "Literal" }

// Local is a resolved local variable or parameter name.
type Local struct {
	Range
	Name names.Ref
}

func (*Local) ExprName() string { return "Local" }
func (*Local) isReference()     {}

// IdentKind classifies an UnresolvedIdent.
type IdentKind uint8

const (
	IdentLocal IdentKind = iota
	IdentInstance
	IdentClass
	IdentGlobal
)

var identKindNames = [...]string{
	IdentLocal:    "local",
	IdentInstance: "instance",
	IdentClass:    "class",
	IdentGlobal:   "global",
}

func (k IdentKind) String() string { return identKindNames[k] }

// UnresolvedIdent is a variable reference whose storage is resolved by
// a later pass: instance, class and global variables, and the
// class-kind ident naming a singleton-class scope.
type UnresolvedIdent struct {
	Range
	Kind IdentKind
	Name names.Ref
}

func (*UnresolvedIdent) ExprName() string { return "UnresolvedIdent" }
func (*UnresolvedIdent) isReference()     {}

// UnresolvedConstant is `scope::Name` before constant resolution.
type UnresolvedConstant struct {
	Range
	Scope Expr
	Name  names.Ref
}

func (*UnresolvedConstant) ExprName() string { return "UnresolvedConstant" }
func (*UnresolvedConstant) isReference()     {}

// Constant refers directly to a well-known symbol, bypassing
// resolution. Synthesized code targets Magic, Kernel and friends this
// way.
type Constant struct {
	Range
	Symbol names.Symbol
}

func (*Constant) ExprName() string { return "Constant" }

// Self is the current receiver.
type Self struct {
	Range
}

func (*Self) ExprName() string { return "Self" }
func (*Self) isReference()     {}

// Assign stores Rhs into Lhs. Lhs is always a Reference or an
// UnresolvedConstant.
type Assign struct {
	Range
	Lhs Expr
	Rhs Expr
}

func (*Assign) ExprName() string { return "Assign" }

// InsSeq evaluates Stats in order and yields Expr.
type InsSeq struct {
	Range
	Stats []Expr
	Expr  Expr
}

func (*InsSeq) ExprName() string { return "InsSeq" }

// If is a two-armed conditional; absent branches are EmptyTree.
type If struct {
	Range
	Cond Expr
	Then Expr
	Else Expr
}

func (*If) ExprName() string { return "If" }

// While is the loop form that while, until and their post-condition
// variants lower to; `for` lowers to an `each` call instead.
type While struct {
	Range
	Cond Expr
	Body Expr
}

func (*While) ExprName() string { return "While" }

// SendFlags carries per-call bits on a Send.
type SendFlags uint8

const (
	// PrivateOk marks a call whose receiver was the implicit self, so
	// private methods are callable.
	PrivateOk SendFlags = 1 << iota
)

// Send is a method call. Receiver is never nil. Block, when present,
// is the literal block attached to the call.
type Send struct {
	Range
	Receiver Expr
	Method   names.Ref
	Flags    SendFlags
	Args     []Expr
	Block    *Block
}

func (*Send) ExprName() string { return "Send" }

// Block is a literal block; it only ever hangs off a Send.
type Block struct {
	Range
	Args []Expr
	Body Expr
}

func (*Block) ExprName() string { return "Block" }

// Array is a lowered array literal.
type Array struct {
	Range
	Elems []Expr
}

func (*Array) ExprName() string { return "Array" }

// Hash is a lowered hash literal; Keys and Values run in parallel.
type Hash struct {
	Range
	Keys   []Expr
	Values []Expr
}

func (*Hash) ExprName() string { return "Hash" }

// Return is `return expr`; a valueless return carries EmptyTree.
type Return struct {
	Range
	Expr Expr
}

func (*Return) ExprName() string { return "Return" }

// Break is `break expr`.
type Break struct {
	Range
	Expr Expr
}

func (*Break) ExprName() string { return "Break" }

// Next is `next expr`.
type Next struct {
	Range
	Expr Expr
}

func (*Next) ExprName() string { return "Next" }

// Yield is `yield args...`.
type Yield struct {
	Range
	Args []Expr
}

func (*Yield) ExprName() string { return "Yield" }

// Retry re-runs the protected body of the enclosing rescue.
type Retry struct {
	Range
}

func (*Retry) ExprName() string { return "Retry" }

// ZSuperArgs is the argument placeholder of a bare `super`; a later
// pass substitutes the enclosing method's arguments.
type ZSuperArgs struct {
	Range
}

func (*ZSuperArgs) ExprName() string { return "ZSuperArgs" }

// RestArg wraps a parameter that collects the rest of the positional
// or keyword arguments.
type RestArg struct {
	Range
	Inner Expr
}

func (*RestArg) ExprName() string { return "RestArg" }

// KeywordArg wraps a keyword parameter.
type KeywordArg struct {
	Range
	Inner Expr
}

func (*KeywordArg) ExprName() string { return "KeywordArg" }

// OptionalArg wraps a parameter with a default expression.
type OptionalArg struct {
	Range
	Inner   Expr
	Default Expr
}

func (*OptionalArg) ExprName() string { return "OptionalArg" }

// BlockArg wraps the explicit block parameter.
type BlockArg struct {
	Range
	Inner Expr
}

func (*BlockArg) ExprName() string { return "BlockArg" }

// ShadowArg wraps a block-local shadow parameter.
type ShadowArg struct {
	Range
	Inner Expr
}

func (*ShadowArg) ExprName() string { return "ShadowArg" }
