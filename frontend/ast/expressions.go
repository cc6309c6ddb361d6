package ast

import "github.com/bigH/sorbet/frontend/names"

// Send represents a method call `recv.m(args...)`. A nil Receiver is a
// bare call on the implicit self.
type Send struct {
	Range
	Receiver Node
	Method   names.Ref
	Args     []Node
}

func (*Send) NodeName() string { return "Send" }

// CSend is a safe-navigation call `recv&.m(args...)`.
type CSend struct {
	Range
	Receiver Node
	Method   names.Ref
	Args     []Node
}

func (*CSend) NodeName() string { return "CSend" }

// Begin is a statement sequence; the last statement produces the value.
type Begin struct {
	Range
	Stmts []Node
}

func (*Begin) NodeName() string { return "Begin" }

// Kwbegin is a `begin ... end` block. It desugars like Begin but its
// presence as a loop body marks a do-while/do-until.
type Kwbegin struct {
	Range
	Stmts []Node
}

func (*Kwbegin) NodeName() string { return "Kwbegin" }

// And is the short-circuit `a && b`.
type And struct {
	Range
	Left  Node
	Right Node
}

func (*And) NodeName() string { return "And" }

// Or is the short-circuit `a || b`.
type Or struct {
	Range
	Left  Node
	Right Node
}

func (*Or) NodeName() string { return "Or" }

// AndAsgn is `lhs &&= rhs`.
type AndAsgn struct {
	Range
	Left  Node
	Right Node
}

func (*AndAsgn) NodeName() string { return "AndAsgn" }

// OrAsgn is `lhs ||= rhs`.
type OrAsgn struct {
	Range
	Left  Node
	Right Node
}

func (*OrAsgn) NodeName() string { return "OrAsgn" }

// OpAsgn is a compound assignment `lhs op= rhs` for any other operator.
type OpAsgn struct {
	Range
	Left  Node
	Op    names.Ref
	Right Node
}

func (*OpAsgn) NodeName() string { return "OpAsgn" }

// Assign is a plain single assignment `lhs = rhs`.
type Assign struct {
	Range
	Lhs Node
	Rhs Node
}

func (*Assign) NodeName() string { return "Assign" }

// Masgn is a multiple assignment `a, b = rhs`.
type Masgn struct {
	Range
	Lhs Node // always an Mlhs
	Rhs Node
}

func (*Masgn) NodeName() string { return "Masgn" }

// Mlhs is the left-hand-side pattern of a multiple assignment.
type Mlhs struct {
	Range
	Exprs []Node
}

func (*Mlhs) NodeName() string { return "Mlhs" }

// Splat is `*expr` in expression or argument position.
type Splat struct {
	Range
	Var Node
}

func (*Splat) NodeName() string { return "Splat" }

// SplatLhs is `*lhs` in assignment-target position. A nil Var is the
// anonymous `*`.
type SplatLhs struct {
	Range
	Var Node
}

func (*SplatLhs) NodeName() string { return "SplatLhs" }

// If is a conditional; either branch may be nil.
type If struct {
	Range
	Condition Node
	Then      Node
	Else      Node
}

func (*If) NodeName() string { return "If" }

// Case is `case scrutinee; when ...; else ...; end`. Condition may be
// nil, in which case each pattern is its own boolean test.
type Case struct {
	Range
	Condition Node
	Whens     []Node
	Else      Node
}

func (*Case) NodeName() string { return "Case" }

// When is one `when p1, p2 then body` arm of a Case.
type When struct {
	Range
	Patterns []Node
	Body     Node
}

func (*When) NodeName() string { return "When" }

// While is a pre-test `while cond; body; end`.
type While struct {
	Range
	Cond Node
	Body Node
}

func (*While) NodeName() string { return "While" }

// WhilePost is `body while cond`; with a Kwbegin body it is a do-while.
type WhilePost struct {
	Range
	Cond Node
	Body Node
}

func (*WhilePost) NodeName() string { return "WhilePost" }

// Until is a pre-test `until cond; body; end`.
type Until struct {
	Range
	Cond Node
	Body Node
}

func (*Until) NodeName() string { return "Until" }

// UntilPost is `body until cond`; with a Kwbegin body it is a do-until.
type UntilPost struct {
	Range
	Cond Node
	Body Node
}

func (*UntilPost) NodeName() string { return "UntilPost" }

// For is `for vars in expr; body; end`.
type For struct {
	Range
	Vars Node
	Expr Node
	Body Node
}

func (*For) NodeName() string { return "For" }

// Rescue bundles a protected body with its handlers and else clause.
type Rescue struct {
	Range
	Body   Node
	Rescue []Node // Resbody handlers
	Else   Node
}

func (*Rescue) NodeName() string { return "Rescue" }

// Resbody is one `rescue ExcList => var` handler.
type Resbody struct {
	Range
	Exception Node
	Var       Node
	Body      Node
}

func (*Resbody) NodeName() string { return "Resbody" }

// Ensure wraps a body (possibly already a Rescue) with an ensure clause.
type Ensure struct {
	Range
	Body   Node
	Ensure Node
}

func (*Ensure) NodeName() string { return "Ensure" }

// Return is `return exprs...`.
type Return struct {
	Range
	Exprs []Node
}

func (*Return) NodeName() string { return "Return" }

// Break is `break exprs...`.
type Break struct {
	Range
	Exprs []Node
}

func (*Break) NodeName() string { return "Break" }

// Next is `next exprs...`.
type Next struct {
	Range
	Exprs []Node
}

func (*Next) NodeName() string { return "Next" }

// Yield is `yield exprs...`.
type Yield struct {
	Range
	Exprs []Node
}

func (*Yield) NodeName() string { return "Yield" }

// Retry is the `retry` keyword.
type Retry struct {
	Range
}

func (*Retry) NodeName() string { return "Retry" }

// Super is `super(args...)` with explicit arguments.
type Super struct {
	Range
	Args []Node
}

func (*Super) NodeName() string { return "Super" }

// ZSuper is the bare `super` that forwards the caller's arguments.
type ZSuper struct {
	Range
}

func (*ZSuper) NodeName() string { return "ZSuper" }

// Block attaches a literal block to a call.
type Block struct {
	Range
	Send Node
	Args Node
	Body Node
}

func (*Block) NodeName() string { return "Block" }

// BlockPass is a `&value` argument, a value coerced to a block.
type BlockPass struct {
	Range
	Block Node
}

func (*BlockPass) NodeName() string { return "BlockPass" }

// Alias is `alias to from`.
type Alias struct {
	Range
	From Node
	To   Node
}

func (*Alias) NodeName() string { return "Alias" }

// Defined is `defined?(value)`.
type Defined struct {
	Range
	Value Node
}

func (*Defined) NodeName() string { return "Defined" }

// Preexe is a BEGIN {} block. Unsupported.
type Preexe struct {
	Range
	Body Node
}

func (*Preexe) NodeName() string { return "Preexe" }

// Postexe is an END {} block. Unsupported.
type Postexe struct {
	Range
	Body Node
}

func (*Postexe) NodeName() string { return "Postexe" }

// Undef is `undef m...`. Unsupported.
type Undef struct {
	Range
	Exprs []Node
}

func (*Undef) NodeName() string { return "Undef" }

// Backref is a regexp back-reference global like `$&`. Unsupported.
type Backref struct {
	Range
	Name names.Ref
}

func (*Backref) NodeName() string { return "Backref" }

// IFlipflop is an inclusive flip-flop `(a..b)` condition. Unsupported.
type IFlipflop struct {
	Range
	Left  Node
	Right Node
}

func (*IFlipflop) NodeName() string { return "IFlipflop" }

// EFlipflop is an exclusive flip-flop `(a...b)` condition. Unsupported.
type EFlipflop struct {
	Range
	Left  Node
	Right Node
}

func (*EFlipflop) NodeName() string { return "EFlipflop" }

// MatchCurLine is an implicit `~/re/` match. Unsupported.
type MatchCurLine struct {
	Range
	Cond Node
}

func (*MatchCurLine) NodeName() string { return "MatchCurLine" }

// Redo is the `redo` keyword. Unsupported.
type Redo struct {
	Range
}

func (*Redo) NodeName() string { return "Redo" }
