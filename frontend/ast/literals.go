package ast

import "github.com/bigH/sorbet/frontend/names"

// String is a plain string literal; the value is interned.
type String struct {
	Range
	Val names.Ref
}

func (*String) NodeName() string { return "String" }

// Symbol is a symbol literal `:foo`.
type Symbol struct {
	Range
	Val names.Ref
}

func (*Symbol) NodeName() string { return "Symbol" }

// DString is an interpolated string literal.
type DString struct {
	Range
	Nodes []Node
}

func (*DString) NodeName() string { return "DString" }

// DSymbol is an interpolated symbol literal.
type DSymbol struct {
	Range
	Nodes []Node
}

func (*DSymbol) NodeName() string { return "DSymbol" }

// XString is a backtick command literal.
type XString struct {
	Range
	Nodes []Node
}

func (*XString) NodeName() string { return "XString" }

// Regexp is a regular-expression literal with its options.
type Regexp struct {
	Range
	Regex []Node
	Opts  Node
}

func (*Regexp) NodeName() string { return "Regexp" }

// Regopt carries the single-character option flags of a Regexp.
type Regopt struct {
	Range
	Opts string
}

func (*Regopt) NodeName() string { return "Regopt" }

// Integer is an integer literal, kept as source text until lowering.
type Integer struct {
	Range
	Val string
}

func (*Integer) NodeName() string { return "Integer" }

// Float is a float literal, kept as source text until lowering.
type Float struct {
	Range
	Val string
}

func (*Float) NodeName() string { return "Float" }

// Complex is a complex-number literal, kept as source text.
type Complex struct {
	Range
	Val string
}

func (*Complex) NodeName() string { return "Complex" }

// Rational is a rational-number literal, kept as source text.
type Rational struct {
	Range
	Val string
}

func (*Rational) NodeName() string { return "Rational" }

// Array is an array literal, possibly containing Splat elements.
type Array struct {
	Range
	Elts []Node
}

func (*Array) NodeName() string { return "Array" }

// Hash is a hash literal whose entries are Pair or Kwsplat nodes.
type Hash struct {
	Range
	Pairs []Node
}

func (*Hash) NodeName() string { return "Hash" }

// Pair is one `key => value` entry of a Hash.
type Pair struct {
	Range
	Key   Node
	Value Node
}

func (*Pair) NodeName() string { return "Pair" }

// Kwsplat is a `**expr` entry of a Hash.
type Kwsplat struct {
	Range
	Expr Node
}

func (*Kwsplat) NodeName() string { return "Kwsplat" }

// IRange is an inclusive range literal `from..to`.
type IRange struct {
	Range
	From Node
	To   Node
}

func (*IRange) NodeName() string { return "IRange" }

// ERange is an exclusive range literal `from...to`.
type ERange struct {
	Range
	From Node
	To   Node
}

func (*ERange) NodeName() string { return "ERange" }

// Nil is the `nil` literal.
type Nil struct {
	Range
}

func (*Nil) NodeName() string { return "Nil" }

// True is the `true` literal.
type True struct {
	Range
}

func (*True) NodeName() string { return "True" }

// False is the `false` literal.
type False struct {
	Range
}

func (*False) NodeName() string { return "False" }

// Self is the `self` keyword.
type Self struct {
	Range
}

func (*Self) NodeName() string { return "Self" }

// LineLiteral is the `__LINE__` keyword; the parser records the line.
type LineLiteral struct {
	Range
	Line int
}

func (*LineLiteral) NodeName() string { return "LineLiteral" }

// FileLiteral is the `__FILE__` keyword.
type FileLiteral struct {
	Range
}

func (*FileLiteral) NodeName() string { return "FileLiteral" }
