package ast

import "github.com/bigH/sorbet/frontend/names"

// Const is a constant reference `Scope::Name`; a nil Scope means the
// lexical scope, a Cbase scope means the root.
type Const struct {
	Range
	Scope Node
	Name  names.Ref
}

func (*Const) NodeName() string { return "Const" }

// ConstLhs is a constant in assignment-target position.
type ConstLhs struct {
	Range
	Scope Node
	Name  names.Ref
}

func (*ConstLhs) NodeName() string { return "ConstLhs" }

// Cbase is the leading `::` of a fully-qualified constant.
type Cbase struct {
	Range
}

func (*Cbase) NodeName() string { return "Cbase" }

// LVar is a local variable read.
type LVar struct {
	Range
	Name names.Ref
}

func (*LVar) NodeName() string { return "LVar" }

// LVarLhs is a local variable in assignment-target position.
type LVarLhs struct {
	Range
	Name names.Ref
}

func (*LVarLhs) NodeName() string { return "LVarLhs" }

// IVar is an instance variable read `@x`.
type IVar struct {
	Range
	Name names.Ref
}

func (*IVar) NodeName() string { return "IVar" }

// IVarLhs is an instance variable in assignment-target position.
type IVarLhs struct {
	Range
	Name names.Ref
}

func (*IVarLhs) NodeName() string { return "IVarLhs" }

// GVar is a global variable read `$x`.
type GVar struct {
	Range
	Name names.Ref
}

func (*GVar) NodeName() string { return "GVar" }

// GVarLhs is a global variable in assignment-target position.
type GVarLhs struct {
	Range
	Name names.Ref
}

func (*GVarLhs) NodeName() string { return "GVarLhs" }

// CVar is a class variable read `@@x`.
type CVar struct {
	Range
	Name names.Ref
}

func (*CVar) NodeName() string { return "CVar" }

// CVarLhs is a class variable in assignment-target position.
type CVarLhs struct {
	Range
	Name names.Ref
}

func (*CVarLhs) NodeName() string { return "CVarLhs" }

// NthRef is a numbered regexp capture global like `$1`.
type NthRef struct {
	Range
	Ref int
}

func (*NthRef) NodeName() string { return "NthRef" }
