package ir

import "github.com/bigH/sorbet/frontend/names"

// ClassKind distinguishes `class` from `module` definitions.
type ClassKind uint8

const (
	ClassKindClass ClassKind = iota
	ClassKindModule
)

func (k ClassKind) String() string {
	if k == ClassKindModule {
		return "module"
	}
	return "class"
}

// ClassDef is a class or module definition. Name is always a constant
// expression or an ident naming a singleton-class scope. A class with
// no written superclass carries the placeholder `todo` ancestor.
type ClassDef struct {
	Range
	DeclLoc   Range
	Kind      ClassKind
	Name      Expr
	Ancestors []Expr
	RHS       []Expr
}

func (*ClassDef) ExprName() string { return "ClassDef" }

// MethodFlags carries per-definition bits on a MethodDef.
type MethodFlags uint8

const (
	// SelfMethod marks a method defined on the singleton class, i.e.
	// `def self.foo`.
	SelfMethod MethodFlags = 1 << iota
)

// MethodDef is a method definition. Args holds the lowered parameter
// nodes in declaration order.
type MethodDef struct {
	Range
	DeclLoc Range
	Name    names.Ref
	Flags   MethodFlags
	Args    []Expr
	Body    Expr
}

func (*MethodDef) ExprName() string { return "MethodDef" }

// Rescue protects Body with handler Cases. Else runs when the body
// finishes without raising, Ensure always runs last.
type Rescue struct {
	Range
	Body   Expr
	Cases  []*RescueCase
	Else   Expr
	Ensure Expr
}

func (*Rescue) ExprName() string { return "Rescue" }

// RescueCase is one handler arm. Var is the Local bound to the caught
// exception; a fresh temporary when the source names no local.
type RescueCase struct {
	Range
	Exceptions []Expr
	Var        Expr
	Body       Expr
}

func (*RescueCase) ExprName() string { return "RescueCase" }
