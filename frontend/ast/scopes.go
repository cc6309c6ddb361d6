package ast

import "github.com/bigH/sorbet/frontend/names"

// Module is `module Name ... end`. DeclLoc spans the keyword through
// the name, not the body.
type Module struct {
	Range
	DeclLoc Range
	Name    Node
	Body    Node
}

func (*Module) NodeName() string { return "Module" }

// Class is `class Name < Superclass ... end`.
type Class struct {
	Range
	DeclLoc    Range
	Name       Node
	Superclass Node
	Body       Node
}

func (*Class) NodeName() string { return "Class" }

// SClass is a singleton class `class << expr ... end`.
type SClass struct {
	Range
	DeclLoc Range
	Expr    Node
	Body    Node
}

func (*SClass) NodeName() string { return "SClass" }

// DefMethod is `def name(args) ... end`.
type DefMethod struct {
	Range
	DeclLoc Range
	Name    names.Ref
	Args    Node
	Body    Node
}

func (*DefMethod) NodeName() string { return "DefMethod" }

// DefS is a singleton method definition `def expr.name(args) ... end`.
type DefS struct {
	Range
	DeclLoc   Range
	Singleton Node
	Name      names.Ref
	Args      Node
	Body      Node
}

func (*DefS) NodeName() string { return "DefS" }
