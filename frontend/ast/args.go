package ast

import "github.com/bigH/sorbet/frontend/names"

// Args is the formal parameter list of a method or block.
type Args struct {
	Range
	Args []Node
}

func (*Args) NodeName() string { return "Args" }

// Arg is a required positional parameter.
type Arg struct {
	Range
	Name names.Ref
}

func (*Arg) NodeName() string { return "Arg" }

// Optarg is an optional positional parameter with a default.
type Optarg struct {
	Range
	Name    names.Ref
	NameLoc Range
	Default Node
}

func (*Optarg) NodeName() string { return "Optarg" }

// Restarg is a `*rest` parameter.
type Restarg struct {
	Range
	Name    names.Ref
	NameLoc Range
}

func (*Restarg) NodeName() string { return "Restarg" }

// Kwarg is a required keyword parameter `name:`.
type Kwarg struct {
	Range
	Name names.Ref
}

func (*Kwarg) NodeName() string { return "Kwarg" }

// Kwoptarg is an optional keyword parameter `name: default`.
type Kwoptarg struct {
	Range
	Name    names.Ref
	NameLoc Range
	Default Node
}

func (*Kwoptarg) NodeName() string { return "Kwoptarg" }

// Kwrestarg is a `**rest` parameter; Name is NoName when anonymous.
type Kwrestarg struct {
	Range
	Name names.Ref
}

func (*Kwrestarg) NodeName() string { return "Kwrestarg" }

// Blockarg is a `&blk` parameter.
type Blockarg struct {
	Range
	Name names.Ref
}

func (*Blockarg) NodeName() string { return "Blockarg" }

// Shadowarg is a block-local shadow parameter `|;x|`.
type Shadowarg struct {
	Range
	Name names.Ref
}

func (*Shadowarg) NodeName() string { return "Shadowarg" }
