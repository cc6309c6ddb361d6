package names

// Well-known name Refs. NewTable enters the strings of wellKnown in
// order, so these constants index into every Table.
const (
	NoName Ref = iota
	Empty
	Initialize
	ToS
	ToA
	ToH
	ToHash
	ToProc
	Concat
	Merge
	Intern
	Call
	Bang
	SquareBrackets
	Slice
	New
	Each
	NilP
	SuperFun
	TripleEq
	OrOp
	DefinedP
	CallWithSplat
	ExpandSplat
	SplatFun
	AliasMethod
	Backtick
	CurrentFile
	Singleton
	ComplexFun
	RationalFun

	// bases for fresh unique temporaries
	AssignTemp
	DestructureArg
	RescueTemp
	ForTemp
	BlockPassTemp
	AndAnd
	OrOr
)

var wellKnown = []string{
	"<none>",
	"",
	"initialize",
	"to_s",
	"to_a",
	"to_h",
	"to_hash",
	"to_proc",
	"concat",
	"merge",
	"intern",
	"call",
	"!",
	"[]",
	"slice",
	"new",
	"each",
	"nil?",
	"super",
	"===",
	"|",
	"defined?",
	"<call-with-splat>",
	"<expand-splat>",
	"<splat>",
	"alias_method",
	"<backtick>",
	"<currentFile>",
	"<singleton>",
	"Complex",
	"Rational",

	"<assignTemp>",
	"<destructure>",
	"<rescueTemp>",
	"<forTemp>",
	"<blockPassTemp>",
	"&&",
	"||",
}

// Symbol identifies a well-known class or module symbol referenced by
// synthesized code.
type Symbol uint8

const (
	SymbolNone Symbol = iota
	Magic
	Kernel
	ComplexClass
	RationalClass
	RangeClass
	RegexpClass
	SymbolClass
	Root
	Todo
)

var symbolNames = [...]string{
	SymbolNone:    "<none>",
	Magic:         "Magic",
	Kernel:        "Kernel",
	ComplexClass:  "Complex",
	RationalClass: "Rational",
	RangeClass:    "Range",
	RegexpClass:   "Regexp",
	SymbolClass:   "Symbol",
	Root:          "<root>",
	Todo:          "<todo>",
}

// Name returns the display name of the symbol.
func (s Symbol) Name() string { return symbolNames[s] }
