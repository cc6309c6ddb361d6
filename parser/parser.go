// Package parser rebuilds parse trees from their JSON serialization.
// An external front end dumps the surface syntax as nested objects;
// this package turns them back into ast nodes, interning every
// identifier into a shared name table.
package parser

import (
	"encoding/json"
	"go/token"

	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/pkg/errors"
)

// rawNode is the union of every serialized node shape. Only the
// fields named by a node's kind are read; the rest stay zero.
type rawNode struct {
	Node  string `json:"node"`
	Start int    `json:"start"`
	End   int    `json:"end"`

	Name    string   `json:"name,omitempty"`
	Val     string   `json:"val,omitempty"`
	Op      string   `json:"op,omitempty"`
	Method  string   `json:"method,omitempty"`
	Line    int      `json:"line,omitempty"`
	Ref     int      `json:"ref,omitempty"`
	DeclLoc *rawLoc  `json:"declLoc,omitempty"`
	NameLoc *rawLoc  `json:"nameLoc,omitempty"`

	Receiver   *rawNode   `json:"receiver,omitempty"`
	Left       *rawNode   `json:"left,omitempty"`
	Right      *rawNode   `json:"right,omitempty"`
	Lhs        *rawNode   `json:"lhs,omitempty"`
	Rhs        *rawNode   `json:"rhs,omitempty"`
	Scope      *rawNode   `json:"scope,omitempty"`
	Condition  *rawNode   `json:"condition,omitempty"`
	Then       *rawNode   `json:"then,omitempty"`
	Else       *rawNode   `json:"else,omitempty"`
	Cond       *rawNode   `json:"cond,omitempty"`
	Body       *rawNode   `json:"body,omitempty"`
	Vars       *rawNode   `json:"vars,omitempty"`
	Expr       *rawNode   `json:"expr,omitempty"`
	Var        *rawNode   `json:"var,omitempty"`
	Exception  *rawNode   `json:"exception,omitempty"`
	Ensure     *rawNode   `json:"ensure,omitempty"`
	Send       *rawNode   `json:"send,omitempty"`
	ArgsNode   *rawNode   `json:"argsNode,omitempty"`
	Block      *rawNode   `json:"block,omitempty"`
	From       *rawNode   `json:"from,omitempty"`
	To         *rawNode   `json:"to,omitempty"`
	Value      *rawNode   `json:"value,omitempty"`
	Key        *rawNode   `json:"key,omitempty"`
	Superclass *rawNode   `json:"superclass,omitempty"`
	Constant   *rawNode   `json:"constant,omitempty"`
	Singleton  *rawNode   `json:"singleton,omitempty"`
	Opts       *rawNode   `json:"opts,omitempty"`
	Default    *rawNode   `json:"default,omitempty"`

	Args     []*rawNode `json:"args,omitempty"`
	Stmts    []*rawNode `json:"stmts,omitempty"`
	Exprs    []*rawNode `json:"exprs,omitempty"`
	Whens    []*rawNode `json:"whens,omitempty"`
	Patterns []*rawNode `json:"patterns,omitempty"`
	Rescue   []*rawNode `json:"rescue,omitempty"`
	Nodes    []*rawNode `json:"nodes,omitempty"`
	Regex    []*rawNode `json:"regex,omitempty"`
	Elts     []*rawNode `json:"elts,omitempty"`
	Pairs    []*rawNode `json:"pairs,omitempty"`
}

type rawLoc struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Parse decodes data and rebuilds the parse tree. An empty document
// (JSON null) is a nil tree, which lowers to the empty program.
func Parse(tbl *names.Table, data []byte) (ast.Node, error) {
	var raw *rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "malformed parse-tree document")
	}
	d := &decoder{tbl: tbl}
	return d.node(raw)
}

type decoder struct {
	tbl *names.Table
}

func (d *decoder) name(s string) names.Ref {
	if s == "" {
		return names.NoName
	}
	return d.tbl.EnterUTF8(s)
}

func (d *decoder) rng(raw *rawNode) ast.Range {
	return ast.Range{PosStart: token.Pos(raw.Start), PosEnd: token.Pos(raw.End)}
}

func (d *decoder) loc(l *rawLoc) ast.Range {
	if l == nil {
		return ast.Range{}
	}
	return ast.Range{PosStart: token.Pos(l.Start), PosEnd: token.Pos(l.End)}
}

func (d *decoder) list(raws []*rawNode) ([]ast.Node, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]ast.Node, 0, len(raws))
	for _, r := range raws {
		n, err := d.node(r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// node decodes one serialized node. The kind string picks the ast
// struct; children decode recursively.
func (d *decoder) node(raw *rawNode) (node ast.Node, err error) {
	if raw == nil {
		return nil, nil
	}
	rng := d.rng(raw)

	// child is a small accumulator so each case can stay a single
	// construction expression; the first failure wins.
	child := func(r *rawNode) ast.Node {
		if err != nil {
			return nil
		}
		var n ast.Node
		n, err = d.node(r)
		return n
	}
	children := func(rs []*rawNode) []ast.Node {
		if err != nil {
			return nil
		}
		var ns []ast.Node
		ns, err = d.list(rs)
		return ns
	}
	defer func() {
		if err != nil {
			node = nil
			err = errors.Wrapf(err, "in %s node at %d", raw.Node, raw.Start)
		}
	}()

	switch raw.Node {
	case "Send":
		return &ast.Send{Range: rng, Receiver: child(raw.Receiver), Method: d.name(raw.Method), Args: children(raw.Args)}, err
	case "CSend":
		return &ast.CSend{Range: rng, Receiver: child(raw.Receiver), Method: d.name(raw.Method), Args: children(raw.Args)}, err
	case "Begin":
		return &ast.Begin{Range: rng, Stmts: children(raw.Stmts)}, err
	case "Kwbegin":
		return &ast.Kwbegin{Range: rng, Stmts: children(raw.Stmts)}, err
	case "And":
		return &ast.And{Range: rng, Left: child(raw.Left), Right: child(raw.Right)}, err
	case "Or":
		return &ast.Or{Range: rng, Left: child(raw.Left), Right: child(raw.Right)}, err
	case "AndAsgn":
		return &ast.AndAsgn{Range: rng, Left: child(raw.Left), Right: child(raw.Right)}, err
	case "OrAsgn":
		return &ast.OrAsgn{Range: rng, Left: child(raw.Left), Right: child(raw.Right)}, err
	case "OpAsgn":
		return &ast.OpAsgn{Range: rng, Left: child(raw.Left), Op: d.name(raw.Op), Right: child(raw.Right)}, err
	case "Assign":
		return &ast.Assign{Range: rng, Lhs: child(raw.Lhs), Rhs: child(raw.Rhs)}, err
	case "Masgn":
		return &ast.Masgn{Range: rng, Lhs: child(raw.Lhs), Rhs: child(raw.Rhs)}, err
	case "Mlhs":
		return &ast.Mlhs{Range: rng, Exprs: children(raw.Exprs)}, err
	case "Splat":
		return &ast.Splat{Range: rng, Var: child(raw.Var)}, err
	case "SplatLhs":
		return &ast.SplatLhs{Range: rng, Var: child(raw.Var)}, err

	case "If":
		return &ast.If{Range: rng, Condition: child(raw.Condition), Then: child(raw.Then), Else: child(raw.Else)}, err
	case "Case":
		return &ast.Case{Range: rng, Condition: child(raw.Condition), Whens: children(raw.Whens), Else: child(raw.Else)}, err
	case "When":
		return &ast.When{Range: rng, Patterns: children(raw.Patterns), Body: child(raw.Body)}, err
	case "While":
		return &ast.While{Range: rng, Cond: child(raw.Cond), Body: child(raw.Body)}, err
	case "WhilePost":
		return &ast.WhilePost{Range: rng, Cond: child(raw.Cond), Body: child(raw.Body)}, err
	case "Until":
		return &ast.Until{Range: rng, Cond: child(raw.Cond), Body: child(raw.Body)}, err
	case "UntilPost":
		return &ast.UntilPost{Range: rng, Cond: child(raw.Cond), Body: child(raw.Body)}, err
	case "For":
		return &ast.For{Range: rng, Vars: child(raw.Vars), Expr: child(raw.Expr), Body: child(raw.Body)}, err

	case "Rescue":
		return &ast.Rescue{Range: rng, Body: child(raw.Body), Rescue: children(raw.Rescue), Else: child(raw.Else)}, err
	case "Resbody":
		return &ast.Resbody{Range: rng, Exception: child(raw.Exception), Var: child(raw.Var), Body: child(raw.Body)}, err
	case "Ensure":
		return &ast.Ensure{Range: rng, Body: child(raw.Body), Ensure: child(raw.Ensure)}, err

	case "Return":
		return &ast.Return{Range: rng, Exprs: children(raw.Exprs)}, err
	case "Break":
		return &ast.Break{Range: rng, Exprs: children(raw.Exprs)}, err
	case "Next":
		return &ast.Next{Range: rng, Exprs: children(raw.Exprs)}, err
	case "Yield":
		return &ast.Yield{Range: rng, Exprs: children(raw.Exprs)}, err
	case "Retry":
		return &ast.Retry{Range: rng}, nil
	case "Super":
		return &ast.Super{Range: rng, Args: children(raw.Args)}, err
	case "ZSuper":
		return &ast.ZSuper{Range: rng}, nil

	case "Block":
		return &ast.Block{Range: rng, Send: child(raw.Send), Args: child(raw.ArgsNode), Body: child(raw.Body)}, err
	case "BlockPass":
		return &ast.BlockPass{Range: rng, Block: child(raw.Block)}, err
	case "Alias":
		return &ast.Alias{Range: rng, From: child(raw.From), To: child(raw.To)}, err
	case "Defined":
		return &ast.Defined{Range: rng, Value: child(raw.Value)}, err

	case "String":
		return &ast.String{Range: rng, Val: d.name(raw.Val)}, nil
	case "Symbol":
		return &ast.Symbol{Range: rng, Val: d.name(raw.Val)}, nil
	case "DString":
		return &ast.DString{Range: rng, Nodes: children(raw.Nodes)}, err
	case "DSymbol":
		return &ast.DSymbol{Range: rng, Nodes: children(raw.Nodes)}, err
	case "XString":
		return &ast.XString{Range: rng, Nodes: children(raw.Nodes)}, err
	case "Regexp":
		return &ast.Regexp{Range: rng, Regex: children(raw.Regex), Opts: child(raw.Opts)}, err
	case "Regopt":
		return &ast.Regopt{Range: rng, Opts: raw.Val}, nil
	case "Integer":
		return &ast.Integer{Range: rng, Val: raw.Val}, nil
	case "Float":
		return &ast.Float{Range: rng, Val: raw.Val}, nil
	case "Complex":
		return &ast.Complex{Range: rng, Val: raw.Val}, nil
	case "Rational":
		return &ast.Rational{Range: rng, Val: raw.Val}, nil

	case "Array":
		return &ast.Array{Range: rng, Elts: children(raw.Elts)}, err
	case "Hash":
		return &ast.Hash{Range: rng, Pairs: children(raw.Pairs)}, err
	case "Pair":
		return &ast.Pair{Range: rng, Key: child(raw.Key), Value: child(raw.Value)}, err
	case "Kwsplat":
		return &ast.Kwsplat{Range: rng, Expr: child(raw.Expr)}, err
	case "IRange":
		return &ast.IRange{Range: rng, From: child(raw.From), To: child(raw.To)}, err
	case "ERange":
		return &ast.ERange{Range: rng, From: child(raw.From), To: child(raw.To)}, err

	case "Nil":
		return &ast.Nil{Range: rng}, nil
	case "True":
		return &ast.True{Range: rng}, nil
	case "False":
		return &ast.False{Range: rng}, nil
	case "Self":
		return &ast.Self{Range: rng}, nil
	case "LineLiteral":
		return &ast.LineLiteral{Range: rng, Line: raw.Line}, nil
	case "FileLiteral":
		return &ast.FileLiteral{Range: rng}, nil

	case "Const":
		return &ast.Const{Range: rng, Scope: child(raw.Scope), Name: d.name(raw.Name)}, err
	case "ConstLhs":
		return &ast.ConstLhs{Range: rng, Scope: child(raw.Scope), Name: d.name(raw.Name)}, err
	case "Cbase":
		return &ast.Cbase{Range: rng}, nil
	case "LVar":
		return &ast.LVar{Range: rng, Name: d.name(raw.Name)}, nil
	case "LVarLhs":
		return &ast.LVarLhs{Range: rng, Name: d.name(raw.Name)}, nil
	case "IVar":
		return &ast.IVar{Range: rng, Name: d.name(raw.Name)}, nil
	case "IVarLhs":
		return &ast.IVarLhs{Range: rng, Name: d.name(raw.Name)}, nil
	case "GVar":
		return &ast.GVar{Range: rng, Name: d.name(raw.Name)}, nil
	case "GVarLhs":
		return &ast.GVarLhs{Range: rng, Name: d.name(raw.Name)}, nil
	case "CVar":
		return &ast.CVar{Range: rng, Name: d.name(raw.Name)}, nil
	case "CVarLhs":
		return &ast.CVarLhs{Range: rng, Name: d.name(raw.Name)}, nil
	case "NthRef":
		return &ast.NthRef{Range: rng, Ref: raw.Ref}, nil

	case "Module":
		return &ast.Module{Range: rng, DeclLoc: d.loc(raw.DeclLoc), Name: child(raw.Constant), Body: child(raw.Body)}, err
	case "Class":
		return &ast.Class{Range: rng, DeclLoc: d.loc(raw.DeclLoc), Name: child(raw.Constant), Superclass: child(raw.Superclass), Body: child(raw.Body)}, err
	case "SClass":
		return &ast.SClass{Range: rng, DeclLoc: d.loc(raw.DeclLoc), Expr: child(raw.Expr), Body: child(raw.Body)}, err
	case "DefMethod":
		return &ast.DefMethod{Range: rng, DeclLoc: d.loc(raw.DeclLoc), Name: d.name(raw.Name), Args: child(raw.ArgsNode), Body: child(raw.Body)}, err
	case "DefS":
		return &ast.DefS{Range: rng, DeclLoc: d.loc(raw.DeclLoc), Singleton: child(raw.Singleton), Name: d.name(raw.Name), Args: child(raw.ArgsNode), Body: child(raw.Body)}, err

	case "Args":
		return &ast.Args{Range: rng, Args: children(raw.Args)}, err
	case "Arg":
		return &ast.Arg{Range: rng, Name: d.name(raw.Name)}, nil
	case "Optarg":
		return &ast.Optarg{Range: rng, Name: d.name(raw.Name), NameLoc: d.loc(raw.NameLoc), Default: child(raw.Default)}, err
	case "Restarg":
		return &ast.Restarg{Range: rng, Name: d.name(raw.Name), NameLoc: d.loc(raw.NameLoc)}, nil
	case "Kwarg":
		return &ast.Kwarg{Range: rng, Name: d.name(raw.Name)}, nil
	case "Kwoptarg":
		return &ast.Kwoptarg{Range: rng, Name: d.name(raw.Name), NameLoc: d.loc(raw.NameLoc), Default: child(raw.Default)}, err
	case "Kwrestarg":
		return &ast.Kwrestarg{Range: rng, Name: d.name(raw.Name)}, nil
	case "Blockarg":
		return &ast.Blockarg{Range: rng, Name: d.name(raw.Name)}, nil
	case "Shadowarg":
		return &ast.Shadowarg{Range: rng, Name: d.name(raw.Name)}, nil

	case "Preexe":
		return &ast.Preexe{Range: rng, Body: child(raw.Body)}, err
	case "Postexe":
		return &ast.Postexe{Range: rng, Body: child(raw.Body)}, err
	case "Undef":
		return &ast.Undef{Range: rng, Exprs: children(raw.Exprs)}, err
	case "Backref":
		return &ast.Backref{Range: rng, Name: d.name(raw.Name)}, nil
	case "IFlipflop":
		return &ast.IFlipflop{Range: rng, Left: child(raw.Left), Right: child(raw.Right)}, err
	case "EFlipflop":
		return &ast.EFlipflop{Range: rng, Left: child(raw.Left), Right: child(raw.Right)}, err
	case "MatchCurLine":
		return &ast.MatchCurLine{Range: rng, Cond: child(raw.Cond)}, err
	case "Redo":
		return &ast.Redo{Range: rng}, nil
	}
	return nil, errors.Errorf("unknown node kind %q", raw.Node)
}
