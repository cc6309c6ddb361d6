package desugar

import (
	"math"
	"strconv"
	"strings"

	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/frontend/sberr"
)

// lower drives the recursion by case analysis on the parse-node kind.
// Cases are ordered by observed frequency; semantics do not depend on
// the order. A nil node is an absent subtree and lowers to EmptyTree.
func (c dctx) lower(node ast.Node) ir.Expr {
	if node == nil {
		return construct.EmptyTree()
	}
	switch node := node.(type) {
	case *ast.Send:
		return c.lowerSendNode(node)
	case *ast.Const:
		return construct.UnresolvedConstant(node, c.lower(node.Scope), node.Name)
	case *ast.String:
		return construct.String(node, node.Val)
	case *ast.Symbol:
		return construct.Symbol(node, node.Val)
	case *ast.LVar:
		return construct.Local(node, node.Name)
	case *ast.DString:
		return c.lowerInterp(node, node.Nodes)
	case *ast.Begin:
		return c.lowerStmts(node, node.Stmts)
	case *ast.Kwbegin:
		return c.lowerStmts(node, node.Stmts)

	case *ast.CSend:
		return c.lowerCSend(node)
	case *ast.Block:
		return c.lowerBlockNode(node)
	case *ast.And:
		return c.lowerAnd(node)
	case *ast.Or:
		return c.lowerOr(node)
	case *ast.AndAsgn:
		return c.lowerAndAsgn(node)
	case *ast.OrAsgn:
		return c.lowerOrAsgn(node)
	case *ast.OpAsgn:
		return c.lowerOpAsgn(node)
	case *ast.Assign:
		return construct.Assign(node, c.lower(node.Lhs), c.lower(node.Rhs))
	case *ast.Masgn:
		mlhs, ok := node.Lhs.(*ast.Mlhs)
		if !ok {
			c.raise(node, "multiple assignment without Mlhs target")
		}
		return c.desugarMlhs(node, mlhs, c.lower(node.Rhs))

	case *ast.If:
		return construct.If(node, c.lower(node.Condition), c.lower(node.Then), c.lower(node.Else))
	case *ast.Case:
		return c.lowerCase(node)
	case *ast.While:
		return construct.While(node, c.lower(node.Cond), c.lower(node.Body))
	case *ast.Until:
		return construct.While(node, construct.Send(node.Cond, c.lower(node.Cond), names.Bang), c.lower(node.Body))
	case *ast.WhilePost:
		cond := c.lower(node.Cond)
		if _, ok := node.Body.(*ast.Kwbegin); ok {
			stop := construct.Send(node.Cond, cond, names.Bang)
			return c.doLoop(node, stop, c.lower(node.Body))
		}
		return construct.While(node, cond, c.lower(node.Body))
	case *ast.UntilPost:
		cond := c.lower(node.Cond)
		if _, ok := node.Body.(*ast.Kwbegin); ok {
			return c.doLoop(node, cond, c.lower(node.Body))
		}
		return construct.While(node, construct.Send(node.Cond, cond, names.Bang), c.lower(node.Body))
	case *ast.For:
		return c.lowerFor(node)

	case *ast.Rescue:
		body := c.lower(node.Body)
		cases := make([]*ir.RescueCase, 0, len(node.Rescue))
		for _, r := range node.Rescue {
			rb, ok := r.(*ast.Resbody)
			if !ok {
				c.raise(r, "rescue handler is not a Resbody")
			}
			cases = append(cases, c.lowerResbody(rb))
		}
		return construct.Rescue(node, body, cases, c.lower(node.Else), construct.EmptyTree())
	case *ast.Ensure:
		body := c.lower(node.Body)
		ensure := c.lower(node.Ensure)
		if r, ok := body.(*ir.Rescue); ok {
			r.Ensure = ensure
			return r
		}
		return construct.Rescue(node, body, nil, construct.EmptyTree(), ensure)

	case *ast.Return:
		return construct.Return(node, c.lowerValueList(node, node.Exprs))
	case *ast.Break:
		return construct.Break(node, c.lowerValueList(node, node.Exprs))
	case *ast.Next:
		return construct.Next(node, c.lowerValueList(node, node.Exprs))
	case *ast.Yield:
		return construct.Yield(node, c.lowerAll(node.Exprs))
	case *ast.Retry:
		return construct.Retry(node)
	case *ast.Super:
		return c.lowerSend(node, construct.Self(node), names.SuperFun, ir.PrivateOk, node.Args)
	case *ast.ZSuper:
		return construct.SendFull(node, construct.Self(node), names.SuperFun, ir.PrivateOk,
			[]ir.Expr{construct.ZSuperArgs(node)}, nil)

	case *ast.DSymbol:
		if len(node.Nodes) == 0 {
			return construct.Symbol(node, names.Empty)
		}
		return construct.Send(node, c.lowerInterp(node, node.Nodes), names.Intern)
	case *ast.XString:
		return construct.SendFull(node, construct.Self(node), names.Backtick, ir.PrivateOk,
			[]ir.Expr{c.lowerInterp(node, node.Nodes)}, nil)
	case *ast.Regexp:
		pattern := c.lowerInterp(node, node.Regex)
		var opts ir.Expr
		if node.Opts == nil {
			opts = construct.Int(node, 0)
		} else {
			opts = c.lower(node.Opts)
		}
		return construct.Send(node, construct.Constant(node, names.RegexpClass), names.New, pattern, opts)
	case *ast.Regopt:
		return construct.Int(node, int64(regoptFlags(node.Opts)))

	case *ast.Integer:
		val, err := strconv.ParseInt(strings.ReplaceAll(node.Val, "_", ""), 0, 64)
		if err != nil {
			c.report(sberr.New(sberr.NewIntegerOutOfRange{Positioner: node, Literal: node.Val}))
			val = 0
		}
		return construct.Int(node, val)
	case *ast.Float:
		val, err := strconv.ParseFloat(strings.ReplaceAll(node.Val, "_", ""), 64)
		if err != nil {
			c.report(sberr.New(sberr.NewFloatOutOfRange{Positioner: node, Literal: node.Val}))
			val = math.NaN()
		}
		return construct.Float(node, val)
	case *ast.Complex:
		return construct.Send(node, construct.Constant(node, names.Kernel), names.ComplexFun,
			construct.String(node, c.d.tbl.EnterUTF8(node.Val)))
	case *ast.Rational:
		return construct.Send(node, construct.Constant(node, names.Kernel), names.RationalFun,
			construct.String(node, c.d.tbl.EnterUTF8(node.Val)))

	case *ast.Array:
		return c.lowerArray(node, node.Elts)
	case *ast.Hash:
		return c.lowerHash(node, node.Pairs)
	case *ast.IRange:
		return construct.Send(node, construct.Constant(node, names.RangeClass), names.New,
			c.lower(node.From), c.lower(node.To))
	case *ast.ERange:
		return construct.Send(node, construct.Constant(node, names.RangeClass), names.New,
			c.lower(node.From), c.lower(node.To), construct.True(node))
	case *ast.Splat:
		return construct.Send(node, construct.Constant(node, names.Magic), names.SplatFun, c.lower(node.Var))

	case *ast.Nil:
		return construct.Nil(node)
	case *ast.True:
		return construct.True(node)
	case *ast.False:
		return construct.False(node)
	case *ast.Self:
		return construct.Self(node)
	case *ast.LineLiteral:
		return construct.Int(node, int64(node.Line))
	case *ast.FileLiteral:
		return construct.String(node, names.CurrentFile)
	case *ast.Defined:
		return construct.Send(node, construct.Constant(node, names.Magic), names.DefinedP, c.lower(node.Value))
	case *ast.Alias:
		return construct.SendFull(node, construct.Self(node), names.AliasMethod, ir.PrivateOk,
			[]ir.Expr{c.lower(node.From), c.lower(node.To)}, nil)

	case *ast.ConstLhs:
		return construct.UnresolvedConstant(node, c.lower(node.Scope), node.Name)
	case *ast.Cbase:
		return construct.Constant(node, names.Root)
	case *ast.LVarLhs:
		return construct.Local(node, node.Name)
	case *ast.IVar:
		return construct.Ident(node, ir.IdentInstance, node.Name)
	case *ast.IVarLhs:
		return construct.Ident(node, ir.IdentInstance, node.Name)
	case *ast.GVar:
		return construct.Ident(node, ir.IdentGlobal, node.Name)
	case *ast.GVarLhs:
		return construct.Ident(node, ir.IdentGlobal, node.Name)
	case *ast.CVar:
		return construct.Ident(node, ir.IdentClass, node.Name)
	case *ast.CVarLhs:
		return construct.Ident(node, ir.IdentClass, node.Name)
	case *ast.NthRef:
		return construct.Ident(node, ir.IdentGlobal, c.d.tbl.EnterUTF8(strconv.Itoa(node.Ref)))

	case *ast.Module:
		return construct.ClassDef(node, ir.RangeOf(node.DeclLoc), ir.ClassKindModule, c.lower(node.Name),
			[]ir.Expr{construct.Constant(node, names.Todo)}, c.scopeBody(node.Body))
	case *ast.Class:
		var ancestors []ir.Expr
		if node.Superclass == nil {
			ancestors = []ir.Expr{construct.Constant(node, names.Todo)}
		} else {
			ancestors = []ir.Expr{c.lower(node.Superclass)}
		}
		return construct.ClassDef(node, ir.RangeOf(node.DeclLoc), ir.ClassKindClass, c.lower(node.Name),
			ancestors, c.scopeBody(node.Body))
	case *ast.SClass:
		if _, ok := node.Expr.(*ast.Self); !ok {
			c.report(sberr.New(sberr.NewInvalidSingletonDef{
				Positioner: node.Expr,
				Written:    "class << EXPRESSION",
				Supported:  "class << self",
			}))
			return construct.EmptyTree()
		}
		name := construct.Ident(node.Expr, ir.IdentClass, names.Singleton)
		return construct.ClassDef(node, ir.RangeOf(node.DeclLoc), ir.ClassKindClass, name,
			[]ir.Expr{construct.Constant(node, names.Todo)}, c.scopeBody(node.Body))
	case *ast.DefMethod:
		return c.buildMethod(node, ir.RangeOf(node.DeclLoc), node.Name, node.Args, node.Body, 0)
	case *ast.DefS:
		if _, ok := node.Singleton.(*ast.Self); !ok {
			c.report(sberr.New(sberr.NewInvalidSingletonDef{
				Positioner: node.Singleton,
				Written:    "def EXPRESSION.method",
				Supported:  "def self.method",
			}))
			return construct.EmptyTree()
		}
		return c.buildMethod(node, ir.RangeOf(node.DeclLoc), node.Name, node.Args, node.Body, ir.SelfMethod)

	case *ast.Preexe, *ast.Postexe, *ast.Undef, *ast.Backref,
		*ast.IFlipflop, *ast.EFlipflop, *ast.MatchCurLine, *ast.Redo:
		c.report(sberr.New(sberr.NewUnsupportedNode{Positioner: node, NodeName: node.NodeName()}))
		return construct.EmptyTree()

	case *ast.BlockPass:
		c.raise(node, "block-pass outside of a call argument list")
	case *ast.Mlhs, *ast.SplatLhs, *ast.When, *ast.Resbody, *ast.Pair, *ast.Kwsplat,
		*ast.Args, *ast.Arg, *ast.Optarg, *ast.Restarg, *ast.Kwarg, *ast.Kwoptarg,
		*ast.Kwrestarg, *ast.Blockarg, *ast.Shadowarg:
		c.raise(node, "node %s outside of its enclosing construct", node.NodeName())
	default:
		c.raise(node, "unhandled node %s", node.NodeName())
	}
	return construct.EmptyTree() // unreachable, raise panics
}

// lowerStmts turns a statement sequence into an InsSeq whose last
// statement produces the value.
func (c dctx) lowerStmts(loc ir.Positioner, stmts []ast.Node) ir.Expr {
	switch len(stmts) {
	case 0:
		return construct.EmptyTree()
	case 1:
		return c.lower(stmts[0])
	}
	stats := make([]ir.Expr, 0, len(stmts)-1)
	for _, s := range stmts[:len(stmts)-1] {
		stats = append(stats, c.lower(s))
	}
	return construct.InsSeq(loc, stats, c.lower(stmts[len(stmts)-1]))
}

// lowerValueList is the shared rule of return/break/next: no value is
// EmptyTree, one value passes through, several become an array.
func (c dctx) lowerValueList(loc ir.Positioner, exprs []ast.Node) ir.Expr {
	switch len(exprs) {
	case 0:
		return construct.EmptyTree()
	case 1:
		return c.lower(exprs[0])
	}
	return c.lowerArray(loc, exprs)
}

func (c dctx) lowerAll(nodes []ast.Node) []ir.Expr {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]ir.Expr, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, c.lower(n))
	}
	return out
}

func (c dctx) lowerCase(node *ast.Case) ir.Expr {
	res := c.lower(node.Else)
	var temp names.Ref
	if node.Condition != nil {
		temp = c.fresh(names.AssignTemp)
	}
	for i := len(node.Whens) - 1; i >= 0; i-- {
		when, ok := node.Whens[i].(*ast.When)
		if !ok {
			c.raise(node.Whens[i], "case arm is not a When")
		}
		var cond ir.Expr
		for j := len(when.Patterns) - 1; j >= 0; j-- {
			p := when.Patterns[j]
			var test ir.Expr
			if node.Condition != nil {
				test = construct.Send(p, c.lower(p), names.TripleEq, construct.Local(p, temp))
			} else {
				test = c.lower(p)
			}
			if cond == nil {
				cond = test
			} else {
				cond = construct.If(p, test, construct.True(p), cond)
			}
		}
		res = construct.If(when, cond, c.lower(when.Body), res)
	}
	if node.Condition != nil {
		assgn := construct.Assign(node.Condition, construct.Local(node.Condition, temp), c.lower(node.Condition))
		res = construct.InsSeq1(node, assgn, res)
	}
	return res
}

// doLoop builds the do-while form: run body, then break with its
// value once stopCond holds.
func (c dctx) doLoop(loc ir.Positioner, stopCond ir.Expr, body ir.Expr) ir.Expr {
	temp := c.fresh(names.ForTemp)
	breaker := construct.If(loc, stopCond, construct.Break(loc, construct.Local(loc, temp)), construct.EmptyTree())
	inner := construct.InsSeq1(loc, construct.Assign(loc, construct.Local(loc, temp), body), breaker)
	return construct.While(loc, construct.True(loc), inner)
}

func (c dctx) lowerFor(node *ast.For) ir.Expr {
	mlhs, ok := node.Vars.(*ast.Mlhs)
	if !ok {
		mlhs = &ast.Mlhs{Range: ast.RangeOf(node.Vars), Exprs: []ast.Node{node.Vars}}
	}
	temp := c.fresh(names.ForTemp)
	destructure := c.desugarMlhs(node.Vars, mlhs, construct.Local(node.Vars, temp))
	body := construct.InsSeq1(node, destructure, c.lower(node.Body))
	blk := construct.Block(node, []ir.Expr{construct.RestArg(node.Vars, construct.Local(node.Vars, temp))}, body)
	return construct.SendFull(node, c.lower(node.Expr), names.Each, 0, nil, blk)
}

func (c dctx) lowerResbody(rb *ast.Resbody) *ir.RescueCase {
	var exceptions []ir.Expr
	switch exc := rb.Exception.(type) {
	case nil:
	case *ast.Array:
		exceptions = c.lowerAll(exc.Elts)
	case *ast.Splat:
		exceptions = []ir.Expr{c.lower(exc)}
	case *ast.Send:
		if exc.Method != names.SplatFun && exc.Method != names.ToA && exc.Method != names.Concat {
			c.report(sberr.New(sberr.NewUnsupportedNode{Positioner: exc, NodeName: "Send"}))
		}
		exceptions = []ir.Expr{c.lower(exc)}
	default:
		c.raise(rb.Exception, "unexpected exception list %s", rb.Exception.NodeName())
	}

	var bound names.Ref
	var varExpr ir.Expr
	varLoc := ir.Positioner(rb)
	if rb.Var != nil {
		varLoc = rb.Var
		lowered := c.lower(rb.Var)
		if lv, ok := lowered.(*ir.Local); ok {
			bound = lv.Name
		} else {
			varExpr = lowered
		}
	}
	if bound == names.NoName {
		bound = c.fresh(names.RescueTemp)
	}
	body := c.lower(rb.Body)
	if varExpr != nil {
		assgn := construct.Assign(varLoc, varExpr, construct.Local(varLoc, bound))
		body = construct.InsSeq1(rb, assgn, body)
	}
	return construct.RescueCase(rb, exceptions, construct.Local(varLoc, bound), body)
}

// scopeBody lowers a class or module body into its RHS statements,
// restarting temporary numbering for the new scope.
func (c dctx) scopeBody(node ast.Node) []ir.Expr {
	child := c.scoped()
	if begin, ok := node.(*ast.Begin); ok {
		body := make([]ir.Expr, 0, len(begin.Stmts))
		for _, s := range begin.Stmts {
			body = append(body, child.lower(s))
		}
		return body
	}
	return []ir.Expr{child.lower(node)}
}

func (c dctx) buildMethod(loc ir.Positioner, declLoc ir.Range, name names.Ref, argsNode, bodyNode ast.Node, flags ir.MethodFlags) ir.Expr {
	child := c.scoped()
	args, destructures := child.lowerArgs(argsNode)
	body := child.lower(bodyNode)
	if len(destructures) > 0 {
		body = construct.InsSeq(loc, destructures, body)
	}
	return construct.MethodDef(loc, declLoc, name, flags, args, body)
}

func regoptFlags(opts string) int {
	flags := 0
	for _, chr := range opts {
		switch chr {
		case 'i':
			flags |= 1
		case 'x':
			flags |= 2
		case 'm':
			flags |= 4
		}
		// encoding flags (n, e, s, u) and anything unknown are
		// dropped; the parser already reported bad ones
	}
	return flags
}
