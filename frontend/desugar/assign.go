package desugar

import (
	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/frontend/sberr"
)

// copyRef duplicates a reference so both arms of a synthesized
// conditional can mention it. Non-references return nil and force the
// caller onto the temporary path.
func copyRef(e ir.Expr) ir.Expr {
	switch e := e.(type) {
	case *ir.Local:
		cp := *e
		return &cp
	case *ir.UnresolvedIdent:
		cp := *e
		return &cp
	case *ir.Self:
		cp := *e
		return &cp
	}
	return nil
}

func (c dctx) lowerAnd(node *ast.And) ir.Expr {
	left := c.lower(node.Left)
	right := c.lower(node.Right)
	if cp := copyRef(left); cp != nil {
		return construct.If(node, left, right, cp)
	}
	temp := c.fresh(names.AndAnd)
	assgn := construct.Assign(node, construct.Local(node, temp), left)
	cond := construct.If(node, construct.Local(node, temp), right, construct.Local(node, temp))
	return construct.InsSeq1(node, assgn, cond)
}

func (c dctx) lowerOr(node *ast.Or) ir.Expr {
	left := c.lower(node.Left)
	right := c.lower(node.Right)
	if cp := copyRef(left); cp != nil {
		return construct.If(node, left, cp, right)
	}
	temp := c.fresh(names.OrOr)
	assgn := construct.Assign(node, construct.Local(node, temp), left)
	cond := construct.If(node, construct.Local(node, temp), construct.Local(node, temp), right)
	return construct.InsSeq1(node, assgn, cond)
}

// opAsgnTemps pins down the receiver and every index argument of a
// send-shaped compound-assignment target, so the target is evaluated
// exactly once. Temporaries are based on the target's method name.
func (c dctx) opAsgnTemps(s *ast.Send) (stats []ir.Expr, recv names.Ref, args []names.Ref) {
	recv = c.fresh(s.Method)
	stats = append(stats, construct.Assign(s, construct.Local(s, recv), c.lower(s.Receiver)))
	for _, a := range s.Args {
		temp := c.fresh(s.Method)
		stats = append(stats, construct.Assign(a, construct.Local(a, temp), c.lower(a)))
		args = append(args, temp)
	}
	return stats, recv, args
}

func (c dctx) opAsgnRead(s *ast.Send, recv names.Ref, args []names.Ref) ir.Expr {
	read := construct.Send(s, construct.Local(s, recv), s.Method)
	for _, a := range args {
		read.Args = append(read.Args, construct.Local(s, a))
	}
	return read
}

func (c dctx) opAsgnWrite(s *ast.Send, recv names.Ref, args []names.Ref, val ir.Expr) ir.Expr {
	write := construct.Send(s, construct.Local(s, recv), c.d.tbl.AddEq(s.Method))
	for _, a := range args {
		write.Args = append(write.Args, construct.Local(s, a))
	}
	write.Args = append(write.Args, val)
	return write
}

func (c dctx) lowerAndAsgn(node *ast.AndAsgn) ir.Expr {
	switch lhs := node.Left.(type) {
	case *ast.Send:
		stats, recv, args := c.opAsgnTemps(lhs)
		result := c.fresh(lhs.Method)
		stats = append(stats, construct.Assign(node, construct.Local(node, result), c.opAsgnRead(lhs, recv, args)))
		write := c.opAsgnWrite(lhs, recv, args, c.lower(node.Right))
		cond := construct.If(node, construct.Local(node, result), write, construct.Local(node, result))
		return construct.InsSeq(node, stats, cond)
	case *ast.ConstLhs, *ast.Const:
		c.report(sberr.New(sberr.NewNoConstantReassignment{Positioner: node}))
		return construct.EmptyTree()
	default:
		target := c.lower(node.Left)
		cp1, cp2 := copyRef(target), copyRef(target)
		if cp1 == nil {
			c.raise(node.Left, "unsupported &&= target %s", node.Left.NodeName())
		}
		assgn := construct.Assign(node, cp1, c.lower(node.Right))
		return construct.If(node, target, assgn, cp2)
	}
}

func (c dctx) lowerOrAsgn(node *ast.OrAsgn) ir.Expr {
	switch lhs := node.Left.(type) {
	case *ast.Send:
		stats, recv, args := c.opAsgnTemps(lhs)
		result := c.fresh(lhs.Method)
		stats = append(stats, construct.Assign(node, construct.Local(node, result), c.opAsgnRead(lhs, recv, args)))
		write := c.opAsgnWrite(lhs, recv, args, c.lower(node.Right))
		cond := construct.If(node, construct.Local(node, result), construct.Local(node, result), write)
		return construct.InsSeq(node, stats, cond)
	case *ast.ConstLhs, *ast.Const:
		c.report(sberr.New(sberr.NewNoConstantReassignment{Positioner: node}))
		return construct.EmptyTree()
	default:
		target := c.lower(node.Left)
		cp1, cp2 := copyRef(target), copyRef(target)
		if cp1 == nil {
			c.raise(node.Left, "unsupported ||= target %s", node.Left.NodeName())
		}
		assgn := construct.Assign(node, cp1, c.lower(node.Right))
		return construct.If(node, target, cp2, assgn)
	}
}

func (c dctx) lowerOpAsgn(node *ast.OpAsgn) ir.Expr {
	switch lhs := node.Left.(type) {
	case *ast.Send:
		stats, recv, args := c.opAsgnTemps(lhs)
		val := construct.Send(node, c.opAsgnRead(lhs, recv, args), node.Op, c.lower(node.Right))
		return construct.InsSeq(node, stats, c.opAsgnWrite(lhs, recv, args, val))
	case *ast.ConstLhs, *ast.Const:
		c.report(sberr.New(sberr.NewNoConstantReassignment{Positioner: node}))
		return construct.EmptyTree()
	default:
		target := c.lower(node.Left)
		cp := copyRef(target)
		if cp == nil {
			c.raise(node.Left, "unsupported op= target %s", node.Left.NodeName())
		}
		val := construct.Send(node, cp, node.Op, c.lower(node.Right))
		return construct.Assign(node, target, val)
	}
}

// desugarMlhs expands a destructuring assignment. The right-hand side
// is normalized once through Magic.expandSplat, then each target reads
// its position out of the expanded value; a splat target takes a slice
// covering everything between its neighbours. The whole sequence
// yields the expanded value.
func (c dctx) desugarMlhs(loc ir.Positioner, lhs *ast.Mlhs, rhs ir.Expr) ir.Expr {
	temp := c.fresh(names.AssignTemp)

	var stats []ir.Expr
	i := 0
	before, after := 0, 0
	didSplat := false
	for _, target := range lhs.Exprs {
		if splat, ok := target.(*ast.SplatLhs); ok {
			didSplat = true
			lh := c.lower(splat.Var)
			left := i
			right := len(lhs.Exprs) - left - 1
			if _, empty := lh.(*ir.EmptyTree); !empty {
				exclusive := ir.Expr(construct.True(splat))
				if right == 0 {
					right = 1
					exclusive = construct.False(splat)
				}
				index := construct.Send(splat, construct.Constant(splat, names.RangeClass), names.New,
					construct.Int(splat, int64(left)), construct.Int(splat, int64(-right)), exclusive)
				slice := construct.Send(splat, construct.Local(splat, temp), names.Slice, index)
				stats = append(stats, construct.Assign(splat, lh, slice))
			}
			i = -right
			continue
		}

		if didSplat {
			after++
		} else {
			before++
		}
		val := construct.Send(target, construct.Local(target, temp), names.SquareBrackets, construct.Int(target, int64(i)))
		if nested, ok := target.(*ast.Mlhs); ok {
			stats = append(stats, c.desugarMlhs(target, nested, val))
		} else {
			stats = append(stats, construct.Assign(target, c.lower(target), val))
		}
		i++
	}

	expand := construct.Send(loc, construct.Constant(loc, names.Magic), names.ExpandSplat,
		rhs, construct.Int(loc, int64(before)), construct.Int(loc, int64(after)))
	stats = append([]ir.Expr{construct.Assign(loc, construct.Local(loc, temp), expand)}, stats...)
	return construct.InsSeq(loc, stats, construct.Local(loc, temp))
}
