package desugar

import (
	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
)

// lowerInterp folds interpolation pieces into a concat chain. The
// first piece anchors the chain; a piece that is already a string
// literal is used as-is, everything else goes through to_s.
func (c dctx) lowerInterp(loc ir.Positioner, nodes []ast.Node) ir.Expr {
	if len(nodes) == 0 {
		return construct.String(loc, names.Empty)
	}
	res := c.interpPiece(nodes[0])
	for _, n := range nodes[1:] {
		res = construct.Send(n, res, names.Concat, c.interpPiece(n))
	}
	return res
}

func (c dctx) interpPiece(node ast.Node) ir.Expr {
	lowered := c.lower(node)
	if lit, ok := lowered.(*ir.Literal); ok && lit.Kind == ir.LitString {
		return lowered
	}
	return construct.Send(node, lowered, names.ToS)
}

// lowerArray builds an array literal. Splat elements split the literal
// into runs; each run becomes a plain array and the runs are glued
// with concat, coercing each splatted value through to_a.
func (c dctx) lowerArray(loc ir.Positioner, elts []ast.Node) ir.Expr {
	var acc ir.Expr
	var elems []ir.Expr

	flush := func(at ir.Positioner) {
		if acc == nil {
			acc = construct.Array(at, elems)
		} else if len(elems) > 0 {
			acc = construct.Send(at, acc, names.Concat, construct.Array(at, elems))
		}
		elems = nil
	}

	for _, e := range elts {
		if splat, ok := e.(*ast.Splat); ok {
			flush(splat)
			splatted := construct.Send(splat, c.lower(splat.Var), names.ToA)
			acc = construct.Send(splat, acc, names.Concat, splatted)
			continue
		}
		elems = append(elems, c.lower(e))
	}
	if acc == nil {
		return construct.Array(loc, elems)
	}
	flush(loc)
	return acc
}

// lowerHash mirrors lowerArray for hash literals: kwsplat entries cut
// the literal into runs merged with merge, each splatted value coerced
// through to_hash.
func (c dctx) lowerHash(loc ir.Positioner, pairs []ast.Node) ir.Expr {
	var acc ir.Expr
	var keys, values []ir.Expr

	flush := func(at ir.Positioner) {
		if acc == nil {
			acc = construct.Hash(at, keys, values)
		} else if len(keys) > 0 {
			acc = construct.Send(at, acc, names.Merge, construct.Hash(at, keys, values))
		}
		keys, values = nil, nil
	}

	for _, p := range pairs {
		switch p := p.(type) {
		case *ast.Pair:
			keys = append(keys, c.lower(p.Key))
			values = append(values, c.lower(p.Value))
		case *ast.Kwsplat:
			flush(p)
			splatted := construct.Send(p, c.lower(p.Expr), names.ToHash)
			acc = construct.Send(p, acc, names.Merge, splatted)
		default:
			c.raise(p, "unexpected hash entry %s", p.NodeName())
		}
	}
	if acc == nil {
		return construct.Hash(loc, keys, values)
	}
	flush(loc)
	return acc
}
