package desugar

import (
	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
)

// liftToRoot wraps top-level code in the root class definition so
// every later pass sees a class at the top. A tree that already is a
// class definition passes through.
func (c dctx) liftToRoot(body ir.Expr) ir.Expr {
	var rhs []ir.Expr
	switch body := body.(type) {
	case *ir.ClassDef:
		return body
	case *ir.InsSeq:
		rhs = append(rhs, body.Stats...)
		rhs = append(rhs, body.Expr)
	default:
		rhs = []ir.Expr{body}
	}
	name := construct.Constant(body, names.Root)
	return construct.ClassDef(body, ir.RangeOf(body), ir.ClassKindClass, name, nil, rhs)
}
