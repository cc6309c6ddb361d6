// Package desugar lowers parse trees into the typed-AST consumed by
// later passes. Surface constructs are rewritten into a small set of
// primitives; user errors become diagnostics plus placeholder nodes so
// the rest of the tree still lowers.
package desugar

import (
	"fmt"

	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/frontend/sberr"
	"github.com/bigH/sorbet/internal/log"
	"github.com/pkg/errors"
)

var logger = log.DefaultLogger.With("section", "desugar")

type desugarer struct {
	tbl  *names.Table
	errs *sberr.Errors
}

// dctx is the per-scope lowering context. The counter is shared by
// reference through one scope so sibling branches see each other's
// temporary allocations.
type dctx struct {
	d       *desugarer
	counter *uint16
}

func (c dctx) fresh(base names.Ref) names.Ref {
	*c.counter++
	return c.d.tbl.FreshUnique(names.UniqueDesugar, base, *c.counter)
}

// scoped starts a child context with its own counter. Method and
// class bodies restart numbering so temporary names stay small.
func (c dctx) scoped() dctx {
	counter := uint16(1)
	return dctx{c.d, &counter}
}

func (c dctx) report(diag sberr.Diagnostic) {
	c.d.errs = c.d.errs.With(diag)
}

// lowerPanic aborts the current invocation on a broken invariant. It
// is caught once at the top level, never mid-tree.
type lowerPanic struct {
	pos ast.Positioner
	msg string
}

func (c dctx) raise(pos ast.Positioner, format string, args ...any) {
	panic(lowerPanic{pos, fmt.Sprintf(format, args...)})
}

// Desugar lowers node and lifts the result into the root class scope.
// Diagnostics for user errors are collected in diags; a non-nil err
// means the input violated an internal invariant and the returned
// tree is a placeholder.
func Desugar(tbl *names.Table, node ast.Node) (tree ir.Expr, diags *sberr.Errors, err error) {
	d := &desugarer{tbl: tbl}
	counter := uint16(1)
	c := dctx{d, &counter}
	defer func() {
		if r := recover(); r != nil {
			lp, ok := r.(lowerPanic)
			if !ok {
				panic(r)
			}
			var pos ast.Positioner = ast.Range{}
			if lp.pos != nil {
				pos = lp.pos
			}
			d.errs = d.errs.With(sberr.New(sberr.NewInternalError{Positioner: pos, Detail: lp.msg}))
			tree = construct.EmptyTree()
			diags = d.errs
			err = errors.Errorf("failed to process tree: %s", lp.msg)
		}
	}()
	if node != nil {
		logger.Debug("lowering parse tree", "kind", node.NodeName())
	}
	lowered := c.lower(node)
	return c.liftToRoot(lowered), d.errs, nil
}
