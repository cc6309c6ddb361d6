// Package verifier walks lowered trees and checks the structural
// invariants later passes rely on. It runs after every lowering that
// completes; a violation is a bug in the lowering pass, not a user
// error.
package verifier

import (
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/internal/log"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
)

var logger = log.DefaultLogger.With("section", "verifier")

type verifier struct {
	tbl    *names.Table
	failed []error
}

func (v *verifier) errorf(format string, args ...any) {
	v.failed = append(v.failed, errors.Errorf(format, args...))
}

// Verify checks tree and returns the first violation found, wrapping
// the total count when there are several.
func Verify(tbl *names.Table, tree ir.Expr) error {
	v := &verifier{tbl: tbl}
	v.walk(tree, true)
	switch len(v.failed) {
	case 0:
		return nil
	case 1:
		return v.failed[0]
	}
	logger.Warn("tree failed verification", "violations", len(v.failed))
	return errors.Wrapf(v.failed[0], "%d violations, first one", len(v.failed))
}

// walk recurses over every child of expr. atRoot is only true for the
// outermost expression, which is allowed to be the ancestor-less root
// class definition.
func (v *verifier) walk(expr ir.Expr, atRoot bool) {
	if expr == nil {
		v.errorf("nil expression in lowered tree")
		return
	}
	v.checkPos(expr)
	switch expr := expr.(type) {
	case *ir.EmptyTree, *ir.Literal, *ir.Local, *ir.UnresolvedIdent,
		*ir.Constant, *ir.Self, *ir.Retry, *ir.ZSuperArgs:
	case *ir.UnresolvedConstant:
		v.walk(expr.Scope, false)
	case *ir.Assign:
		v.walk(expr.Lhs, false)
		v.walk(expr.Rhs, false)
	case *ir.InsSeq:
		if len(expr.Stats) == 0 {
			v.errorf("instruction sequence with no statements at %s", posOf(expr))
		}
		for _, s := range expr.Stats {
			v.walk(s, false)
		}
		v.walk(expr.Expr, false)
	case *ir.If:
		v.walk(expr.Cond, false)
		v.walk(expr.Then, false)
		v.walk(expr.Else, false)
	case *ir.While:
		v.walk(expr.Cond, false)
		v.walk(expr.Body, false)
	case *ir.Send:
		if expr.Receiver == nil {
			v.errorf("call of %s with no receiver at %s", v.tbl.Str(expr.Method), posOf(expr))
		} else {
			v.walk(expr.Receiver, false)
		}
		for _, a := range expr.Args {
			v.walk(a, false)
		}
		if expr.Block != nil {
			v.checkArgs(expr.Block.Args)
			v.walk(expr.Block.Body, false)
		}
	case *ir.Array:
		for _, e := range expr.Elems {
			v.walk(e, false)
		}
	case *ir.Hash:
		if len(expr.Keys) != len(expr.Values) {
			v.errorf("hash with %d keys but %d values at %s", len(expr.Keys), len(expr.Values), posOf(expr))
		}
		for _, k := range expr.Keys {
			v.walk(k, false)
		}
		for _, val := range expr.Values {
			v.walk(val, false)
		}
	case *ir.Return:
		v.walk(expr.Expr, false)
	case *ir.Break:
		v.walk(expr.Expr, false)
	case *ir.Next:
		v.walk(expr.Expr, false)
	case *ir.Yield:
		for _, a := range expr.Args {
			v.walk(a, false)
		}
	case *ir.RestArg:
		v.walk(expr.Inner, false)
	case *ir.KeywordArg:
		v.walk(expr.Inner, false)
	case *ir.BlockArg:
		v.walk(expr.Inner, false)
	case *ir.ShadowArg:
		v.walk(expr.Inner, false)
	case *ir.OptionalArg:
		v.walk(expr.Inner, false)
		v.walk(expr.Default, false)
	case *ir.Block:
		v.errorf("block outside of a call at %s", posOf(expr))
	case *ir.ClassDef:
		v.checkClassDef(expr, atRoot)
	case *ir.MethodDef:
		v.checkArgs(expr.Args)
		v.walk(expr.Body, false)
	case *ir.Rescue:
		v.walk(expr.Body, false)
		for _, rc := range expr.Cases {
			v.checkRescueCase(rc)
		}
		v.walk(expr.Else, false)
		v.walk(expr.Ensure, false)
	default:
		v.errorf("unknown expression kind %s at %s", expr.ExprName(), posOf(expr))
	}
}

func (v *verifier) checkClassDef(cd *ir.ClassDef, atRoot bool) {
	if cd.Name == nil {
		v.errorf("class definition with no name at %s", posOf(cd))
	} else {
		v.walk(cd.Name, false)
	}
	isRoot := false
	if cn, ok := cd.Name.(*ir.Constant); ok && cn.Symbol == names.Root {
		isRoot = true
	}
	if !isRoot && !atRoot && len(cd.Ancestors) == 0 {
		v.errorf("class definition with no ancestors at %s", posOf(cd))
	}
	for _, a := range cd.Ancestors {
		v.walk(a, false)
	}
	for _, e := range cd.RHS {
		v.walk(e, false)
	}
}

// checkArgs validates a formal parameter list: locals at the core of
// every wrapper, and no name bound twice.
func (v *verifier) checkArgs(args []ir.Expr) {
	seen := set.New[names.Ref](len(args))
	for _, a := range args {
		local, ok := v.unwrapArg(a).(*ir.Local)
		if !ok {
			v.errorf("formal parameter is not a local at %s", posOf(a))
			continue
		}
		if local.Name != names.NoName && !seen.Insert(local.Name) {
			v.errorf("parameter `%s` bound twice at %s", v.tbl.Str(local.Name), posOf(a))
		}
	}
}

// unwrapArg peels parameter wrappers down to the named core,
// validating optional-argument defaults on the way.
func (v *verifier) unwrapArg(arg ir.Expr) ir.Expr {
	for {
		switch w := arg.(type) {
		case *ir.RestArg:
			arg = w.Inner
		case *ir.KeywordArg:
			arg = w.Inner
		case *ir.BlockArg:
			arg = w.Inner
		case *ir.ShadowArg:
			arg = w.Inner
		case *ir.OptionalArg:
			v.walk(w.Default, false)
			arg = w.Inner
		default:
			return arg
		}
	}
}

func (v *verifier) checkRescueCase(rc *ir.RescueCase) {
	if rc == nil {
		v.errorf("nil rescue handler")
		return
	}
	for _, e := range rc.Exceptions {
		v.walk(e, false)
	}
	if _, ok := rc.Var.(*ir.Local); !ok {
		v.errorf("rescue binds its exception to a non-local at %s", posOf(rc))
	}
	v.walk(rc.Body, false)
}

// checkPos requires a recorded source range on everything except the
// two position-less kinds.
func (v *verifier) checkPos(expr ir.Expr) {
	switch expr.(type) {
	case *ir.EmptyTree, *ir.ZSuperArgs:
		return
	}
	if !ir.RangeOf(expr).Exists() {
		v.errorf("expression %s has no source position", expr.ExprName())
	}
}

func posOf(expr ir.Expr) ir.Range {
	return ir.RangeOf(expr)
}
