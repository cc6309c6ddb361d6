package verifier_test

import (
	"testing"

	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/frontend/verifier"
	"github.com/stretchr/testify/assert"
)

var at = ir.Range{PosStart: 1, PosEnd: 2}

func wrapInRoot(stmts ...ir.Expr) ir.Expr {
	return construct.ClassDef(at, at, ir.ClassKindClass, construct.Constant(at, names.Root), nil, stmts)
}

func TestAcceptsWellFormedTree(t *testing.T) {
	tbl := names.NewTable()
	foo := tbl.EnterUTF8("foo")
	x := tbl.EnterUTF8("x")

	method := construct.MethodDef(at, at, foo, 0,
		[]ir.Expr{construct.Local(at, x)},
		construct.Send(at, construct.Local(at, x), names.ToS),
	)
	assert.NoError(t, verifier.Verify(tbl, wrapInRoot(method)))
}

func TestRejectsMissingReceiver(t *testing.T) {
	tbl := names.NewTable()
	bad := &ir.Send{Range: at, Method: names.ToS}
	err := verifier.Verify(tbl, wrapInRoot(bad))
	assert.ErrorContains(t, err, "no receiver")
}

func TestRejectsDuplicateParameters(t *testing.T) {
	tbl := names.NewTable()
	x := tbl.EnterUTF8("x")
	method := construct.MethodDef(at, at, tbl.EnterUTF8("foo"), 0,
		[]ir.Expr{construct.Local(at, x), construct.Local(at, x)},
		construct.EmptyTree(),
	)
	err := verifier.Verify(tbl, wrapInRoot(method))
	assert.ErrorContains(t, err, "bound twice")
}

func TestRejectsMissingPosition(t *testing.T) {
	tbl := names.NewTable()
	noPos := &ir.Literal{Kind: ir.LitNil}
	err := verifier.Verify(tbl, wrapInRoot(noPos))
	assert.ErrorContains(t, err, "no source position")
}

func TestRejectsAncestorLessClass(t *testing.T) {
	tbl := names.NewTable()
	inner := construct.ClassDef(at, at, ir.ClassKindClass,
		construct.UnresolvedConstant(at, construct.EmptyTree(), tbl.EnterUTF8("Foo")), nil, nil)
	err := verifier.Verify(tbl, wrapInRoot(inner))
	assert.ErrorContains(t, err, "no ancestors")
}

func TestRootClassNeedsNoAncestors(t *testing.T) {
	tbl := names.NewTable()
	assert.NoError(t, verifier.Verify(tbl, wrapInRoot(construct.Nil(at))))
}

func TestReportsFirstOfManyViolations(t *testing.T) {
	tbl := names.NewTable()
	bad1 := &ir.Send{Range: at, Method: names.ToS}
	bad2 := &ir.Literal{Kind: ir.LitNil}
	err := verifier.Verify(tbl, wrapInRoot(bad1, bad2))
	assert.ErrorContains(t, err, "2 violations")
}
