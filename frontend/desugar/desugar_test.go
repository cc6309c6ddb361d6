package desugar_test

import (
	"testing"

	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/desugar"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/frontend/sberr"
	"github.com/stretchr/testify/assert"
)

type lowered struct {
	tbl   *names.Table
	tree  ir.Expr
	diags *sberr.Errors
}

func lower(t *testing.T, node ast.Node) lowered {
	t.Helper()
	tbl := names.NewTable()
	tree, diags, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)
	return lowered{tbl, tree, diags}
}

// rootStmt unwraps the synthesized root class around a single
// top-level expression.
func rootStmt(t *testing.T, tree ir.Expr) ir.Expr {
	t.Helper()
	cd, ok := tree.(*ir.ClassDef)
	if !ok {
		t.Fatalf("top level is %s, not a class definition", tree.ExprName())
	}
	if len(cd.RHS) != 1 {
		t.Fatalf("expected a single top-level statement, got %d", len(cd.RHS))
	}
	return cd.RHS[0]
}

// rootSeq reassembles a top-level sequence from the root class: the
// lift moves an InsSeq's statements and value into the class RHS.
func rootSeq(t *testing.T, tree ir.Expr) *ir.InsSeq {
	t.Helper()
	cd, ok := tree.(*ir.ClassDef)
	if !ok {
		t.Fatalf("top level is %s, not a class definition", tree.ExprName())
	}
	n := len(cd.RHS)
	if n < 2 {
		t.Fatalf("expected a lifted sequence at the top level, got %d statements", n)
	}
	return &ir.InsSeq{Stats: cd.RHS[:n-1], Expr: cd.RHS[n-1]}
}

func lvar(tbl *names.Table, s string) *ast.LVar {
	return &ast.LVar{Name: tbl.EnterUTF8(s)}
}

func call(tbl *names.Table, s string) *ast.Send {
	return &ast.Send{Method: tbl.EnterUTF8(s)}
}

func TestAndWithLocalLHS(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.And{Left: lvar(tbl, "a"), Right: call(tbl, "f")}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	iff, ok := rootStmt(t, tree).(*ir.If)
	if !ok {
		t.Fatalf("expected a conditional, got %s", rootStmt(t, tree).ExprName())
	}
	cond, ok := iff.Cond.(*ir.Local)
	assert.True(t, ok, "condition should read the local directly")
	elsep, ok := iff.Else.(*ir.Local)
	assert.True(t, ok, "else branch should re-read the local, not a temporary")
	assert.Equal(t, cond.Name, elsep.Name)
	assert.Equal(t, "a", tbl.Str(cond.Name))
	_, ok = iff.Then.(*ir.Send)
	assert.True(t, ok)
}

func TestAndWithCallLHS(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.And{Left: call(tbl, "f"), Right: call(tbl, "g")}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	seq := rootSeq(t, tree)
	if len(seq.Stats) == 0 {
		t.Fatalf("expected a sequence binding a temporary")
	}
	assert.Len(t, seq.Stats, 1)
	assgn := seq.Stats[0].(*ir.Assign)
	temp := assgn.Lhs.(*ir.Local)
	assert.True(t, tbl.IsUnique(temp.Name), "left operand must be bound to a fresh temporary")
	assert.Contains(t, tbl.Str(temp.Name), "&&")

	iff := seq.Expr.(*ir.If)
	assert.Equal(t, temp.Name, iff.Cond.(*ir.Local).Name)
	assert.Equal(t, temp.Name, iff.Else.(*ir.Local).Name)
}

func TestOrWithLocalLHS(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Or{Left: lvar(tbl, "a"), Right: call(tbl, "f")}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	iff := rootStmt(t, tree).(*ir.If)
	assert.Equal(t, iff.Cond.(*ir.Local).Name, iff.Then.(*ir.Local).Name)
	_, ok := iff.Else.(*ir.Send)
	assert.True(t, ok)
}

func TestSafeNavigation(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.CSend{
		Receiver: lvar(tbl, "a"),
		Method:   tbl.EnterUTF8("m"),
		Args:     []ast.Node{&ast.Integer{Val: "1"}},
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	seq := rootSeq(t, tree)
	assert.Len(t, seq.Stats, 1)
	assgn := seq.Stats[0].(*ir.Assign)
	temp := assgn.Lhs.(*ir.Local).Name
	assert.True(t, tbl.IsUnique(temp))
	assert.Equal(t, "a", tbl.Str(assgn.Rhs.(*ir.Local).Name))

	iff := seq.Expr.(*ir.If)
	nilCheck := iff.Cond.(*ir.Send)
	assert.Equal(t, names.NilP, nilCheck.Method)
	assert.Equal(t, temp, nilCheck.Receiver.(*ir.Local).Name)

	thenLit := iff.Then.(*ir.Literal)
	assert.Equal(t, ir.LitNil, thenLit.Kind)

	guarded := iff.Else.(*ir.Send)
	assert.Equal(t, temp, guarded.Receiver.(*ir.Local).Name)
	assert.Equal(t, "m", tbl.Str(guarded.Method))
	assert.Len(t, guarded.Args, 1)
}

func TestDestructureWithSplat(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Masgn{
		Lhs: &ast.Mlhs{Exprs: []ast.Node{
			&ast.LVarLhs{Name: tbl.EnterUTF8("x")},
			&ast.SplatLhs{Var: &ast.LVarLhs{Name: tbl.EnterUTF8("y")}},
			&ast.LVarLhs{Name: tbl.EnterUTF8("z")},
		}},
		Rhs: call(tbl, "expr"),
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	seq := rootSeq(t, tree)
	if len(seq.Stats) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(seq.Stats))
	}

	expand := seq.Stats[0].(*ir.Assign)
	temp := expand.Lhs.(*ir.Local).Name
	expandCall := expand.Rhs.(*ir.Send)
	assert.Equal(t, names.ExpandSplat, expandCall.Method)
	assert.Equal(t, names.Magic, expandCall.Receiver.(*ir.Constant).Symbol)
	assert.Equal(t, int64(1), expandCall.Args[1].(*ir.Literal).Int)
	assert.Equal(t, int64(1), expandCall.Args[2].(*ir.Literal).Int)

	first := seq.Stats[1].(*ir.Assign)
	assert.Equal(t, "x", tbl.Str(first.Lhs.(*ir.Local).Name))
	index := first.Rhs.(*ir.Send)
	assert.Equal(t, names.SquareBrackets, index.Method)
	assert.Equal(t, int64(0), index.Args[0].(*ir.Literal).Int)

	splatted := seq.Stats[2].(*ir.Assign)
	assert.Equal(t, "y", tbl.Str(splatted.Lhs.(*ir.Local).Name))
	slice := splatted.Rhs.(*ir.Send)
	assert.Equal(t, names.Slice, slice.Method)
	rangeNew := slice.Args[0].(*ir.Send)
	assert.Equal(t, names.New, rangeNew.Method)
	assert.Equal(t, names.RangeClass, rangeNew.Receiver.(*ir.Constant).Symbol)
	assert.Equal(t, int64(1), rangeNew.Args[0].(*ir.Literal).Int)
	assert.Equal(t, int64(-1), rangeNew.Args[1].(*ir.Literal).Int)
	assert.Equal(t, ir.LitTrue, rangeNew.Args[2].(*ir.Literal).Kind)

	last := seq.Stats[3].(*ir.Assign)
	assert.Equal(t, "z", tbl.Str(last.Lhs.(*ir.Local).Name))
	lastIndex := last.Rhs.(*ir.Send)
	assert.Equal(t, int64(-1), lastIndex.Args[0].(*ir.Literal).Int)

	assert.Equal(t, temp, seq.Expr.(*ir.Local).Name)
}

func TestCaseWhen(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Case{
		Condition: lvar(tbl, "x"),
		Whens: []ast.Node{&ast.When{
			Patterns: []ast.Node{&ast.Integer{Val: "1"}, &ast.Integer{Val: "2"}},
			Body:     &ast.Symbol{Val: tbl.EnterUTF8("a")},
		}},
		Else: &ast.Symbol{Val: tbl.EnterUTF8("b")},
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	seq := rootSeq(t, tree)
	assgn := seq.Stats[0].(*ir.Assign)
	temp := assgn.Lhs.(*ir.Local).Name
	assert.Equal(t, "x", tbl.Str(assgn.Rhs.(*ir.Local).Name))

	arm := seq.Expr.(*ir.If)
	// `1 === t || 2 === t` materialized as nested conditionals
	or := arm.Cond.(*ir.If)
	firstTest := or.Cond.(*ir.Send)
	assert.Equal(t, names.TripleEq, firstTest.Method)
	assert.Equal(t, int64(1), firstTest.Receiver.(*ir.Literal).Int)
	assert.Equal(t, temp, firstTest.Args[0].(*ir.Local).Name)
	assert.Equal(t, ir.LitTrue, or.Then.(*ir.Literal).Kind)
	secondTest := or.Else.(*ir.Send)
	assert.Equal(t, int64(2), secondTest.Receiver.(*ir.Literal).Int)

	assert.Equal(t, ir.LitSymbol, arm.Then.(*ir.Literal).Kind)
	assert.Equal(t, "a", tbl.Str(arm.Then.(*ir.Literal).Val))
	assert.Equal(t, "b", tbl.Str(arm.Else.(*ir.Literal).Val))
}

func TestRescueEnsure(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Ensure{
		Body: &ast.Rescue{
			Body: call(tbl, "body"),
			Rescue: []ast.Node{&ast.Resbody{
				Exception: &ast.Array{Elts: []ast.Node{&ast.Const{Name: tbl.EnterUTF8("E")}}},
				Var:       &ast.LVarLhs{Name: tbl.EnterUTF8("e")},
				Body:      call(tbl, "h"),
			}},
		},
		Ensure: call(tbl, "fin"),
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	rescue := rootStmt(t, tree).(*ir.Rescue)
	body := rescue.Body.(*ir.Send)
	assert.Equal(t, "body", tbl.Str(body.Method))
	_, isEmpty := rescue.Else.(*ir.EmptyTree)
	assert.True(t, isEmpty)
	fin := rescue.Ensure.(*ir.Send)
	assert.Equal(t, "fin", tbl.Str(fin.Method))

	if len(rescue.Cases) != 1 {
		t.Fatalf("expected one handler, got %d", len(rescue.Cases))
	}
	rc := rescue.Cases[0]
	assert.Len(t, rc.Exceptions, 1)
	exc := rc.Exceptions[0].(*ir.UnresolvedConstant)
	assert.Equal(t, "E", tbl.Str(exc.Name))
	assert.Equal(t, "e", tbl.Str(rc.Var.(*ir.Local).Name))
	handler := rc.Body.(*ir.Send)
	assert.Equal(t, "h", tbl.Str(handler.Method))
}

func TestRescueBindsFreshWhenVarIsNotLocal(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Rescue{
		Body: call(tbl, "body"),
		Rescue: []ast.Node{&ast.Resbody{
			Var:  &ast.IVarLhs{Name: tbl.EnterUTF8("@e")},
			Body: call(tbl, "h"),
		}},
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	rc := rootStmt(t, tree).(*ir.Rescue).Cases[0]
	bound := rc.Var.(*ir.Local).Name
	assert.True(t, tbl.IsUnique(bound))

	// the handler body is prefixed with `@e = <bound>`
	seq := rc.Body.(*ir.InsSeq)
	assgn := seq.Stats[0].(*ir.Assign)
	ivar := assgn.Lhs.(*ir.UnresolvedIdent)
	assert.Equal(t, ir.IdentInstance, ivar.Kind)
	assert.Equal(t, bound, assgn.Rhs.(*ir.Local).Name)
}

func TestIntegerOutOfRange(t *testing.T) {
	res := lower(t, &ast.Integer{Val: "99999999999999999999"})

	lit := rootStmt(t, res.tree).(*ir.Literal)
	assert.Equal(t, ir.LitInt, lit.Kind)
	assert.Equal(t, int64(0), lit.Int)

	diags := res.diags.Errors()
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(diags))
	}
	assert.Equal(t, sberr.IntegerOutOfRange, diags[0].Code())
}

func TestForLoop(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.For{
		Vars: &ast.LVarLhs{Name: tbl.EnterUTF8("i")},
		Expr: lvar(tbl, "xs"),
		Body: call(tbl, "body"),
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	each := rootStmt(t, tree).(*ir.Send)
	assert.Equal(t, names.Each, each.Method)
	assert.Equal(t, "xs", tbl.Str(each.Receiver.(*ir.Local).Name))
	if each.Block == nil {
		t.Fatal("for loop must lower to a call with a block")
	}

	assert.Len(t, each.Block.Args, 1)
	rest := each.Block.Args[0].(*ir.RestArg)
	temp := rest.Inner.(*ir.Local).Name
	assert.True(t, tbl.IsUnique(temp))

	blockBody := each.Block.Body.(*ir.InsSeq)
	destructure := blockBody.Stats[0].(*ir.InsSeq)
	expand := destructure.Stats[0].(*ir.Assign).Rhs.(*ir.Send)
	assert.Equal(t, names.ExpandSplat, expand.Method)
	assert.Equal(t, temp, expand.Args[0].(*ir.Local).Name)
	bind := destructure.Stats[1].(*ir.Assign)
	assert.Equal(t, "i", tbl.Str(bind.Lhs.(*ir.Local).Name))
	assert.Equal(t, "body", tbl.Str(blockBody.Expr.(*ir.Send).Method))
}

func TestUntilMatchesNegatedWhile(t *testing.T) {
	tbl := names.NewTable()
	until := &ast.Until{Cond: call(tbl, "c"), Body: call(tbl, "b")}
	negated := &ast.While{
		Cond: &ast.Send{Receiver: call(tbl, "c"), Method: names.Bang},
		Body: call(tbl, "b"),
	}

	fromUntil, _, err := desugar.Desugar(tbl, until)
	assert.NoError(t, err)
	fromWhile, _, err := desugar.Desugar(tbl, negated)
	assert.NoError(t, err)
	assert.Equal(t, ir.ExprString(tbl, fromWhile), ir.ExprString(tbl, fromUntil))
}

func TestClassDefNotDoubleWrapped(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Class{
		Name: &ast.Const{Name: tbl.EnterUTF8("Foo")},
		Body: call(tbl, "body"),
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	cd := tree.(*ir.ClassDef)
	name := cd.Name.(*ir.UnresolvedConstant)
	assert.Equal(t, "Foo", tbl.Str(name.Name))
	if len(cd.Ancestors) != 1 {
		t.Fatalf("class without superclass needs the placeholder ancestor")
	}
	assert.Equal(t, names.Todo, cd.Ancestors[0].(*ir.Constant).Symbol)
}

func TestOpAsgnOnCallTarget(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.OpAsgn{
		Left:  &ast.Send{Receiver: lvar(tbl, "a"), Method: tbl.EnterUTF8("f")},
		Op:    tbl.EnterUTF8("+"),
		Right: &ast.Integer{Val: "1"},
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	seq := rootSeq(t, tree)
	assert.Len(t, seq.Stats, 1)
	recvTemp := seq.Stats[0].(*ir.Assign).Lhs.(*ir.Local).Name
	assert.True(t, tbl.IsUnique(recvTemp))

	write := seq.Expr.(*ir.Send)
	assert.Equal(t, "f=", tbl.Str(write.Method))
	assert.Equal(t, recvTemp, write.Receiver.(*ir.Local).Name)
	assert.Len(t, write.Args, 1)

	plus := write.Args[0].(*ir.Send)
	assert.Equal(t, "+", tbl.Str(plus.Method))
	read := plus.Receiver.(*ir.Send)
	assert.Equal(t, "f", tbl.Str(read.Method))
	assert.Equal(t, recvTemp, read.Receiver.(*ir.Local).Name)
}

func TestConstantReassignment(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.OrAsgn{
		Left:  &ast.ConstLhs{Name: tbl.EnterUTF8("A")},
		Right: &ast.Integer{Val: "1"},
	}
	tree, diags, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	_, isEmpty := rootStmt(t, tree).(*ir.EmptyTree)
	assert.True(t, isEmpty)
	assert.Len(t, diags.Errors(), 1)
	assert.Equal(t, sberr.NoConstantReassignment, diags.Errors()[0].Code())
}

func TestSingletonClassRequiresSelf(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.SClass{Expr: lvar(tbl, "a"), Body: call(tbl, "body")}
	tree, diags, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	_, isEmpty := rootStmt(t, tree).(*ir.EmptyTree)
	assert.True(t, isEmpty)
	assert.Len(t, diags.Errors(), 1)
	assert.Equal(t, sberr.InvalidSingletonDef, diags.Errors()[0].Code())
}

func TestBlockPassSymbol(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Send{
		Receiver: lvar(tbl, "xs"),
		Method:   tbl.EnterUTF8("map"),
		Args:     []ast.Node{&ast.BlockPass{Block: &ast.Symbol{Val: tbl.EnterUTF8("foo")}}},
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	send := rootStmt(t, tree).(*ir.Send)
	assert.Equal(t, "map", tbl.Str(send.Method))
	assert.Empty(t, send.Args)
	if send.Block == nil {
		t.Fatal("block-pass must become the call's block")
	}
	arg := send.Block.Args[0].(*ir.Local)
	body := send.Block.Body.(*ir.Send)
	assert.Equal(t, "foo", tbl.Str(body.Method))
	assert.Equal(t, arg.Name, body.Receiver.(*ir.Local).Name)
}

func TestSplatArgumentsRerouteThroughMagic(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.Send{
		Receiver: lvar(tbl, "a"),
		Method:   tbl.EnterUTF8("m"),
		Args: []ast.Node{
			&ast.Integer{Val: "1"},
			&ast.Splat{Var: lvar(tbl, "rest")},
		},
	}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	send := rootStmt(t, tree).(*ir.Send)
	assert.Equal(t, names.CallWithSplat, send.Method)
	assert.Equal(t, names.Magic, send.Receiver.(*ir.Constant).Symbol)
	if len(send.Args) != 3 {
		t.Fatalf("expected receiver, method symbol and argument array, got %d args", len(send.Args))
	}
	assert.Equal(t, "a", tbl.Str(send.Args[0].(*ir.Local).Name))
	sym := send.Args[1].(*ir.Literal)
	assert.Equal(t, ir.LitSymbol, sym.Kind)
	assert.Equal(t, "m", tbl.Str(sym.Val))

	argArray := send.Args[2].(*ir.Send)
	assert.Equal(t, names.Concat, argArray.Method)
	coerced := argArray.Args[0].(*ir.Send)
	assert.Equal(t, names.ToA, coerced.Method)
	assert.Equal(t, "rest", tbl.Str(coerced.Receiver.(*ir.Local).Name))
}

func TestBareSendIsPrivateOk(t *testing.T) {
	tbl := names.NewTable()
	tree, _, err := desugar.Desugar(tbl, call(tbl, "f"))
	assert.NoError(t, err)

	send := rootStmt(t, tree).(*ir.Send)
	assert.NotZero(t, send.Flags&ir.PrivateOk)
	_, isSelf := send.Receiver.(*ir.Self)
	assert.True(t, isSelf)
}

func TestStringInterpolation(t *testing.T) {
	tbl := names.NewTable()
	node := &ast.DString{Nodes: []ast.Node{
		&ast.String{Val: tbl.EnterUTF8("a")},
		lvar(tbl, "b"),
	}}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	concat := rootStmt(t, tree).(*ir.Send)
	assert.Equal(t, names.Concat, concat.Method)
	head := concat.Receiver.(*ir.Literal)
	assert.Equal(t, ir.LitString, head.Kind)
	assert.Equal(t, "a", tbl.Str(head.Val))

	toS := concat.Args[0].(*ir.Send)
	assert.Equal(t, names.ToS, toS.Method)
	assert.Equal(t, "b", tbl.Str(toS.Receiver.(*ir.Local).Name))
}

func TestMisplacedBlockPassAborts(t *testing.T) {
	tbl := names.NewTable()
	tree, diags, err := desugar.Desugar(tbl, &ast.BlockPass{Block: &ast.Symbol{Val: tbl.EnterUTF8("f")}})
	assert.Error(t, err)

	_, isEmpty := tree.(*ir.EmptyTree)
	assert.True(t, isEmpty)
	assert.Len(t, diags.Errors(), 1)
	assert.Equal(t, sberr.InternalError, diags.Errors()[0].Code())
}

func TestMethodScopeRestartsTemporaries(t *testing.T) {
	tbl := names.NewTable()
	csend := func() *ast.CSend {
		return &ast.CSend{Receiver: lvar(tbl, "a"), Method: tbl.EnterUTF8("m")}
	}
	method := func(name string) *ast.DefMethod {
		return &ast.DefMethod{Name: tbl.EnterUTF8(name), Body: csend()}
	}
	node := &ast.Begin{Stmts: []ast.Node{method("one"), method("two")}}
	tree, _, err := desugar.Desugar(tbl, node)
	assert.NoError(t, err)

	cd := tree.(*ir.ClassDef)
	if len(cd.RHS) != 2 {
		t.Fatalf("expected two method definitions, got %d", len(cd.RHS))
	}
	tempOf := func(e ir.Expr) names.Ref {
		m := e.(*ir.MethodDef)
		seq := m.Body.(*ir.InsSeq)
		return seq.Stats[0].(*ir.Assign).Lhs.(*ir.Local).Name
	}
	// both bodies restart numbering, so the display names coincide
	assert.Equal(t, tbl.Str(tempOf(cd.RHS[0])), tbl.Str(tempOf(cd.RHS[1])))
}
