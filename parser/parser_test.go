package parser_test

import (
	"testing"

	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/parser"
	"github.com/stretchr/testify/assert"
)

func TestParseSend(t *testing.T) {
	doc := `{
		"node": "Send", "start": 0, "end": 9,
		"receiver": {"node": "LVar", "start": 0, "end": 1, "name": "a"},
		"method": "m",
		"args": [{"node": "Integer", "start": 4, "end": 5, "val": "1"}]
	}`
	tbl := names.NewTable()
	node, err := parser.Parse(tbl, []byte(doc))
	assert.NoError(t, err)

	send, ok := node.(*ast.Send)
	if !ok {
		t.Fatalf("expected a Send, got %s", node.NodeName())
	}
	assert.Equal(t, "m", tbl.Str(send.Method))
	recv := send.Receiver.(*ast.LVar)
	assert.Equal(t, "a", tbl.Str(recv.Name))
	assert.Len(t, send.Args, 1)
	assert.Equal(t, "1", send.Args[0].(*ast.Integer).Val)
	assert.NotEqual(t, send.Pos(), send.End())
}

func TestParseClassWithDeclLoc(t *testing.T) {
	doc := `{
		"node": "Class", "start": 1, "end": 30,
		"declLoc": {"start": 1, "end": 9},
		"constant": {"node": "Const", "start": 6, "end": 9, "name": "Foo"},
		"superclass": {"node": "Const", "start": 12, "end": 15, "name": "Bar"},
		"body": {"node": "Nil", "start": 20, "end": 23}
	}`
	tbl := names.NewTable()
	node, err := parser.Parse(tbl, []byte(doc))
	assert.NoError(t, err)

	class := node.(*ast.Class)
	assert.Equal(t, "Foo", tbl.Str(class.Name.(*ast.Const).Name))
	assert.Equal(t, "Bar", tbl.Str(class.Superclass.(*ast.Const).Name))
	assert.True(t, class.DeclLoc.Exists())
	_, ok := class.Body.(*ast.Nil)
	assert.True(t, ok)
}

func TestParseMethodWithArgs(t *testing.T) {
	doc := `{
		"node": "DefMethod", "start": 0, "end": 40,
		"declLoc": {"start": 0, "end": 7},
		"name": "greet",
		"argsNode": {"node": "Args", "start": 10, "end": 20, "args": [
			{"node": "Arg", "start": 10, "end": 11, "name": "a"},
			{"node": "Optarg", "start": 13, "end": 18, "name": "b",
			 "nameLoc": {"start": 13, "end": 14},
			 "default": {"node": "Integer", "start": 17, "end": 18, "val": "2"}},
			{"node": "Restarg", "start": 20, "end": 22, "name": "rest", "nameLoc": {"start": 21, "end": 22}}
		]},
		"body": {"node": "Nil", "start": 30, "end": 33}
	}`
	tbl := names.NewTable()
	node, err := parser.Parse(tbl, []byte(doc))
	assert.NoError(t, err)

	def := node.(*ast.DefMethod)
	assert.Equal(t, "greet", tbl.Str(def.Name))
	args := def.Args.(*ast.Args)
	if len(args.Args) != 3 {
		t.Fatalf("expected 3 formals, got %d", len(args.Args))
	}
	assert.Equal(t, "a", tbl.Str(args.Args[0].(*ast.Arg).Name))
	opt := args.Args[1].(*ast.Optarg)
	assert.Equal(t, "b", tbl.Str(opt.Name))
	assert.Equal(t, "2", opt.Default.(*ast.Integer).Val)
	assert.Equal(t, "rest", tbl.Str(args.Args[2].(*ast.Restarg).Name))
}

func TestParseEmptyDocument(t *testing.T) {
	node, err := parser.Parse(names.NewTable(), []byte(`null`))
	assert.NoError(t, err)
	assert.Nil(t, node)
}

func TestParseUnknownKind(t *testing.T) {
	_, err := parser.Parse(names.NewTable(), []byte(`{"node": "Wat", "start": 0, "end": 1}`))
	assert.ErrorContains(t, err, `unknown node kind "Wat"`)
}

func TestParseNestedFailureNamesPath(t *testing.T) {
	doc := `{
		"node": "Begin", "start": 0, "end": 10,
		"stmts": [{"node": "Nope", "start": 2, "end": 3}]
	}`
	_, err := parser.Parse(names.NewTable(), []byte(doc))
	assert.ErrorContains(t, err, "in Begin node at 0")
	assert.ErrorContains(t, err, `unknown node kind "Nope"`)
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := parser.Parse(names.NewTable(), []byte(`{`))
	assert.ErrorContains(t, err, "malformed parse-tree document")
}
