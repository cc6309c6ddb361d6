// Package frontend ties the lowering pipeline together: a serialized
// parse tree comes in, a verified lowered tree and the diagnostics
// collected along the way come out.
package frontend

import (
	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/frontend/sberr"
	"github.com/bigH/sorbet/internal/log"
	"github.com/bigH/sorbet/parser"
)

var logger = log.DefaultLogger.With("section", "frontend")

// Candidate is the output of the pipeline for one source document.
type Candidate struct {
	Table       *names.Table
	Tree        ir.Expr
	Diagnostics *sberr.Errors
}

// ParseToAST rebuilds the parse tree from its serialized form without
// any additional processing, like lowering.
func ParseToAST(tbl *names.Table, data []byte) (ast.Node, error) {
	return parser.Parse(tbl, data)
}

// Lower runs the whole pipeline on one serialized parse tree. The
// returned candidate is usable whenever err is nil, even when it
// carries diagnostics.
func Lower(data []byte) (*Candidate, error) {
	tbl := names.NewTable()
	node, err := ParseToAST(tbl, data)
	if err != nil {
		return nil, err
	}
	return desugarPhase(tbl, node)
}
