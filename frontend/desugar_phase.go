package frontend

import (
	"log/slog"

	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/desugar"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
	"github.com/bigH/sorbet/frontend/verifier"
	"github.com/pkg/errors"
)

// desugarPhase lowers one parse tree and verifies the result. An
// internal lowering failure still yields a candidate: its tree is the
// empty placeholder and the failure shows up in the diagnostics.
func desugarPhase(tbl *names.Table, node ast.Node) (*Candidate, error) {
	tree, diags, err := desugar.Desugar(tbl, node)
	candidate := &Candidate{Table: tbl, Tree: tree, Diagnostics: diags}
	if err != nil {
		logger.Warn("lowering aborted", "err", err)
		return candidate, nil
	}
	if err := verifier.Verify(tbl, tree); err != nil {
		return nil, errors.Wrap(err, "lowered tree failed verification")
	}
	treeLogger := slog.New(ir.TreeSlogHandler(tbl, logger.Handler()))
	treeLogger.Debug("lowered document", "tree", tree)
	return candidate, nil
}
