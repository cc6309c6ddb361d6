// Package sorbet is the embedding API of the lowering pipeline. It
// wraps the frontend with file handling and output formatting so
// callers like the CLI and the wasm bindings stay small.
package sorbet

import (
	"os"
	"strings"

	"github.com/bigH/sorbet/frontend"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/sberr"
	"github.com/pkg/errors"
)

// Result is one lowered source document.
type Result struct {
	*frontend.Candidate
}

// LowerBytes lowers a serialized parse tree held in memory.
func LowerBytes(data []byte) (*Result, error) {
	candidate, err := frontend.Lower(data)
	if err != nil {
		return nil, err
	}
	return &Result{candidate}, nil
}

// LowerFile lowers the serialized parse tree stored at path.
func LowerFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	return LowerBytes(data)
}

// ShowTree renders the lowered tree for human consumption.
func (r *Result) ShowTree() string {
	return ir.ExprString(r.Table, r.Tree)
}

// HasErrors reports whether lowering produced any diagnostics.
func (r *Result) HasErrors() bool {
	return r.Diagnostics.HasError()
}

// FormatDiagnostics renders every collected diagnostic, one per line.
func (r *Result) FormatDiagnostics() string {
	sb := &strings.Builder{}
	for _, diag := range r.Diagnostics.Errors() {
		sb.WriteString(sberr.FormatWithCode(diag))
		sb.WriteByte('\n')
	}
	return sb.String()
}
