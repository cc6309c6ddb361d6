//go:build js && wasm

package sorbet

import (
	"fmt"
	"syscall/js"
)

// LowerAndShowTree lowers a serialized parse tree and renders the
// result for the playground.
//
// output: { error: string } | { tree: string, diagnostics: string }
func LowerAndShowTree(_ js.Value, args []js.Value) (ret any) {
	errorObj := func(err string) any {
		return js.ValueOf(map[string]any{
			"error": err,
		})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("lowering panicked: " + fmt.Sprint(r))
		}
	}()

	if len(args) != 1 {
		return errorObj(fmt.Sprintf("expected 1 argument, got %d", len(args)))
	}
	res, err := LowerBytes([]byte(args[0].String()))
	if err != nil {
		return errorObj(fmt.Sprintf("the lowering pass encountered a failure:\n\n%s", err))
	}
	return js.ValueOf(map[string]any{
		"tree":        res.ShowTree(),
		"diagnostics": res.FormatDiagnostics(),
	})
}
