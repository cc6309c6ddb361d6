//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/bigH/sorbet/sorbet"
)

func main() {
	js.Global().Set("LowerAndShowTree", js.FuncOf(sorbet.LowerAndShowTree))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
