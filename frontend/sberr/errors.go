package sberr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/bigH/sorbet/frontend/ast"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = true
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	UnsupportedNode
	NoConstantReassignment
	InvalidSingletonDef
	IntegerOutOfRange
	FloatOutOfRange
	InternalError
)

// Diagnostic is a user-facing error attached to a source range. All
// codes but InternalError are non-fatal: the pass reports them and
// keeps going with a placeholder tree. InternalError is recorded when
// the invocation aborts.
type Diagnostic interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) Diagnostic
	getStack() []byte
}

func FormatWithCode(e Diagnostic) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E Diagnostic](err E) Diagnostic {
	return err.withStack(debug.Stack())
}

type NewUnsupportedNode struct {
	ast.Positioner
	NodeName string
	stack    []byte
}

func (e NewUnsupportedNode) Error() string {
	return fmt.Sprintf("unsupported node type `%s`", e.NodeName)
}
func (e NewUnsupportedNode) Code() ErrCode    { return UnsupportedNode }
func (e NewUnsupportedNode) getStack() []byte { return e.stack }
func (e NewUnsupportedNode) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewNoConstantReassignment struct {
	ast.Positioner
	stack []byte
}

func (e NewNoConstantReassignment) Error() string {
	return "unsupported constant reassignment"
}
func (e NewNoConstantReassignment) Code() ErrCode    { return NoConstantReassignment }
func (e NewNoConstantReassignment) getStack() []byte { return e.stack }
func (e NewNoConstantReassignment) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewInvalidSingletonDef struct {
	ast.Positioner
	Written   string
	Supported string
	stack     []byte
}

func (e NewInvalidSingletonDef) Error() string {
	return fmt.Sprintf("`%s` is only supported for `%s`", e.Written, e.Supported)
}
func (e NewInvalidSingletonDef) Code() ErrCode    { return InvalidSingletonDef }
func (e NewInvalidSingletonDef) getStack() []byte { return e.stack }
func (e NewInvalidSingletonDef) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewIntegerOutOfRange struct {
	ast.Positioner
	Literal string
	stack   []byte
}

func (e NewIntegerOutOfRange) Error() string {
	return fmt.Sprintf("unsupported integer literal: %s", e.Literal)
}
func (e NewIntegerOutOfRange) Code() ErrCode    { return IntegerOutOfRange }
func (e NewIntegerOutOfRange) getStack() []byte { return e.stack }
func (e NewIntegerOutOfRange) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewFloatOutOfRange struct {
	ast.Positioner
	Literal string
	stack   []byte
}

func (e NewFloatOutOfRange) Error() string {
	return fmt.Sprintf("unsupported float literal: %s", e.Literal)
}
func (e NewFloatOutOfRange) Code() ErrCode    { return FloatOutOfRange }
func (e NewFloatOutOfRange) getStack() []byte { return e.stack }
func (e NewFloatOutOfRange) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}

type NewInternalError struct {
	ast.Positioner
	Detail string
	stack  []byte
}

func (e NewInternalError) Error() string {
	return fmt.Sprintf("failed to process tree: %s", e.Detail)
}
func (e NewInternalError) Code() ErrCode    { return InternalError }
func (e NewInternalError) getStack() []byte { return e.stack }
func (e NewInternalError) withStack(stack []byte) Diagnostic {
	e.stack = stack
	return e
}
