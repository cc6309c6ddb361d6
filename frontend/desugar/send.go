package desugar

import (
	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
)

func (c dctx) lowerSendNode(node *ast.Send) ir.Expr {
	var recv ir.Expr
	var flags ir.SendFlags
	if node.Receiver == nil {
		// bare call, dispatched on the implicit self
		recv = construct.Self(node)
		flags |= ir.PrivateOk
	} else {
		recv = c.lower(node.Receiver)
	}
	return c.lowerSend(node, recv, node.Method, flags, node.Args)
}

// lowerSend finishes a call once the receiver is lowered. A trailing
// block-pass argument becomes the call's block; any splat argument
// reroutes the whole call through Magic.callWithSplat with the
// arguments collected into one array.
func (c dctx) lowerSend(loc ir.Positioner, recv ir.Expr, method names.Ref, flags ir.SendFlags, argNodes []ast.Node) ir.Expr {
	var blk *ir.Block
	if n := len(argNodes); n > 0 {
		if bp, ok := argNodes[n-1].(*ast.BlockPass); ok {
			blk = c.blockPass(bp)
			argNodes = argNodes[:n-1]
		}
	}

	hasSplat := false
	for _, a := range argNodes {
		if _, ok := a.(*ast.Splat); ok {
			hasSplat = true
			break
		}
	}
	if hasSplat {
		args := []ir.Expr{
			recv,
			construct.Symbol(loc, method),
			c.lowerArray(loc, argNodes),
		}
		return construct.SendFull(loc, construct.Constant(loc, names.Magic), names.CallWithSplat, flags, args, blk)
	}
	return construct.SendFull(loc, recv, method, flags, c.lowerAll(argNodes), blk)
}

// lowerCSend guards the call behind a nil check of the receiver so
// `a&.m` evaluates `a` exactly once.
func (c dctx) lowerCSend(node *ast.CSend) ir.Expr {
	temp := c.fresh(names.AssignTemp)
	assgn := construct.Assign(node, construct.Local(node, temp), c.lower(node.Receiver))
	cond := construct.Send(node, construct.Local(node, temp), names.NilP)
	call := c.lowerSend(node, construct.Local(node, temp), node.Method, 0, node.Args)
	return construct.InsSeq1(node, assgn, construct.If(node, cond, construct.Nil(node), call))
}

// blockPass converts a `&value` argument into a literal block. A
// symbol is special-cased into a one-argument call of that method;
// everything else is coerced with to_proc and forwarded through
// Magic.callWithSplat.
func (c dctx) blockPass(bp *ast.BlockPass) *ir.Block {
	if bp.Block == nil {
		return nil
	}
	if sym, ok := bp.Block.(*ast.Symbol); ok {
		temp := c.fresh(names.BlockPassTemp)
		body := construct.Send(bp, construct.Local(bp, temp), sym.Val)
		return construct.Block(bp, []ir.Expr{construct.Local(bp, temp)}, body)
	}
	temp := c.fresh(names.BlockPassTemp)
	proc := construct.Send(bp, c.lower(bp.Block), names.ToProc)
	body := construct.Send(bp, construct.Constant(bp, names.Magic), names.CallWithSplat,
		proc, construct.Symbol(bp, names.Call), construct.Local(bp, temp))
	args := []ir.Expr{construct.RestArg(bp, construct.Local(bp, temp))}
	return construct.Block(bp, args, body)
}

// lowerBlockNode lowers the call a literal block hangs off and then
// attaches the block to it. When the call was a safe navigation the
// *ir.Send sits inside the synthesized nil guard.
func (c dctx) lowerBlockNode(node *ast.Block) ir.Expr {
	lowered := c.lower(node.Send)

	var send *ir.Send
	switch l := lowered.(type) {
	case *ir.Send:
		send = l
	case *ir.InsSeq:
		if iff, ok := l.Expr.(*ir.If); ok {
			send, _ = iff.Else.(*ir.Send)
		}
	}
	if send == nil {
		c.raise(node.Send, "block attached to non-call %s", node.Send.NodeName())
	}

	// block formals share the enclosing method's temporary numbering
	args, destructures := c.lowerArgs(node.Args)
	body := c.lower(node.Body)
	if len(destructures) > 0 {
		body = construct.InsSeq(node, destructures, body)
	}
	send.Block = construct.Block(node, args, body)
	return lowered
}
