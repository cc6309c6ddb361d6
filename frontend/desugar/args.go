package desugar

import (
	"github.com/bigH/sorbet/frontend/ast"
	"github.com/bigH/sorbet/frontend/construct"
	"github.com/bigH/sorbet/frontend/ir"
	"github.com/bigH/sorbet/frontend/names"
)

// lowerArgs maps a formal parameter list into argument expressions. A
// destructuring formal is replaced by a fresh temporary; the matching
// expansion statements come back separately so the caller can prepend
// them to the body.
func (c dctx) lowerArgs(argsNode ast.Node) (args []ir.Expr, destructures []ir.Expr) {
	if argsNode == nil {
		return nil, nil
	}
	list, ok := argsNode.(*ast.Args)
	if !ok {
		c.raise(argsNode, "formal parameter list is %s, not Args", argsNode.NodeName())
	}

	for _, a := range list.Args {
		switch a := a.(type) {
		case *ast.Arg:
			args = append(args, construct.Local(a, a.Name))
		case *ast.Restarg:
			args = append(args, construct.RestArg(a, construct.Local(a.NameLoc, a.Name)))
		case *ast.Kwarg:
			args = append(args, construct.KeywordArg(a, construct.Local(a, a.Name)))
		case *ast.Optarg:
			args = append(args, construct.OptionalArg(a, construct.Local(a.NameLoc, a.Name), c.lower(a.Default)))
		case *ast.Kwoptarg:
			inner := construct.KeywordArg(a, construct.Local(a.NameLoc, a.Name))
			args = append(args, construct.OptionalArg(a, inner, c.lower(a.Default)))
		case *ast.Kwrestarg:
			args = append(args, construct.RestArg(a, construct.KeywordArg(a, construct.Local(a, a.Name))))
		case *ast.Blockarg:
			args = append(args, construct.BlockArg(a, construct.Local(a, a.Name)))
		case *ast.Shadowarg:
			args = append(args, construct.ShadowArg(a, construct.Local(a, a.Name)))
		case *ast.Mlhs:
			temp := c.fresh(names.DestructureArg)
			args = append(args, construct.Local(a, temp))
			destructures = append(destructures, c.desugarMlhs(a, a, construct.Local(a, temp)))
		default:
			c.raise(a, "unexpected formal parameter %s", a.NodeName())
		}
	}
	return args, destructures
}
