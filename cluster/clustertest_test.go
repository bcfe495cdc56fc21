package cluster

import (
	"github.com/gomlx/gopjrt/dtypes"

	"github.com/gomlx/hlocluster/ir"
	"github.com/gomlx/hlocluster/types/shapes"
)

var scalarF32 = shapes.Make(dtypes.Float32)

// newTestFunction returns a function with the given named inputs, all
// scalar float32, and an empty body.
func newTestFunction(name string, inputNames ...string) *ir.Function {
	fn := &ir.Function{Name: name, Body: &ir.Block{}, Attributes: map[string]any{}}
	for _, n := range inputNames {
		v := ir.NamedValue(n, scalarF32)
		fn.Inputs = append(fn.Inputs, v)
	}
	return fn
}

// appendOp builds a single-result op of the given kind consuming operands,
// appends it to fn's body, and returns its sole result.
func appendOp(fn *ir.Function, kind string, operands ...*ir.Value) *ir.Value {
	op := ir.NewOp(kind, operands)
	v := op.AddResult(scalarF32)
	fn.Body.Append(op)
	return v
}

// appendHostOp is like appendOp but marks the op host-bound via attrName.
func appendHostOp(fn *ir.Function, attrName, kind string, operands ...*ir.Value) *ir.Value {
	op := ir.NewOp(kind, operands)
	op.Attributes = map[string]any{attrName: HostDevice}
	v := op.AddResult(scalarF32)
	fn.Body.Append(op)
	return v
}

func lastOp(fn *ir.Function) *ir.Op {
	return fn.Body.Ops[len(fn.Body.Ops)-1]
}

// isConstKind recognizes ops whose Kind is exactly "const" as constant-like,
// the minimal predicate the tests need from the external collaborator.
func isConstKind(op *ir.Op) bool { return op.Kind == "const" }
