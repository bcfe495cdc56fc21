package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlocluster/ir"
	"github.com/gomlx/hlocluster/types/shapes"
)

// A cluster output returned twice (dup_outputs) gets two distinct call
// results; every non-return use is rewired to the first, and each return
// slot is rewired to its own result, in ascending slot order.
func TestSynthesize_DupOutputsGivesEachReturnSlotItsOwnCallResult(t *testing.T) {
	mod := ir.NewModule("m")
	fn := mod.NewFunction("f", []shapes.Shape{scalarF32})
	in := fn.Inputs[0]
	vVal := appendOp(fn, "opv", in)
	vOp := lastOp(fn)
	appendOp(fn, "opuse", vVal)
	outsideOp := lastOp(fn)
	fn.SetReturn(vVal, vVal)

	opts := NewOptions("device", "npu").WithIsConstantLike(isConstKind)
	uses := buildUsesIndex(fn)
	retStats := returnMultiplicity(fn)

	ops := []*ir.Op{vOp}
	md := &FunctionMetadata{
		AnchorName:   "device_anchor",
		DeviceAttr:   "npu",
		OriginalName: "f",
		Ops:          ops,
		Inputs:       ComputeInputs(ops),
		Results:      ComputeOutputs(ops, true, retStats, uses),
	}
	require.Equal(t, []*ir.Value{vVal, vVal}, md.Results)

	Synthesize(mod, fn, []*FunctionMetadata{md}, opts)

	require.Len(t, fn.Body.Ops, 2, "the call lands where the cluster was, ahead of the surviving non-cluster op")
	callOp := fn.Body.Ops[0]
	require.Equal(t, CallKind, callOp.Kind)
	require.Len(t, callOp.Results, 2)
	assert.Same(t, outsideOp, fn.Body.Ops[1])

	assert.Same(t, callOp.Results[0], outsideOp.Operands[0], "the only non-return use is rewired to the first call result")
	require.Len(t, fn.Return.Operands, 2)
	assert.Same(t, callOp.Results[0], fn.Return.Operands[0])
	assert.Same(t, callOp.Results[1], fn.Return.Operands[1])

	callee := mod.FunctionByName("f_npu")
	require.NotNil(t, callee)
	require.Len(t, callee.Return.Operands, 2)
	assert.Same(t, callee.Return.Operands[0], callee.Return.Operands[1], "both return slots trace back to the same internal value")
}

func TestSynthesize_NonDupOutputsReplacesAllUsesUnconditionally(t *testing.T) {
	mod := ir.NewModule("m")
	fn := mod.NewFunction("f", []shapes.Shape{scalarF32})
	in := fn.Inputs[0]
	vVal := appendOp(fn, "opv", in)
	vOp := lastOp(fn)
	appendOp(fn, "opuse", vVal)
	outsideOp := lastOp(fn)
	fn.SetReturn(vVal)

	opts := NewOptions("device", "npu").WithIsConstantLike(isConstKind).WithDupOutputs(false)
	uses := buildUsesIndex(fn)
	retStats := returnMultiplicity(fn)

	ops := []*ir.Op{vOp}
	md := &FunctionMetadata{
		AnchorName:   "device_anchor",
		DeviceAttr:   "npu",
		OriginalName: "f",
		Ops:          ops,
		Inputs:       ComputeInputs(ops),
		Results:      ComputeOutputs(ops, false, retStats, uses),
	}
	require.Equal(t, []*ir.Value{vVal}, md.Results)

	Synthesize(mod, fn, []*FunctionMetadata{md}, opts)

	callOp := fn.Body.Ops[0]
	assert.Same(t, callOp.Results[0], outsideOp.Operands[0])
	assert.Same(t, callOp.Results[0], fn.Return.Operands[0])
}
