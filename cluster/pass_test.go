package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlocluster/cluster/clusteralgo"
	"github.com/gomlx/hlocluster/ir"
	"github.com/gomlx/hlocluster/types/shapes"
)

func TestRun_FallbackEndToEnd(t *testing.T) {
	mod := ir.NewModule("m")
	fn := mod.NewFunction("f", []shapes.Shape{scalarF32})
	in := fn.Inputs[0]
	hostRes := appendHostOp(fn, "device", "host.op", in)
	devRes := appendOp(fn, "device.op", in)
	fn.SetReturn(hostRes, devRes)

	opts := NewOptions("device", "npu").
		WithIsConstantLike(isConstKind).
		WithClusterAlgo(clusteralgo.Fallback)

	err := Run(mod, opts)
	require.NoError(t, err)

	require.Len(t, mod.Functions, 3)
	hostFn := mod.FunctionByName("f_host")
	deviceFn := mod.FunctionByName("f_npu")
	require.NotNil(t, hostFn)
	require.NotNil(t, deviceFn)
	assert.Equal(t, HostDevice, hostFn.Attributes["device"])
	assert.Contains(t, hostFn.Attributes, HostAnchorName)
	assert.Equal(t, "npu", deviceFn.Attributes["device"])
	assert.Contains(t, deviceFn.Attributes, "device_anchor")

	require.Len(t, fn.Body.Ops, 2)
	for _, op := range fn.Body.Ops {
		assert.Equal(t, CallKind, op.Kind)
	}
	callee0, _ := fn.Body.Ops[0].StringAttr(CalleeAttr)
	callee1, _ := fn.Body.Ops[1].StringAttr(CalleeAttr)
	assert.Equal(t, "f_host", callee0)
	assert.Equal(t, "f_npu", callee1)

	require.Len(t, fn.Return.Operands, 2)
	assert.Same(t, fn.Body.Ops[0].Results[0], fn.Return.Operands[0])
	assert.Same(t, fn.Body.Ops[1].Results[0], fn.Return.Operands[1])
}

func TestRun_TopDownMergesChainIntoOneFunction(t *testing.T) {
	mod := ir.NewModule("m")
	fn := mod.NewFunction("f", []shapes.Shape{scalarF32})
	in := fn.Inputs[0]
	a := appendOp(fn, "opa", in)
	b := appendOp(fn, "opb", a)
	fn.SetReturn(b)

	opts := NewOptions("device", "npu").WithIsConstantLike(isConstKind)
	err := Run(mod, opts)
	require.NoError(t, err)

	require.Len(t, mod.Functions, 2)
	callee := mod.FunctionByName("f_npu")
	require.NotNil(t, callee)
	assert.Len(t, callee.Body.Ops, 2)

	require.Len(t, fn.Body.Ops, 1)
	assert.Equal(t, CallKind, fn.Body.Ops[0].Kind)
}

// A surviving excluded op that consumes a clustered output must end up
// after the call that now produces it. Ops: d (device), h (host, uses d's
// result), r (device, uses d's result, returned) — d and r merge (the move
// relocates h past r), h is excluded and survives. The synthesized call
// must land before h, not at the body's tail.
func TestRun_CallLandsBeforeSurvivingUserOfClusterOutput(t *testing.T) {
	mod := ir.NewModule("m")
	fn := mod.NewFunction("f", []shapes.Shape{scalarF32})
	in := fn.Inputs[0]
	dVal := appendOp(fn, "device.d", in)
	dOp := lastOp(fn)
	appendHostOp(fn, "device", "host.h", dVal)
	hOp := lastOp(fn)
	rVal := appendOp(fn, "device.r", dVal)
	rOp := lastOp(fn)
	fn.SetReturn(rVal)
	_ = dOp

	opts := NewOptions("device", "npu").WithIsConstantLike(isConstKind)
	err := Run(mod, opts)
	require.NoError(t, err)

	require.Len(t, mod.Functions, 2)
	callIdx := fn.Body.IndexOf(fn.Body.Ops[0])
	require.Equal(t, CallKind, fn.Body.Ops[0].Kind)
	hIdx := fn.Body.IndexOf(hOp)
	require.GreaterOrEqual(t, hIdx, 0, "h survives clustering")
	assert.Less(t, callIdx, hIdx, "the call defining h's operand must precede h")
	assert.Same(t, fn.Body.Ops[0].Results[0], hOp.Operands[0], "h's operand was rewired to the call result")
	_ = rOp
}

func TestRun_ValidateSubgraphRejectionSkipsCandidateWithoutFailingPass(t *testing.T) {
	mod := ir.NewModule("m")
	fn := mod.NewFunction("f", []shapes.Shape{scalarF32})
	in := fn.Inputs[0]
	appendOp(fn, "opa", in)

	opts := NewOptions("device", "npu").
		WithIsConstantLike(isConstKind).
		WithValidateSubgraph(func(ops []*ir.Op) bool { return false })

	err := Run(mod, opts)
	assert.NoError(t, err, "a rejected candidate is skipped, not a function-level failure (§7)")
	assert.Len(t, mod.Functions, 1, "no callee is synthesized when every candidate was rejected")
}
