package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlocluster/ir"
)

func TestRunFallback_HostClosurePullsInOperandDefs(t *testing.T) {
	fn := newTestFunction("f")
	xVal := appendOp(fn, "constx")
	xOp := lastOp(fn)
	yVal := appendOp(fn, "usey", xVal)
	yOp := lastOp(fn)
	appendHostOp(fn, "device", "hostop", yVal)
	hostOp := lastOp(fn)
	appendOp(fn, "devop")
	deviceOp := lastOp(fn)

	opts := NewOptions("device", "npu").WithIsConstantLike(isConstKind)
	uses := buildUsesIndex(fn)
	metadatas, ok := runFallback(fn, opts, uses)
	require.True(t, ok)
	require.Len(t, metadatas, 2)

	assert.Equal(t, HostDevice, metadatas[0].DeviceAttr)
	assert.Equal(t, HostAnchorName, metadatas[0].AnchorName)
	assert.ElementsMatch(t, []string{"constx", "usey", "hostop"}, kinds(metadatas[0].Ops))

	assert.Equal(t, "npu", metadatas[1].DeviceAttr)
	assert.Equal(t, []string{"devop"}, kinds(metadatas[1].Ops))
	_ = xOp
	_ = yOp
	_ = hostOp
	_ = deviceOp
}

func TestRunFallback_DeviceRejectionFailsWholeFunction(t *testing.T) {
	fn := newTestFunction("f")
	yVal := appendHostOp(fn, "device", "hostop")
	appendOp(fn, "devop")
	_ = yVal

	opts := NewOptions("device", "npu").
		WithIsConstantLike(isConstKind).
		WithValidateSubgraph(func(ops []*ir.Op) bool { return false })
	uses := buildUsesIndex(fn)
	metadatas, ok := runFallback(fn, opts, uses)
	assert.False(t, ok)
	assert.Nil(t, metadatas)
}
