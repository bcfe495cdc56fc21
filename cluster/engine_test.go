package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlocluster/ir"
)

// S3: a and b are not adjacent — an unrelated op sits between them — but
// that op has no def/use relationship with either cluster, so it is free to
// move and the merge succeeds, preserving its relative position next to the
// anchor it ends up beside.
func TestEngine_TryMerge_MovableGapSucceeds(t *testing.T) {
	fn := newTestFunction("f")
	a := appendOp(fn, "const")
	x := appendOp(fn, "const") // unrelated, sits between a and b
	b := appendOp(fn, "use.b", a)
	_ = x
	_ = b

	e := NewEngine(fn, nil)
	aOp, xOp, bOp := fn.Body.Ops[0], fn.Body.Ops[1], fn.Body.Ops[2]

	merged := e.TryMerge(e.ClusterOfOp(aOp), e.ClusterOfOp(bOp))
	require.NotNil(t, merged)
	assert.Equal(t, []*ir.Op{aOp, bOp}, merged.Ops())
	// x was free to move; it ends up outside the merged cluster, before a.
	assert.Equal(t, []*ir.Op{xOp, aOp, bOp}, fn.Body.Ops)
}

// S4: the gap op depends on a (so it cannot move above a) and is itself
// depended on by b (so it cannot move below b either) — cluster-coherent
// revocation leaves it in "remain" both times, and the merge fails leaving
// the block and both clusters untouched.
func TestEngine_TryMerge_PinnedGapFails(t *testing.T) {
	fn := newTestFunction("f")
	a := appendOp(fn, "const")
	x := appendOp(fn, "use.x", a)
	_ = appendOp(fn, "use.b", x)

	e := NewEngine(fn, nil)
	aOp, bOp := fn.Body.Ops[0], fn.Body.Ops[2]
	before := append([]*ir.Op(nil), fn.Body.Ops...)

	merged := e.TryMerge(e.ClusterOfOp(aOp), e.ClusterOfOp(bOp))
	assert.Nil(t, merged)
	assert.Equal(t, before, fn.Body.Ops)
	assert.True(t, e.ClusterOfOp(aOp).IsLive())
	assert.True(t, e.ClusterOfOp(bOp).IsLive())
}

func TestEngine_ClustersOrderIsBlockOrder(t *testing.T) {
	fn := newTestFunction("f")
	appendOp(fn, "const")
	appendOp(fn, "const")
	appendOp(fn, "const")

	e := NewEngine(fn, nil)
	clusters := e.Clusters()
	require.Len(t, clusters, 3)
	for i, c := range clusters {
		assert.Same(t, fn.Body.Ops[i], c.First())
	}
}

func TestEngine_ExcludedOpHasNoCluster(t *testing.T) {
	fn := newTestFunction("f")
	appendOp(fn, "const")
	op := fn.Body.Ops[0]

	e := NewEngine(fn, map[*ir.Op]bool{op: true})
	assert.Nil(t, e.ClusterOfOp(op))
}
