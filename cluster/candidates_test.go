package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlocluster/ir"
)

func kinds(ops []*ir.Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}
	return out
}

// Five ops in block order o0..o4. o0,o1 and o3,o4 are pre-merged into two
// size-2 clusters; o2 sits between them, depending on o1 and depended on by
// o3 — it blocks a direct merge of the two clusters (pinned both ways, as
// in the engine-level legality tests) but is itself adjacent to each and
// freely absorbable. populateCandidates should end up with one candidate
// holding {o0,o1,o2} and a second holding {o3,o4}, largest first.
func TestPopulateCandidates_AbsorbsAndSortsDescending(t *testing.T) {
	fn := newTestFunction("f")
	appendOp(fn, "o0")
	o0 := lastOp(fn)
	appendOp(fn, "o1")
	o1 := lastOp(fn)
	o1Val := o1.Results[0]
	appendOp(fn, "o2", o1Val)
	o2 := lastOp(fn)
	o2Val := o2.Results[0]
	appendOp(fn, "o3", o2Val)
	o3 := lastOp(fn)
	appendOp(fn, "o4")
	o4 := lastOp(fn)

	e := NewEngine(fn, nil)
	x := e.TryMerge(e.ClusterOfOp(o0), e.ClusterOfOp(o1))
	require.NotNil(t, x)
	y := e.TryMerge(e.ClusterOfOp(o3), e.ClusterOfOp(o4))
	require.NotNil(t, y)

	candidates := populateCandidates(e)
	require.Len(t, candidates, 2)
	assert.Equal(t, 3, candidates[0].Len())
	assert.Equal(t, 2, candidates[1].Len())
	assert.ElementsMatch(t, []string{"o0", "o1", "o2"}, kinds(candidates[0].Ops()))
	assert.ElementsMatch(t, []string{"o3", "o4"}, kinds(candidates[1].Ops()))
}
