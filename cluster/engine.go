package cluster

import "github.com/gomlx/hlocluster/ir"

// Engine maintains the clusters of one function body and attempts merges
// between them, preserving SSA legality and block ordering.
type Engine struct {
	fn        *ir.Function
	block     *ir.Block
	opCluster map[*ir.Op]*Cluster
	usesIndex map[*ir.Value][]*ir.Op

	// Trace, if set, is called after every merge attempt with the size of
	// each side and whether the merge was accepted. Used for klog.V(2)
	// per-merge tracing; left nil on the throwaway clones Greedy measures.
	Trace func(fromLen, toLen int, accepted bool)
}

// NewEngine builds one singleton cluster per op in fn's body, skipping any
// op present in excluded (host-marked ops and host-only constants, which
// never participate in clustering).
func NewEngine(fn *ir.Function, excluded map[*ir.Op]bool) *Engine {
	e := &Engine{
		fn:        fn,
		block:     fn.Body,
		opCluster: make(map[*ir.Op]*Cluster, len(fn.Body.Ops)),
		usesIndex: buildUsesIndex(fn),
	}
	for _, op := range fn.Body.Ops {
		if excluded[op] {
			continue
		}
		e.opCluster[op] = newSingletonCluster(op)
	}
	return e
}

// ClusterOfOp resolves op's live cluster, or nil if op was excluded from
// clustering.
func (e *Engine) ClusterOfOp(op *ir.Op) *Cluster {
	c, ok := e.opCluster[op]
	if !ok {
		return nil
	}
	return c.Root()
}

// ClusterOfValue resolves the cluster owning v's defining op, or nil for a
// block argument or an excluded defining op.
func (e *Engine) ClusterOfValue(v *ir.Value) *Cluster {
	if v.IsBlockArgument() {
		return nil
	}
	return e.ClusterOfOp(v.DefiningOp())
}

// Clusters returns every currently-live cluster, in first-seen order over
// the function body (stable, never driven by map iteration).
func (e *Engine) Clusters() []*Cluster {
	seen := make(map[*Cluster]bool)
	var out []*Cluster
	for _, op := range e.fn.Body.Ops {
		c, ok := e.opCluster[op]
		if !ok {
			continue
		}
		root := c.Root()
		if !seen[root] {
			seen[root] = true
			out = append(out, root)
		}
	}
	return out
}

// TryMerge attempts to fuse two distinct live clusters, trying lhs-into-rhs
// first and then rhs-into-lhs. It returns the surviving root on success,
// nil on failure.
func (e *Engine) TryMerge(lhs, rhs *Cluster) *Cluster {
	if lhs == nil || rhs == nil {
		return nil
	}
	lhs, rhs = lhs.Root(), rhs.Root()
	if lhs == rhs {
		return nil
	}
	fromLen, toLen := lhs.Len(), rhs.Len()
	merged := e.mergeEither(lhs, rhs)
	if e.Trace != nil {
		e.Trace(fromLen, toLen, merged != nil)
	}
	return merged
}

func (e *Engine) mergeEither(lhs, rhs *Cluster) *Cluster {
	if e.tryMergeInto(lhs, rhs) {
		return rhs
	}
	if e.tryMergeInto(rhs, lhs) {
		return lhs
	}
	return nil
}

// tryMergeInto attempts to fuse from and to, whichever physically comes
// first in the block, via the move-across-the-gap algorithm of §4.1. On
// success from.parent is set to to and to.ops holds the concatenation of
// both clusters' ops in block order; on failure neither cluster is
// mutated.
func (e *Engine) tryMergeInto(from, to *Cluster) bool {
	block := e.block
	fromFirst, fromLast := from.First(), from.Last()
	toFirst, toLast := to.First(), to.Last()

	fromIsFirst := block.IndexOf(fromFirst) < block.IndexOf(toFirst)

	var moveUpTarget, moveDownTarget *opSet
	var anchorUp, anchorDown *ir.Op
	var between []*ir.Op
	if fromIsFirst {
		between = block.OpsBetweenExclusive(fromLast, toFirst)
		moveUpTarget, anchorUp = from.ops, fromFirst
		moveDownTarget, anchorDown = to.ops, toLast
	} else {
		between = block.OpsBetweenExclusive(toLast, fromFirst)
		moveUpTarget, anchorUp = to.ops, toFirst
		moveDownTarget, anchorDown = from.ops, fromLast
	}

	moveUp, remain := e.computeMoveUpSet(moveUpTarget, between)
	moveDown, remain := e.computeMoveDownSet(moveDownTarget, remain.slice(), e.usesIndex)
	if remain.len() > 0 {
		return false
	}

	for _, op := range moveUp {
		block.MoveBefore(op, anchorUp)
	}
	for _, op := range moveDown {
		block.MoveAfter(op, anchorDown)
	}

	merged := newOpSet(from.ops.len() + to.ops.len())
	if fromIsFirst {
		merged.insertFrom(from.ops)
		merged.insertFrom(to.ops)
	} else {
		merged.insertFrom(to.ops)
		merged.insertFrom(from.ops)
	}
	to.ops = merged
	from.parent = to
	return true
}
