package cluster

import "github.com/gomlx/hlocluster/ir"

// mergeBottomUp mirrors mergeTopDown, iterating the function body backward
// and merging each op's current cluster with the cluster owning each of its
// uses (§4.2).
func mergeBottomUp(e *Engine, fn *ir.Function) {
	ops := append([]*ir.Op(nil), fn.Body.Ops...)
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		cur := e.ClusterOfOp(op)
		if cur == nil {
			continue
		}
		for _, result := range op.Results {
			for _, owner := range e.usesIndex[result] {
				pre := e.ClusterOfOp(owner)
				if merged := e.TryMerge(pre, cur); merged != nil {
					cur = merged
				}
			}
		}
	}
}

// runBottomUp builds an engine over fn excluding the given ops, runs the
// Bottom-Up merge pass, and returns the resulting candidates. trace, if
// non-nil, is wired onto the engine before merging starts.
func runBottomUp(fn *ir.Function, excluded map[*ir.Op]bool, trace func(int, int, bool)) (*Engine, []*Cluster) {
	e := NewEngine(fn, excluded)
	e.Trace = trace
	mergeBottomUp(e, fn)
	return e, populateCandidates(e)
}
