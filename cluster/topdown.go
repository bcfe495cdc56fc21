package cluster

import "github.com/gomlx/hlocluster/ir"

// mergeTopDown iterates the function body forward; for each op, it tries
// merging the cluster owning each operand into the op's own current
// cluster, advancing the cursor on success (§4.2).
func mergeTopDown(e *Engine, fn *ir.Function) {
	ops := append([]*ir.Op(nil), fn.Body.Ops...)
	for _, op := range ops {
		cur := e.ClusterOfOp(op)
		if cur == nil {
			continue
		}
		for _, v := range op.Operands {
			pre := e.ClusterOfValue(v)
			if merged := e.TryMerge(pre, cur); merged != nil {
				cur = merged
			}
		}
	}
}

// runTopDown builds an engine over fn excluding the given ops, runs the
// Top-Down merge pass, and returns the resulting candidates. trace, if
// non-nil, is wired onto the engine before merging starts.
func runTopDown(fn *ir.Function, excluded map[*ir.Op]bool, trace func(int, int, bool)) (*Engine, []*Cluster) {
	e := NewEngine(fn, excluded)
	e.Trace = trace
	mergeTopDown(e, fn)
	return e, populateCandidates(e)
}
