package cluster

import "github.com/gomlx/hlocluster/ir"

// ComputeInputs returns the ordered, de-duplicated list of values consumed
// by ops (or by anything nested in their regions) but defined outside ops —
// first-encounter order in a block-order walk of the cluster (§4.3).
func ComputeInputs(ops []*ir.Op) []*ir.Value {
	members := opSetOf(ops...)
	seen := make(map[*ir.Value]bool)
	var inputs []*ir.Value

	var visitOperands func(op *ir.Op)
	visitOperands = func(op *ir.Op) {
		for _, v := range op.Operands {
			def := v.DefiningOp()
			if def != nil && members.has(def) {
				continue
			}
			if !seen[v] {
				seen[v] = true
				inputs = append(inputs, v)
			}
		}
		for _, region := range op.Regions {
			for _, block := range region.Blocks {
				for _, inner := range block.Ops {
					visitOperands(inner)
				}
			}
		}
	}
	for _, op := range ops {
		visitOperands(op)
	}
	return inputs
}

// usedOutsideCluster reports whether any use of v is owned by an op that
// is neither a cluster member nor nested inside one.
func usedOutsideCluster(v *ir.Value, uses map[*ir.Value][]*ir.Op, members *opSet) bool {
	for _, owner := range uses[v] {
		inside := false
		for _, m := range members.slice() {
			if isAncestor(m, owner) {
				inside = true
				break
			}
		}
		if !inside {
			return true
		}
	}
	return false
}

// ComputeOutputs returns the ordered, de-duplicated list of cluster results
// used outside the cluster. When dupOutputs is true, a result returned k
// times by the original function's return terminator (per retStats)
// appears k times in the list instead of once, so each return slot can be
// independently rewired (§4.3, §8 property 6).
func ComputeOutputs(ops []*ir.Op, dupOutputs bool, retStats map[*ir.Value]int, uses map[*ir.Value][]*ir.Op) []*ir.Value {
	members := opSetOf(ops...)
	seen := make(map[*ir.Value]bool)
	var base []*ir.Value
	for _, op := range ops {
		for _, result := range op.Results {
			if seen[result] {
				continue
			}
			if usedOutsideCluster(result, uses, members) {
				seen[result] = true
				base = append(base, result)
			}
		}
	}
	if !dupOutputs {
		return base
	}
	var out []*ir.Value
	for _, v := range base {
		k := retStats[v]
		if k <= 1 {
			out = append(out, v)
			continue
		}
		for i := 0; i < k; i++ {
			out = append(out, v)
		}
	}
	return out
}
