package cluster

import "github.com/gomlx/hlocluster/ir"

// buildUsesIndex walks fn's body once (descending into every nested region)
// and records, for every value, the ops that consume it directly as an
// operand — including the function's own return terminator. anyUseIn scans
// this index rather than re-walking the function on every query.
func buildUsesIndex(fn *ir.Function) map[*ir.Value][]*ir.Op {
	idx := make(map[*ir.Value][]*ir.Op)
	var walk func(op *ir.Op)
	walk = func(op *ir.Op) {
		for _, v := range op.Operands {
			idx[v] = append(idx[v], op)
		}
		for _, region := range op.Regions {
			for _, block := range region.Blocks {
				for _, inner := range block.Ops {
					walk(inner)
				}
			}
		}
	}
	for _, op := range fn.Body.Ops {
		walk(op)
	}
	if fn.Return != nil {
		for _, v := range fn.Return.Operands {
			idx[v] = append(idx[v], fn.Return)
		}
	}
	return idx
}

// isAncestor reports whether descendant is ancestor itself or nested
// (transitively, through block regions) inside one of ancestor's regions.
func isAncestor(ancestor, descendant *ir.Op) bool {
	if ancestor == descendant {
		return true
	}
	for blk := descendant.Block(); blk != nil; {
		owner := blk.RegionOwner()
		if owner == nil {
			return false
		}
		if owner == ancestor {
			return true
		}
		blk = owner.Block()
	}
	return false
}

// anyDefIn reports whether any operand of op — at any nesting depth inside
// op's own regions, or directly on op itself — is defined by an op in any
// of sets.
func anyDefIn(op *ir.Op, sets ...*opSet) bool {
	for _, region := range op.Regions {
		for _, block := range region.Blocks {
			for _, inner := range block.Ops {
				if anyDefIn(inner, sets...) {
					return true
				}
			}
		}
	}
	for _, v := range op.Operands {
		d := v.DefiningOp()
		if d == nil {
			continue
		}
		for _, set := range sets {
			if set.has(d) {
				return true
			}
		}
	}
	return false
}

// anyUseIn reports whether any use of op's results is owned by an op in
// any of sets, or by an op nested (transitively) inside one of them.
func anyUseIn(op *ir.Op, uses map[*ir.Value][]*ir.Op, sets ...*opSet) bool {
	for _, result := range op.Results {
		for _, owner := range uses[result] {
			for _, set := range sets {
				for _, member := range set.slice() {
					if isAncestor(member, owner) {
						return true
					}
				}
			}
		}
	}
	return false
}

// computeMoveUpSet classifies src (in block order) into ops movable above
// target without violating SSA, and ops that must remain. When a single op
// must remain, its whole cluster is pulled into remain — cluster-coherent
// revocation — undoing any of that cluster's ops already classified
// movable-up in this same pass.
func (e *Engine) computeMoveUpSet(target *opSet, src []*ir.Op) (moveUp []*ir.Op, remain *opSet) {
	srcIndex := opSetOf(src...)
	remainSet := newOpSet(len(src))
	moveUpSet := newOpSet(len(src))
	for _, op := range src {
		if remainSet.has(op) {
			continue
		}
		if anyDefIn(op, target, remainSet) {
			cl := e.ClusterOfOp(op)
			if cl == nil {
				remainSet.insert(op)
				continue
			}
			root := cl.Root()
			for _, clusterOp := range root.Ops() {
				if !srcIndex.has(clusterOp) {
					continue
				}
				remainSet.insert(clusterOp)
				moveUpSet.remove(clusterOp)
			}
		} else {
			moveUpSet.insert(op)
		}
	}
	return moveUpSet.slice(), remainSet
}

// computeMoveDownSet mirrors computeMoveUpSet, iterating src in reverse
// block order and testing use-sites rather than def-sites. The returned
// remain set is re-reversed into block order, matching the original
// algorithm's final "remain = reverse(remain)" step.
func (e *Engine) computeMoveDownSet(target *opSet, src []*ir.Op, uses map[*ir.Value][]*ir.Op) (moveDown []*ir.Op, remain *opSet) {
	srcIndex := opSetOf(src...)
	remainSet := newOpSet(len(src))
	moveDownSet := newOpSet(len(src))
	for i := len(src) - 1; i >= 0; i-- {
		op := src[i]
		if remainSet.has(op) {
			continue
		}
		if anyUseIn(op, uses, target, remainSet) {
			cl := e.ClusterOfOp(op)
			if cl == nil {
				remainSet.insert(op)
				continue
			}
			root := cl.Root()
			clusterOps := root.Ops()
			for j := len(clusterOps) - 1; j >= 0; j-- {
				clusterOp := clusterOps[j]
				if !srcIndex.has(clusterOp) {
					continue
				}
				remainSet.insert(clusterOp)
				moveDownSet.remove(clusterOp)
			}
		} else {
			moveDownSet.insert(op)
		}
	}
	reversedRemain := opSetOf(remainSet.reversed()...)
	// moveDown stays in post-order (reverse block order): applying repeated
	// InsertAfter(target.Last(), op) over that order reconstructs the
	// original relative order, the same way moveUp's pre-order does with
	// repeated InsertBefore.
	return moveDownSet.slice(), reversedRemain
}
