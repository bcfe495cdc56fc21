package cluster

import "github.com/gomlx/hlocluster/ir"

// allBlocks returns fn's body block plus every block nested, recursively,
// inside any op's region — pre-replication runs over every block of the
// function, not just the top-level body.
func allBlocks(fn *ir.Function) []*ir.Block {
	var out []*ir.Block
	var walk func(b *ir.Block)
	walk = func(b *ir.Block) {
		out = append(out, b)
		for _, op := range b.Ops {
			for _, region := range op.Regions {
				for _, inner := range region.Blocks {
					walk(inner)
				}
			}
		}
	}
	walk(fn.Body)
	return out
}

// distinctUsers returns the ops using v as an operand, deduplicated but
// keeping first-encounter order.
func distinctUsers(uses map[*ir.Value][]*ir.Op, v *ir.Value) []*ir.Op {
	seen := make(map[*ir.Op]bool)
	var out []*ir.Op
	for _, owner := range uses[v] {
		if seen[owner] {
			continue
		}
		seen[owner] = true
		out = append(out, owner)
	}
	return out
}

// replaceOperandIn rewrites every occurrence of old among owner's own
// operand slots with updated. It does not look inside owner's regions:
// distinctUsers already names the innermost op holding the operand slot.
func replaceOperandIn(owner *ir.Op, old, updated *ir.Value) {
	for i, v := range owner.Operands {
		if v == old {
			owner.Operands[i] = updated
		}
	}
}

// PreReplicate duplicates constant-like defining ops (per Options.dupNonSplat,
// either every constant-like op or only splat ones) that are not directly
// consumed by fn's return terminator, giving every user beyond the first its
// own private copy so clustering is never forced to merge unrelated users
// through a shared constant (§4.5).
func PreReplicate(fn *ir.Function, opts *Options) {
	retValues := make(map[*ir.Value]bool)
	if fn.Return != nil {
		for _, v := range fn.Return.Operands {
			retValues[v] = true
		}
	}
	replicable := func(op *ir.Op) bool {
		if len(op.Results) == 0 || retValues[op.Results[0]] {
			return false
		}
		if opts.dupNonSplat {
			return opts.isConstantLikeOp(op)
		}
		return opts.isSplatConstantOp(op)
	}

	uses := buildUsesIndex(fn)
	for _, block := range allBlocks(fn) {
		for _, op := range append([]*ir.Op(nil), block.Ops...) {
			if !replicable(op) {
				continue
			}
			result := op.Results[0]
			users := distinctUsers(uses, result)
			if len(users) <= 1 {
				continue
			}
			anchor := op
			for _, user := range users[1:] {
				clone := ir.CloneOp(op, block, ir.NewMapper())
				block.MoveAfter(clone, anchor)
				anchor = clone
				replaceOperandIn(user, result, clone.Results[0])
			}
		}
	}
}
