package cluster

import "github.com/gomlx/hlocluster/ir"

// IsHostOp reports whether op is host-bound: it carries the named string
// attribute set to HostDevice, or any op nested (recursively, through every
// block of every region) inside it is itself host-bound.
func IsHostOp(op *ir.Op, attrName string) bool {
	if v, ok := op.StringAttr(attrName); ok && v == HostDevice {
		return true
	}
	for _, region := range op.Regions {
		for _, block := range region.Blocks {
			for _, inner := range block.Ops {
				if IsHostOp(inner, attrName) {
					return true
				}
			}
		}
	}
	return false
}

// computeExcluded returns the set of ops that never participate in
// clustering: host-bound ops, plus a constant-like op with exactly one use
// whose owner is host-bound (§4.5, last paragraph) — it is folded into the
// host partition by construction rather than by merging.
func computeExcluded(fn *ir.Function, opts *Options, uses map[*ir.Value][]*ir.Op) map[*ir.Op]bool {
	excluded := make(map[*ir.Op]bool)
	for _, op := range fn.Body.Ops {
		if IsHostOp(op, opts.attrName) {
			excluded[op] = true
			continue
		}
		if len(op.Results) == 0 || !opts.isConstantLikeOp(op) {
			continue
		}
		result := op.Results[0]
		if use := uses[result]; len(use) == 1 && IsHostOp(use[0], opts.attrName) {
			excluded[op] = true
		}
	}
	return excluded
}
