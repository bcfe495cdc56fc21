package cluster

import "github.com/gomlx/hlocluster/ir"

// runGreedy clones fn twice, runs Top-Down on one clone and Bottom-Up on
// the other purely to measure which covers more ops after validation and
// multi-graph truncation, then re-runs the winner on the original function.
// Ties favor Bottom-Up; when only one side produced metadatas at all, that
// side is re-run (§4.2, §9 open question: the re-run-on-original shape is
// preserved rather than reusing the winning clone's metadatas directly).
func runGreedy(fn *ir.Function, opts *Options, excluded map[*ir.Op]bool, uses map[*ir.Value][]*ir.Op, trace func(int, int, bool), onSkip func(int)) (metadatas []*FunctionMetadata, ok bool) {
	topDownClone := ir.CloneFunction(fn)
	bottomUpClone := ir.CloneFunction(fn)

	tdUses := buildUsesIndex(topDownClone)
	_, tdCandidates := runTopDown(topDownClone, computeExcluded(topDownClone, opts, tdUses), nil)
	tdMetas, tdOk := extractMetadatas(topDownClone, tdCandidates, opts, tdUses, nil)

	buUses := buildUsesIndex(bottomUpClone)
	_, buCandidates := runBottomUp(bottomUpClone, computeExcluded(bottomUpClone, opts, buUses), nil)
	buMetas, buOk := extractMetadatas(bottomUpClone, buCandidates, opts, buUses, nil)

	switch {
	case tdOk && buOk:
		if coveredOps(tdMetas) > coveredOps(buMetas) {
			_, candidates := runTopDown(fn, excluded, trace)
			return extractMetadatas(fn, candidates, opts, uses, onSkip)
		}
		_, candidates := runBottomUp(fn, excluded, trace)
		return extractMetadatas(fn, candidates, opts, uses, onSkip)
	case tdOk:
		_, candidates := runTopDown(fn, excluded, trace)
		return extractMetadatas(fn, candidates, opts, uses, onSkip)
	case buOk:
		_, candidates := runBottomUp(fn, excluded, trace)
		return extractMetadatas(fn, candidates, opts, uses, onSkip)
	default:
		return nil, false
	}
}
