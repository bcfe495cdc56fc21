package cluster

import "github.com/gomlx/hlocluster/ir"

// extractMetadatas turns a sorted candidate list into the metadatas that
// will actually be synthesized: candidates rejected by ValidateSubgraph are
// skipped, and if EnableMultiGraph is false only the first (largest,
// surviving) candidate is kept. It reports ok=false — "no metadatas" — only
// when there were no candidates at all, or the largest candidate was empty;
// a validate_subgraph rejection of every individual candidate still counts
// as success with zero metadatas (§4.2, §7).
func extractMetadatas(fn *ir.Function, candidates []*Cluster, opts *Options, uses map[*ir.Value][]*ir.Op, onSkip func(numOps int)) (metadatas []*FunctionMetadata, ok bool) {
	if len(candidates) == 0 || candidates[0].Len() == 0 {
		return nil, false
	}

	retStats := returnMultiplicity(fn)
	for _, c := range candidates {
		if c.Len() == 0 {
			continue
		}
		ops := c.Ops()
		if !opts.validates(ops) {
			if onSkip != nil {
				onSkip(len(ops))
			}
			continue
		}
		metadatas = append(metadatas, &FunctionMetadata{
			AnchorName:   opts.deviceAnchorName,
			DeviceAttr:   opts.device,
			OriginalName: fn.Name,
			Ops:          ops,
			Inputs:       ComputeInputs(ops),
			Results:      ComputeOutputs(ops, opts.dupOutputs, retStats, uses),
		})
		if !opts.enableMultiGraph {
			break
		}
	}
	return metadatas, true
}

func coveredOps(metadatas []*FunctionMetadata) int {
	total := 0
	for _, m := range metadatas {
		total += len(m.Ops)
	}
	return total
}
