package cluster

import "sort"

// populateCandidates collects every live cluster into a worklist ordered by
// descending op count, then repeatedly takes the head and merges every
// other worklist entry into it, emitting the result as one candidate. The
// final candidate list is itself sorted by descending op count, stable with
// respect to the worklist order (§4.2, §8 property 7).
func populateCandidates(e *Engine) []*Cluster {
	work := append([]*Cluster(nil), e.Clusters()...)
	sort.SliceStable(work, func(i, j int) bool { return work[i].Len() > work[j].Len() })

	var candidates []*Cluster
	for len(work) > 0 {
		head := work[0]
		work = work[1:]
		var remaining []*Cluster
		for _, other := range work {
			if merged := e.TryMerge(other, head); merged != nil {
				head = merged
			} else {
				remaining = append(remaining, other)
			}
		}
		work = remaining
		candidates = append(candidates, head)
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Len() > candidates[j].Len() })
	return candidates
}
