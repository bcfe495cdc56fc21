package cluster

import "github.com/gomlx/hlocluster/ir"

// HostAnchorName is the unit attribute name every synthesized host function
// carries, regardless of the configured device anchor name.
const HostAnchorName = "host_anchor"

// transitiveOperandClosure inserts op into set, then recursively inserts
// every op that (directly or transitively) defines one of op's operands —
// the original pass's insertOpsRecursively, used to pull a host-marked op's
// whole operand-def closure into the host partition.
func transitiveOperandClosure(op *ir.Op, set *opSet) {
	if !set.insert(op) {
		return
	}
	for _, v := range op.Operands {
		if def := v.DefiningOp(); def != nil {
			transitiveOperandClosure(def, set)
		}
	}
}

// runFallback performs no merging: it produces at most one host cluster,
// transitively closed under operand-defs from every host-marked op, and at
// most one device cluster covering everything else. It returns ok=false
// when the device candidate is rejected by ValidateSubgraph, signalling
// that the whole clustering attempt for this function must fail (§4.2,
// §7 "Fallback" policy).
func runFallback(fn *ir.Function, opts *Options, uses map[*ir.Value][]*ir.Op) (metadatas []*FunctionMetadata, ok bool) {
	hostOps := newOpSet(0)
	for _, op := range fn.Body.Ops {
		if IsHostOp(op, opts.attrName) {
			transitiveOperandClosure(op, hostOps)
		}
	}

	retStats := returnMultiplicity(fn)

	if hostOps.len() > 0 {
		var hostMembers []*ir.Op
		for _, op := range fn.Body.Ops {
			if hostOps.has(op) {
				hostMembers = append(hostMembers, op)
			}
		}
		metadatas = append(metadatas, &FunctionMetadata{
			AnchorName:   HostAnchorName,
			DeviceAttr:   HostDevice,
			OriginalName: fn.Name,
			Ops:          hostMembers,
			Inputs:       ComputeInputs(hostMembers),
			Results:      ComputeOutputs(hostMembers, opts.dupOutputs, retStats, uses),
		})
	}

	var deviceMembers []*ir.Op
	for _, op := range fn.Body.Ops {
		if !hostOps.has(op) {
			deviceMembers = append(deviceMembers, op)
		}
	}
	if len(deviceMembers) > 0 {
		if !opts.validates(deviceMembers) {
			return nil, false
		}
		metadatas = append(metadatas, &FunctionMetadata{
			AnchorName:   opts.deviceAnchorName,
			DeviceAttr:   opts.device,
			OriginalName: fn.Name,
			Ops:          deviceMembers,
			Inputs:       ComputeInputs(deviceMembers),
			Results:      ComputeOutputs(deviceMembers, opts.dupOutputs, retStats, uses),
		})
	}

	return metadatas, true
}
