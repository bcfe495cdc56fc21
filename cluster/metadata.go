package cluster

import "github.com/gomlx/hlocluster/ir"

// FunctionMetadata describes one cluster destined to become a new callee
// function: everything function synthesis (§4.4) needs to build it and
// rewrite the call site.
type FunctionMetadata struct {
	AnchorName   string
	DeviceAttr   string
	OriginalName string

	// InsertionPoint is the position, in the module's function list, at
	// which the synthesized function should be inserted.
	InsertionPoint int

	// GeneratedFuncName is filled in by function synthesis once the
	// symbol table has resolved any name collision.
	GeneratedFuncName string

	Inputs  []*ir.Value
	Results []*ir.Value
	Ops     []*ir.Op

	// Func is the synthesized function, set after synthesis.
	Func *ir.Function
}

// returnMultiplicity maps every value used by fn's return terminator to
// the number of return slots that reference it — the "return-value
// multiplicity map" of §3, built per function by each metadata-extraction
// step (extractMetadatas, runFallback).
func returnMultiplicity(fn *ir.Function) map[*ir.Value]int {
	stats := make(map[*ir.Value]int)
	if fn.Return == nil {
		return stats
	}
	for _, v := range fn.Return.Operands {
		stats[v]++
	}
	return stats
}
