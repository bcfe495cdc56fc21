package ir

// Region is a list of blocks nested inside an operation, e.g. the reduction
// body of a "reduce" op. The clustering engine never clusters ops living
// inside a region directly; it only walks into regions to answer "does this
// op tree define/use a value in this set" queries (§4.1 of the design).
type Region struct {
	Blocks []*Block
	owner  *Op
}

// Owner returns the operation this region is nested inside.
func (r *Region) Owner() *Op { return r.owner }

// Entry returns the region's first block, creating a one-block region on
// first use is the caller's responsibility (see Op.AddRegion).
func (r *Region) Entry() *Block {
	if len(r.Blocks) == 0 {
		return nil
	}
	return r.Blocks[0]
}
