package cluster

import "github.com/gomlx/hlocluster/ir"

// opSet is an insertion-ordered, duplicate-free set of ops, mirroring the
// role llvm::SetVector plays in the original pass: O(1) membership testing
// backed by a map, but iteration and final content always reflect
// insertion order.
type opSet struct {
	order []*ir.Op
	index map[*ir.Op]bool
}

func newOpSet(capacity int) *opSet {
	return &opSet{index: make(map[*ir.Op]bool, capacity)}
}

func opSetOf(ops ...*ir.Op) *opSet {
	s := newOpSet(len(ops))
	s.insertAll(ops)
	return s
}

func (s *opSet) has(op *ir.Op) bool { return s.index[op] }

// insert appends op if it is not already a member. Returns true if added.
func (s *opSet) insert(op *ir.Op) bool {
	if s.index[op] {
		return false
	}
	s.index[op] = true
	s.order = append(s.order, op)
	return true
}

func (s *opSet) insertAll(ops []*ir.Op) {
	for _, op := range ops {
		s.insert(op)
	}
}

// insertFrom appends every member of other not already present, in
// other's own order — the semantics a merged cluster relies on to end up
// with the earlier cluster's members followed by the later cluster's.
func (s *opSet) insertFrom(other *opSet) {
	s.insertAll(other.order)
}

func (s *opSet) remove(op *ir.Op) bool {
	if !s.index[op] {
		return false
	}
	delete(s.index, op)
	for i, o := range s.order {
		if o == op {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *opSet) len() int { return len(s.order) }

// slice returns the set's members in insertion order. The caller must not
// mutate the result.
func (s *opSet) slice() []*ir.Op { return s.order }

// reversed returns a fresh slice with members in the opposite of insertion
// order, used by compute_move_down to re-reverse its "remain" pass back
// into block order.
func (s *opSet) reversed() []*ir.Op {
	out := make([]*ir.Op, len(s.order))
	for i, op := range s.order {
		out[len(out)-1-i] = op
	}
	return out
}
