package ir

import (
	"fmt"
	"strings"

	"github.com/gomlx/hlocluster/types/shapes"
)

// Unit is the value stored for a unit attribute: its presence is the only
// information it carries (e.g. the anchor attribute marking a synthesized
// function).
type Unit struct{}

// Op is a single operation in a function body: an operator kind, its
// operands and results, zero or more nested regions, and its attributes.
//
// Operations are totally ordered within their enclosing Block; Op itself
// does not track its position, Block does (see Block.IndexOf).
type Op struct {
	Kind       string
	Operands   []*Value
	Results    []*Value
	Regions    []*Region
	Attributes map[string]any

	block *Block
}

// NewOp constructs a detached operation; it must be appended to a Block
// (Block.Append, Block.InsertBefore, ...) before it participates in the IR.
func NewOp(kind string, operands []*Value) *Op {
	return &Op{Kind: kind, Operands: append([]*Value(nil), operands...)}
}

// Block returns the block the op currently lives in, or nil if detached.
func (o *Op) Block() *Block { return o.block }

// AddResult appends a freshly created result value of the given shape and
// returns it.
func (o *Op) AddResult(shape shapes.Shape) *Value {
	v := &Value{shape: shape, def: o, resultIndex: len(o.Results)}
	o.Results = append(o.Results, v)
	return v
}

// AddRegion appends a new, empty region (with a single block) to the op and
// returns it.
func (o *Op) AddRegion() *Region {
	r := &Region{owner: o}
	entry := &Block{}
	entry.setRegionOwner(o)
	r.Blocks = []*Block{entry}
	o.Regions = append(o.Regions, r)
	return r
}

// HasAttr reports whether the op carries the named attribute.
func (o *Op) HasAttr(name string) bool {
	_, ok := o.Attributes[name]
	return ok
}

// StringAttr returns the named attribute as a string and whether it was
// present and of that type.
func (o *Op) StringAttr(name string) (string, bool) {
	v, ok := o.Attributes[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// String renders a one-line trace representation of the op: its results,
// kind and operands, e.g. "%2 = \"device.add\"(%0, %1)".
func (o *Op) String() string {
	var sb strings.Builder
	if len(o.Results) > 0 {
		names := make([]string, len(o.Results))
		for i, r := range o.Results {
			names[i] = r.String()
		}
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString(" = ")
	}
	sb.WriteString(fmt.Sprintf("%q(", o.Kind))
	operands := make([]string, len(o.Operands))
	for i, op := range o.Operands {
		operands[i] = op.String()
	}
	sb.WriteString(strings.Join(operands, ", "))
	sb.WriteString(")")
	return sb.String()
}
