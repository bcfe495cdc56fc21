package ir

import (
	"fmt"

	"github.com/gomlx/hlocluster/types/shapes"
)

// Value is either a block argument or a specific result of a defining Op.
// It is used exactly once as an operand slot value per use, but may be used
// by many operations.
type Value struct {
	id    int
	name  string
	shape shapes.Shape

	// def is the operation that produced this value as one of its results.
	// It is nil for block arguments.
	def         *Op
	resultIndex int
}

// NamedValue creates a block-argument value with the given shape. It is not
// attached to any function until appended to a Function's Inputs or used as
// a region-block argument.
func NamedValue(name string, shape shapes.Shape) *Value {
	return &Value{name: name, shape: shape, id: -1}
}

// Shape returns the value's type.
func (v *Value) Shape() shapes.Shape { return v.shape }

// DefiningOp returns the operation that produced this value, or nil if it is
// a block argument.
func (v *Value) DefiningOp() *Op { return v.def }

// IsBlockArgument reports whether this value is a block argument rather than
// an op result.
func (v *Value) IsBlockArgument() bool { return v.def == nil }

// ResultIndex returns the index of this value among its defining op's
// results. It is meaningless for block arguments.
func (v *Value) ResultIndex() int { return v.resultIndex }

// String renders the value the way a trace log names it: "%name" if named,
// "%<id>" otherwise.
func (v *Value) String() string {
	if v.name != "" {
		return "%" + v.name
	}
	return fmt.Sprintf("%%%d", v.id)
}
