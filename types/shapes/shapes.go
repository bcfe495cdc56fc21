// Package shapes represents the type of an SSA value: an element dtype plus
// zero or more dimensions.
//
// It is deliberately small: the clustering engine only ever needs to compare
// two value types for equality and print one for a synthesized function
// signature or a trace log line — it never infers or broadcasts shapes, that
// is the concern of whatever dialect-specific layer builds the IR handed to
// the engine.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
)

// Shape describes the type of a Value: its element dtype and its dimensions.
// A Shape with no dimensions is a scalar.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape with the given dtype and dimensions. No dimensions
// means a scalar.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	return Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
}

// Invalid returns a Shape that reports Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok reports whether the shape carries a valid dtype.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank is the number of dimensions; 0 for a scalar.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar reports whether the shape has a valid dtype and no dimensions.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the size of the given axis. Negative axis counts from the end.
func (s Shape) Dim(axis int) int {
	if axis < 0 {
		axis += s.Rank()
	}
	return s.Dimensions[axis]
}

// Size returns the total number of elements (1 for a scalar).
func (s Shape) Size() int {
	size := 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return size
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// Equal reports whether two shapes have the same dtype and dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.DType == other.DType && slices.Equal(s.Dimensions, other.Dimensions)
}

// String renders the shape as "(dtype)[d0 d1 ...]", or "(dtype)" for a scalar.
func (s Shape) String() string {
	if !s.Ok() {
		return "InvalidShape"
	}
	if s.IsScalar() {
		return fmt.Sprintf("(%s)", s.DType)
	}
	dims := make([]string, len(s.Dimensions))
	for i, d := range s.Dimensions {
		dims[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, strings.Join(dims, " "))
}
