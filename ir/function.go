package ir

import (
	"fmt"

	"github.com/gomlx/hlocluster/types/shapes"
)

// ReturnKind is the operator kind of a function's terminator.
const ReturnKind = "func.return"

// Function is a named, block-structured entity with a single entry block
// (Body) whose terminator (Return) is not itself a member of Body.Ops.
type Function struct {
	Name        string
	Inputs      []*Value
	OutputTypes []shapes.Shape
	Body        *Block
	Return      *Op
	Attributes  map[string]any

	module      *Module
	nextValueID int
}

// NewDetachedFunction returns a function with an empty entry block, not
// attached to any module. Function synthesis builds the new per-cluster
// callee this way, before Module.InsertFunctionAt attaches it and resolves
// its final, possibly renamed, name.
func NewDetachedFunction(name string) *Function {
	return &Function{Name: name, Body: &Block{}, Attributes: make(map[string]any)}
}

// Module returns the module this function was created in.
func (fn *Function) Module() *Module { return fn.module }

// newValueID returns a fresh, function-scoped numeric id, used to name
// unnamed values for trace output.
func (fn *Function) newValueID() int {
	id := fn.nextValueID
	fn.nextValueID++
	return id
}

// AddInput appends a new input parameter with an auto-generated name.
func (fn *Function) AddInput(shape shapes.Shape) *Value {
	v := &Value{name: fmt.Sprintf("arg%d", len(fn.Inputs)), shape: shape, id: -1}
	fn.Inputs = append(fn.Inputs, v)
	return v
}

// AddOp appends a new operation to the function body with freshly created
// result values of the given shapes.
func (fn *Function) AddOp(kind string, operands []*Value, resultShapes []shapes.Shape, attrs map[string]any) *Op {
	op := NewOp(kind, operands)
	op.Attributes = attrs
	for _, s := range resultShapes {
		v := op.AddResult(s)
		v.id = fn.newValueID()
	}
	fn.Body.Append(op)
	return op
}

// SetReturn installs the function's terminator, returning the given values
// (in order; a value may repeat). It also fixes OutputTypes accordingly.
func (fn *Function) SetReturn(operands ...*Value) {
	fn.Return = &Op{Kind: ReturnKind, Operands: append([]*Value(nil), operands...)}
	types := make([]shapes.Shape, len(operands))
	for i, v := range operands {
		types[i] = v.Shape()
	}
	fn.OutputTypes = types
}
