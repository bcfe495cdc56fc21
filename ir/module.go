package ir

import (
	"github.com/gomlx/hlocluster/types/shapes"
)

// Module is the top-level IR container: an ordered list of functions plus
// the symbol table that keeps their names unique.
type Module struct {
	Name      string
	Functions []*Function

	symtab *SymbolTable
}

// NewModule returns an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name, symtab: NewSymbolTable()}
}

// NewFunction creates a function with the given input shapes, appends it to
// the module, and registers its name (renaming on collision).
func (m *Module) NewFunction(name string, inputShapes []shapes.Shape) *Function {
	fn := &Function{
		Name:       m.symtab.Insert(name),
		Body:       &Block{},
		Attributes: make(map[string]any),
		module:     m,
	}
	for _, s := range inputShapes {
		fn.AddInput(s)
	}
	m.Functions = append(m.Functions, fn)
	return fn
}

// FunctionByName returns the function with the given name, or nil.
func (m *Module) FunctionByName(name string) *Function {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// InsertFunctionAt inserts fn into the module's function list at position
// pos, registering its name through the symbol table (renaming it on
// collision, recording the final name onto fn.Name), and returns the
// position one past the inserted function — the cursor a caller should pass
// on the next call to keep inserting functions for the same original
// function immediately after each other, in order.
func (m *Module) InsertFunctionAt(pos int, fn *Function) (finalName string, nextPos int) {
	fn.Name = m.symtab.Insert(fn.Name)
	fn.module = m
	if pos < 0 || pos > len(m.Functions) {
		pos = len(m.Functions)
	}
	m.Functions = append(m.Functions, nil)
	copy(m.Functions[pos+1:], m.Functions[pos:])
	m.Functions[pos] = fn
	return fn.Name, pos + 1
}

// IndexOfFunction returns the position of fn in m.Functions, or -1.
func (m *Module) IndexOfFunction(fn *Function) int {
	for i, f := range m.Functions {
		if f == fn {
			return i
		}
	}
	return -1
}
