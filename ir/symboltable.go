package ir

import "fmt"

// SymbolTable assigns unique function names within a Module, renaming on
// collision by appending a numeric suffix — the way the original pass's
// MLIR SymbolTable silently renames a newly inserted symbol that collides
// with an existing one.
type SymbolTable struct {
	used map[string]bool
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{used: make(map[string]bool)}
}

// Reserve marks name as taken without going through collision resolution;
// used to register names that already exist in the module.
func (t *SymbolTable) Reserve(name string) {
	t.used[name] = true
}

// Insert reserves a unique name derived from want, appending "_N" (starting
// at 1) until the result is not already taken, and returns the name chosen.
func (t *SymbolTable) Insert(want string) string {
	if !t.used[want] {
		t.used[want] = true
		return want
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", want, n)
		if !t.used[candidate] {
			t.used[candidate] = true
			return candidate
		}
	}
}
