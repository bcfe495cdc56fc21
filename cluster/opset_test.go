package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomlx/hlocluster/ir"
)

func TestOpSet_InsertionOrderAndDedup(t *testing.T) {
	a, b, c := ir.NewOp("t", nil), ir.NewOp("t", nil), ir.NewOp("t", nil)
	s := newOpSet(0)
	assert.True(t, s.insert(a))
	assert.True(t, s.insert(b))
	assert.False(t, s.insert(a))
	assert.Equal(t, []*ir.Op{a, b}, s.slice())

	assert.True(t, s.insert(c))
	assert.Equal(t, []*ir.Op{c, b, a}, s.reversed())

	assert.True(t, s.remove(b))
	assert.False(t, s.remove(b))
	assert.Equal(t, []*ir.Op{a, c}, s.slice())
}

func TestOpSet_InsertFrom(t *testing.T) {
	a, b, c := ir.NewOp("t", nil), ir.NewOp("t", nil), ir.NewOp("t", nil)
	from := opSetOf(a, b)
	to := opSetOf(b, c)
	to.insertFrom(from)
	assert.Equal(t, []*ir.Op{b, c, a}, to.slice())
}
