package cluster

import "github.com/gomlx/hlocluster/ir"

// Cluster is an ordered set of operations, all drawn from the same block,
// destined to become one callee function. A Cluster participates in a
// union-find forest: a live cluster has a nil parent; merging sets the
// loser's parent to the survivor.
type Cluster struct {
	ops    *opSet
	block  *ir.Block
	parent *Cluster
}

// newSingletonCluster returns a fresh, live, one-op cluster.
func newSingletonCluster(op *ir.Op) *Cluster {
	return &Cluster{ops: opSetOf(op), block: op.Block()}
}

// Root resolves c through parent pointers to its live representative,
// compressing the path as it goes.
func (c *Cluster) Root() *Cluster {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	for c.parent != nil && c.parent != root {
		next := c.parent
		c.parent = root
		c = next
	}
	return root
}

// IsLive reports whether c is still its own representative.
func (c *Cluster) IsLive() bool { return c.parent == nil }

// Ops returns the cluster's member ops in block order. Only meaningful on
// a live (root) cluster.
func (c *Cluster) Ops() []*ir.Op { return c.ops.slice() }

// Len returns the number of ops in the cluster.
func (c *Cluster) Len() int { return c.ops.len() }

// First returns the cluster's earliest op in block order.
func (c *Cluster) First() *ir.Op {
	ops := c.ops.slice()
	if len(ops) == 0 {
		return nil
	}
	return ops[0]
}

// Last returns the cluster's latest op in block order.
func (c *Cluster) Last() *ir.Op {
	ops := c.ops.slice()
	if len(ops) == 0 {
		return nil
	}
	return ops[len(ops)-1]
}

// has reports whether op is a direct member of c (c must be live).
func (c *Cluster) has(op *ir.Op) bool { return c.ops.has(op) }
