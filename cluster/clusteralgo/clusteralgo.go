// Package clusteralgo defines the ClusterAlgo enum selecting which
// clustering algorithm the engine runs for a function.
package clusteralgo

//go:generate go tool enumer -type=ClusterAlgo -text clusteralgo.go

// ClusterAlgo selects the merge strategy used to build clusters.
type ClusterAlgo int

const (
	// TopDown merges each op into the cluster owning one of its operands,
	// iterating the function body forward.
	TopDown ClusterAlgo = iota
	// BottomUp mirrors TopDown, merging each op into the cluster owning
	// one of its uses, iterating the function body backward.
	BottomUp
	// Greedy runs both TopDown and BottomUp on throwaway clones, keeps
	// whichever covers more ops, and re-runs the winner on the original
	// function.
	Greedy
	// Fallback performs no merging: one host cluster and one device
	// cluster, split by transitive operand closure from host-marked ops.
	Fallback
)
