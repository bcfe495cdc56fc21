package cluster

import (
	"github.com/pkg/errors"

	"github.com/gomlx/hlocluster/cluster/clusteralgo"
	"github.com/gomlx/hlocluster/ir"
)

// HostDevice is the device string written by convention on host functions
// and checked for on the host attribute of an op.
const HostDevice = "host"

// Options configures one run of the pass over a module.
//
// Construct with NewOptions and chain the With* methods; Run validates the
// result once before using it.
type Options struct {
	attrName         string
	device           string
	deviceAnchorName string
	dupNonSplat      bool
	dupOutputs       bool
	algo             clusteralgo.ClusterAlgo
	enableMultiGraph bool

	isConstantLike   func(op *ir.Op) bool
	isSplatConstant  func(op *ir.Op) bool
	validateSubgraph func(ops []*ir.Op) bool
}

// NewOptions returns an Options with the given required device tag and
// attribute name, and otherwise idiomatic defaults: Top-Down algorithm,
// dup_outputs enabled, dup_non_splat disabled, multi-graph enabled.
func NewOptions(attrName, device string) *Options {
	return &Options{
		attrName:         attrName,
		device:           device,
		deviceAnchorName: "device_anchor",
		dupOutputs:       true,
		algo:             clusteralgo.TopDown,
		enableMultiGraph: true,
	}
}

// WithDeviceAnchorName sets the unit attribute name marked on every
// synthesized device function. Defaults to "device_anchor".
func (o *Options) WithDeviceAnchorName(name string) *Options {
	o.deviceAnchorName = name
	return o
}

// WithDupNonSplat selects pre-replication aggressiveness: when true, every
// constant-like op is pre-replicated per user; when false, only splat
// constants are.
func (o *Options) WithDupNonSplat(v bool) *Options {
	o.dupNonSplat = v
	return o
}

// WithDupOutputs selects the output-duplication and return-rewiring policy
// of §4.3/§4.4.
func (o *Options) WithDupOutputs(v bool) *Options {
	o.dupOutputs = v
	return o
}

// WithClusterAlgo selects the clustering algorithm.
func (o *Options) WithClusterAlgo(algo clusteralgo.ClusterAlgo) *Options {
	o.algo = algo
	return o
}

// WithEnableMultiGraph controls whether every validated candidate is
// extracted (true) or only the largest one (false).
func (o *Options) WithEnableMultiGraph(v bool) *Options {
	o.enableMultiGraph = v
	return o
}

// WithIsConstantLike registers the predicate used to recognise
// constant-like defining ops for pre-replication and host-exclusion.
func (o *Options) WithIsConstantLike(pred func(op *ir.Op) bool) *Options {
	o.isConstantLike = pred
	return o
}

// WithIsSplatConstant registers the predicate used, when dup_non_splat is
// false, to restrict pre-replication to splat constants.
func (o *Options) WithIsSplatConstant(pred func(op *ir.Op) bool) *Options {
	o.isSplatConstant = pred
	return o
}

// WithValidateSubgraph registers the optional external predicate that may
// reject a candidate cluster before it is extracted.
func (o *Options) WithValidateSubgraph(pred func(ops []*ir.Op) bool) *Options {
	o.validateSubgraph = pred
	return o
}

// validate checks that required hooks are present for the configuration
// requested, returning an annotated error otherwise.
func (o *Options) validate() error {
	if o.attrName == "" {
		return errors.New("cluster: Options.attrName must not be empty")
	}
	if o.device == "" {
		return errors.New("cluster: Options.device must not be empty")
	}
	if o.isConstantLike == nil {
		return errors.New("cluster: Options.IsConstantLike is required (pre-replication and host-exclusion both depend on it)")
	}
	if !o.dupNonSplat && o.isSplatConstant == nil {
		return errors.New("cluster: Options.IsSplatConstant is required when dup_non_splat is false")
	}
	if !o.algo.IsAClusterAlgo() {
		return errors.Errorf("cluster: Options.ClusterAlgo %v is not a valid ClusterAlgo", o.algo)
	}
	return nil
}

func (o *Options) isConstantLikeOp(op *ir.Op) bool {
	return o.isConstantLike != nil && o.isConstantLike(op)
}

func (o *Options) isSplatConstantOp(op *ir.Op) bool {
	return o.isSplatConstant != nil && o.isSplatConstant(op)
}

func (o *Options) validates(ops []*ir.Op) bool {
	if o.validateSubgraph == nil {
		return true
	}
	return o.validateSubgraph(ops)
}
