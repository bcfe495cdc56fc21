package cluster

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/gomlx/hlocluster/cluster/clusteralgo"
	"github.com/gomlx/hlocluster/ir"
)

// Run clusters every function of mod by device, in place: partitioning each
// function's body (per Options.ClusterAlgo), synthesizing one new callee
// function per surviving cluster, and rewriting the original ops into calls.
//
// Functions are processed independently; a function that fails (Fallback's
// device candidate rejected, or an algorithm finding no candidate at all)
// gets no synthesized callee and none of its ops are erased, though
// pre-replication and merge reordering may already have changed its body.
// It contributes to the returned error, but does not prevent the remaining
// functions in mod from being clustered — §7's "no partial state" guarantee
// is per source function, not per module.
func Run(mod *ir.Module, opts *Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	diag := newRunDiagnostics()
	diag.openModule(mod.Name, len(mod.Functions))

	// Snapshot the function list: synthesis inserts new functions into
	// mod.Functions as it runs, and those synthesized functions must not
	// themselves be reconsidered for clustering.
	targets := append([]*ir.Function(nil), mod.Functions...)

	var errs error
	for _, fn := range targets {
		if err := runOne(mod, fn, opts, diag); err != nil {
			errs = multierr.Append(errs, errors.WithMessagef(err, "function %q", fn.Name))
		}
	}
	return errs
}

func runOne(mod *ir.Module, fn *ir.Function, opts *Options, diag *runDiagnostics) error {
	diag.selectedAlgo(fn.Name, opts.algo)

	PreReplicate(fn, opts)

	uses := buildUsesIndex(fn)
	excluded := computeExcluded(fn, opts, uses)

	trace := func(fromLen, toLen int, accepted bool) {
		diag.mergeAttempt(fn.Name, fromLen, toLen, accepted)
	}
	onSkip := func(numOps int) {
		diag.skipCandidate(fn.Name, numOps)
	}

	var metadatas []*FunctionMetadata
	var ok bool
	switch opts.algo {
	case clusteralgo.TopDown:
		_, candidates := runTopDown(fn, excluded, trace)
		metadatas, ok = extractMetadatas(fn, candidates, opts, uses, onSkip)
	case clusteralgo.BottomUp:
		_, candidates := runBottomUp(fn, excluded, trace)
		metadatas, ok = extractMetadatas(fn, candidates, opts, uses, onSkip)
	case clusteralgo.Greedy:
		metadatas, ok = runGreedy(fn, opts, excluded, uses, trace, onSkip)
	case clusteralgo.Fallback:
		metadatas, ok = runFallback(fn, opts, uses)
	default:
		return errors.Errorf("cluster: unhandled ClusterAlgo %v", opts.algo)
	}

	diag.flushSkips()

	if !ok {
		diag.noMetadatas(fn.Name)
		return errors.Errorf("GraphClusteringByDevice error")
	}
	if len(metadatas) == 0 {
		return nil
	}

	Synthesize(mod, fn, metadatas, opts)
	diag.clustered(fn.Name, coveredOps(metadatas), len(metadatas))
	return nil
}
