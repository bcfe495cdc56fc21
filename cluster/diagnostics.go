package cluster

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"
)

// runDiagnostics accumulates non-fatal per-candidate skip notices for one
// function's clustering pass, logged together once the function is done —
// the multierr.Append accumulator pattern, applied to diagnostics rather
// than to errors that abort anything.
type runDiagnostics struct {
	correlationID string
	skips         error
}

func newRunDiagnostics() *runDiagnostics {
	return &runDiagnostics{correlationID: uuid.NewString()}
}

func (d *runDiagnostics) openModule(moduleName string, numFunctions int) {
	klog.InfoS("graph clustering by device: starting",
		"correlationID", d.correlationID, "module", moduleName, "functions", numFunctions)
}

func (d *runDiagnostics) selectedAlgo(fnName string, algo fmt.Stringer) {
	klog.V(1).InfoS("graph clustering by device: function",
		"correlationID", d.correlationID, "function", fnName, "algo", algo.String())
}

func (d *runDiagnostics) mergeAttempt(fnName string, fromLen, toLen int, ok bool) {
	klog.V(2).InfoS("graph clustering by device: merge attempt",
		"correlationID", d.correlationID, "function", fnName,
		"fromOps", fromLen, "toOps", toLen, "accepted", ok)
}

func (d *runDiagnostics) skipCandidate(fnName string, numOps int) {
	d.skips = multierr.Append(d.skips, fmt.Errorf("function %q: validate_subgraph rejected a %d-op candidate", fnName, numOps))
}

func (d *runDiagnostics) flushSkips() {
	if d.skips == nil {
		return
	}
	for _, err := range multierr.Errors(d.skips) {
		klog.Warning(err)
	}
	d.skips = nil
}

func (d *runDiagnostics) noMetadatas(fnName string) {
	klog.Errorf("graph clustering by device [%s]: function %q produced no clusters", d.correlationID, fnName)
}

func (d *runDiagnostics) clustered(fnName string, numOps, numFunctions int) {
	klog.V(1).InfoS(fmt.Sprintf("graph clustering by device: clustered %s ops into %s functions",
		humanize.Comma(int64(numOps)), humanize.Comma(int64(numFunctions))),
		"correlationID", d.correlationID, "function", fnName)
}
