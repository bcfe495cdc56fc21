package cluster

import (
	"github.com/gomlx/hlocluster/ir"
	"github.com/gomlx/hlocluster/types/shapes"
)

// CallKind is the operator kind of a synthesized call to a partition
// function. CalleeAttr names the attribute holding the callee's final name.
const (
	CallKind   = "func.call"
	CalleeAttr = "callee"
)

// buildSynthesizedFunction materializes metadata as a detached function: one
// input per metadata.Inputs entry, the cluster's ops cloned in order, and a
// return of metadata.Results resolved through the clone mapping.
func buildSynthesizedFunction(md *FunctionMetadata, opts *Options) *ir.Function {
	fn := ir.NewDetachedFunction(md.OriginalName + "_" + md.DeviceAttr)
	fn.Attributes[opts.attrName] = md.DeviceAttr
	fn.Attributes[md.AnchorName] = ir.Unit{}

	mapper := ir.NewMapper()
	for _, in := range md.Inputs {
		arg := fn.AddInput(in.Shape())
		mapper.Map(in, arg)
	}
	for _, op := range md.Ops {
		ir.CloneOp(op, fn.Body, mapper)
	}
	fn.SetReturn(mapper.LookupAll(md.Results)...)
	return fn
}

// walkOps visits every op in fn.Body, recursing into nested regions, and
// finally fn.Return (if any). Used to find and rewrite operand uses anywhere
// in the function.
func walkOps(fn *ir.Function, visit func(*ir.Op)) {
	var walk func(op *ir.Op)
	walk = func(op *ir.Op) {
		visit(op)
		for _, region := range op.Regions {
			for _, block := range region.Blocks {
				for _, inner := range block.Ops {
					walk(inner)
				}
			}
		}
	}
	for _, op := range fn.Body.Ops {
		walk(op)
	}
	if fn.Return != nil {
		visit(fn.Return)
	}
}

func replaceAllUsesWith(fn *ir.Function, old, updated *ir.Value) {
	walkOps(fn, func(op *ir.Op) {
		for i, v := range op.Operands {
			if v == old {
				op.Operands[i] = updated
			}
		}
	})
}

// replaceAllUsesExceptReturn rewrites every use of old to updated outside of
// fn.Return's own operand list — the return's slots are rewired separately,
// one at a time, by the caller (dup_outputs policy, §4.4).
func replaceAllUsesExceptReturn(fn *ir.Function, old, updated *ir.Value) {
	var walk func(op *ir.Op)
	walk = func(op *ir.Op) {
		for i, v := range op.Operands {
			if v == old {
				op.Operands[i] = updated
			}
		}
		for _, region := range op.Regions {
			for _, block := range region.Blocks {
				for _, inner := range block.Ops {
					walk(inner)
				}
			}
		}
	}
	for _, op := range fn.Body.Ops {
		walk(op)
	}
}

// returnSlotCursor hands out, in ascending index order, the positions in
// fn.Return's original operand list that referenced v — one call per
// duplicated occurrence of v in a cluster's outputs (dup_outputs, §4.4).
type returnSlotCursor struct {
	slots  map[*ir.Value][]int
	cursor map[*ir.Value]int
}

func newReturnSlotCursor(fn *ir.Function) *returnSlotCursor {
	c := &returnSlotCursor{slots: make(map[*ir.Value][]int), cursor: make(map[*ir.Value]int)}
	if fn.Return != nil {
		for i, v := range fn.Return.Operands {
			c.slots[v] = append(c.slots[v], i)
		}
	}
	return c
}

func (c *returnSlotCursor) next(v *ir.Value) (int, bool) {
	slots := c.slots[v]
	i := c.cursor[v]
	if i >= len(slots) {
		return 0, false
	}
	c.cursor[v] = i + 1
	return slots[i], true
}

// Synthesize implements §4.4: for each metadata, in order, it builds and
// inserts the callee function, places a call to it right after the cluster's
// last op in fn's body, rewires every use of the cluster's original outputs to the call's results,
// and finally erases the original ops (per metadata, in reverse order, after
// every metadata has been synthesized and wired — §7's "no partial state").
//
// Callee insertion uses a running cursor starting just after fn itself, so
// repeated calls for the same original function land immediately after one
// another, in metadata order (mirroring metadata.insertionPoint++).
func Synthesize(mod *ir.Module, fn *ir.Function, metadatas []*FunctionMetadata, opts *Options) {
	insertPos := mod.IndexOfFunction(fn) + 1
	callMap := make(map[*ir.Value]*ir.Value)
	lookup := func(v *ir.Value) *ir.Value {
		if nv, ok := callMap[v]; ok {
			return nv
		}
		return v
	}

	retCursor := newReturnSlotCursor(fn)

	for _, md := range metadatas {
		md.InsertionPoint = insertPos
		callee := buildSynthesizedFunction(md, opts)
		finalName, nextPos := mod.InsertFunctionAt(insertPos, callee)
		insertPos = nextPos
		md.GeneratedFuncName = finalName
		md.Func = callee

		operands := make([]*ir.Value, len(md.Inputs))
		for i, v := range md.Inputs {
			operands[i] = lookup(v)
		}
		resultShapes := make([]shapes.Shape, len(md.Results))
		for i, v := range md.Results {
			resultShapes[i] = v.Shape()
		}
		callOp := fn.AddOp(CallKind, operands, resultShapes, map[string]any{CalleeAttr: finalName})
		if len(md.Ops) > 0 {
			// Place the call where the cluster used to end, not at the
			// body's tail: a surviving op between clusters (excluded, or
			// part of a candidate dropped by enable_multi_graph) may
			// consume one of this cluster's outputs, and its operand gets
			// rewired to callOp's result below. The original ops are still
			// in the block at this point (erasure happens after every
			// metadata is synthesized), so anchoring on the cluster's last
			// op keeps every such surviving use correctly ordered after
			// its new definition.
			fn.Body.MoveAfter(callOp, md.Ops[len(md.Ops)-1])
		}

		for i, originalValue := range md.Results {
			newValue := callOp.Results[i]
			if opts.dupOutputs {
				replaceAllUsesExceptReturn(fn, originalValue, newValue)
				if idx, ok := retCursor.next(originalValue); ok {
					fn.Return.Operands[idx] = newValue
				}
			} else {
				replaceAllUsesWith(fn, originalValue, newValue)
			}
			callMap[originalValue] = newValue
		}
	}

	for _, md := range metadatas {
		for i := len(md.Ops) - 1; i >= 0; i-- {
			fn.Body.Remove(md.Ops[i])
		}
	}
}
