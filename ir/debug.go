package ir

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomlx/hlocluster/types/shapes"
)

// DebugString renders op as a trace line, expanding attributes (sorted by
// name). Constant-like ops conventionally store their payload under a
// "value" attribute; DebugString renders it through shapes.FormatScalarLiteral
// using the op's first result's dtype, so a float16 constant logs at its
// actual precision rather than the wider Go type backing it.
func (o *Op) DebugString() string {
	var sb strings.Builder
	sb.WriteString(o.String())
	if len(o.Attributes) == 0 {
		return sb.String()
	}
	keys := make([]string, 0, len(o.Attributes))
	for k := range o.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb.WriteString(" {")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		val := o.Attributes[k]
		if k == "value" && len(o.Results) > 0 {
			sb.WriteString(fmt.Sprintf("%s = %s", k, shapes.FormatScalarLiteral(o.Results[0].Shape().DType, val)))
		} else {
			sb.WriteString(fmt.Sprintf("%s = %v", k, val))
		}
	}
	sb.WriteString("}")
	return sb.String()
}

// DebugString renders fn's body, one op per line, in block order.
func (fn *Function) DebugString() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("func %s(", fn.Name))
	for i, in := range fn.Inputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(in.String())
		sb.WriteString(": ")
		sb.WriteString(in.Shape().String())
	}
	sb.WriteString(")\n")
	for _, op := range fn.Body.Ops {
		sb.WriteString("  ")
		sb.WriteString(op.DebugString())
		sb.WriteString("\n")
	}
	if fn.Return != nil {
		sb.WriteString("  ")
		sb.WriteString(fn.Return.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
