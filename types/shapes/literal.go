package shapes

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/x448/float16"
)

// FormatScalarLiteral renders a scalar attribute value for trace logging,
// the way the engine's debug dump annotates constant-like operations.
//
// Float16-typed values are commonly stored as float32 in Go (there being no
// native float16 Go type); FormatScalarLiteral converts through
// github.com/x448/float16 so the logged value reflects the precision the op
// actually carries, rather than the wider Go type used to hold it.
func FormatScalarLiteral(dtype dtypes.DType, value any) string {
	if dtype == dtypes.Float16 {
		if f32, ok := value.(float32); ok {
			return float16.Fromfloat32(f32).String()
		}
	}
	return fmt.Sprintf("%v", value)
}
