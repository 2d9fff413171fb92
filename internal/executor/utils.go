package executor

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/loopgridgo/internal/config"
)

// formatValueForLogs converts a value to its loggable representation.
func formatValueForLogs(v any) any {
	if ctyVal, ok := v.(cty.Value); ok {
		converted, err := config.NativeValue(ctyVal)
		if err != nil {
			return fmt.Sprintf("[unloggable cty.Value: %v]", err)
		}
		return converted
	}
	return v
}
