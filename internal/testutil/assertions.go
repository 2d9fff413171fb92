package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLoopRan checks the log output within a HarnessResult to confirm that
// a specific loop instance completed at least one invocation.
func AssertLoopRan(t *testing.T, result *HarnessResult, nodeType, name string) {
	t.Helper()

	expected := fmt.Sprintf("loop=loop.%s.%s", nodeType, name)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected log output for loop '%s.%s' was not found in logs", nodeType, name,
	)
}
