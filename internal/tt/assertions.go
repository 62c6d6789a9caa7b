package tt

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

// -----------------------------------------------------------------------------
// Trace Assertions
// -----------------------------------------------------------------------------

// AssertTrace fails the test when actual differs from expected, printing a unified diff of the
// two traces (one entry per line) so reordered or missing calls are easy to spot.
func AssertTrace(t *testing.T, expected, actual []string, msgAndArgs ...any) bool {
	t.Helper()
	if assert.ObjectsAreEqual(normalize(expected), normalize(actual)) {
		return true
	}
	return assert.Fail(t, "trace mismatch:\n"+TraceDiff(expected, actual), msgAndArgs...)
}

// TraceDiff renders a unified diff between two traces.
func TraceDiff(expected, actual []string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(joinLines(expected)),
		B:        difflib.SplitLines(joinLines(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "(diff failed: " + err.Error() + ")"
	}
	return text
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func normalize(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
