package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectingSink(t *testing.T) {
	var sink CollectingSink
	sink.AddError(1, 2, "bad thing: %d", 3)
	sink.AddWarning(4, 5, "heads up")

	require.Len(t, sink.Diagnostics, 2)
	assert.Equal(t, Diagnostic{Severity: SeverityError, Line: 1, Column: 2, Message: "bad thing: 3"}, sink.Diagnostics[0])
	assert.Equal(t, Diagnostic{Severity: SeverityWarning, Line: 4, Column: 5, Message: "heads up"}, sink.Diagnostics[1])

	errs := sink.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "bad thing: 3", errs[0].Message)
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Line: 3, Column: 7, Message: "oops"}
	assert.Equal(t, "3:7: error: oops", d.String())
}
