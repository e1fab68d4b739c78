package report

import (
	"bytes"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/msimtools/motorsport-session-manager-go/testsupport/basedata"
)

func TestRenderSummary(t *testing.T) {
	sessions := basedata.SampleSessions()

	var buf bytes.Buffer
	RenderSummary(&buf, sessions, 89.75)

	out := buf.String()
	assert.Assert(t, is.Contains(out, "Ann Dale"))
	assert.Assert(t, is.Contains(out, "Robin Vance"))
	assert.Assert(t, is.Contains(out, "100.00"))
	assert.Assert(t, is.Contains(out, "70.50"))
	assert.Assert(t, is.Contains(out, "100.00 98.00 102.00"))
	assert.Assert(t, is.Contains(out, "Overall"))
	assert.Assert(t, is.Contains(out, "89.75"))
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, nil, 0.0)

	out := buf.String()
	assert.Assert(t, is.Contains(out, "Driver"))
	assert.Assert(t, is.Contains(out, "Overall"))
	assert.Assert(t, is.Contains(out, "0.00"))
	assert.Assert(t, !strings.Contains(out, "Ann Dale"))
}
