package sorbet_test

import (
	"testing"

	"github.com/bigH/sorbet/sorbet"
	"github.com/stretchr/testify/assert"
)

func TestLowerBytesCleanDocument(t *testing.T) {
	res, err := sorbet.LowerBytes([]byte(`{
		"node": "Send", "start": 1, "end": 9,
		"receiver": {"node": "LVar", "start": 1, "end": 2, "name": "a"},
		"method": "m"
	}`))
	assert.NoError(t, err)
	assert.False(t, res.HasErrors())
	assert.Empty(t, res.FormatDiagnostics())
	assert.Contains(t, res.ShowTree(), "method = m")
}

func TestDiagnosticsCarryCodeAndMessage(t *testing.T) {
	res, err := sorbet.LowerBytes([]byte(
		`{"node": "Integer", "start": 1, "end": 21, "val": "99999999999999999999"}`,
	))
	assert.NoError(t, err)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.FormatDiagnostics(), "(E004)")
	assert.Contains(t, res.FormatDiagnostics(), "unsupported integer literal: 99999999999999999999")
	assert.Contains(t, res.ShowTree(), "Literal{0}")
}

func TestLowerBytesRejectsMalformedDocument(t *testing.T) {
	_, err := sorbet.LowerBytes([]byte(`{"node": `))
	assert.ErrorContains(t, err, "malformed parse-tree document")
}
