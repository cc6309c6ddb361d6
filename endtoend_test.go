package main

import (
	"embed"
	"strings"
	"testing"

	"github.com/bigH/sorbet/sorbet"
	"github.com/stretchr/testify/assert"
)

// embeds the test folder
//
//go:embed test
var testSet embed.FS

// Each test/*.json document is lowered end to end; the sibling .exp
// file lists substrings that must appear in the rendered tree, one
// per line. A line of `!has-diagnostics` asserts the document also
// produced at least one diagnostic.
func TestLoweringEndToEnd(t *testing.T) {
	files, err := testSet.ReadDir("test")
	assert.NoError(t, err)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		t.Run(f.Name(), func(t *testing.T) {
			data, err := testSet.ReadFile("test/" + f.Name())
			assert.NoError(t, err)
			res, err := sorbet.LowerBytes(data)
			if err != nil {
				t.Fatalf("could not lower %s: %v", f.Name(), err)
			}

			expName := "test/" + strings.TrimSuffix(f.Name(), ".json") + ".exp"
			expected, err := testSet.ReadFile(expName)
			assert.NoError(t, err, "every document needs a matching .exp file")

			rendered := res.ShowTree()
			for _, line := range strings.Split(string(expected), "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "!has-diagnostics" {
					assert.True(t, res.HasErrors(), "expected diagnostics, got none")
					continue
				}
				assert.Contains(t, rendered, line)
			}
		})
	}
}
