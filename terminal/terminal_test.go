package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	var tests = []struct {
		format func(string) string
		label  string
	}{
		{Success, "[SUCCESS]"},
		{Error, "[ERROR]"},
		{Warning, "[WARNING]"},
		{Info, "[INFO]"},
		{Process, "[PROCESS]"},
		{Debug, "[DEBUG]"},
		{DryRun, "[DRY-RUN]"},
	}

	for _, test := range tests {
		got := test.format("something happened")

		assert.Contains(t, got, test.label)
		assert.Contains(t, got, "something happened")
	}
}

func TestDimAndHighlight(t *testing.T) {
	assert.Contains(t, Dim("git init -q"), "git init -q")
	assert.Contains(t, Highlight("demo"), "demo")
}
