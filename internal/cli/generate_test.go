// SPDX-License-Identifier: MIT
package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/calc"
)

func TestGenerateCommand(t *testing.T) {
	first, _, err := execute(t, "", "generate", "--seed", "9", "--depth", "5")
	require.NoError(t, err)

	second, _, err := execute(t, "", "generate", "--seed", "9", "--depth", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second, "the same seed generates the same program")

	_, err = calc.Evaluate(first)
	assert.NoError(t, err)
}

func TestGenerateCommand_Malformed(t *testing.T) {
	output := filepath.Join(t.TempDir(), "input.err")

	stdout, _, err := execute(t, "", "generate", "--seed", "3", "--malformed", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "\n"))

	_, err = calc.Evaluate(string(data))
	assert.Error(t, err)
}

func TestGenerateCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "", "generate", "-o", filepath.Join(t.TempDir(), "missing", "out"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}
