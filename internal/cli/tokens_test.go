// SPDX-License-Identifier: MIT
package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/calc"
)

func TestTokensCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "program", "* 3 (+ 2 2)")

	stdout, _, err := execute(t, "", "tokens", path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tokens", []byte(stdout))
}

func TestTokensCommand_Invalid(t *testing.T) {
	stdout, _, err := execute(t, "+ 1 x", "tokens", "-")
	require.Error(t, err)

	assert.ErrorIs(t, err, calc.ErrInvalidToken)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Equal(t, "0\tOPERATOR\t+\n2\tNUMBER\t1\n", stdout, "tokens preceding the error are listed")
}
