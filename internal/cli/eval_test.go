// SPDX-License-Identifier: MIT
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/calc"
)

func TestEvalCommand(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid", "- (* 10 10) (/ 9 3)\n")
	invalid := writeFile(t, dir, "invalid", "+ 1 % 2 3")

	tests := []struct {
		name     string
		stdin    string
		args     []string
		want     string
		wantErr  error
		wantCode int
	}{
		{name: "file", args: []string{"eval", valid}, want: "97\n"},
		{name: "panics strategy", args: []string{"eval", "--strategy", "panics", valid}, want: "97\n"},
		{name: "stdin", stdin: "* 3 (+ 2 2)", args: []string{"eval"}, want: "12\n"},
		{name: "stdin dash", stdin: "/ 7 2", args: []string{"eval", "-"}, want: "3\n"},
		{name: "invalid", args: []string{"eval", invalid}, want: "0\n"},
		{name: "invalid strict", args: []string{"eval", "--strict", invalid}, wantErr: calc.ErrInvalidOperator, wantCode: ExitFailure},
		{name: "eof strict", stdin: "+ 1", args: []string{"eval", "--strict"}, wantErr: calc.ErrUnexpectedEOF, wantCode: ExitFailure},
		{name: "unknown strategy", args: []string{"eval", "--strategy", "exceptions", valid}, wantErr: calc.ErrUnknownStrategy, wantCode: ExitFailure},
		{name: "missing file", args: []string{"eval", dir + "/missing"}, wantCode: ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if tt.wantCode != ExitSuccess {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, ExitCode(err))
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}
