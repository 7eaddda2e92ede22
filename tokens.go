// SPDX-License-Identifier: MIT
package calc

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/fisherprime/calc/lexer"
)

// ErrInvalidToken is returned by Tokens when the lexer meets an unknown rune.
var ErrInvalidToken = errors.New("invalid token")

// Tokens lexes a program into its Items, excluding the terminating ItemEOF.
//
// Lexing stops at the first invalid token; the Items preceding it are returned alongside the
// error. Tokens does not check that the Items form a valid expression.
func Tokens(ctx context.Context, program string, opts ...lexer.Option) (items []lexer.Item, err error) {
	lexCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	l := lexer.New(program, append([]lexer.Option{lexer.WithLogger(fLogger)}, opts...)...)
	c := l.Items(lexCtx)

	for item := range c {
		switch item.ID {
		case lexer.ItemEOF:
			return
		case lexer.ItemError:
			if errors.Is(item.Err, lexer.ErrUnknownToken) {
				err = fmt.Errorf("%w: %v", ErrInvalidToken, item.Err)
				return
			}
			err = item.Err

			return
		}

		items = append(items, item)
	}

	// Closed without a terminal Item; the lexer was cancelled.
	err = ctx.Err()

	return
}
