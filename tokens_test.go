// SPDX-License-Identifier: MIT
package calc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gitlab.com/fisherprime/calc/lexer"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name    string
		program string
		wantIDs []lexer.ItemID
		wantErr error
	}{
		{
			name:    "valid",
			program: "* + 1 2 (- 5 3)",
			wantIDs: []lexer.ItemID{
				lexer.ItemOperator, lexer.ItemOperator, lexer.ItemNumber, lexer.ItemNumber,
				lexer.ItemOpen, lexer.ItemOperator, lexer.ItemNumber, lexer.ItemNumber, lexer.ItemClose,
			},
		},
		{
			// Tokens does not validate the grammar.
			name:    "ungrammatical",
			program: ") 1",
			wantIDs: []lexer.ItemID{lexer.ItemClose, lexer.ItemNumber},
		},
		{
			name:    "invalid",
			program: "+ 1 x",
			wantIDs: []lexer.ItemID{lexer.ItemOperator, lexer.ItemNumber},
			wantErr: ErrInvalidToken,
		},
		{
			name:    "empty",
			program: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Tokens(context.Background(), tt.program)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Tokens() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			var gotIDs []lexer.ItemID
			for _, item := range items {
				gotIDs = append(gotIDs, item.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("Tokens() = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestTokens_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Tokens(ctx, "+ 1 2"); !errors.Is(err, context.Canceled) {
		t.Errorf("Tokens() error = %v, want %v", err, context.Canceled)
	}
}
