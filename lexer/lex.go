// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"fmt"
)

// NextOperation type for the next function to be executed
type NextOperation func(context.Context) NextOperation

// Items starts lexing the source in a goroutine & returns the channel Items are sent on.
//
// The channel is closed after an ItemEOF or ItemError has been sent. The caller must drain the
// channel or cancel ctx to release the goroutine; a cancelled lexer stops sending & its final
// ItemError is dropped when the buffer is full.
func (l *Lexer) Items(ctx context.Context) <-chan Item {
	l.c = make(chan Item, l.cfg.BufferSize)
	go l.Lex(ctx)

	return l.c
}

// Lex lexes the input by executing state functions.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	for stateFunction := l.LexWhitespace; stateFunction != nil; {
		select {
		case <-ctx.Done():
			l.LexCancelled(ctx)
			return
		default:
			stateFunction = stateFunction(ctx)
		}
	}
}

// LexWhitespace discards whitespace & dispatches on the following rune.
func (l *Lexer) LexWhitespace(ctx context.Context) NextOperation {
	l.SkipWhitespace()
	l.Discard()

	if l.EOF() {
		if !l.Emit(ctx, ItemEOF) {
			return l.LexCancelled
		}

		return nil
	}

	var id ItemID

	switch next := l.Peek(); {
	case IsDigit(next):
		return l.LexNumber
	case next == '(':
		id = ItemOpen
	case next == ')':
		id = ItemClose
	case IsOperator(next):
		id = ItemOperator
	default:
		_, _ = l.Next()
		if !l.EmitError(ctx, fmt.Errorf("%w: %q at %d", ErrUnknownToken, next, l.start)) {
			return l.LexCancelled
		}

		return nil
	}

	_, _ = l.Next()
	if !l.Emit(ctx, id) {
		return l.LexCancelled
	}

	return l.LexWhitespace
}

// LexNumber consumes a maximal run of digits.
func (l *Lexer) LexNumber(ctx context.Context) NextOperation {
	l.AcceptWhile(IsDigit)
	if !l.Emit(ctx, ItemNumber) {
		return l.LexCancelled
	}

	return l.LexWhitespace
}

// Discard the source content before the current position.
func (l *Lexer) Discard() { l.start = l.pos }

// LexCancelled reports the context's error if the buffer has room & terminates the scan.
func (l *Lexer) LexCancelled(ctx context.Context) NextOperation {
	select {
	case l.c <- Item{ID: ItemError, Pos: l.start, Err: ctx.Err()}:
	default:
	}

	return nil
}

// Emit sends an Item over the communication channel, reporting false if ctx was cancelled first.
func (l *Lexer) Emit(ctx context.Context, t ItemID) (sent bool) {
	item := Item{
		ID:  t,
		Pos: l.start,
		Val: l.source[l.start:l.pos],
	}

	if l.cfg.Debug {
		l.cfg.Logger.Debugf("lexer Emit: %s", item)
	}

	if sent = l.send(ctx, item); sent {
		l.Discard()
	}

	return
}

// EmitError sends an error over the Lexer's channel, reporting false if ctx was cancelled first.
//
// This terminates the scan process.
func (l *Lexer) EmitError(ctx context.Context, err error) bool {
	return l.send(ctx, Item{
		ID:  ItemError,
		Pos: l.start,
		Err: err,
	})
}

func (l *Lexer) send(ctx context.Context, item Item) bool {
	select {
	case l.c <- item:
		return true
	case <-ctx.Done():
		return false
	}
}
