// SPDX-License-Identifier: MIT
package calc

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/fisherprime/calc/lexer"
)

// Strategy selects how a failure propagates out of the recursive descent.
//
// Both strategies accept the same programs & report the same errors; they exist to compare the
// cost of the two propagation styles.
type Strategy int

// Supported strategies.
const (
	// StrategyResults returns errors from every grammar rule.
	StrategyResults Strategy = iota
	// StrategyPanics aborts with a panic recovered at the [Parser.Evaluate] boundary.
	StrategyPanics
)

// ErrUnknownStrategy is returned by ParseStrategy.
var ErrUnknownStrategy = errors.New("unknown strategy")

var strategyNames = [...]string{
	StrategyResults: "results",
	StrategyPanics:  "panics",
}

// ParseStrategy obtains a Strategy from its name; an empty name yields StrategyResults.
func ParseStrategy(name string) (s Strategy, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", strategyNames[StrategyResults]:
		s = StrategyResults
	case strategyNames[StrategyPanics]:
		s = StrategyPanics
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return
}

// String is the fmt.Stringer implementation for Strategy.
func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// resultsEvaluator propagates failures as return values.
type resultsEvaluator struct {
	l *lexer.Lexer
}

func evaluateResults(l *lexer.Lexer) (int64, error) {
	e := resultsEvaluator{l: l}
	return e.expression()
}

func (e *resultsEvaluator) expression() (value int64, err error) {
	e.l.SkipWhitespace()

	switch next := e.l.Peek(); {
	case next == '(':
		_, _ = e.l.Next()
		e.l.SkipWhitespace()

		if value, err = e.expression(); err != nil {
			return
		}

		e.l.SkipWhitespace()
		err = e.expectRune(')')
	case lexer.IsDigit(next):
		value = number(e.l)
	default:
		value, err = e.innerExpression()
	}

	return
}

func (e *resultsEvaluator) innerExpression() (value int64, err error) {
	op, err := e.operation()
	if err != nil {
		return
	}

	left, err := e.expression()
	if err != nil {
		return
	}

	right, err := e.expression()
	if err != nil {
		return
	}

	return op.Apply(left, right)
}

func (e *resultsEvaluator) operation() (op Operator, err error) {
	r, err := e.l.Next()
	if err != nil {
		return
	}

	return ParseOperator(r)
}

func (e *resultsEvaluator) expectRune(want rune) (err error) {
	r, err := e.l.Next()
	if err != nil {
		return
	}

	if r != want {
		err = ErrInvalidCharacter
	}

	return
}

// abort carries a failure through a panic.
type abort struct{ err error }

// panicsEvaluator aborts on the first failure with an abort panic.
type panicsEvaluator struct {
	l *lexer.Lexer
}

// evaluatePanics recovers abort panics into errors; any other panic is re-raised.
func evaluatePanics(l *lexer.Lexer) (value int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}

			value, err = 0, a.err
		}
	}()

	e := panicsEvaluator{l: l}
	value = e.expression()

	return
}

func (e *panicsEvaluator) fail(err error) { panic(abort{err: err}) }

func (e *panicsEvaluator) expression() int64 {
	e.l.SkipWhitespace()

	switch next := e.l.Peek(); {
	case next == '(':
		_, _ = e.l.Next()
		e.l.SkipWhitespace()
		value := e.expression()
		e.l.SkipWhitespace()
		e.expectRune(')')

		return value
	case lexer.IsDigit(next):
		return number(e.l)
	default:
		return e.innerExpression()
	}
}

func (e *panicsEvaluator) innerExpression() int64 {
	op := e.operation()
	left := e.expression()
	right := e.expression()

	value, err := op.Apply(left, right)
	if err != nil {
		e.fail(err)
	}

	return value
}

func (e *panicsEvaluator) operation() Operator {
	op, err := ParseOperator(e.next())
	if err != nil {
		e.fail(err)
	}

	return op
}

func (e *panicsEvaluator) expectRune(want rune) {
	if e.next() != want {
		e.fail(ErrInvalidCharacter)
	}
}

func (e *panicsEvaluator) next() rune {
	r, err := e.l.Next()
	if err != nil {
		e.fail(err)
	}

	return r
}

// number consumes a maximal run of digits.
//
// Accumulation wraps on overflow.
func number(l *lexer.Lexer) (value int64) {
	for lexer.IsDigit(l.Peek()) {
		r, _ := l.Next()
		value = value*10 + int64(r-'0')
	}

	return
}
