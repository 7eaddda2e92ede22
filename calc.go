// SPDX-License-Identifier: MIT

// Package calc evaluates arithmetic expressions written in prefix notation.
//
// A program is a single expression:
//
//	expression := '(' expression ')' | digit+ | operation expression expression
//	operation  := '+' | '-' | '*' | '/'
//
// Whitespace is skipped before an expression & inside parentheses. The expression is evaluated
// while it is parsed, no syntax tree is built.
package calc

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/calc/lexer"
)

type (
	// Config defines configuration options for a [Parser].
	Config struct {
		// Logger for [Parser] messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// Strategy selects how errors propagate through the grammar rules.
		Strategy Strategy
	}

	// Parser evaluates prefix notation programs.
	//
	// A Parser holds no per-call state; each evaluation owns its cursor, so a Parser is safe for
	// concurrent use.
	Parser struct {
		cfg *Config
	}

	// Option defines the Parser functional option type.
	Option func(*Parser)

	// failure is dumped to debug logs when an evaluation is aborted.
	failure struct {
		Strategy  Strategy
		Offset    int
		Remaining string
	}
)

const remainingDumpLimit = 32

// Errors encountered when evaluating a program.
var (
	ErrInvalidOperator  = errors.New("invalid operator")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrUnexpectedEOF    = lexer.ErrUnexpectedEOF
	ErrDivisionByZero   = errors.New("division by zero")

	ErrPanicked = errors.New("recovery from panic")
)

var (
	fLogger logrus.FieldLogger = logrus.New()

	defParser = New()
)

// SetLogger configures a logrus.FieldLogger for the package.
//
// Parsers created afterwards, including the package-level default, use this logger unless
// configured otherwise. SetLogger is not safe for concurrent use with the package-level Execute &
// Evaluate; call it during initialisation, before any evaluation starts.
func SetLogger(l logrus.FieldLogger) {
	fLogger = l
	defParser = New()
}

// DefConfig obtains the package's [Parser] default options.
func DefConfig() *Config {
	return &Config{
		Logger:   fLogger,
		Strategy: StrategyResults,
	}
}

// New instantiates a [Parser].
func New(options ...Option) *Parser {
	p := &Parser{cfg: DefConfig()}

	for _, opt := range options {
		opt(p)
	}

	if p.cfg.Logger == nil {
		p.cfg.Logger = fLogger
	}

	return p
}

// WithConfig configures the [Parser] [Config].
//
// The Config is shared, not copied; apply it before the other options.
func WithConfig(cfg *Config) Option { return func(p *Parser) { p.cfg = cfg } }

// WithStrategy configures the error propagation [Strategy].
func WithStrategy(s Strategy) Option { return func(p *Parser) { p.cfg.Strategy = s } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Parser) { p.cfg.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(p *Parser) { p.cfg.Debug = debug } }

// Config retrieves the [Parser]'s Config.
func (p *Parser) Config() *Config { return p.cfg }

// Execute evaluates a program, returning 0 on failure.
//
// A malformed program is indistinguishable from one evaluating to 0; use [Parser.Evaluate] when
// the failure matters.
func (p *Parser) Execute(program string) int64 {
	value, err := p.Evaluate(program)
	if err != nil {
		return 0
	}

	return value
}

// Evaluate parses & evaluates a program.
//
// The first failure aborts the evaluation; the returned error wraps one of ErrInvalidOperator,
// ErrInvalidCharacter, ErrUnexpectedEOF, ErrDivisionByZero or ErrPanicked. Input following a
// complete expression is not read. The value is 0 whenever err is set.
func (p *Parser) Evaluate(program string) (value int64, err error) {
	switch p.cfg.Strategy {
	case StrategyPanics:
		return p.evaluateWith(lexer.New(program), evaluatePanics)
	default:
		return p.evaluateWith(lexer.New(program), evaluateResults)
	}
}

// evaluateWith runs an evaluation function, converting stray panics to ErrPanicked.
func (p *Parser) evaluateWith(l *lexer.Lexer, evaluate func(*lexer.Lexer) (int64, error)) (value int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, err = 0, fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err == nil {
			return
		}

		value = 0
		if p.cfg.Debug {
			p.cfg.Logger.WithError(err).Debugf("evaluation aborted: %s", spew.Sdump(p.failure(l)))
		}
	}()

	return evaluate(l)
}

func (p *Parser) failure(l *lexer.Lexer) failure {
	remaining := l.Source()[l.Pos():]
	if len(remaining) > remainingDumpLimit {
		remaining = remaining[:remainingDumpLimit]
	}

	return failure{
		Strategy:  p.cfg.Strategy,
		Offset:    l.Pos(),
		Remaining: remaining,
	}
}

// Execute evaluates a program with the default [Parser], returning 0 on failure.
func Execute(program string) int64 { return defParser.Execute(program) }

// Evaluate parses & evaluates a program with the default [Parser].
func Evaluate(program string) (int64, error) { return defParser.Evaluate(program) }
