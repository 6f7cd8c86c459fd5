package parser

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every *ParseError unwraps to one of them.
var (
	// ErrUnknownSymbol is returned when a line starts with a character
	// that is not valid in the current section.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrUnexpectedEndOfLine is returned when a required marker is missing
	// before the end of the line, or a definition section meets a blank line.
	ErrUnexpectedEndOfLine = errors.New("unexpected end of line")

	// ErrUnknownAttribute is returned when a type directive names neither
	// question nor definition.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// ParseError reports where parsing stopped
type ParseError struct {
	Kind   error // One of the sentinel errors above
	Line   int   // 0-based line number
	Symbol rune  // Offending character, set for ErrUnknownSymbol only
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnknownSymbol:
		return fmt.Sprintf("Unknown symbol: %c on line %d", e.Symbol, e.Line)
	case ErrUnexpectedEndOfLine:
		return fmt.Sprintf("Unexpected end of line at line %d", e.Line)
	case ErrUnknownAttribute:
		return fmt.Sprintf("Unknown attribute encountered on line %d", e.Line)
	default:
		return fmt.Sprintf("parse error on line %d", e.Line)
	}
}

// Unwrap lets callers match the kind with errors.Is
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func unknownSymbol(line int, symbol rune) *ParseError {
	return &ParseError{Kind: ErrUnknownSymbol, Line: line, Symbol: symbol}
}

func unexpectedEOL(line int) *ParseError {
	return &ParseError{Kind: ErrUnexpectedEndOfLine, Line: line}
}

func unknownAttribute(line int) *ParseError {
	return &ParseError{Kind: ErrUnknownAttribute, Line: line}
}
