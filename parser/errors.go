package parser

import (
	"fmt"

	"github.com/readysetmark/wealth-pulse/ast"
)

// ParseError reports input that does not match the price database grammar at
// some position: a wrong literal, missing mandatory whitespace, malformed date
// digits, an unterminated quoted symbol, or an empty symbol.
type ParseError struct {
	Pos     ast.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// GetPosition returns the position the parse failed at.
func (e *ParseError) GetPosition() ast.Position {
	return e.Pos
}

// SemanticError reports input that matched the grammar's lexical shape but
// failed a downstream check: an invalid calendar date, or a malformed decimal
// literal that survived lexical quantity matching.
type SemanticError struct {
	Pos     ast.Position
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// GetPosition returns the position of the offending token.
func (e *SemanticError) GetPosition() ast.Position {
	return e.Pos
}

func newStructuralErrorf(pos ast.Position, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func newSemanticErrorf(pos ast.Position, format string, args ...interface{}) error {
	return &SemanticError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
