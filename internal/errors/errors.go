// Package errors provides sentinel errors and error types for the chessduel
// engine. It defines common error conditions and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chessduel-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates the piece's movement rule.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates a move from a square with no piece on it.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrWrongOwner indicates a move of the opponent's piece.
	ErrWrongOwner = errors.New("piece belongs to the other side")

	// ErrOffBoard indicates a coordinate outside the 8x8 play area.
	ErrOffBoard = errors.New("coordinate off the board")

	// ErrOutOfTurn indicates a submission from the side not to move.
	ErrOutOfTurn = errors.New("not this side's turn")

	// ErrGameRunning indicates a run was started while one is in progress.
	ErrGameRunning = errors.New("game already running")

	// ErrGameNotRunning indicates an operation that needs a running game.
	ErrGameNotRunning = errors.New("game not running")

	// ErrUnknownSide indicates a side value other than Black or White.
	ErrUnknownSide = errors.New("unknown side")

	// ErrParseFailure indicates a command line that could not be understood.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPoolClosed indicates a submission to a dispatch pool that has stopped.
	ErrPoolClosed = errors.New("dispatch pool closed")
)

// MoveError wraps a rejected move with the side, squares, and piece
// involved. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err   error            // The underlying error
	Side  chess.Side       // Side that submitted the move
	Src   chess.Coordinate // Source square
	Dest  chess.Coordinate // Destination square
	Piece chess.Piece      // Piece on the source square (zero if none)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	parts := []string{
		e.Side.String(),
		fmt.Sprintf("%s-%s", e.Src, e.Dest),
	}
	if !e.Piece.IsEmpty() {
		parts = append(parts, e.Piece.String())
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with input position context.
// It's used for console commands and FEN strings.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" col %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
