// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the parser package.
//
// Error policy:
//   - Only sentinel variables are exposed at package level.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     callers attach line/byte context with %w via parserErrorf.
package parser

import (
	"errors"
	"fmt"
)

// ErrTooFewBrackets indicates a line has fewer than two structural "{"/"}"
// characters and therefore cannot contain even an empty-label leaf.
var ErrTooFewBrackets = errors.New("parser: fewer than two brackets")

// ErrUnmatchedOpen indicates an opening "{" was never closed by a
// corresponding "}" before the line ended. It is also returned for stray
// text found outside a label position (for example after the root closes).
var ErrUnmatchedOpen = errors.New("parser: unmatched opening brace")

// ErrUnexpectedClose indicates a "}" was seen while the node stack was
// already empty (more closes than opens).
var ErrUnexpectedClose = errors.New("parser: closing brace with empty node stack")

// ErrNonASCII indicates the line contains a byte outside the ASCII range.
var ErrNonASCII = errors.New("parser: input is not ASCII")

// ErrLineTooLong indicates a line exceeded the configured maximum length.
var ErrLineTooLong = errors.New("parser: line exceeds maximum length")

// parserErrorf wraps a sentinel error with line context, preserving it
// for errors.Is while adding a human-readable location.
func parserErrorf(line int, sentinel error) error {
	return fmt.Errorf("parser: line %d: %w", line, sentinel)
}
