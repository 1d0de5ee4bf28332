// Package builder: sentinel errors.
//
// Only sentinel variables are exposed; callers branch with errors.Is.
// Generators attach context by wrapping with %w and never panic at runtime;
// validation panics are confined to option constructors.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the minimum the requested
// topology needs (Path and Star need 2 nodes, Cycle and Complete need 3
// and 2 respectively).
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNilConstructor indicates Build was handed a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
