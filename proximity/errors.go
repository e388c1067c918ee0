package proximity

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the family sentinel for every fatal input condition:
// unreadable data, a non-square matrix, or an out-of-range node index.
// Specific sentinels below wrap it, so errors.Is(err, ErrMalformedInput)
// matches any of them.
var ErrMalformedInput = errors.New("proximity: malformed input")

// ErrNonSquareMatrix indicates the proximity matrix is not n x n
// (a missing row, or a row of deviating length).
var ErrNonSquareMatrix = fmt.Errorf("%w: matrix is not square", ErrMalformedInput)

// ErrIndexRange indicates an edge-list entry references a node index
// outside [0, n).
var ErrIndexRange = fmt.Errorf("%w: node index out of range", ErrMalformedInput)

// ErrEmptyInput indicates the input contained no data rows at all.
var ErrEmptyInput = fmt.Errorf("%w: empty input", ErrMalformedInput)
