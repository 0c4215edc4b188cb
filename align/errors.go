package align

import "errors"

// ErrEmptySequence is returned when either input sequence has zero length.
var ErrEmptySequence = errors.New("align: empty sequence")

// ErrNilMatrix is returned when no substitution matrix is supplied.
var ErrNilMatrix = errors.New("align: nil matrix")

// ErrInvalidGapPenalty is returned when open or extend is negative.
var ErrInvalidGapPenalty = errors.New("align: gap open/extend penalties must be non-negative")
