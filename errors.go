package chesscore

import "errors"

// Error taxonomy for the core's boundary operations. None of these are ever
// panicked on; they surface as ordinary returned errors and leave state
// unchanged.
var (
	// ErrMalformedFEN is returned by NewPositionFromFEN when the placement
	// field lacks 8 ranks, uses an unknown piece letter, or a rank's file
	// count does not sum to 8.
	ErrMalformedFEN = errors.New("chesscore: malformed FEN")

	// ErrIllegalSameColorCapture is returned by Position.MakeMove when the
	// destination square holds a piece of the mover's own color.
	ErrIllegalSameColorCapture = errors.New("chesscore: illegal same-color capture")

	// ErrUndoUnderflow is returned by Position.UndoMove when the history
	// stack is empty.
	ErrUndoUnderflow = errors.New("chesscore: undo with empty history")
)
