package board

import "errors"

// Sentinel errors returned by the board package. Callers should use
// errors.Is to check for these, since the concrete error usually wraps
// one of them with additional context (Unmake returns ErrNoHistory as is).
var (
	// ErrBadFen is returned when a FEN string cannot be parsed.
	ErrBadFen = errors.New("board: malformed FEN")

	// ErrBadMove is returned when a UCI move, square or SAN string cannot
	// be parsed, or when a SAN string matches no legal move in the given
	// position. ParseMove does not check a UCI move for legality.
	ErrBadMove = errors.New("board: malformed or illegal move")

	// ErrNoHistory is returned by Unmake when the position's move
	// history is empty.
	ErrNoHistory = errors.New("board: no history to unmake")
)
