package uttt

import "errors"

// The engine has exactly two failure modes. Both are signalled, never
// panicked: a search engine probing an already-pruned move list gets
// its state back untouched.
var (
	// ErrIllegalMove is returned by ApplyMove when the target cell is
	// occupied, out of range, or violates the forced sub-board rule.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoLegalMoves is returned by RandomMove when the legal set is
	// empty. Well-behaved callers check Outcome first, so hitting this
	// is a caller-logic error, not a game event.
	ErrNoLegalMoves = errors.New("no legal moves")
)
