package uttt

import (
	"math/bits"
	"math/rand"
)

// LegalMoves enumerates every cell the side to move may play in. A
// terminal position has no legal continuation.
func (s *State) LegalMoves() *MoveList {
	movelist := NewMoveList()
	if s.outcome.Terminal() {
		return movelist
	}

	free := uint16(0)

	// Free move: union of the empty cells of every open sub-board
	if s.forced == freeMove {
		for sub := 0; sub < 9; sub++ {
			if s.status[sub].Closed() {
				continue
			}

			// The two occupancy bitboards are mutually exclusive
			free = _fullMask &^ (s.occupied[0][sub] | s.occupied[1][sub])
			for free != 0 {
				movelist.Append(MoveInSub(sub, bits.TrailingZeros16(free)))
				free &= free - 1
			}
		}
	} else {
		// Forced: only the designated sub-board, open by invariant
		sub := int(s.forced)
		if s.status[sub].Closed() {
			return movelist
		}

		free = _fullMask &^ (s.occupied[0][sub] | s.occupied[1][sub])
		for free != 0 {
			movelist.Append(MoveInSub(sub, bits.TrailingZeros16(free)))
			free &= free - 1
		}
	}

	return movelist
}

// RandomMove draws one legal cell uniformly at random, the playout
// policy of a simulation-based search. The random source is supplied
// by the caller so each search worker stays deterministic per seed and
// race-free.
func (s *State) RandomMove(r *rand.Rand) (Move, error) {
	movelist := s.LegalMoves()
	if movelist.size == 0 {
		return MoveNone, ErrNoLegalMoves
	}
	return movelist.moves[r.Intn(int(movelist.size))], nil
}
