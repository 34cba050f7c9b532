package uttt

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sentinel for the forced sub-board pointer: any open sub-board is legal
const freeMove int8 = -1

// Sub-board index of the centre square, where every game opens
const centerSub int8 = 4

// State is one immutable node of the game tree. Deriving a child copies
// the whole struct (the arrays are Go values), so sibling states held
// by a search engine never share mutable memory. After construction a
// state is read-only and safe to evaluate from any goroutine.
type State struct {
	board    [81]Player   // 9x9 cells, row-major, index = row*9+col
	occupied [2][9]uint16 // per-player cell bitboards, [playerIdx][sub]
	status   [9]SubStatus // resolved state of each sub-board
	forced   int8         // sub-board the next move must land in, or freeMove
	turn     Player       // side to move
	lastMove Move         // MoveNone for the root
	outcome  Outcome      // cached, statuses never change after construction
	parent   *State       // non-owning provenance edge, nil for the root
}

// NewState returns the root state: empty board, cross to move, forced
// into the centre sub-board.
func NewState() *State {
	return &State{
		forced:   centerSub,
		turn:     PlayerX,
		lastMove: MoveNone,
		outcome:  OutcomeOngoing,
	}
}

// occupied[0] holds cross cells, occupied[1] circle cells
func playerIndex(p Player) int {
	if p == PlayerO {
		return 1
	}
	return 0
}

// ApplyMove derives the child state reached by playing m. The receiver
// is never touched: on any precondition failure the returned error
// wraps ErrIllegalMove and no state is produced.
func (s *State) ApplyMove(m Move) (*State, error) {
	if s.outcome.Terminal() {
		return nil, fmt.Errorf("%w: game is over (%s)", ErrIllegalMove, s.outcome)
	}
	if !m.Valid() {
		return nil, fmt.Errorf("%w: index %d outside [0,80]", ErrIllegalMove, int(m))
	}
	if s.board[m] != PlayerNone {
		return nil, fmt.Errorf("%w: cell %s is occupied", ErrIllegalMove, m.Name())
	}

	sub := m.Sub()
	if s.forced != freeMove {
		if int(s.forced) != sub {
			return nil, fmt.Errorf("%w: move %s outside forced sub-board %d",
				ErrIllegalMove, m.Name(), s.forced)
		}
		if s.status[s.forced].Closed() {
			// Unreachable through ApplyMove itself; a hand-built state
			// can still carry it, so refuse rather than play into a
			// closed sub-board.
			log.Warn().
				Int8("forced", s.forced).
				Msg("forced sub-board is closed, rejecting move")
			return nil, fmt.Errorf("%w: forced sub-board %d is closed",
				ErrIllegalMove, s.forced)
		}
	} else if s.status[sub].Closed() {
		// A won sub-board still has empty cells, they are never re-entered
		return nil, fmt.Errorf("%w: sub-board %d is closed", ErrIllegalMove, sub)
	}

	child := *s
	child.parent = s
	child.lastMove = m
	child.board[m] = s.turn
	child.occupied[playerIndex(s.turn)][sub] |= 1 << m.Cell()
	child.status[sub] = subBoardStatus(child.occupied[0][sub], child.occupied[1][sub])

	// The cell played within its sub-board names the sub-board forced
	// next; if that one is closed the opponent moves freely.
	if next := int8(m.Cell()); child.status[next].Closed() {
		child.forced = freeMove
	} else {
		child.forced = next
	}

	child.turn = s.turn.Other()
	child.outcome = computeOutcome(&child.status)
	return &child, nil
}

// Getters

// Side to move
func (s *State) Turn() Player {
	return s.turn
}

// The move that produced this state, MoveNone for the root
func (s *State) LastMove() Move {
	return s.lastMove
}

// Parent returns the state this one was derived from. Read-only
// provenance, nil for the root.
func (s *State) Parent() *State {
	return s.parent
}

// Outcome of the main board, evaluated over the 9 sub-board statuses
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Board returns a snapshot of all 81 cells (array copy, row-major).
func (s *State) Board() [81]Player {
	return s.board
}

// At returns the cell value at the given move index.
func (s *State) At(m Move) Player {
	if !m.Valid() {
		return PlayerNone
	}
	return s.board[m]
}

// Cell returns the value at 9x9 board coordinates.
func (s *State) Cell(row, col int) Player {
	return s.At(MoveAt(row, col))
}

// SubStatuses returns a snapshot of the 9 sub-board statuses.
func (s *State) SubStatuses() [9]SubStatus {
	return s.status
}

// ForcedSubBoard returns the (I,J) index of the sub-board the next move
// must land in, or (-1,-1) when any open sub-board is legal.
func (s *State) ForcedSubBoard() (int8, int8) {
	if s.forced == freeMove {
		return -1, -1
	}
	return s.forced / 3, s.forced % 3
}

// StatusSnapshot packs the 9 sub-board statuses and the forced pointer
// coordinates into 11 bytes, the compact form an external collaborator
// serializes alongside the board.
func (s *State) StatusSnapshot() [11]int8 {
	var snap [11]int8
	for i := 0; i < 9; i++ {
		snap[i] = int8(s.status[i])
	}
	snap[9], snap[10] = s.ForcedSubBoard()
	return snap
}

// Hash returns an FNV-1a digest of the position: board, side to move
// and forced pointer. Meant for transposition tables and tree
// re-rooting on the search side.
func (s *State) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 0, 83)
	for i := 0; i < 81; i++ {
		buf = append(buf, byte(s.board[i]))
	}
	buf = append(buf, byte(s.turn), byte(s.forced))
	h.Write(buf)
	return StateHash(h.Sum64())
}

// String renders the 9x9 grid with sub-board dividers, for logs and
// debugging.
func (s *State) String() string {
	builder := strings.Builder{}
	for row := 0; row < 9; row++ {
		builder.WriteByte('|')
		for col := 0; col < 9; col++ {
			builder.WriteRune(s.board[row*9+col].Rune())
			builder.WriteByte('|')
			if col == 2 || col == 5 {
				builder.WriteString("  |")
			}
		}
		builder.WriteByte('\n')
		if row == 2 || row == 5 {
			builder.WriteString(strings.Repeat("=", 29))
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
