package uttt

import (
	"fmt"
	"strconv"
	"strings"
)

// A Move is the linear index of the target cell on the 9x9 board:
// row*9+col, in [0,80]. The decimal text of that index is also the
// move's canonical name, used for logging and replay.
type Move uint8

// MoveNone marks "no move", e.g. the last move of the root state
const MoveNone Move = 255

// Create a move from 9x9 board coordinates
func MoveAt(row, col int) Move {
	return Move(row*9 + col)
}

// Create a move from a sub-board index (0..8) and a cell index within
// that sub-board (0..8, row-major)
func MoveInSub(sub, cell int) Move {
	return MoveAt((sub/3)*3+cell/3, (sub%3)*3+cell%3)
}

func (m Move) Valid() bool {
	return m <= 80
}

func (m Move) Row() int {
	return int(m) / 9
}

func (m Move) Col() int {
	return int(m) % 9
}

// Sub is the index of the sub-board the move lands in, I*3+J
func (m Move) Sub() int {
	return (m.Row()/3)*3 + m.Col()/3
}

// Cell is the move's position within its sub-board (row-major, 0..8).
// By the forcing rule this is also the sub-board index the opponent
// is sent to next.
func (m Move) Cell() int {
	return (m.Row()%3)*3 + m.Col()%3
}

// Name returns the move's canonical decimal name, "0".."80".
func (m Move) Name() string {
	return strconv.Itoa(int(m))
}

// MoveFromName parses a canonical decimal move name back to a Move.
func MoveFromName(name string) (Move, error) {
	idx, err := strconv.Atoi(name)
	if err != nil {
		return MoveNone, fmt.Errorf("move name %q: %w", name, err)
	}
	if idx < 0 || idx > 80 {
		return MoveNone, fmt.Errorf("move name %q: index out of range [0,80]", name)
	}
	return Move(idx), nil
}

// Human-readable form for logs, e.g. move 40 -> "40(r4c4)"
func (m Move) String() string {
	if !m.Valid() {
		return "(none)"
	}
	return fmt.Sprintf("%d(r%dc%d)", int(m), m.Row(), m.Col())
}

// MoveList is a fixed-capacity list of moves. A position has at most
// 81 legal moves, so the backing array never reallocates.
type MoveList struct {
	moves [81]Move
	size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

// Reset the list, simply sets the size to 0
func (ml *MoveList) Clear() {
	ml.size = 0
}

func (ml *MoveList) Append(m Move) {
	ml.moves[ml.size] = m
	ml.size++
}

// Get the actual slice of valid moves
func (ml *MoveList) Slice() []Move {
	return ml.moves[0:ml.size]
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

// Convert the list into a string of space-separated move names
func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	names := make([]string, ml.size)
	for i, m := range ml.Slice() {
		names[i] = m.Name()
	}
	return strings.Join(names, " ")
}
