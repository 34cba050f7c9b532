package uttt

import (
	"fmt"
	"strings"
)

// Text notation for a position, much like the FEN representation of a
// chessboard. Nine '/'-separated groups, one per sub-board in row-major
// order, each listing that sub-board's 9 cells row-major with runs of
// empty cells collapsed into a digit:
//
//	<sub0>/<sub1>/.../<sub8> <turn> <forced>
//
// <turn> is 'x' or 'o'. <forced> is the forced sub-board index as a
// digit 0-8, or '-' when the next move is free.
//
// Examples:
//
//   - 9/9/9/9/9/9/9/9/9 x 4
//
//   - xx7/9/9/9/4o4/9/9/9/9 x 0
const StartingNotation string = "9/9/9/9/9/9/9/9/9 x 4"

// Notation serializes the position. FromNotation(s.Notation()) yields
// a state with identical board, statuses, forced pointer and turn.
func (s *State) Notation() string {
	builder := strings.Builder{}

	for sub := 0; sub < 9; sub++ {
		skip := 0
		for cell := 0; cell < 9; cell++ {
			p := s.board[MoveInSub(sub, cell)]
			if p == PlayerNone {
				skip++
				continue
			}
			if skip > 0 {
				builder.WriteByte('0' + byte(skip))
				skip = 0
			}
			builder.WriteRune(p.Rune())
		}
		if skip > 0 {
			builder.WriteByte('0' + byte(skip))
		}
		if sub != 8 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	builder.WriteRune(s.turn.Rune())
	builder.WriteByte(' ')
	if s.forced == freeMove {
		builder.WriteByte('-')
	} else {
		builder.WriteByte('0' + byte(s.forced))
	}

	return builder.String()
}

// FromNotation parses a position. Sub-board statuses and the outcome
// are rebuilt from the cells; a forced pointer naming a closed
// sub-board is repaired to a free move, keeping the invariant that the
// pointer never designates a closed sub-board. The shortcut "startpos"
// loads the starting position.
func FromNotation(notation string) (*State, error) {
	if notation == "startpos" {
		notation = StartingNotation
	}

	fields := strings.Fields(notation)
	if len(fields) != 3 {
		return nil, fmt.Errorf("notation %q: expected 3 space-separated fields, got %d",
			notation, len(fields))
	}

	st := &State{
		lastMove: MoveNone,
		forced:   freeMove,
	}

	// Board groups
	sub, cell := 0, 0
	for i, r := range fields[0] {
		switch {
		case r == 'x' || r == 'o':
			if sub > 8 || cell > 8 {
				return nil, fmt.Errorf("notation: piece overflows sub-board %d at byte %d", sub, i)
			}
			st.board[MoveInSub(sub, cell)] = PlayerFromRune(r)
			st.occupied[playerIndex(PlayerFromRune(r))][sub] |= 1 << cell
			cell++
		case r == '/':
			if cell != 9 {
				return nil, fmt.Errorf("notation: sub-board %d has %d cells, expected 9", sub, cell)
			}
			sub++
			cell = 0
			if sub > 8 {
				return nil, fmt.Errorf("notation: more than 9 sub-board groups")
			}
		case r >= '1' && r <= '9':
			cell += int(r - '0')
			if cell > 9 {
				return nil, fmt.Errorf("notation: skip overflows sub-board %d at byte %d", sub, i)
			}
		default:
			return nil, fmt.Errorf("notation: unexpected %q at byte %d", r, i)
		}
	}
	if sub != 8 || cell != 9 {
		return nil, fmt.Errorf("notation: expected 9 complete sub-board groups")
	}

	// Side to move
	switch fields[1] {
	case "x":
		st.turn = PlayerX
	case "o":
		st.turn = PlayerO
	default:
		return nil, fmt.Errorf("notation: invalid turn %q, expected x or o", fields[1])
	}

	// Forced sub-board
	switch f := fields[2]; {
	case f == "-":
		st.forced = freeMove
	case len(f) == 1 && f[0] >= '0' && f[0] <= '8':
		st.forced = int8(f[0] - '0')
	default:
		return nil, fmt.Errorf("notation: invalid forced sub-board %q, expected 0-8 or -", fields[2])
	}

	// Rebuild sub-board statuses from the cells
	for i := 0; i < 9; i++ {
		st.status[i] = subBoardStatus(st.occupied[0][i], st.occupied[1][i])
	}

	// The pointer must never name a closed sub-board
	if st.forced != freeMove && st.status[st.forced].Closed() {
		st.forced = freeMove
	}

	st.outcome = computeOutcome(&st.status)
	return st, nil
}
