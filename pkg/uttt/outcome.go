package uttt

// horizontal, vertical and diagonal lines of a 3x3 plane, as bitboards
// over row-major cell indices
var _winMasks = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// the same 8 lines as index triples, used on the status plane
var _winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

const _fullMask uint16 = 0b111111111

// Evaluate one sub-board from its two occupancy bitboards. A 3x3 board
// cannot gain two distinct winning lines from one move, so the first
// match is the winner.
func subBoardStatus(xbb, obb uint16) SubStatus {
	for i := 0; i < 8; i++ {
		if xbb&_winMasks[i] == _winMasks[i] {
			return SubWonX
		}
		if obb&_winMasks[i] == _winMasks[i] {
			return SubWonO
		}
	}

	if xbb|obb == _fullMask {
		return SubDrawn
	}
	if xbb|obb != 0 {
		return SubInProgress
	}
	return SubUntouched
}

// Resolve the main board from the 9 sub-board statuses alone; the
// 81-cell board is never rescanned here. Indexing _winLines directly
// avoids copying the [3]int triples in this hot path.
func computeOutcome(status *[9]SubStatus) Outcome {
	for i := 0; i < 8; i++ {
		if v := status[_winLines[i][0]]; v == status[_winLines[i][1]] &&
			v == status[_winLines[i][2]] &&
			(v == SubWonX || v == SubWonO) {
			return Outcome(v)
		}
	}

	// No line: a draw only once every sub-board is closed
	for i := 0; i < 9; i++ {
		if !status[i].Closed() {
			return OutcomeOngoing
		}
	}
	return OutcomeDraw
}
