package uttt

// Type defines for the engine. Numeric values are part of the external
// contract: a status snapshot handed to a search engine reads back as
// these exact numbers.
type Player int8
type SubStatus int8
type Outcome int8
type StateHash uint64

// Enum for the players, cross is +1 and always moves first
const (
	PlayerNone Player = 0
	PlayerX    Player = 1
	PlayerO    Player = -1
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return -p
}

func (p Player) Rune() rune {
	switch p {
	case PlayerX:
		return 'x'
	case PlayerO:
		return 'o'
	default:
		return '.'
	}
}

func (p Player) String() string {
	return string(p.Rune())
}

// Create a player from a rune, anything other than 'x'/'o' is PlayerNone
func PlayerFromRune(r rune) Player {
	switch r {
	case 'x':
		return PlayerX
	case 'o':
		return PlayerO
	default:
		return PlayerNone
	}
}

// Enum for the state of a single 3x3 sub-board
const (
	SubUntouched  SubStatus = 0  // no cells played yet
	SubWonX       SubStatus = 1  // closed, cross took a line
	SubWonO       SubStatus = -1 // closed, circle took a line
	SubInProgress SubStatus = 2  // some cells played, still open
	SubDrawn      SubStatus = -2 // closed, full with no line
)

// Closed reports whether the sub-board can never be played in again.
func (s SubStatus) Closed() bool {
	return s == SubWonX || s == SubWonO || s == SubDrawn
}

// Winner of the sub-board, PlayerNone unless someone took a line
func (s SubStatus) Winner() Player {
	switch s {
	case SubWonX:
		return PlayerX
	case SubWonO:
		return PlayerO
	default:
		return PlayerNone
	}
}

// Enum for the main-board outcome. OutcomeOngoing is deliberately
// distinct from OutcomeDraw, callers must not confuse the two.
const (
	OutcomeXWon    Outcome = 1
	OutcomeOWon    Outcome = -1
	OutcomeDraw    Outcome = 0
	OutcomeOngoing Outcome = 2
)

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o != OutcomeOngoing
}

// Winner of the whole game, PlayerNone on a draw or an ongoing game
func (o Outcome) Winner() Player {
	switch o {
	case OutcomeXWon:
		return PlayerX
	case OutcomeOWon:
		return PlayerO
	default:
		return PlayerNone
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeXWon:
		return "x won"
	case OutcomeOWon:
		return "o won"
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}
