package uttt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromNotationStartpos(t *testing.T) {
	st, err := FromNotation("startpos")
	require.NoError(t, err)

	root := NewState()
	require.Equal(t, root.Board(), st.Board())
	require.Equal(t, root.SubStatuses(), st.SubStatuses())
	require.Equal(t, root.Turn(), st.Turn())
	require.Equal(t, root.Outcome(), st.Outcome())
	require.Equal(t, root.Hash(), st.Hash())
	require.Equal(t, StartingNotation, st.Notation())
}

func TestNotationRoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(99))

	for game := 0; game < 50; game++ {
		st := NewState()
		for !st.Outcome().Terminal() {
			parsed, err := FromNotation(st.Notation())
			require.NoError(t, err, "notation %q failed to parse", st.Notation())

			require.Equal(t, st.Board(), parsed.Board())
			require.Equal(t, st.SubStatuses(), parsed.SubStatuses())
			require.Equal(t, st.Turn(), parsed.Turn())
			require.Equal(t, st.Outcome(), parsed.Outcome())
			fi, fj := st.ForcedSubBoard()
			pi, pj := parsed.ForcedSubBoard()
			require.Equal(t, fi, pi)
			require.Equal(t, fj, pj)
			require.Equal(t, st.Hash(), parsed.Hash())
			require.Equal(t, st.Notation(), parsed.Notation())

			move, err := st.RandomMove(random)
			require.NoError(t, err)
			st, err = st.ApplyMove(move)
			require.NoError(t, err)
		}
	}
}

func TestFromNotationStatuses(t *testing.T) {
	st, err := FromNotation("xxx6/9/9/9/4o4/9/9/9/9 o -")
	require.NoError(t, err)

	status := st.SubStatuses()
	require.Equal(t, SubWonX, status[0], "a line parsed from text closes the sub-board")
	require.Equal(t, SubInProgress, status[4])
	for _, sub := range []int{1, 2, 3, 5, 6, 7, 8} {
		require.Equal(t, SubUntouched, status[sub])
	}
	require.Equal(t, OutcomeOngoing, st.Outcome())
}

func TestFromNotationTerminal(t *testing.T) {
	t.Run("main-board win", func(t *testing.T) {
		st, err := FromNotation("xxx6/xxx6/xxx6/9/9/9/9/9/9 o -")
		require.NoError(t, err)
		require.Equal(t, OutcomeXWon, st.Outcome())
	})

	t.Run("column win for circle", func(t *testing.T) {
		st, err := FromNotation("ooo6/9/9/ooo6/9/9/ooo6/9/9 x -")
		require.NoError(t, err)
		require.Equal(t, OutcomeOWon, st.Outcome())
	})
}

func TestFromNotationRepairsForcedPointer(t *testing.T) {
	// The forced field names a closed sub-board; the parser must lift
	// the constraint instead of producing an unplayable state.
	st, err := FromNotation("xxx6/9/9/9/4o4/9/9/9/9 o 0")
	require.NoError(t, err)

	i, j := st.ForcedSubBoard()
	require.Equal(t, int8(-1), i)
	require.Equal(t, int8(-1), j)
	require.Equal(t, 71, st.LegalMoves().Size())
}

func TestFromNotationErrors(t *testing.T) {
	cases := map[string]string{
		"missing fields":         "9/9/9/9/9/9/9/9/9 x",
		"too many fields":        "9/9/9/9/9/9/9/9/9 x 4 extra",
		"short group":            "8/9/9/9/9/9/9/9/9 x 4",
		"long group":             "x9/9/9/9/9/9/9/9/9 x 4",
		"too few groups":         "9/9/9/9/9/9/9/9 x 4",
		"too many groups":        "9/9/9/9/9/9/9/9/9/9 x 4",
		"bad piece rune":         "q8/9/9/9/9/9/9/9/9 x 4",
		"bad turn":               "9/9/9/9/9/9/9/9/9 z 4",
		"forced out of range":    "9/9/9/9/9/9/9/9/9 x 9",
		"forced not a digit":     "9/9/9/9/9/9/9/9/9 x f",
		"skip overflowing group": "99/9/9/9/9/9/9/9/9 x 4",
	}

	for name, notation := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromNotation(notation)
			require.Error(t, err, "notation %q should be rejected", notation)
		})
	}
}
