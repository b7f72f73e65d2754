package mate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/renju-solve/internal/renju"
)

func TestVCFSolverEmptyBoardHasNoMate(t *testing.T) {
	g := renju.NewGame(renju.NewSquare(), renju.Black, nil, nil)
	solver := NewVCFSolver()

	_, ok := solver.Solve(g, 4)
	require.False(t, ok)
}

func TestVCFSolverIterativeEmptyBoard(t *testing.T) {
	g := renju.NewGame(renju.NewSquare(), renju.Black, nil, nil)
	solver := NewVCFSolver()

	_, ok := solver.SolveIterative(g, []uint8{1, 2, 3})
	require.False(t, ok)
}

func TestVCFSolverZeroLimitAlwaysFails(t *testing.T) {
	sq, err := renju.ParseBoardText("H8,I8,J8/")
	require.NoError(t, err)
	g := renju.NewGame(sq, renju.Black, &renju.Point{X: 9, Y: 7}, nil)
	solver := NewVCFSolver()

	_, ok := solver.Solve(g, 0)
	require.False(t, ok)
}

// TestVCFSolverSolvesThreeInARow is the sanity scenario from spec.md §8:
// one attacking move turns an open three into an open four, and the
// path's last move must be the one that makes two fours at once.
func TestVCFSolverSolvesThreeInARow(t *testing.T) {
	sq, err := renju.ParseBoardText("H8,I8,J8/")
	require.NoError(t, err)
	g := renju.NewGame(sq, renju.Black, &renju.Point{X: 9, Y: 7}, nil)
	solver := NewVCFSolver()

	m, ok := solver.Solve(g, 2)
	require.True(t, ok)
	require.NotEmpty(t, m.Path)

	after := sq.Clone()
	turn := renju.Black
	for _, p := range m.Path {
		after.Put(turn, p)
		turn = turn.Opponent()
	}
	last := m.Path[len(m.Path)-1]
	require.GreaterOrEqual(t, len(after.RowsOn(renju.Black, renju.Four, last)), 2, "last move of the path must make two fours")
}

// TestVCFSolverOkabeNo02RequiresVCT documents why Renju puzzle "No. 02
// (Okabe)" (spec.md §8 item 2, transcribed as the OkabeNo02Black fixture
// in vct_test.go) is a VCT scenario rather than a VCF one: Black's forced
// win there runs through open threes, not a chain of immediate fours, so a
// pure continuous-fours search finds nothing on the same board.
func TestVCFSolverOkabeNo02RequiresVCT(t *testing.T) {
	board := `
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . x . . . . . .
	 . . . . . . . o . . . . . . .
	 . . . . . . . o x o . . . . .
	 . . . . . . x o . x . . . . .
	 . . . . . . . x o . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	 . . . . . . . . . . . . . . .
	`
	sq, err := renju.ParseBoardText(board)
	require.NoError(t, err)
	lastMove, last2Move := renju.ChooseLastMoves(sq, renju.Black)
	g := renju.NewGame(sq, renju.Black, lastMove, last2Move)

	solver := NewVCFSolver()
	_, ok := solver.Solve(g, 4)
	require.False(t, ok, "Okabe No.02 has no continuous-fours mate; it is won by VCT, not VCF")
}

// TestVCFSolverFindsLongMate is grounded on the "Shadows and Fog" puzzle
// by Tama Hoshiduki (spec.md §8 item 3): a dense, nearly-full board with a
// long forced mate for Black. It exists mainly to verify the solver
// terminates and reproduces the exact reference path on a worst-case-sized
// search, not to exercise a new code path.
func TestVCFSolverFindsLongMate(t *testing.T) {
	board := `
	 . o x . x o . o x x x x o x x
	 . . . o . . x o o x . . x o o
	 x . o . . . . . . . . . o . o
	 o . . . x x . . . . . . . x x
	 . . o . . . . . . . . . . o x
	 x o x x . . . . . . . . . o o
	 x o . o . . x . . . . o . . .
	 o x x x . . . o . x . . . . x
	 x x . . . . . . . . . . . . x
	 x . . . . . x o x . . . . . x
	 o . . . o . . . . x . . . . o
	 . o . o . . . x o . . . . . .
	 . . . . . . x . o o . . . . .
	 o . . . . . . . . o . . x o .
	 . . . o . . o x . . o . . . o
	`
	sq, err := renju.ParseBoardText(board)
	require.NoError(t, err)
	lastMove, last2Move := renju.ChooseLastMoves(sq, renju.Black)
	g := renju.NewGame(sq, renju.Black, lastMove, last2Move)

	solver := NewVCFSolver()
	m, ok := solver.Solve(g, 255)
	require.True(t, ok)

	expected, err := renju.ParsePoints("F6,G7,C3,B2,E1,D2,C1,F1,A1,B1,A4,A3,C4,E4,C5,C2,C6,C7,D5,B5," +
		"E6,B3,D6,B6,G8,F7,D7,D3,F5,G5,G4,H3,F8,E7,I8,E8,F2,E3,F3,F4," +
		"H5,E2,H7,H9,L1,K2,M1,N1,I1,J1,I2,I5,H2,G2,K5,J4,L4,M3,M5,K3," +
		"L5,N5,L3,L2,L6,L7,M6,K4,J6,I7,K6,N6,M4,J7,M7,M8,N8,O9,N7,N9," +
		"O2,N3,O3,O4,K7,N4,K9,K8,M9,L8,J9,I9,K10,L11,M10,L10,M12,M11,L13,K14," +
		"K13,N13,K11,K12,J10,L12,I13,J13,J12,G15,I11,L14,H12,G13,H11,H13,G11,J11,E11,F11," +
		"I10,I12,G10,H10,E9,F10,F9,C9,D11,E10,B11,A11,B13,B12,F13,G12,D13,E13,D12,D15," +
		"B14,A15,E14,C12,C14")
	require.NoError(t, err)
	require.Equal(t, expected, m.Path)
}
