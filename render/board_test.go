package render

import (
	"stratego/game"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func sampleState(t *testing.T) game.BoardState {
	t.Helper()
	e := game.NewEngine()
	require.NoError(t, e.RegisterPiece(game.NewPiece(game.Red, game.Marshal), game.Coordinate{Col: 0, Row: 0}))
	require.NoError(t, e.RegisterPiece(game.NewPiece(game.Red, game.Flag), game.Coordinate{Col: 1, Row: 0}))
	require.NoError(t, e.RegisterPiece(game.NewPiece(game.Blue, game.Spy), game.Coordinate{Col: 9, Row: 9}))
	require.NoError(t, e.RegisterPiece(game.NewPiece(game.Blue, game.Flag), game.Coordinate{Col: 8, Row: 9}))
	return e.Snapshot()
}

func TestBoard(t *testing.T) {
	out := Board(sampleState(t))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, game.BOARD_SIZE+1, "one line per row plus the column axis")
	for _, line := range lines {
		require.Equal(t, (game.BOARD_SIZE+1)*cellWidth, lipgloss.Width(line))
	}
	require.Contains(t, lines[0], "Sy", "row 9 is drawn first")
	require.Contains(t, lines[0], "Fl")
	require.Contains(t, lines[game.BOARD_SIZE-1], "Ma", "row 0 is drawn last")
	require.Contains(t, lines[4], "~~", "row 5 holds lakes")
	require.NotContains(t, lines[0], "~~")
}

func TestStatus(t *testing.T) {
	state := sampleState(t)
	require.Contains(t, Status(state), "Red to move")
	require.Contains(t, Status(state), "Red 2 | Blue 2")

	state.GameOver = true
	state.Winner = game.Blue
	state.WinnerName = "Blue"
	require.Contains(t, Status(state), "Winner: Blue")
}

func TestRankCode(t *testing.T) {
	seen := map[string]game.Rank{}
	for r := game.Flag; r <= game.Marshal; r++ {
		code := RankCode(r)
		require.Len(t, code, 2)
		prev, dup := seen[code]
		require.False(t, dup, "%v and %v share code %s", prev, r, code)
		seen[code] = r
	}
	require.Equal(t, "??", RankCode(game.Rank(42)))
}
