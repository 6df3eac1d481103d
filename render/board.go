package render

import (
	"fmt"
	"stratego/game"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Board draws the snapshot with row 9 at the top, so Red plays upwards.
func Board(state game.BoardState) string {
	var cells [game.BOARD_SIZE][game.BOARD_SIZE]*game.PieceState
	for i := range state.Pieces {
		p := &state.Pieces[i]
		if p.Col < 0 || p.Col >= game.BOARD_SIZE || p.Row < 0 || p.Row >= game.BOARD_SIZE {
			continue
		}
		cells[p.Col][p.Row] = p
	}

	lines := make([]string, 0, game.BOARD_SIZE+1)
	for row := game.BOARD_SIZE - 1; row >= 0; row-- {
		parts := []string{styleAxis.Render(strconv.Itoa(row))}
		for col := 0; col < game.BOARD_SIZE; col++ {
			parts = append(parts, cell(cells[col][row], game.Coordinate{Col: col, Row: row}))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	axis := []string{styleAxis.Render("")}
	for col := 0; col < game.BOARD_SIZE; col++ {
		axis = append(axis, styleAxis.Render(strconv.Itoa(col)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, axis...))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cell(p *game.PieceState, c game.Coordinate) string {
	switch {
	case p != nil:
		return teamStyle(p.Team).Render(RankCode(p.Rank))
	case game.IsLake(c):
		return styleLake.Render("~~")
	default:
		return styleEmpty.Render("·")
	}
}

// Status is a one-line summary of whose turn it is, or who won.
func Status(state game.BoardState) string {
	counts := map[game.Team]int{}
	for _, p := range state.Pieces {
		counts[p.Team]++
	}
	pieces := fmt.Sprintf("Red %d | Blue %d", counts[game.Red], counts[game.Blue])

	if state.GameOver {
		line := fmt.Sprintf(" Game over after %d moves | %s ", state.Moves, pieces)
		return styleStatus.Render(line) + " " + styleWinner.Render("Winner: "+state.WinnerName)
	}
	line := fmt.Sprintf(" Move %d | %s to move | %s ", state.Moves+1, state.TurnName, pieces)
	return styleStatus.Render(line)
}

// Summary joins the board and the status line.
func Summary(state game.BoardState) string {
	return strings.Join([]string{Board(state), Status(state)}, "\n")
}
