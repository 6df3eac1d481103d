package render

import (
	"stratego/game"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 4

// Styles used for the board.
var (
	styleRed = lipgloss.NewStyle().
			Background(lipgloss.Color("124")).
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	styleBlue = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	styleLake = lipgloss.NewStyle().
			Background(lipgloss.Color("31")).
			Foreground(lipgloss.Color("117")).
			Width(cellWidth).
			Align(lipgloss.Center)

	styleEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(cellWidth).
			Align(lipgloss.Center)

	styleAxis = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(cellWidth).
			Align(lipgloss.Center)

	styleStatus = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleWinner = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)
)

// Two-letter codes that fit a cell.
var rankCodes = map[game.Rank]string{
	game.Flag:       "Fl",
	game.Bomb:       "Bo",
	game.Spy:        "Sy",
	game.Scout:      "Sc",
	game.Corporal:   "Co",
	game.Miner:      "Mi",
	game.Sergeant:   "Se",
	game.Lieutenant: "Lt",
	game.Captain:    "Cp",
	game.Major:      "Mj",
	game.Colonel:    "Cl",
	game.General:    "Ge",
	game.Marshal:    "Ma",
}

func teamStyle(t game.Team) lipgloss.Style {
	if t == game.Blue {
		return styleBlue
	}
	return styleRed
}

// RankCode returns the cell label for r.
func RankCode(r game.Rank) string {
	if code, ok := rankCodes[r]; ok {
		return code
	}
	return "??"
}
