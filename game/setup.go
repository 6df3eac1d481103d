package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// RankCount is how many pieces of one rank an army holds.
type RankCount struct {
	Rank  Rank
	Count int
}

// standard 40-piece army; rank 2 is not part of it
var standardArmy = []RankCount{
	{Marshal, 1},
	{General, 1},
	{Colonel, 2},
	{Major, 3},
	{Captain, 4},
	{Lieutenant, 4},
	{Sergeant, 4},
	{Miner, 5},
	{Scout, 8},
	{Spy, 1},
	{Bomb, 6},
	{Flag, 1},
}

// StandardArmy returns the composition of a standard army, highest rank first.
func StandardArmy() []RankCount {
	army := make([]RankCount, len(standardArmy))
	copy(army, standardArmy)
	return army
}

// HomeRows returns the four rows a team sets up on: 0-3 for Red, 6-9 for Blue.
func HomeRows(team Team) []int {
	if team == Red {
		return []int{0, 1, 2, 3}
	}
	return []int{6, 7, 8, 9}
}

// RandomSetup registers a shuffled standard army for team across its home rows.
func RandomSetup(e *Engine, team Team, rng *rand.Rand) error {
	var ranks []Rank
	for _, rc := range standardArmy {
		for i := 0; i < rc.Count; i++ {
			ranks = append(ranks, rc.Rank)
		}
	}

	// Shuffle the army
	rng.Shuffle(len(ranks), func(i, j int) {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	})

	i := 0
	for _, row := range HomeRows(team) {
		for col := 0; col < BOARD_SIZE; col++ {
			c := Coordinate{Col: col, Row: row}
			if err := e.RegisterPiece(NewPiece(team, ranks[i]), c); err != nil {
				return fmt.Errorf("random setup for %v: %w", team, err)
			}
			i++
		}
	}
	return nil
}
