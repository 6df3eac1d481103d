package game

import "fmt"

const (
	BOARD_SIZE   = 10
	STALL_WINDOW = 4 // Completed actions remembered per team for shuttle detection
)

// Coordinate identifies a board cell by column and row, both in [0, BOARD_SIZE).
type Coordinate struct {
	Col int
	Row int
}

// Valid reports whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.Col >= 0 && c.Col < BOARD_SIZE && c.Row >= 0 && c.Row < BOARD_SIZE
}

func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// orthogonal unit steps
var directions = []Coordinate{{Col: 0, Row: 1}, {Col: 0, Row: -1}, {Col: 1, Row: 0}, {Col: -1, Row: 0}}

// The two lakes in the middle of the board. Nothing may enter or cross them.
var lakes = map[Coordinate]struct{}{
	{Col: 2, Row: 4}: {}, {Col: 3, Row: 4}: {}, {Col: 6, Row: 4}: {}, {Col: 7, Row: 4}: {},
	{Col: 2, Row: 5}: {}, {Col: 3, Row: 5}: {}, {Col: 6, Row: 5}: {}, {Col: 7, Row: 5}: {},
}

// IsLake reports whether c is one of the impassable lake cells.
func IsLake(c Coordinate) bool {
	_, ok := lakes[c]
	return ok
}

// Team is one of the two sides.
type Team int

const (
	Red Team = iota
	Blue
)

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == Red {
		return Blue
	}
	return Red
}

func (t Team) String() string {
	switch t {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Team%d", int(t))
	}
}

// Rank orders pieces for combat. Higher ranks beat lower ranks, with the
// exceptions handled by Rules.
type Rank int

const (
	Flag       Rank = -2
	Bomb       Rank = -1
	Spy        Rank = 0
	Scout      Rank = 1
	Corporal   Rank = 2
	Miner      Rank = 3
	Sergeant   Rank = 4
	Lieutenant Rank = 5
	Captain    Rank = 6
	Major      Rank = 7
	Colonel    Rank = 8
	General    Rank = 9
	Marshal    Rank = 10
)

var rankNames = map[Rank]string{
	Flag:       "Flag",
	Bomb:       "Bomb",
	Spy:        "Spy",
	Scout:      "Scout",
	Corporal:   "Corporal",
	Miner:      "Miner",
	Sergeant:   "Sergeant",
	Lieutenant: "Lieutenant",
	Captain:    "Captain",
	Major:      "Major",
	Colonel:    "Colonel",
	General:    "General",
	Marshal:    "Marshal",
}

func (r Rank) Valid() bool {
	return r >= Flag && r <= Marshal
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Special is the ability tag of a rank. It is always derived from the rank,
// never stored on its own.
type Special int

const (
	SpecialNone Special = iota
	SpecialScout
	SpecialMiner
	SpecialSpy
)

// Special returns the ability tag carried by pieces of this rank.
func (r Rank) Special() Special {
	switch r {
	case Scout:
		return SpecialScout
	case Miner:
		return SpecialMiner
	case Spy:
		return SpecialSpy
	default:
		return SpecialNone
	}
}

func (s Special) String() string {
	switch s {
	case SpecialScout:
		return "scout"
	case SpecialMiner:
		return "miner"
	case SpecialSpy:
		return "spy"
	default:
		return "none"
	}
}
