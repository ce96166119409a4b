package game

import "fmt"

// ShipKind is one of the four vessel classes a fleet may field.
type ShipKind string

const (
	ShipCarrier    ShipKind = "Carrier"
	ShipBattleship ShipKind = "Battleship"
	ShipDestroyer  ShipKind = "Destroyer"
	ShipSubmarine  ShipKind = "Submarine"
)

// BoardSize is the edge length of the square grid. Attack coordinates are
// zero-based and must fall inside it.
const BoardSize = 5

// ValidShipKind reports whether s names a known vessel class.
func ValidShipKind(s string) bool {
	switch ShipKind(s) {
	case ShipCarrier, ShipBattleship, ShipDestroyer, ShipSubmarine:
		return true
	}
	return false
}

// Game is the configuration record a match is played under.
type Game struct {
	UUID string `json:"uuid"`
}

// Player is one side of a match.
type Player struct {
	Username string `json:"username"`
	Human    bool   `json:"human"`
}

// Match pairs two players under one game configuration.
type Match struct {
	UUID    string `json:"uuid"`
	PlayerA Player `json:"playerA"`
	PlayerB Player `json:"playerB"`
}

// Attack is a single shot at an opponent's grid.
type Attack struct {
	Destroyed bool     `json:"destroyed"`
	Hit       bool     `json:"hit"`
	Origin    [2]int   `json:"origin"`
	Type      ShipKind `json:"type"`
}

// Validate checks the attack against the board and the known ship kinds.
func (a *Attack) Validate() error {
	for _, c := range a.Origin {
		if c < 0 || c >= BoardSize {
			return fmt.Errorf("origin coordinate %d out of range [0,%d]", c, BoardSize-1)
		}
	}

	if !ValidShipKind(string(a.Type)) {
		return fmt.Errorf("unknown ship type %q", a.Type)
	}

	return nil
}

// DefaultAttack is the canned attack used when a synthetic event omits one.
func DefaultAttack() Attack {
	return Attack{
		Destroyed: false,
		Hit:       true,
		Origin:    [2]int{0, 0},
		Type:      ShipDestroyer,
	}
}
