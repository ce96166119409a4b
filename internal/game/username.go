package game

import (
	"fmt"
	"math/rand"
)

var usernameAdjectives = []string{
	"brave", "crimson", "drifting", "iron", "lucky",
	"rusty", "salty", "silent", "stormy", "swift",
}

var usernameNouns = []string{
	"admiral", "corsair", "cutter", "frigate", "gunner",
	"harpoon", "kraken", "lookout", "mariner", "privateer",
}

// RandomUsername returns a readable generated player name. It is stateless;
// callers needing stable names must keep the result themselves.
func RandomUsername() string {
	adj := usernameAdjectives[rand.Intn(len(usernameAdjectives))]
	noun := usernameNouns[rand.Intn(len(usernameNouns))]
	return fmt.Sprintf("%s-%s-%02d", adj, noun, rand.Intn(100))
}
