package components

import (
	"github.com/automoto/drift/shared/movement"
	"github.com/yohamta/donburi"
)

// PlayerData wraps the simulated movement state of one player.
// Last is refreshed after every tick and is what renderers read.
type PlayerData struct {
	Index int
	State *movement.PlayerState
	Last  movement.Snapshot
}

var Player = donburi.NewComponentType[PlayerData]()
