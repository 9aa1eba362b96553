package systems

import (
	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/logging"
	"github.com/automoto/drift/shared/movement"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances every player by one tick from its own input.
// Must run AFTER UpdatePlayerInput.
func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry) {
	input := components.PlayerInput.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	prev := player.Last
	player.State.Tick(IntentFromActions(input.Current))
	player.Last = player.State.Snapshot()

	logDashTransition(player.Index, prev.Dash, player.Last.Dash)

	syncBody(components.Object.Get(playerEntry).Object, player.Last.Position)
}

func logDashTransition(index int, from, to movement.DashState) {
	if from.Phase == to.Phase {
		return
	}
	logging.Log.Debug().
		Int("player", index).
		Stringer("from", from.Phase).
		Stringer("to", to.Phase).
		Int("remaining", to.Remaining).
		Msg("dash phase changed")
}

// syncBody centres the body object on the simulated position.
func syncBody(obj *resolv.Object, pos movement.Vec) {
	half := cfg.Player.BodySize / 2
	obj.X = pos.X - half
	obj.Y = pos.Y - half
}
