package factory

import (
	"github.com/automoto/drift/archetypes"
	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/shared/movement"
	"github.com/automoto/drift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerInputConfig binds a player slot to an input device.
type PlayerInputConfig struct {
	PlayerIndex   int
	GamepadID     *ebiten.GamepadID // nil = keyboard
	ControlScheme cfg.ControlSchemeID
}

// CreatePlayer spawns a player entity around an already built movement state
// and adds its body to space.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, state *movement.PlayerState, input PlayerInputConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	snap := state.Snapshot()
	size := cfg.Player.BodySize
	obj := resolv.NewObject(snap.Position.X-size/2, snap.Position.Y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		Index: input.PlayerIndex,
		State: state,
		Last:  snap,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		BoundGamepadID: input.GamepadID,
		ControlScheme:  input.ControlScheme,
	})

	score := float32(snap.Smoothness)
	components.Gauge.SetValue(player, components.GaugeData{
		Value:  score,
		Target: score,
	})

	return player
}
