package systems

import (
	"fmt"

	"github.com/automoto/drift/components"
	cfg "github.com/automoto/drift/config"
	"github.com/automoto/drift/fonts"
	"github.com/automoto/drift/shared/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD eases each smoothness gauge toward its player's current score.
func UpdateHUD(ecs *ecs.ECS) {
	dt := 1 / float32(ebiten.TPS())
	components.Gauge.Each(ecs.World, func(e *donburi.Entry) {
		gauge := components.Gauge.Get(e)
		target := float32(components.Player.Get(e).Last.Smoothness)
		stepGauge(gauge, target, dt)
	})
}

// stepGauge restarts the tween when the target moved by more than the
// configured epsilon, then advances it by dt seconds.
func stepGauge(g *components.GaugeData, target, dt float32) {
	diff := target - g.Target
	if diff > cfg.HUD.GaugeEpsilon || diff < -cfg.HUD.GaugeEpsilon {
		g.Tween = gween.New(g.Value, target, cfg.HUD.GaugeTweenSecs, ease.OutQuad)
		g.Target = target
	}
	if g.Tween == nil {
		return
	}
	v, done := g.Tween.Update(dt)
	g.Value = v
	if done {
		g.Tween = nil
	}
}

// DrawHUD renders one block per player in the top-left corner: speed,
// velocity, dash phase and the smoothness gauge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Mono.Get()
	m := cfg.HUD.Margin
	lh := cfg.HUD.LineHeight
	y := m

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		gauge := components.Gauge.Get(e)

		for _, line := range hudLines(player.Index, player.State.Profile().Name, player.Last) {
			y += lh
			text.Draw(screen, line, face, int(m), int(y), cfg.HUD.TextColor)
		}

		y += lh / 2
		drawGauge(screen, m, y, gauge.Value)
		text.Draw(screen, fmt.Sprintf("%.2f", player.Last.Smoothness), face,
			int(m+cfg.HUD.GaugeWidth+6), int(y+cfg.HUD.GaugeHeight), cfg.HUD.TextColor)
		y += cfg.HUD.GaugeHeight + lh/2
	})
}

func drawGauge(screen *ebiten.Image, x, y float64, value float32) {
	w, h := float32(cfg.HUD.GaugeWidth), float32(cfg.HUD.GaugeHeight)
	vector.FillRect(screen, float32(x), float32(y), w, h, cfg.HUD.GaugeBgColor, false)
	vector.FillRect(screen, float32(x), float32(y), w*clampUnit(value), h, cfg.HUD.GaugeFgColor, false)
}

func clampUnit(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// hudLines formats the text block for one player.
func hudLines(index int, profile string, s movement.Snapshot) []string {
	dash := s.Dash.Phase.String()
	if s.Dash.Phase != movement.DashIdle {
		dash = fmt.Sprintf("%s %d", dash, s.Dash.Remaining)
	}
	return []string{
		fmt.Sprintf("P%d %s", index+1, profile),
		fmt.Sprintf("speed %6.2f  vel (%6.2f, %6.2f)", s.Speed, s.Velocity.X, s.Velocity.Y),
		fmt.Sprintf("dash  %s", dash),
	}
}
