package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GaugeData eases the displayed smoothness score toward the measured one.
type GaugeData struct {
	Value  float32
	Target float32
	Tween  *gween.Tween // nil once settled
}

var Gauge = donburi.NewComponentType[GaugeData]()
