package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
)

// Resolv tags for body objects
const (
	ResolvPlayer = "Player"
)
