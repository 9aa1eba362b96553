package components

import "github.com/yohamta/donburi"

// PauseData stores the session state toggled by global actions.
type PauseData struct {
	IsPaused      bool
	ShowTrail     bool
	ShowDebug     bool // body outlines and velocity vectors
	QuitRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
