package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool // Draw trigger volumes and the minimap
}

var Settings = donburi.NewComponentType[SettingsData]()
