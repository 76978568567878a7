package components

import "github.com/yohamta/donburi"

// ClockData is the frame timing shared by every system.
type ClockData struct {
	Step    float64 // Nominal seconds per frame
	Delta   float64 // Seconds covered by the current frame
	Elapsed float64
	Frame   int // Index of the current frame. Starts at -1 before the first tick.
}

var Clock = donburi.NewComponentType[ClockData]()
