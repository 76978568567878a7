package components

import "github.com/yohamta/donburi"

// RecordsData is the player's persisted personal bests.
type RecordsData struct {
	BestHeight      float64 `json:"bestHeight"`
	MostCheckpoints int     `json:"mostCheckpoints"`
	Wins            int     `json:"wins"`
	Dirty           bool    `json:"-"`
}

var Records = donburi.NewComponentType[RecordsData]()
