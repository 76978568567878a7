package factory

import (
	"github.com/automoto/towerclimb/archetypes"
	"github.com/automoto/towerclimb/components"
	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/simulation"
	"github.com/yohamta/donburi"
)

// SessionOptions configures the frame-level singletons.
type SessionOptions struct {
	Source    components.InputSource
	Step      float64 // Seconds per frame
	Records   components.RecordsData
	Listeners []simulation.Listener
	Debug     bool
}

// CreateSession adds the clock, input, progress, banner and records.
func CreateSession(w donburi.World, opts SessionOptions) *donburi.Entry {
	step := opts.Step
	if step <= 0 {
		step = 1.0 / 60
	}

	session := archetypes.Session.Spawn(w)
	components.Clock.SetValue(session, components.ClockData{Step: step, Frame: -1})
	components.Input.SetValue(session, components.InputData{Source: opts.Source})
	components.Progress.SetValue(session, *simulation.NewProgress(config.Progress))
	components.Listener.SetValue(session, components.ListenerData{Listeners: opts.Listeners})
	components.Records.SetValue(session, opts.Records)
	components.Settings.SetValue(session, components.SettingsData{Debug: opts.Debug})
	return session
}
