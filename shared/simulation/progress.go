package simulation

import (
	"math"

	"github.com/automoto/towerclimb/config"
)

// Progress is the HUD's view of a run. It is fed only through the Listener
// callbacks, the same way an external UI would be.
type Progress struct {
	Config      config.ProgressConfig
	Height      float64
	BestHeight  float64
	Stage       int
	Zone        string
	Checkpoints int
	Won         bool

	// OnVictory fires once, the first frame Height reaches VictoryHeight.
	OnVictory func(height float64)
}

var _ Listener = (*Progress)(nil)

// NewProgress returns progress for a fresh run.
func NewProgress(cfg config.ProgressConfig) *Progress {
	p := &Progress{Config: cfg}
	p.OnHeightChange(0)
	return p
}

// OnHeightChange updates the stage and zone labels and latches victory.
func (p *Progress) OnHeightChange(height float64) {
	p.Height = height
	p.BestHeight = math.Max(p.BestHeight, height)
	p.Stage = p.StageFor(height)
	p.Zone = p.ZoneFor(height)

	if !p.Won && height >= p.Config.VictoryHeight {
		p.Won = true
		if p.OnVictory != nil {
			p.OnVictory(height)
		}
	}
}

// OnCheckpoint counts a checkpoint, capped at the tower's total.
func (p *Progress) OnCheckpoint() {
	if p.Checkpoints < p.Config.TotalCheckpoints {
		p.Checkpoints++
	}
}

// Percent is checkpoint progress in [0, 100].
func (p *Progress) Percent() float64 {
	if p.Config.TotalCheckpoints <= 0 {
		return 0
	}
	return float64(p.Checkpoints) / float64(p.Config.TotalCheckpoints) * 100
}

// StageFor maps a height to a 1-based stage number.
func (p *Progress) StageFor(height float64) int {
	if p.Config.StageHeight <= 0 {
		return 1
	}
	stage := int(math.Floor(height/p.Config.StageHeight)) + 1
	if stage < 1 {
		stage = 1
	}
	if p.Config.MaxStage > 0 && stage > p.Config.MaxStage {
		stage = p.Config.MaxStage
	}
	return stage
}

// ZoneFor maps a height to its zone label.
func (p *Progress) ZoneFor(height float64) string {
	for _, z := range p.Config.Zones {
		if height < z.MaxHeight {
			return z.Name
		}
	}
	return p.Config.FinalZone
}
