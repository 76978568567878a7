package simulation

import (
	"math"
	"sort"

	"github.com/automoto/towerclimb/config"
	"github.com/automoto/towerclimb/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// CheckpointRecord is the session's checkpoint progress. It only grows until Reset.
type CheckpointRecord struct {
	Reached       map[int]struct{}
	LastID        int // Highest reached id, 0 when none
	RespawnID     int // Checkpoint LastPosition belongs to
	LastPosition  mgl64.Vec3
	HasCheckpoint bool
}

// Count is the number of reached checkpoints.
func (r CheckpointRecord) Count() int {
	return len(r.Reached)
}

// IDs returns the reached ids in ascending order.
func (r CheckpointRecord) IDs() []int {
	ids := make([]int, 0, len(r.Reached))
	for id := range r.Reached {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CheckpointTracker maps avatar height onto the generator's level grid and
// records stride crossings.
type CheckpointTracker struct {
	Tower  config.TowerConfig
	Avatar config.AvatarConfig
	Record CheckpointRecord
}

// NewCheckpointTracker returns an empty tracker using the global tuning.
func NewCheckpointTracker() *CheckpointTracker {
	t := &CheckpointTracker{Tower: config.Tower, Avatar: config.Avatar}
	t.Reset()
	return t
}

// Reset clears the record for a new game or level load.
func (t *CheckpointTracker) Reset() {
	t.Record = CheckpointRecord{Reached: make(map[int]struct{})}
}

// LevelIndex quantizes a height with the generator's spacing.
func (t *CheckpointTracker) LevelIndex(y float64) int {
	return int(math.Floor((y - t.Tower.BaseHeight) / t.Tower.HeightIncrement))
}

// MaxID is the id of the highest checkpoint the tower generates.
func (t *CheckpointTracker) MaxID() int {
	if t.Tower.TotalLevels <= 0 {
		return 0
	}
	return (t.Tower.TotalLevels - 1) / t.Tower.CheckpointStride
}

// Update records every checkpoint at or below the avatar's level that has not
// been reached yet and returns the new ids in ascending order. The respawn
// point only ever moves up.
func (t *CheckpointTracker) Update(position mgl64.Vec3) []int {
	fresh, highest := t.record(position.Y())
	t.anchor(highest, position)
	return fresh
}

// Observe is Update for a live avatar: ids are recorded on crossing, but the
// respawn point only moves while the avatar stands on something, so a
// crossing made mid-jump over the void is never a respawn point.
func (t *CheckpointTracker) Observe(a AvatarState) []int {
	fresh, highest := t.record(a.Position.Y())
	if a.Grounded {
		t.anchor(highest, a.Position)
	}
	return fresh
}

func (t *CheckpointTracker) record(y float64) (fresh []int, highest int) {
	if t.Record.Reached == nil {
		t.Reset()
	}
	highest = min(t.LevelIndex(y)/t.Tower.CheckpointStride, t.MaxID())
	for id := 1; id <= highest; id++ {
		if _, ok := t.Record.Reached[id]; ok {
			continue
		}
		t.Record.Reached[id] = struct{}{}
		fresh = append(fresh, id)
	}
	t.Record.LastID = max(t.Record.LastID, highest)
	return fresh, highest
}

func (t *CheckpointTracker) anchor(id int, position mgl64.Vec3) {
	if id <= t.Record.RespawnID {
		return
	}
	t.Record.RespawnID = id
	t.Record.LastPosition = position
	t.Record.HasCheckpoint = true
}

// RespawnPoint is the last checkpoint position, or the spawn point.
func (t *CheckpointTracker) RespawnPoint() mgl64.Vec3 {
	if t.Record.HasCheckpoint {
		return t.Record.LastPosition
	}
	return gamemath.Vec3(t.Avatar.SpawnPosition)
}

// Respawn puts the avatar back on its respawn point in one assignment.
func (t *CheckpointTracker) Respawn(avatar AvatarState) AvatarState {
	return AvatarState{
		Position:  t.RespawnPoint(),
		Grounded:  true,
		Facing:    avatar.Facing,
		SupportID: NoSupport,
	}
}
