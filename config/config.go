package config

import "math"

// TowerConfig contains the procedural layout tuning values
type TowerConfig struct {
	TotalLevels          int     `yaml:"total_levels"`
	BaseHeight           float64 `yaml:"base_height"`      // Height of level 0
	HeightIncrement      float64 `yaml:"height_increment"` // Height gained per level
	PlatformsPerRotation int     `yaml:"platforms_per_rotation"`
	BaseRadius           float64 `yaml:"base_radius"`
	RadiusWobble         float64 `yaml:"radius_wobble"`    // Amplitude of the sinusoidal radius perturbation
	WobbleFrequency      float64 `yaml:"wobble_frequency"` // Radians per level
	CheckpointStride     int     `yaml:"checkpoint_stride"`
	PlatformThickness    float64 `yaml:"platform_thickness"`
	VictoryRise          float64 `yaml:"victory_rise"` // Victory platform offset above the last level

	// Footprint bands, checked in order. The last band catches everything above.
	Bands []FootprintBand `yaml:"bands"`

	SpawnSize   [3]float64 `yaml:"spawn_size"`
	VictorySize [3]float64 `yaml:"victory_size"`
	BridgeSize  [3]float64 `yaml:"bridge_size"`

	Specials SpecialsConfig `yaml:"specials"`
}

// FootprintBand sets the square footprint width for platforms below MaxHeight
type FootprintBand struct {
	MaxHeight float64 `yaml:"max_height"`
	Width     float64 `yaml:"width"`
}

// SpecialRule gates an optional platform on a level.
// The platform is placed when Level > After, Level%Every == Remainder and the
// per-level roll is below Chance.
type SpecialRule struct {
	After     int        `yaml:"after"`
	Every     int        `yaml:"every"`
	Remainder int        `yaml:"remainder"`
	Chance    float64    `yaml:"chance"`
	Offset    [3]float64 `yaml:"offset"` // Relative to the level's platform center
	Size      [3]float64 `yaml:"size"`
}

// SpecialsConfig contains the optional platform rules, in precedence order
type SpecialsConfig struct {
	CheckpointOffset [3]float64  `yaml:"checkpoint_offset"`
	CheckpointSize   [3]float64  `yaml:"checkpoint_size"`
	JumpPad          SpecialRule `yaml:"jump_pad"`
	SpeedPad         SpecialRule `yaml:"speed_pad"`
	Moving           SpecialRule `yaml:"moving"`
	Spinner          SpecialRule `yaml:"spinner"`
	Hazard           SpecialRule `yaml:"hazard"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	MaxFrameDelta  float64 `yaml:"max_frame_delta"` // Frame hitches are clamped to this
	FixedStep      float64 `yaml:"fixed_step"`
	FallRespawnY   float64 `yaml:"fall_respawn_y"`
	LandingEpsilon float64 `yaml:"landing_epsilon"` // Max vertical speed that still counts as landing

	// Pads
	JumpPadImpulse     float64 `yaml:"jump_pad_impulse"`
	SpeedPadMultiplier float64 `yaml:"speed_pad_multiplier"`
	SpeedPadDuration   float64 `yaml:"speed_pad_duration"` // seconds
	PadReach           float64 `yaml:"pad_reach"`          // How far above a pad still touches it
}

// AvatarConfig contains the avatar's collision shape
type AvatarConfig struct {
	HalfHeight      float64    `yaml:"half_height"` // Anchor to feet
	FootprintRadius float64    `yaml:"footprint_radius"`
	Height          float64    `yaml:"height"`
	FootTolerance   float64    `yaml:"foot_tolerance"` // Forgiveness around platform edges
	TopTolerance    float64    `yaml:"top_tolerance"`  // Feet may sit this far above a top and still land
	MarginBelow     float64    `yaml:"margin_below"`   // Feet may sink this far below a platform bottom
	ScanWindow      float64    `yaml:"scan_window"`    // Vertical range of platforms considered
	SpawnPosition   [3]float64 `yaml:"spawn_position"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Distance           float64 `yaml:"distance"`
	Height             float64 `yaml:"height"`
	PitchLift          float64 `yaml:"pitch_lift"`   // Vertical eye offset per radian of pitch
	LookAtLift         float64 `yaml:"look_at_lift"` // Frame the upper body instead of the feet
	KeyRotateSpeed     float64 `yaml:"key_rotate_speed"`
	PointerSensitivity float64 `yaml:"pointer_sensitivity"`
	FollowRate         float64 `yaml:"follow_rate"` // Exponential smoothing rate, 1/s
	MaxPitch           float64 `yaml:"max_pitch"`
	FieldOfView        float64 `yaml:"field_of_view"` // Radians
}

// ProgressConfig contains the HUD stage and zone thresholds
type ProgressConfig struct {
	TotalCheckpoints int     `yaml:"total_checkpoints"`
	VictoryHeight    float64 `yaml:"victory_height"`
	StageHeight      float64 `yaml:"stage_height"`
	MaxStage         int     `yaml:"max_stage"`
	Zones            []Zone  `yaml:"zones"`
	FinalZone        string  `yaml:"final_zone"`
}

// Zone labels heights below MaxHeight
type Zone struct {
	MaxHeight float64 `yaml:"max_height"`
	Name      string  `yaml:"name"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw trigger volumes and the minimap
	Seed    int64
}

// Global configuration instances
var C *Config
var Tower TowerConfig
var Physics PhysicsConfig
var Avatar AvatarConfig
var Camera CameraConfig
var Progress ProgressConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}
	Tower = DefaultTower()
	Physics = DefaultPhysics()
	Avatar = DefaultAvatar()
	Camera = DefaultCamera()
	Progress = DefaultProgress()
	Audio = DefaultAudio()
}

// DefaultTower returns the stock 50-level spiral.
func DefaultTower() TowerConfig {
	return TowerConfig{
		TotalLevels:          50,
		BaseHeight:           1.5,
		HeightIncrement:      0.8,
		PlatformsPerRotation: 12,
		BaseRadius:           8,
		RadiusWobble:         1,
		WobbleFrequency:      0.2,
		CheckpointStride:     8,
		PlatformThickness:    0.5,
		VictoryRise:          0.5,
		Bands: []FootprintBand{
			{MaxHeight: 10, Width: 3},
			{MaxHeight: 20, Width: 2.5},
			{MaxHeight: 30, Width: 2},
			{MaxHeight: math.Inf(1), Width: 1.8},
		},
		SpawnSize:   [3]float64{6, 0.5, 6},
		VictorySize: [3]float64{8, 1, 8},
		BridgeSize:  [3]float64{1.5, 0.5, 1.5},
		Specials: SpecialsConfig{
			CheckpointOffset: [3]float64{0, 1, 0},
			CheckpointSize:   [3]float64{1, 2, 1},
			JumpPad: SpecialRule{
				After: 5, Every: 6, Remainder: 0, Chance: 0.3,
				Offset: [3]float64{0, 0.3, 0}, Size: [3]float64{1.5, 0.2, 1.5},
			},
			SpeedPad: SpecialRule{
				After: 10, Every: 7, Remainder: 0, Chance: 0.4,
				Offset: [3]float64{0, 0.3, 0}, Size: [3]float64{2, 0.2, 2},
			},
			Moving: SpecialRule{
				After: 20, Every: 10, Remainder: 0, Chance: 0.2,
				Offset: [3]float64{2, 0, 0}, Size: [3]float64{2, 0.5, 2},
			},
			Spinner: SpecialRule{
				After: 15, Every: 8, Remainder: 3, Chance: 0.25,
				Offset: [3]float64{0, 1.5, 0}, Size: [3]float64{3, 0.3, 0.3},
			},
			Hazard: SpecialRule{
				After: 25, Every: 12, Remainder: 0, Chance: 0.15,
				Offset: [3]float64{0, -1, 0}, Size: [3]float64{1, 0.3, 1},
			},
		},
	}
}

// DefaultPhysics returns the stock movement tuning.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Gravity:        -35,
		MaxFallSpeed:   60, // 60 * FixedStep stays inside the landing window
		MoveSpeed:      12,
		JumpImpulse:    18,
		MaxFrameDelta:  0.05,
		FixedStep:      0.016,
		FallRespawnY:   -10,
		LandingEpsilon: 0.1,

		JumpPadImpulse:     28,
		SpeedPadMultiplier: 1.5,
		SpeedPadDuration:   2,
		PadReach:           0.3,
	}
}

// DefaultAvatar returns the stock avatar shape.
func DefaultAvatar() AvatarConfig {
	return AvatarConfig{
		HalfHeight:      0.5,
		FootprintRadius: 0.4,
		Height:          2,
		FootTolerance:   0.3,
		TopTolerance:    0.1,
		MarginBelow:     0.5,
		ScanWindow:      3,
		SpawnPosition:   [3]float64{0, 1.25, 0},
	}
}

// DefaultCamera returns the stock follow camera.
func DefaultCamera() CameraConfig {
	return CameraConfig{
		Distance:           8,
		Height:             6,
		PitchLift:          3,
		LookAtLift:         2,
		KeyRotateSpeed:     0.02,
		PointerSensitivity: 0.002,
		FollowRate:         5, // 1-exp(-5/60) ~= 0.08 per frame at 60 fps
		MaxPitch:           1,
		FieldOfView:        math.Pi / 3,
	}
}

// DefaultProgress returns the stock HUD thresholds.
func DefaultProgress() ProgressConfig {
	return ProgressConfig{
		TotalCheckpoints: 6,
		VictoryHeight:    45,
		StageHeight:      10,
		MaxStage:         5,
		Zones: []Zone{
			{MaxHeight: 5, Name: "Starting Platform"},
			{MaxHeight: 15, Name: "Learning Zone"},
			{MaxHeight: 25, Name: "Challenge Zone"},
			{MaxHeight: 35, Name: "Expert Zone"},
			{MaxHeight: 45, Name: "Master Zone"},
		},
		FinalZone: "Victory Zone",
	}
}
