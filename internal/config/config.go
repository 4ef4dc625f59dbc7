// Package config provides YAML-based game configuration loading and
// difficulty management for the defender game.
package config

// DefenderConfig contains all tunable parameters of the simulation.
type DefenderConfig struct {
	Window     WindowConfig     `yaml:"window"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Person     PersonConfig     `yaml:"person"`
	Wave       WaveConfig       `yaml:"wave"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WindowConfig is the virtual viewport in world units.
type WindowConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MinimapHeight float64 `yaml:"minimap_height"` // Fraction of height reserved for the minimap
	BorderOffset  float64 `yaml:"border_offset"`  // Vertical confinement margin
}

// WorldConfig defines the repeating world.
type WorldConfig struct {
	Segments      int     `yaml:"segments"`
	SegmentLength float64 `yaml:"segment_length"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	VerticalSpeed   float64 `yaml:"vertical_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	Deceleration    float64 `yaml:"deceleration"`
	ShootDelay      float64 `yaml:"shoot_delay"`
	FrontOffset     float64 `yaml:"front_offset"` // Laser muzzle distance from the center
}

// ProjectileConfig defines lasers, orbs and explosion sparks.
type ProjectileConfig struct {
	LaserWidth    float64 `yaml:"laser_width"`
	LaserHeight   float64 `yaml:"laser_height"`
	LaserSpeed    float64 `yaml:"laser_speed"`
	OrbSize       float64 `yaml:"orb_size"`
	OrbSpeed      float64 `yaml:"orb_speed"`
	SparkCount    int     `yaml:"spark_count"`
	SparkSpeed    float64 `yaml:"spark_speed"`
	SparkLifetime float64 `yaml:"spark_lifetime"`
}

// EnemyConfig defines the enemy behavior shared by all variants.
type EnemyConfig struct {
	Speed            float64       `yaml:"speed"`
	RetargetInterval float64       `yaml:"retarget_interval"`
	CaptureRadius    float64       `yaml:"capture_radius"`
	MaxChange        float64       `yaml:"max_change"`      // Waypoint jitter radius
	ReacquireDelay   float64       `yaml:"reacquire_delay"` // Seconds on screen before firing
	AimHorizon       float64       `yaml:"aim_horizon"`     // Multiple of player speed used to scale lead time
	OrbSpawnDistance float64       `yaml:"orb_spawn_distance"`
	AccuracyPower    float64       `yaml:"accuracy_power"`
	Lander           VariantConfig `yaml:"lander"`
	Mutant           VariantConfig `yaml:"mutant"`
}

// VariantConfig holds the parameters that differ between enemy variants.
type VariantConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	ShotDelay float64 `yaml:"shot_delay"`
	OrbHue    float64 `yaml:"orb_hue"`     // Degrees
	MapHue    float64 `yaml:"minimap_hue"` // Degrees
}

// PersonConfig defines ground characters.
type PersonConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	CenterY       float64 `yaml:"center_y"` // Sprite center offset; ground y is height + center_y
	FallSpeed     float64 `yaml:"fall_speed"`
	EnemyOffsetY  float64 `yaml:"enemy_offset_y"`
	PlayerOffsetY float64 `yaml:"player_offset_y"`
	FramePeriod   float64 `yaml:"frame_period"`
	Frames        int     `yaml:"frames"`
}

// WaveConfig defines the wave scheduler.
type WaveConfig struct {
	MinEnemies   int     `yaml:"min_enemies"`
	MaxEnemies   int     `yaml:"max_enemies"`
	Persons      int     `yaml:"persons"`
	SpawnYMin    float64 `yaml:"spawn_y_min"`
	SpawnYRange  float64 `yaml:"spawn_y_range"`
	SpawnExclude float64 `yaml:"spawn_exclude"` // Multiple of window width kept free of spawns
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Kill         int `yaml:"kill"`
	WaveMultiple int `yaml:"wave_multiple"`
	Survivor     int `yaml:"survivor"`
	Rescue       int `yaml:"rescue"`
}

// CameraConfig defines how the camera follows the player.
type CameraConfig struct {
	Lead          float64 `yaml:"lead"` // Fraction of window width kept ahead of the player
	Speed         float64 `yaml:"speed"`
	GameOverDelay float64 `yaml:"game_over_delay"`
}

// AudioConfig defines sound volumes in [0, 1].
type AudioConfig struct {
	Volume          float64 `yaml:"volume"`
	VoiceVolume     float64 `yaml:"voice_volume"`
	ExplosionVolume float64 `yaml:"explosion_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score" or "none"
	MaxAt int    `yaml:"max_at"` // Wave/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`     // Added to enemy speed factor at max difficulty
	ShotDelayReduction float64 `yaml:"shot_delay_reduction"` // Fraction removed from shot delay at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// WorldSize returns the length of one world repetition.
func (c DefenderConfig) WorldSize() float64 {
	return float64(c.World.Segments) * c.World.SegmentLength
}

// PlayfieldTop returns the highest y available to craft, below the minimap.
func (c DefenderConfig) PlayfieldTop() float64 {
	return c.Window.Height * (1 - c.Window.MinimapHeight)
}

// GroundY returns the altitude of grounded persons.
func (c DefenderConfig) GroundY() float64 {
	return c.Person.Height + c.Person.CenterY
}
