package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the built-in configuration. It matches the
// embedded defaults/defender.yaml and is used when that cannot be parsed.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Window: WindowConfig{
			Width:         1280,
			Height:        720,
			MinimapHeight: 0.125,
			BorderOffset:  50,
		},
		World: WorldConfig{
			Segments:      499,
			SegmentLength: 10,
		},
		Player: PlayerConfig{
			Width:           16,
			Height:          16,
			HorizontalSpeed: 600,
			VerticalSpeed:   400,
			Acceleration:    1600,
			Deceleration:    100,
			ShootDelay:      0.3,
			FrontOffset:     35,
		},
		Projectile: ProjectileConfig{
			LaserWidth:    400,
			LaserHeight:   2.375,
			LaserSpeed:    4800,
			OrbSize:       16,
			OrbSpeed:      300,
			SparkCount:    16,
			SparkSpeed:    400,
			SparkLifetime: 0.5,
		},
		Enemy: EnemyConfig{
			Speed:            100,
			RetargetInterval: 1.0,
			CaptureRadius:    10,
			MaxChange:        400,
			ReacquireDelay:   0.5,
			AimHorizon:       2.5,
			OrbSpawnDistance: 50,
			AccuracyPower:    0.25,
			Lander: VariantConfig{
				Width:     46.5,
				Height:    46.125,
				ShotDelay: 1.0,
				OrbHue:    360,
				MapHue:    120,
			},
			Mutant: VariantConfig{
				Width:     40,
				Height:    40,
				ShotDelay: 0.25,
				OrbHue:    120,
				MapHue:    300,
			},
		},
		Person: PersonConfig{
			Width:         23.04,
			Height:        30.72,
			CenterY:       -6,
			FallSpeed:     150,
			EnemyOffsetY:  -45,
			PlayerOffsetY: -35,
			FramePeriod:   0.15,
			Frames:        4,
		},
		Wave: WaveConfig{
			MinEnemies:   5,
			MaxEnemies:   15,
			Persons:      8,
			SpawnYMin:    100,
			SpawnYRange:  400,
			SpawnExclude: 1.5,
		},
		Scoring: ScoringConfig{
			Kill:         1,
			WaveMultiple: 10,
			Survivor:     50,
			Rescue:       25,
		},
		Camera: CameraConfig{
			Lead:          0.25 * 0.618,
			Speed:         500,
			GameOverDelay: 0.5,
		},
		Audio: AudioConfig{
			Volume:          0.2,
			VoiceVolume:     0.3,
			ExplosionVolume: 0.3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:    1.0,
				ShotDelayReduction: 0.5,
			},
		},
	}
}
