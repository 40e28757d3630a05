package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fruitbox.yaml
var defaultFruitBoxYAML []byte

// DefaultFruitBoxConfig returns the default Fruit Box configuration.
func DefaultFruitBoxConfig() FruitBoxConfig {
	return FruitBoxConfig{
		Board: BoardConfig{
			Width:       740,
			Height:      520,
			Margin:      28,
			Cols:        18,
			Rows:        10,
			TokenRadius: 14,
		},
		Clock: ClockConfig{
			Duration: 2 * time.Minute,
		},
		Effects: EffectsConfig{
			Ejected: EjectedConfig{
				MaxAge:       70,
				Gravity:      0.5,
				Drag:         0.995,
				LaunchSpeed:  7,
				LaunchSpread: 2,
				Jitter:       1.2,
				PopAmplitude: 0.35,
			},
			Toast: ToastConfig{
				MaxAge: 50,
				Rise:   0.7,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFruitBoxYAML
}
