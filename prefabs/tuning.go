package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	PlatformFile = "platform.yaml"
	PlayerFile   = "player.yaml"
	SpikesFile   = "spikes.yaml"
	WorldFile    = "world.yaml"
)

// Tuning is every tunable value of a run.
type Tuning struct {
	Platform PlatformSpec
	Player   PlayerSpec
	Spikes   SpikesSpec
	World    WorldSpec
}

// DefaultTuning returns the built-in values. Loaded files only override the
// fields they set.
func DefaultTuning() Tuning {
	return Tuning{
		Platform: PlatformSpec{
			Name:         "platform",
			Points:       [][2]float64{{0, 0}, {200, 50}, {600, -100}, {1200, 100}},
			Stroke:       StrokeSpec{Width: 10, Tolerance: 0.01},
			BaseX:        -400,
			Spacing:      1400,
			InitialCount: 2,
			DefaultY:     -100,
			SinkMargin:   50,
			SinkSpeed:    500,
			RiseSpeed:    500,
			SpawnAhead:   2800,
			Friction:     1,
		},
		Player: PlayerSpec{
			Name:                "player",
			Radius:              50,
			Mass:                1,
			Friction:            0.6,
			HoldGravityScale:    10,
			ReleaseGravityScale: 1,
			RingWidth:           5,
			RenderLayer:         10,
		},
		Spikes: SpikesSpec{
			Name:        "spikes",
			Count:       25,
			Speed:       50,
			RenderLayer: 5,
		},
		World: WorldSpec{
			Gravity:       200,
			MetersPerUnit: 0.01,
			CameraZoom:    1,
		},
	}
}

// LoadTuning reads the tuning files, embedded or from ./prefabs on disk.
func LoadTuning() (Tuning, error) {
	t := DefaultTuning()
	if err := loadInto(PlatformFile, &t.Platform); err != nil {
		return t, err
	}
	if err := loadInto(PlayerFile, &t.Player); err != nil {
		return t, err
	}
	if err := loadInto(SpikesFile, &t.Spikes); err != nil {
		return t, err
	}
	if err := loadInto(WorldFile, &t.World); err != nil {
		return t, err
	}
	return t, nil
}

// loadInto decodes filename over the values already in dst.
func loadInto[T any](filename string, dst *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}
