// Package preset loads named animation configurations from YAML documents,
// so applications can keep their entrance animations in data files instead
// of code:
//
//	presets:
//	  card-in:
//	    kind: slide
//	    distance: -100
//	    axis: x
//	  badge-pop:
//	    kind: scale
//	    scale: 0.6
//	    duration: 0.3
//
// Loaded presets are raw animate.Config values; absent keys stay nil and
// fall back to the library defaults on Resolve.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atlekbai/animate"
)

// Preset is the file form of one animation configuration. Optional fields
// are pointers so absent keys are distinguishable from zero values.
type Preset struct {
	Kind               string        `yaml:"kind"`
	Duration           *float64      `yaml:"duration"`
	Delay              *float64      `yaml:"delay"`
	Easing             *string       `yaml:"easing"`
	Distance           *float64      `yaml:"distance"`
	Rotation           *RotationSpec `yaml:"rotation"`
	Scale              *float64      `yaml:"scale"`
	Opacity            *OpacitySpec  `yaml:"opacity"`
	Axis               *string       `yaml:"axis"`
	AnimateOnMount     *bool         `yaml:"animate_on_mount"`
	ContinuousRotation *bool         `yaml:"continuous_rotation"`
}

// RotationSpec mirrors animate.Rotation: a nil start means 0.
type RotationSpec struct {
	Start *float64 `yaml:"start"`
	End   float64  `yaml:"end"`
}

// OpacitySpec mirrors animate.Opacity.
type OpacitySpec struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

type document struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Config converts the preset to a raw animate.Config.
func (p Preset) Config() (animate.Config, error) {
	kind, err := animate.ParseKind(p.Kind)
	if err != nil {
		return animate.Config{}, err
	}

	cfg := animate.Config{
		Kind:               kind,
		Duration:           p.Duration,
		Delay:              p.Delay,
		Easing:             p.Easing,
		Distance:           p.Distance,
		Scale:              p.Scale,
		AnimateOnMount:     p.AnimateOnMount,
		ContinuousRotation: p.ContinuousRotation,
	}
	if p.Rotation != nil {
		cfg.Rotation = &animate.Rotation{Start: p.Rotation.Start, End: p.Rotation.End}
	}
	if p.Opacity != nil {
		cfg.Opacity = &animate.Opacity{Start: p.Opacity.Start, End: p.Opacity.End}
	}
	if p.Axis != nil {
		axis, err := animate.ParseAxis(*p.Axis)
		if err != nil {
			return animate.Config{}, err
		}
		cfg.Axis = &axis
	}
	return cfg, nil
}

// Load parses a preset document into named raw configurations.
func Load(data []byte) (map[string]animate.Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: unmarshal: %w", err)
	}

	out := make(map[string]animate.Config, len(doc.Presets))
	for name, p := range doc.Presets {
		cfg, err := p.Config()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out[name] = cfg
	}
	return out, nil
}

// LoadFile reads and parses a preset file.
func LoadFile(path string) (map[string]animate.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", path, err)
	}
	cfgs, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}
	return cfgs, nil
}
