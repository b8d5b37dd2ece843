package selection

import (
	"fmt"

	"github.com/HendryAvila/kpimap/internal/catalog"
)

// Preset names accepted by Preset.
const (
	PresetDefault = "default"
	PresetEmpty   = "empty"
)

// PresetNames lists the available presets.
func PresetNames() []string {
	return []string{PresetDefault, PresetEmpty}
}

// Defaults returns the bundle the form starts with ("reset to defaults").
func Defaults() Selection {
	return Selection{
		Intents:     []string{catalog.IntentStrategic},
		Audiences:   []string{catalog.AudienceExecs},
		Latencies:   []string{catalog.LatencyMonthly},
		Maturity:    catalog.MaturityDaily,
		Scope:       catalog.ScopeFunction,
		Interaction: catalog.InteractionMinimal,
		Indicators:  catalog.IndicatorsBalanced,
	}
}

// Empty returns the cleared selection ("reset to empty").
func Empty() Selection {
	return Selection{
		Intents:   []string{},
		Audiences: []string{},
		Latencies: []string{},
	}
}

// Preset resolves a preset by name. An empty name means PresetEmpty.
func Preset(name string) (Selection, error) {
	switch name {
	case PresetDefault:
		return Defaults(), nil
	case PresetEmpty, "":
		return Empty(), nil
	default:
		return Selection{}, fmt.Errorf("unknown preset %q: must be one of: default, empty", name)
	}
}
