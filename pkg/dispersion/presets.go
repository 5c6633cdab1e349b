package dispersion

import "strings"

// Preset is a named material defined by its index of refraction at WavelengthRed
type Preset struct {
	Name           string
	ReferenceIndex float64
}

var presets = []Preset{
	{Name: "Air", ReferenceIndex: 1.000293},
	{Name: "Water", ReferenceIndex: 1.333},
	{Name: "Glass", ReferenceIndex: 1.5},
	{Name: "Diamond", ReferenceIndex: 2.419},
}

// Presets returns the built-in materials, from least to most dense
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a built-in material by case-insensitive name
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}

// Function builds the dispersion function for the preset, referenced to red
func (p Preset) Function() (*Function, error) {
	return NewAtRed(p.ReferenceIndex)
}
