package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"uniform": {
		Name:  "uniform",
		Grid:  GridConfig{Shape: [3]int{21, 21, 21}, Spacing: [3]float64{0.5, 0.5, 0.5}},
		Field: FieldConfig{Kind: "uniform"},
		Seeds: SeedConfig{Points: [][3]float64{{5, 5, 5}}},
		Trace: TraceConfig{Direction: 1, StepSize: 0.1, MaxSteps: 100},
	},
	"vortex": {
		Name:  "vortex",
		Grid:  GridConfig{Shape: [3]int{41, 41, 21}, Spacing: [3]float64{0.25, 0.25, 0.5}},
		Field: FieldConfig{Kind: "vortex"},
		Seeds: SeedConfig{Line: &SeedLine{From: [3]float64{5.5, 5, 0.5}, To: [3]float64{9.5, 5, 0.5}, N: 8}},
		Trace: TraceConfig{Direction: 1, StepSize: 0.05, MaxSteps: 2000},
	},
	"abc": {
		Name: "abc",
		Grid: GridConfig{
			Shape:   [3]int{33, 33, 33},
			Spacing: [3]float64{2 * math.Pi / 32, 2 * math.Pi / 32, 2 * math.Pi / 32},
			Cyclic:  [3]bool{true, true, true},
		},
		Field: FieldConfig{Kind: "abc"},
		Seeds: SeedConfig{Line: &SeedLine{From: [3]float64{0.5, 0.5, 0.5}, To: [3]float64{5.5, 5.5, 5.5}, N: 16}},
		Trace: TraceConfig{Direction: 0, StepSize: 0.05, MaxSteps: 1000},
	},
	"dipole": {
		Name:  "dipole",
		Grid:  GridConfig{Shape: [3]int{41, 41, 41}, Spacing: [3]float64{0.25, 0.25, 0.25}},
		Field: FieldConfig{Kind: "dipole", Params: map[string]float64{"eps": 0.2}},
		Seeds: SeedConfig{Line: &SeedLine{From: [3]float64{5.3, 5, 5.2}, To: [3]float64{6.5, 5, 5.2}, N: 12}},
		Trace: TraceConfig{Direction: 0, StepSize: 0.02, MaxSteps: 3000},
	},
	"shear": {
		Name: "shear",
		Grid: GridConfig{
			Coords: [][]float64{
				{0, 0.5, 1, 2, 4, 8, 10},
				{0, 1, 2, 3},
				{0, 0.25, 0.5, 1, 2, 5},
			},
			Cyclic: [3]bool{true, false, false},
		},
		Field: FieldConfig{Kind: "shear"},
		Seeds: SeedConfig{Line: &SeedLine{From: [3]float64{1, 1.5, 0.1}, To: [3]float64{1, 1.5, 4}, N: 6}},
		Trace: TraceConfig{Direction: 1, StepSize: 0.1, MaxSteps: 500},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
