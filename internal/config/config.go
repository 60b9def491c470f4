package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/streamtrace/internal/dynamo"
	"github.com/san-kum/streamtrace/internal/fields"
	"github.com/san-kum/streamtrace/internal/grid"
)

const (
	DefaultStepSize  = 0.1
	DefaultMaxSteps  = 1000
	DefaultDirection = 1
	DefaultPoints    = 21
	DefaultSpacing   = 0.5
)

type Config struct {
	Name  string      `yaml:"name"`
	Grid  GridConfig  `yaml:"grid"`
	Field FieldConfig `yaml:"field"`
	Seeds SeedConfig  `yaml:"seeds"`
	Trace TraceConfig `yaml:"trace"`
}

// GridConfig gives either Shape with Spacing and Origin, or explicit Coords.
type GridConfig struct {
	Shape   [3]int      `yaml:"shape"`
	Spacing [3]float64  `yaml:"spacing"`
	Origin  [3]float64  `yaml:"origin"`
	Coords  [][]float64 `yaml:"coords,omitempty"`
	Cyclic  [3]bool     `yaml:"cyclic"`
}

type FieldConfig struct {
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// SeedConfig lists explicit points and/or a line of N evenly spaced seeds
// from From to To.
type SeedConfig struct {
	Points [][3]float64 `yaml:"points,omitempty"`
	Line   *SeedLine    `yaml:"line,omitempty"`
}

type SeedLine struct {
	From [3]float64 `yaml:"from"`
	To   [3]float64 `yaml:"to"`
	N    int        `yaml:"n"`
}

type TraceConfig struct {
	Direction int     `yaml:"direction"`
	StepSize  float64 `yaml:"step_size"`
	MaxSteps  int     `yaml:"max_steps"`
	Workers   int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "uniform",
		Grid: GridConfig{
			Shape:   [3]int{DefaultPoints, DefaultPoints, DefaultPoints},
			Spacing: [3]float64{DefaultSpacing, DefaultSpacing, DefaultSpacing},
		},
		Field: FieldConfig{Kind: "uniform"},
		Seeds: SeedConfig{Points: [][3]float64{{5, 5, 5}}},
		Trace: TraceConfig{
			Direction: DefaultDirection,
			StepSize:  DefaultStepSize,
			MaxSteps:  DefaultMaxSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Seeds = SeedConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	if c.Grid.Coords != nil {
		out.Grid.Coords = make([][]float64, len(c.Grid.Coords))
		for i, axis := range c.Grid.Coords {
			out.Grid.Coords[i] = append([]float64(nil), axis...)
		}
	}
	if c.Field.Params != nil {
		out.Field.Params = make(map[string]float64, len(c.Field.Params))
		for k, v := range c.Field.Params {
			out.Field.Params[k] = v
		}
	}
	out.Seeds.Points = append([][3]float64(nil), c.Seeds.Points...)
	if c.Seeds.Line != nil {
		line := *c.Seeds.Line
		out.Seeds.Line = &line
	}
	return &out
}

// Validate checks the parts of the config that the grid and tracer do not
// check themselves.
func (c *Config) Validate() error {
	if c.Trace.Direction < -1 || c.Trace.Direction > 1 {
		return dynamo.Invalid("trace", "direction must be -1, 0 or 1, got %d", c.Trace.Direction)
	}
	if c.Grid.Coords == nil {
		for a := 0; a < 3; a++ {
			if c.Grid.Shape[a] < 2 {
				return dynamo.Invalid("grid", "shape along %s must be at least 2, got %d", dynamo.AxisName(a), c.Grid.Shape[a])
			}
		}
	} else if len(c.Grid.Coords) != 3 {
		return dynamo.Invalid("grid", "coords must list 3 axes, got %d", len(c.Grid.Coords))
	}
	if c.Seeds.Line != nil && c.Seeds.Line.N < 1 {
		return dynamo.Invalid("seeds", "line needs at least 1 seed, got %d", c.Seeds.Line.N)
	}
	if len(c.SeedPoints()) == 0 {
		return dynamo.Invalid("seeds", "no seeds given")
	}
	return nil
}

// Coords returns the physical grid coordinates.
func (c *Config) Coords() [3][]float64 {
	var coords [3][]float64
	if c.Grid.Coords != nil {
		copy(coords[:], c.Grid.Coords)
		return coords
	}
	for a := 0; a < 3; a++ {
		coords[a] = grid.UniformAxis(c.Grid.Shape[a], c.Grid.Spacing[a], c.Grid.Origin[a])
	}
	return coords
}

// BuildGrid samples the configured field model onto the configured grid.
// Cyclic axes are made exactly periodic after sampling.
func (c *Config) BuildGrid() (*grid.VectorGrid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	model, err := fields.New(c.Field.Kind, c.Field.Params)
	if err != nil {
		return nil, err
	}

	coords := c.Coords()
	values := fields.Sample(model, coords)
	for a, cyclic := range c.Grid.Cyclic {
		if cyclic {
			fields.MakePeriodic(values, a)
		}
	}

	if c.Grid.Coords != nil {
		return grid.NewRectilinear(values, coords, c.Grid.Cyclic)
	}
	return grid.NewUniform(values, c.Grid.Spacing, c.Grid.Origin, c.Grid.Cyclic)
}

// SeedPoints expands the seed section into a flat list.
func (c *Config) SeedPoints() []dynamo.Vec3 {
	seeds := make([]dynamo.Vec3, 0, len(c.Seeds.Points))
	for _, p := range c.Seeds.Points {
		seeds = append(seeds, dynamo.Vec3(p))
	}

	if l := c.Seeds.Line; l != nil && l.N > 0 {
		from, to := dynamo.Vec3(l.From), dynamo.Vec3(l.To)
		for i := 0; i < l.N; i++ {
			s := 0.0
			if l.N > 1 {
				s = float64(i) / float64(l.N-1)
			}
			seeds = append(seeds, from.Add(to.Sub(from).Scale(s)))
		}
	}
	return seeds
}

func (c *Config) String() string {
	return fmt.Sprintf("%s: %s field on %v grid, %d seeds, step %g x %d", c.Name, c.Field.Kind, c.Grid.Shape, len(c.SeedPoints()), c.Trace.StepSize, c.Trace.MaxSteps)
}
