package fields

import (
	"sort"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

var registry = map[string]func() Model{
	"uniform": func() Model { return NewUniform() },
	"vortex":  func() Model { return NewVortex() },
	"abc":     func() Model { return NewABC() },
	"dipole":  func() Model { return NewDipole() },
	"shear":   func() Model { return NewShear() },
}

// New returns the named model with params applied over its defaults.
// Unknown parameter names are rejected.
func New(kind string, params map[string]float64) (Model, error) {
	ctor, ok := registry[kind]
	if !ok {
		return nil, dynamo.Invalid("field", "unknown kind %q (available: %v)", kind, Kinds())
	}

	m := ctor()
	known := m.GetParams()
	for name, v := range params {
		if _, ok := known[name]; !ok {
			return nil, dynamo.Invalid("field", "%s has no parameter %q", kind, name)
		}
		m.SetParam(name, v)
	}
	return m, nil
}

// Kinds lists the registered model names in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
