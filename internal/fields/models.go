package fields

import (
	"math"

	"github.com/san-kum/streamtrace/internal/dynamo"
)

type Model interface {
	Name() string
	At(p dynamo.Vec3) dynamo.Vec3
	GetParams() map[string]float64
	SetParam(name string, value float64)
}

type Uniform struct{ vx, vy, vz float64 }

func NewUniform() *Uniform                    { return &Uniform{1, 0, 0} }
func (u *Uniform) Name() string               { return "uniform" }
func (u *Uniform) At(dynamo.Vec3) dynamo.Vec3 { return dynamo.Vec3{u.vx, u.vy, u.vz} }
func (u *Uniform) GetParams() map[string]float64 {
	return map[string]float64{"vx": u.vx, "vy": u.vy, "vz": u.vz}
}
func (u *Uniform) SetParam(n string, v float64) {
	switch n {
	case "vx":
		u.vx = v
	case "vy":
		u.vy = v
	case "vz":
		u.vz = v
	}
}

// Vortex rotates about the line x=cx, y=cy with angular rate omega and
// moves along z at speed drift.
type Vortex struct{ cx, cy, omega, drift float64 }

func NewVortex() *Vortex       { return &Vortex{5, 5, 1, 0.2} }
func (v *Vortex) Name() string { return "vortex" }

func (v *Vortex) At(p dynamo.Vec3) dynamo.Vec3 {
	dx, dy := p[0]-v.cx, p[1]-v.cy
	return dynamo.Vec3{-v.omega * dy, v.omega * dx, v.drift}
}
func (v *Vortex) GetParams() map[string]float64 {
	return map[string]float64{"cx": v.cx, "cy": v.cy, "omega": v.omega, "drift": v.drift}
}
func (v *Vortex) SetParam(n string, val float64) {
	switch n {
	case "cx":
		v.cx = val
	case "cy":
		v.cy = val
	case "omega":
		v.omega = val
	case "drift":
		v.drift = val
	}
}

// ABC is the Arnold-Beltrami-Childress flow. It is periodic with period
// 2*pi on every axis, which makes it a natural fit for cyclic grids.
type ABC struct{ a, b, c float64 }

func NewABC() *ABC          { return &ABC{math.Sqrt(3), math.Sqrt(2), 1} }
func (f *ABC) Name() string { return "abc" }

func (f *ABC) At(p dynamo.Vec3) dynamo.Vec3 {
	x, y, z := p[0], p[1], p[2]
	return dynamo.Vec3{
		f.a*math.Sin(z) + f.c*math.Cos(y),
		f.b*math.Sin(x) + f.a*math.Cos(z),
		f.c*math.Sin(y) + f.b*math.Cos(x),
	}
}
func (f *ABC) GetParams() map[string]float64 {
	return map[string]float64{"a": f.a, "b": f.b, "c": f.c}
}
func (f *ABC) SetParam(n string, v float64) {
	switch n {
	case "a":
		f.a = v
	case "b":
		f.b = v
	case "c":
		f.c = v
	}
}

// Dipole is the field of a point dipole with moment along z, centred at
// (cx, cy, cz). eps softens the singularity at the centre.
type Dipole struct{ cx, cy, cz, moment, eps float64 }

func NewDipole() *Dipole       { return &Dipole{5, 5, 5, 1, 0.1} }
func (d *Dipole) Name() string { return "dipole" }

func (d *Dipole) At(p dynamo.Vec3) dynamo.Vec3 {
	r := dynamo.Vec3{p[0] - d.cx, p[1] - d.cy, p[2] - d.cz}
	r2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2] + d.eps*d.eps
	rInv := 1 / math.Sqrt(r2)
	r5Inv := rInv * rInv * rInv * rInv * rInv

	// B = (3 (m.r) r - m r^2) / r^5 with m = moment * z-hat.
	mr := d.moment * r[2]
	return dynamo.Vec3{
		3 * mr * r[0] * r5Inv,
		3 * mr * r[1] * r5Inv,
		(3*mr*r[2] - d.moment*r2) * r5Inv,
	}
}
func (d *Dipole) GetParams() map[string]float64 {
	return map[string]float64{"cx": d.cx, "cy": d.cy, "cz": d.cz, "moment": d.moment, "eps": d.eps}
}
func (d *Dipole) SetParam(n string, v float64) {
	switch n {
	case "cx":
		d.cx = v
	case "cy":
		d.cy = v
	case "cz":
		d.cz = v
	case "moment":
		d.moment = v
	case "eps":
		d.eps = v
	}
}

// Shear flows along x with speed base + rate*z, plus a constant vz.
type Shear struct{ base, rate, vz float64 }

func NewShear() *Shear        { return &Shear{0.5, 0.2, 0.05} }
func (s *Shear) Name() string { return "shear" }

func (s *Shear) At(p dynamo.Vec3) dynamo.Vec3 {
	return dynamo.Vec3{s.base + s.rate*p[2], 0, s.vz}
}
func (s *Shear) GetParams() map[string]float64 {
	return map[string]float64{"base": s.base, "rate": s.rate, "vz": s.vz}
}
func (s *Shear) SetParam(n string, v float64) {
	switch n {
	case "base":
		s.base = v
	case "rate":
		s.rate = v
	case "vz":
		s.vz = v
	}
}
