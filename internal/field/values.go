package field

import "github.com/san-kum/streamtrace/internal/dynamo"

// Values is a borrowed view of a (nx, ny, nz, 3) tensor stored row-major.
type Values struct {
	Shape [4]int
	Data  []float64
}

// NewValues allocates a zero-filled (nx, ny, nz, 3) tensor.
func NewValues(nx, ny, nz int) Values {
	return Values{
		Shape: [4]int{nx, ny, nz, 3},
		Data:  make([]float64, nx*ny*nz*3),
	}
}

func (v Values) offset(i, j, k int) int {
	return ((i*v.Shape[1]+j)*v.Shape[2] + k) * v.Shape[3]
}

// At returns the vector stored at grid index (i, j, k).
func (v Values) At(i, j, k int) dynamo.Vec3 {
	o := v.offset(i, j, k)
	return dynamo.Vec3{v.Data[o], v.Data[o+1], v.Data[o+2]}
}

// Set stores vec at grid index (i, j, k).
func (v Values) Set(i, j, k int, vec dynamo.Vec3) {
	o := v.offset(i, j, k)
	v.Data[o] = vec[0]
	v.Data[o+1] = vec[1]
	v.Data[o+2] = vec[2]
}

// Fill calls fn for every grid index and stores the returned vector.
func (v Values) Fill(fn func(i, j, k int) dynamo.Vec3) {
	for i := 0; i < v.Shape[0]; i++ {
		for j := 0; j < v.Shape[1]; j++ {
			for k := 0; k < v.Shape[2]; k++ {
				v.Set(i, j, k, fn(i, j, k))
			}
		}
	}
}
