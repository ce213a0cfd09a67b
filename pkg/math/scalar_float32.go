//go:build !glm_double

package math

import "github.com/chewxy/math32"

// Scalar is the component type shared by every vector and matrix in this build.
type Scalar = float32

// Precision is the bit width of Scalar.
const Precision = 32

const maxScalar Scalar = math32.MaxFloat32

func sqrt(x Scalar) Scalar { return math32.Sqrt(x) }
func abs(x Scalar) Scalar  { return math32.Abs(x) }
func sin(x Scalar) Scalar  { return math32.Sin(x) }
func cos(x Scalar) Scalar  { return math32.Cos(x) }
func tan(x Scalar) Scalar  { return math32.Tan(x) }
func acos(x Scalar) Scalar { return math32.Acos(x) }
