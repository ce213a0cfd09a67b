//go:build glm_double

package math

import gomath "math"

// Scalar is the component type shared by every vector and matrix in this build.
type Scalar = float64

// Precision is the bit width of Scalar.
const Precision = 64

const maxScalar Scalar = gomath.MaxFloat64

func sqrt(x Scalar) Scalar { return gomath.Sqrt(x) }
func abs(x Scalar) Scalar  { return gomath.Abs(x) }
func sin(x Scalar) Scalar  { return gomath.Sin(x) }
func cos(x Scalar) Scalar  { return gomath.Cos(x) }
func tan(x Scalar) Scalar  { return gomath.Tan(x) }
func acos(x Scalar) Scalar { return gomath.Acos(x) }
