package math3d

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vector4 is a homogeneous column vector (x, y, z, w).
type Vector4 [4]float64

// Origin is the homogeneous point at 0,0,0.
var Origin = Vector4{0, 0, 0, 1}

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Finite returns true if none of the components are NaN or infinite.
func (v Vector3) Finite() bool {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Add adds two vectors, and returns a pointer to the result.
func (v Vector3) Add(vv Vector3) *Vector3 {
	return &Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

// Subtract returns v - vv.
func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.Subtract(vv).Magnitude()
}

// Homogeneous returns the vector as a point, with w=1.
func (v Vector3) Homogeneous() Vector4 {
	return Vector4{v.X, v.Y, v.Z, 1}
}

// MultiplyByMatrix44 treats the vector as a point and returns m·v.
func (v Vector3) MultiplyByMatrix44(m Matrix44) Vector3 {
	return m.MultiplyVector(v.Homogeneous()).Vector3()
}

// Vector3 drops the homogeneous component.
func (v Vector4) Vector3() Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func (v Vector4) String() string {
	return fmt.Sprintf("&Vec4{x=%0.2f y=%0.2f z=%0.2f w=%0.2f}", v[0], v[1], v[2], v[3])
}
