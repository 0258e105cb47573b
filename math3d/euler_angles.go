package math3d

import (
	"fmt"
	"math"

	"github.com/adammck/quadruped/utils"
)

// EulerAngles is a body orientation, in radians. The rotations are applied as
// Rx(Roll)·Ry(Pitch)·Rz(Yaw).
type EulerAngles struct {
	Roll  float64 // x, omega
	Pitch float64 // y, phi
	Yaw   float64 // z, psi
}

var (
	IdentityOrientation = EulerAngles{}
)

// EulerDegrees returns the orientation for the given angles in degrees.
func EulerDegrees(roll float64, pitch float64, yaw float64) EulerAngles {
	return EulerAngles{utils.Rad(roll), utils.Rad(pitch), utils.Rad(yaw)}
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{r=%+.2f° p=%+.2f° y=%+.2f°}", utils.Deg(ea.Roll), utils.Deg(ea.Pitch), utils.Deg(ea.Yaw))
}

// Matrix returns the combined rotation Rx·Ry·Rz. The order matters; the leg
// mounting offsets assume it.
func (ea EulerAngles) Matrix() Matrix44 {
	return Chain(RotationX(ea.Roll), RotationY(ea.Pitch), RotationZ(ea.Yaw))
}

// RotationX returns a right-handed rotation about the X axis.
func RotationX(a float64) Matrix44 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix44{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a right-handed rotation about the Y axis.
func RotationY(a float64) Matrix44 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix44{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a right-handed rotation about the Z axis.
func RotationZ(a float64) Matrix44 {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix44{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}
