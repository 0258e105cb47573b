package body

import (
	"math"

	"github.com/adammck/quadruped/math3d"
)

// Transforms are the matrices produced by IK. Each leg matrix transforms a
// vector in that leg's coordinate space into the world space.
type Transforms struct {
	Legs [NumLegs]math3d.Matrix44

	// Body transforms a vector in the body's space into the world space.
	Body math3d.Matrix44
}

// Leg returns the transform of the given leg.
func (t Transforms) Leg(l Leg) math3d.Matrix44 {
	return t.Legs[l]
}

// Shoulder returns the position of the given leg's hip in the world space.
func (t Transforms) Shoulder(l Leg) math3d.Vector3 {
	return t.Legs[l].MultiplyVector(math3d.Origin).Vector3()
}

// Mounting returns the fixed transform from a leg's space into the body
// space: a quarter turn about Y, and the hip offset.
func Mounting(l Leg, dims Dimensions) math3d.Matrix44 {
	m := mountings[l]
	s, c := math.Sincos(math.Pi / 2)

	return math3d.Matrix44{
		{c, 0, s, m.x * dims.Length / 2},
		{0, 1, 0, 0},
		{-s, 0, c, m.z * dims.Width / 2},
		{0, 0, 0, 1},
	}
}

// IK returns the transform of each leg (and of the body itself) for the given
// body pose. Nothing is validated; zero or negative dimensions just produce
// strange matrices.
func IK(pose Pose, dims Dimensions) Transforms {
	rxyz := pose.Orientation.Matrix()

	// The translation is added to the rotation, rather than multiplied. This
	// only works because t is zero everywhere except the fourth column, where
	// rxyz is zero (apart from the bottom right corner).
	t := math3d.Matrix44{
		{0, 0, 0, pose.Position.X},
		{0, 0, 0, pose.Position.Y},
		{0, 0, 0, pose.Position.Z},
		{0, 0, 0, 0},
	}

	tm := math3d.Add(t, rxyz)

	tf := Transforms{Body: tm}
	for _, l := range Legs {
		tf.Legs[l] = math3d.MultiplyMatrices(tm, Mounting(l, dims))
	}

	return tf
}
