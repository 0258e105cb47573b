package math3d

import (
	"fmt"
)

// Pose is a position and orientation, relative to some parent space.
type Pose struct {
	Position    Vector3
	Orientation EulerAngles
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, %s}", p.Position.X, p.Position.Y, p.Position.Z, p.Orientation)
}

// ToWorld returns a matrix to transform a vector in the pose's space into the
// parent space.
func (p Pose) ToWorld() Matrix44 {
	return MakeTransform(p.Position, p.Orientation)
}

// ToLocal returns a matrix to transform a vector in the parent space into the
// pose's space.
func (p Pose) ToLocal() Matrix44 {
	return p.ToWorld().RigidInverse()
}
