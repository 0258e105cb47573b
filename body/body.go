package body

import (
	"fmt"

	"github.com/adammck/quadruped/math3d"
)

// Leg identifies one of the four legs.
type Leg int

const (
	FrontLeft Leg = iota
	FrontRight
	BackLeft
	BackRight
)

// NumLegs is the number of legs. Arrays indexed by Leg have this length.
const NumLegs = 4

// Legs lists every leg, in index order.
var Legs = [NumLegs]Leg{FrontLeft, FrontRight, BackLeft, BackRight}

// mounting describes where each hip sits on the body, as a multiple of the
// half length (x) and half width (z), and whether the leg is built as the
// mirror image of the left legs.
type mounting struct {
	name     string
	x        float64
	z        float64
	mirrored bool
}

var mountings = [NumLegs]mounting{
	FrontLeft:  {"FL", +1, +1, false},
	FrontRight: {"FR", +1, -1, true},
	BackLeft:   {"BL", -1, +1, false},
	BackRight:  {"BR", -1, -1, true},
}

func (l Leg) valid() bool {
	return l >= 0 && int(l) < NumLegs
}

func (l Leg) String() string {
	if !l.valid() {
		return fmt.Sprintf("Leg(%d)", int(l))
	}

	return mountings[l].name
}

// Mirrored returns true for the right legs, whose local X axis is flipped
// relative to the left legs. Unknown legs are never mirrored.
func (l Leg) Mirrored() bool {
	if !l.valid() {
		return false
	}

	return mountings[l].mirrored
}

// Dimensions are the distances between the hips, in mm.
type Dimensions struct {
	Length float64 // front to back, X
	Width  float64 // left to right, Z
}

// Pose is the orientation and position of the body, relative to the world.
type Pose struct {
	Orientation math3d.EulerAngles
	Position    math3d.Vector3
}

func (p Pose) String() string {
	return math3d.Pose{Position: p.Position, Orientation: p.Orientation}.String()
}
