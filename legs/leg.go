package legs

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/adammck/quadruped/math3d"
	"github.com/adammck/quadruped/utils"
)

// LinkLengths are the fixed segment lengths of a single leg, in mm. The same
// lengths are used for all four legs.
type LinkLengths struct {

	// Offset from the hip yaw axis to the hip pitch joint, sideways from the
	// body.
	L1 float64

	// Offset from the hip pitch joint along the leg, in the hip yaw plane.
	L2 float64

	// Femur and tibia.
	L3 float64
	L4 float64
}

// Validate returns an error unless every length is positive.
func (ll LinkLengths) Validate() error {
	for i, l := range [4]float64{ll.L1, ll.L2, ll.L3, ll.L4} {
		if !(l > 0) || math.IsInf(l, 0) {
			return errors.Errorf("link length l%d must be positive, got %v", i+1, l)
		}
	}

	return nil
}

// Reach returns the minimum and maximum distance between the hip pitch joint
// and the foot.
func (ll LinkLengths) Reach() (float64, float64) {
	return math.Abs(ll.L3 - ll.L4), ll.L3 + ll.L4
}

// JointAngles are the three joint angles of a leg, in radians.
type JointAngles struct {
	Hip      float64 // ang1, yaw
	Shoulder float64 // ang2, pitch
	Knee     float64 // ang3
}

func (ja JointAngles) String() string {
	return fmt.Sprintf("&Angles{hip=%+.2f° shoulder=%+.2f° knee=%+.2f°}", utils.Deg(ja.Hip), utils.Deg(ja.Shoulder), utils.Deg(ja.Knee))
}

// Finite returns false if any of the angles are NaN or infinite, which is how
// IK reports a target that can't be reached.
func (ja JointAngles) Finite() bool {
	for _, a := range [3]float64{ja.Hip, ja.Shoulder, ja.Knee} {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return false
		}
	}

	return true
}

// ChainPoints are the positions of each joint along the leg, in the leg's own
// coordinate space: the hip origin, the hip pitch joint, the start of the
// femur, the knee, and the foot.
type ChainPoints [5]math3d.Vector4

// Foot returns the position of the end of the leg.
func (cp ChainPoints) Foot() math3d.Vector3 {
	return cp[4].Vector3()
}
