package legs

import (
	"math"

	"github.com/pkg/errors"

	"github.com/adammck/quadruped/math3d"
)

// ErrUnreachable is returned (wrapped) by Solve when the target can't be
// reached by the leg.
var ErrUnreachable = errors.New("target out of reach")

// IK returns the joint angles needed to put the foot at x,y,z in the leg's
// coordinate space. There are no checks; a target which can't be reached
// produces NaN angles. Use Solve to get an error instead.
//
// Seen from above, the hip yaw joint is at the origin and the leg must first
// travel l1 sideways before it can reach out. The remaining horizontal
// distance (f) minus the l2 offset leaves g, which together with z is a plain
// two-link problem for the femur (l3) and tibia (l4):
//
//            (knee)
//             /  \
//           l3    l4
//           /      \
//   (shoulder)      \
//        \___h___  (foot)
//          g   z
func IK(x, y, z float64, links LinkLengths) JointAngles {
	ja := JointAngles{}

	f := math.Sqrt(x*x + y*y - links.L1*links.L1)
	g := f - links.L2
	h := math.Sqrt(g*g + z*z)

	ja.Hip = -math.Atan2(y, x) - math.Atan2(f, -links.L1)

	d := (h*h - links.L3*links.L3 - links.L4*links.L4) / (2 * links.L3 * links.L4)
	ja.Knee = math.Acos(d)

	ja.Shoulder = math.Atan2(z, g) - math.Atan2(links.L4*math.Sin(ja.Knee), links.L3+links.L4*math.Cos(ja.Knee))

	return ja
}

// Solve is IK with the two ways of failing turned into errors. The angles are
// returned either way, so the caller can still see what went wrong.
func Solve(target math3d.Vector3, links LinkLengths) (JointAngles, error) {
	ja := IK(target.X, target.Y, target.Z, links)

	if !target.Finite() {
		return ja, errors.Wrapf(ErrUnreachable, "target %s is not finite", target)
	}

	r := target.X*target.X + target.Y*target.Y
	if r < links.L1*links.L1 {
		return ja, errors.Wrapf(ErrUnreachable, "target %s is within the hip offset (%0.2f)", target, links.L1)
	}

	if !ja.Finite() {
		lo, hi := links.Reach()
		return ja, errors.Wrapf(ErrUnreachable, "target %s is outside the femur/tibia reach (%0.2f-%0.2f)", target, lo, hi)
	}

	return ja, nil
}

// Points returns the position of each joint along the leg, in the leg's
// coordinate space, for the given angles. This is the inverse of IK.
func Points(ja JointAngles, links LinkLengths) ChainPoints {
	s1, c1 := math.Sincos(ja.Hip)
	s2, c2 := math.Sincos(ja.Shoulder)
	s23, c23 := math.Sincos(ja.Shoulder + ja.Knee)

	t0 := math3d.Origin

	t1 := t0
	t1[0] += -links.L1 * c1
	t1[1] += links.L1 * s1

	t2 := t1
	t2[0] += -links.L2 * s1
	t2[1] += -links.L2 * c1

	t3 := t2
	t3[0] += -links.L3 * s1 * c2
	t3[1] += -links.L3 * c1 * c2
	t3[2] += links.L3 * s2

	t4 := t3
	t4[0] += -links.L4 * s1 * c23
	t4[1] += -links.L4 * c1 * c23
	t4[2] += links.L4 * s23

	return ChainPoints{t0, t1, t2, t3, t4}
}
