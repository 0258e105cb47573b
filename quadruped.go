package quadruped

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/adammck/quadruped/body"
	"github.com/adammck/quadruped/legs"
	"github.com/adammck/quadruped/math3d"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "quadruped",
})

// mirror flips the X axis. The right legs are built as mirror images of the
// left legs, so their targets are flipped into the left-leg space before
// solving, and their joints flipped back afterwards.
var mirror = math3d.MakeMatrix44(
	-1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1)

// Quadruped is the fixed geometry of a four-legged robot.
type Quadruped struct {
	Links legs.LinkLengths
	Dims  body.Dimensions
}

// New returns a Quadruped, or an error if the geometry is nonsense.
func New(links legs.LinkLengths, dims body.Dimensions) (*Quadruped, error) {
	if err := links.Validate(); err != nil {
		return nil, err
	}

	if !(dims.Length > 0) || !(dims.Width > 0) {
		return nil, errors.Errorf("body length and width must be positive, got %vx%v", dims.Length, dims.Width)
	}

	return &Quadruped{
		Links: links,
		Dims:  dims,
	}, nil
}

// LegSolution is the result of solving a single leg.
type LegSolution struct {
	Leg body.Leg

	// The requested foot position, in the world space, and the same position
	// in the leg space (after mirroring, for the right legs).
	Target math3d.Vector3
	Local  math3d.Vector3

	Angles legs.JointAngles

	// Joint positions in the world space, from the hip to the foot.
	Points legs.ChainPoints

	// Non-nil if the target could not be reached. The angles and points are
	// NaN in that case, but are kept so that they can still be dumped.
	Err error
}

// Solution is the result of solving the whole robot for one pose.
type Solution struct {
	Pose       body.Pose
	Transforms body.Transforms
	Legs       [body.NumLegs]LegSolution
}

// Shoulders returns the world position of each hip.
func (s *Solution) Shoulders() [body.NumLegs]math3d.Vector3 {
	var v [body.NumLegs]math3d.Vector3
	for _, l := range body.Legs {
		v[l] = s.Transforms.Shoulder(l)
	}
	return v
}

// Err returns a combined error for every leg whose target was unreachable, or
// nil if all of them were solved.
func (s *Solution) Err() error {
	var err error
	for _, ls := range s.Legs {
		if ls.Err != nil {
			err = multierr.Append(err, errors.Wrapf(ls.Err, "%s", ls.Leg))
		}
	}
	return err
}

// Shoulders returns the world position of each hip for the given body pose.
func (q *Quadruped) Shoulders(pose body.Pose) [body.NumLegs]math3d.Vector3 {
	s := Solution{Transforms: body.IK(pose, q.Dims)}
	return s.Shoulders()
}

// legMatrix returns the matrix which transforms a vector in the given leg's
// (mirrored, if necessary) space into the world space.
func legMatrix(tf body.Transforms, l body.Leg) math3d.Matrix44 {
	m := tf.Leg(l)
	if l.Mirrored() {
		m = math3d.MultiplyMatrices(m, mirror)
	}
	return m
}

// Solve calculates the joint angles needed to hold the body in the given pose
// with each foot at the given world position. The legs are independent, so
// they're solved concurrently.
//
// Unreachable feet don't cause an error here; check Solution.Err. An error is
// only returned if the pose can't be solved at all.
func (q *Quadruped) Solve(ctx context.Context, pose body.Pose, feet [body.NumLegs]math3d.Vector3) (*Solution, error) {
	s := &Solution{
		Pose:       pose,
		Transforms: body.IK(pose, q.Dims),
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, l := range body.Legs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ls, err := q.solveLeg(s.Transforms, l, feet[l])
			if err != nil {
				return err
			}

			s.Legs[l] = ls
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s, nil
}

func (q *Quadruped) solveLeg(tf body.Transforms, l body.Leg, target math3d.Vector3) (LegSolution, error) {
	m := legMatrix(tf, l)

	inv, err := m.Inverse()
	if err != nil {
		return LegSolution{}, errors.Wrapf(err, "while inverting %s transform", l)
	}

	local := target.MultiplyByMatrix44(inv)
	angles, err := legs.Solve(local, q.Links)
	if err != nil {
		log.Warnf("%s: %s", l, err)
	}

	pts := legs.Points(angles, q.Links)
	for i := range pts {
		pts[i] = m.MultiplyVector(pts[i])
	}

	log.Debugf("%s world=%v, local=%v, angles=%v", l, target, local, angles)

	return LegSolution{
		Leg:    l,
		Target: target,
		Local:  local,
		Angles: angles,
		Points: pts,
		Err:    err,
	}, nil
}
