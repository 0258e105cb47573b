package quadruped

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/quadruped/body"
	"github.com/adammck/quadruped/legs"
	"github.com/adammck/quadruped/math3d"
)

var (
	links = legs.LinkLengths{L1: 25, L2: 20, L3: 80, L4: 80}
	dims  = body.Dimensions{Length: 120, Width: 90}
	pose  = body.Pose{Orientation: math3d.EulerAngles{Roll: 0.3, Pitch: 0.1, Yaw: -0.4}}

	// The stance used by the demo.
	feet = [body.NumLegs]math3d.Vector3{
		body.FrontLeft:  {X: 100, Y: -100, Z: 100},
		body.FrontRight: {X: 100, Y: -100, Z: -100},
		body.BackLeft:   {X: -100, Y: -100, Z: 100},
		body.BackRight:  {X: -100, Y: -100, Z: -100},
	}
)

func mustNew(t *testing.T) *Quadruped {
	q, err := New(links, dims)
	require.NoError(t, err)
	return q
}

func TestNew(t *testing.T) {
	_, err := New(links, dims)
	assert.NoError(t, err)

	_, err = New(legs.LinkLengths{L1: 25, L2: 20, L3: 80}, dims)
	assert.Error(t, err)

	_, err = New(links, body.Dimensions{Length: 120})
	assert.Error(t, err)

	_, err = New(links, body.Dimensions{Length: math.NaN(), Width: 90})
	assert.Error(t, err)
}

func TestSolveDemoStance(t *testing.T) {
	q := mustNew(t)
	s, err := q.Solve(context.Background(), pose, feet)
	require.NoError(t, err)
	require.NoError(t, s.Err())

	shoulders := s.Shoulders()
	for _, l := range body.Legs {
		ls := s.Legs[l]
		assert.Equal(t, l, ls.Leg)
		assert.True(t, ls.Angles.Finite(), "%s: %s", l, ls.Angles)

		// The chain starts at the hip and ends at the requested foot position.
		assert.InDelta(t, 0, ls.Points[0].Vector3().Distance(shoulders[l]), 1e-9, "%s hip", l)
		assert.InDelta(t, 0, ls.Points.Foot().Distance(feet[l]), 1e-4, "%s foot", l)
	}
}

// Every leg should reach the same position in its own space, if the world
// targets are built from that position.
func TestSolveLocalRoundTrip(t *testing.T) {
	q := mustNew(t)
	p := body.Pose{
		Orientation: math3d.EulerAngles{Roll: -0.2, Pitch: 0.25, Yaw: 0.6},
		Position:    math3d.Vector3{X: 10, Y: 80, Z: -5},
	}

	local := math3d.Vector3{X: -55, Y: -100, Z: 20}
	tf := body.IK(p, dims)

	var targets [body.NumLegs]math3d.Vector3
	for _, l := range body.Legs {
		targets[l] = local.MultiplyByMatrix44(legMatrix(tf, l))
	}

	s, err := q.Solve(context.Background(), p, targets)
	require.NoError(t, err)
	require.NoError(t, s.Err())

	exp := legs.IK(local.X, local.Y, local.Z, links)
	for _, l := range body.Legs {
		ls := s.Legs[l]
		assert.InDelta(t, 0, ls.Local.Distance(local), 1e-9, "%s", l)
		assert.InDelta(t, exp.Hip, ls.Angles.Hip, 1e-7, "%s", l)
		assert.InDelta(t, exp.Shoulder, ls.Angles.Shoulder, 1e-7, "%s", l)
		assert.InDelta(t, exp.Knee, ls.Angles.Knee, 1e-7, "%s", l)
		assert.InDelta(t, 0, ls.Points.Foot().Distance(targets[l]), 1e-4, "%s", l)
	}
}

func TestSolveUnreachable(t *testing.T) {
	q := mustNew(t)

	// Put the front left foot right on its own hip.
	targets := feet
	targets[body.FrontLeft] = q.Shoulders(pose)[body.FrontLeft]

	s, err := q.Solve(context.Background(), pose, targets)
	require.NoError(t, err)

	fl := s.Legs[body.FrontLeft]
	require.Error(t, fl.Err)
	assert.True(t, errors.Is(fl.Err, legs.ErrUnreachable))
	assert.False(t, fl.Angles.Finite())

	for _, l := range []body.Leg{body.FrontRight, body.BackLeft, body.BackRight} {
		assert.NoError(t, s.Legs[l].Err, "%s", l)
	}

	err = s.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FL")
	assert.NotContains(t, err.Error(), "BR")
}

func TestSolveCancelled(t *testing.T) {
	q := mustNew(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Solve(ctx, pose, feet)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShoulders(t *testing.T) {
	q := mustNew(t)
	sh := q.Shoulders(body.Pose{})

	assert.InDelta(t, 0, sh[body.FrontLeft].Distance(math3d.Vector3{X: 60, Z: 45}), 1e-9)
	assert.InDelta(t, 0, sh[body.FrontRight].Distance(math3d.Vector3{X: 60, Z: -45}), 1e-9)
	assert.InDelta(t, 0, sh[body.BackLeft].Distance(math3d.Vector3{X: -60, Z: 45}), 1e-9)
	assert.InDelta(t, 0, sh[body.BackRight].Distance(math3d.Vector3{X: -60, Z: -45}), 1e-9)
}

func TestSolveDeterministic(t *testing.T) {
	q := mustNew(t)
	a, err := q.Solve(context.Background(), pose, feet)
	require.NoError(t, err)
	b, err := q.Solve(context.Background(), pose, feet)
	require.NoError(t, err)
	assert.Equal(t, a.Legs, b.Legs)
}
