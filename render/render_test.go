package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adammck/quadruped"
	"github.com/adammck/quadruped/body"
	"github.com/adammck/quadruped/config"
)

func solve(t *testing.T, cfg *config.Config) *quadruped.Solution {
	q, err := quadruped.New(cfg.LinkLengths(), cfg.Dimensions())
	require.NoError(t, err)

	s, err := q.Solve(context.Background(), cfg.BodyPose(), cfg.FootTargets())
	require.NoError(t, err)
	return s
}

func TestPlot(t *testing.T) {
	s := solve(t, config.Default())

	for _, v := range []View{Top, Side} {
		p, err := Plot(s, v)
		require.NoError(t, err)
		assert.Contains(t, p.Title.Text, v.String())
	}
}

func TestPlotSkipsUnreachable(t *testing.T) {
	cfg := config.Default()
	cfg.Feet.BackLeft = [3]float64{1000, 1000, 1000}

	s := solve(t, cfg)
	require.Error(t, s.Legs[body.BackLeft].Err)

	_, err := Plot(s, Top)
	assert.NoError(t, err)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.png")
	require.NoError(t, SavePNG(path, solve(t, config.Default()), Top))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}

func TestProject(t *testing.T) {
	s := solve(t, config.Default())
	foot := s.Legs[body.FrontLeft].Points.Foot()

	assert.Equal(t, foot.Z, Top.project(foot).Y)
	assert.Equal(t, foot.Y, Side.project(foot).Y)
	assert.Equal(t, "unknown", View(9).String())
}
