package render

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/adammck/quadruped"
	"github.com/adammck/quadruped/body"
	"github.com/adammck/quadruped/math3d"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "render",
})

// View is the pair of world axes to project onto.
type View int

const (

	// Top looks down the Y axis, with X to the right and Z up the page.
	Top View = iota

	// Side looks along the Z axis, with X to the right and Y up the page.
	Side
)

func (v View) String() string {
	switch v {
	case Top:
		return "top"
	case Side:
		return "side"
	default:
		return "unknown"
	}
}

func (v View) project(p math3d.Vector3) plotter.XY {
	if v == Side {
		return plotter.XY{X: p.X, Y: p.Y}
	}

	return plotter.XY{X: p.X, Y: p.Z}
}

func (v View) labels() (string, string) {
	if v == Side {
		return "x (mm)", "y (mm)"
	}

	return "x (mm)", "z (mm)"
}

// Plot draws the body outline and each leg chain of the solution. Legs which
// couldn't be solved are left out, since their points are NaN.
func Plot(s *quadruped.Solution, v View) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "quadruped (" + v.String() + ")"
	p.X.Label.Text, p.Y.Label.Text = v.labels()

	// The body is the loop through the four hips.
	sh := s.Shoulders()
	outline := plotter.XYs{}
	for _, l := range []body.Leg{body.FrontLeft, body.FrontRight, body.BackRight, body.BackLeft, body.FrontLeft} {
		outline = append(outline, v.project(sh[l]))
	}

	bl, err := plotter.NewLine(outline)
	if err != nil {
		return nil, errors.Wrap(err, "while plotting body")
	}
	bl.LineStyle.Width = vg.Points(2)
	p.Add(bl)
	p.Legend.Add("body", bl)

	for i, l := range body.Legs {
		ls := s.Legs[l]
		if ls.Err != nil {
			log.Warnf("not plotting %s: %s", l, ls.Err)
			continue
		}

		xys := make(plotter.XYs, len(ls.Points))
		for j, pt := range ls.Points {
			xys[j] = v.project(pt.Vector3())
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "while plotting %s", l)
		}

		line.LineStyle.Color = plotutil.Color(i)
		points.GlyphStyle.Color = plotutil.Color(i)
		p.Add(line, points)
		p.Legend.Add(l.String(), line)
	}

	return p, nil
}

// SavePNG plots the solution and writes it to path. The format is picked from
// the file extension.
func SavePNG(path string, s *quadruped.Solution, v View) error {
	p, err := Plot(s, v)
	if err != nil {
		return err
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "while saving %s", path)
	}

	log.Infof("wrote %s view to %s", v, path)
	return nil
}
