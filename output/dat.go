package output

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/adammck/quadruped"
	"github.com/adammck/quadruped/body"
	"github.com/adammck/quadruped/math3d"
)

var (
	// The order in which the shoulder rows are written.
	shoulderOrder = []body.Leg{body.FrontLeft, body.FrontRight, body.BackRight, body.BackLeft}

	// The order in which each leg's chain is written.
	chainOrder = []body.Leg{body.FrontLeft, body.BackLeft, body.FrontRight, body.BackRight}
)

// blockSeparator ends a block of rows. Two blank lines is what gnuplot needs
// to treat each block as a separate data set (index).
const blockSeparator = "\n\n"

// WriteDat writes the solution in the tab-separated format that the plotting
// scripts read: a block of four shoulder positions, then one block of five
// joint positions per leg, all in the world space.
func WriteDat(w io.Writer, s *quadruped.Solution) error {
	bw := bufio.NewWriter(w)

	shoulders := s.Shoulders()
	for _, l := range shoulderOrder {
		writeRow(bw, shoulders[l])
	}
	bw.WriteString(blockSeparator)

	for _, l := range chainOrder {
		for _, p := range s.Legs[l].Points {
			writeRow(bw, p.Vector3())
		}
		bw.WriteString(blockSeparator)
	}

	return errors.Wrap(bw.Flush(), "write dat")
}

// SaveDat writes the solution to the file at path, replacing it.
func SaveDat(path string, s *quadruped.Solution) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create dat")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return WriteDat(f, s)
}

func writeRow(w *bufio.Writer, v math3d.Vector3) {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		w.WriteString(formatFloat(f))
		w.WriteByte('\t')
	}
	w.WriteByte('\n')
}

// formatFloat prints six significant digits, which is what the files have
// always contained.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
