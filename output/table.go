package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/adammck/quadruped"
	"github.com/adammck/quadruped/body"
	"github.com/adammck/quadruped/utils"
)

// WriteTable renders the joint angles (in degrees) and foot position of each
// leg as a table.
func WriteTable(w io.Writer, s *quadruped.Solution) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Leg", "Hip", "Shoulder", "Knee", "Foot X", "Foot Y", "Foot Z", "Status"})

	for _, l := range body.Legs {
		ls := s.Legs[l]
		foot := ls.Points.Foot()

		status := "ok"
		if ls.Err != nil {
			status = "unreachable"
		}

		t.AppendRow(table.Row{
			l.String(),
			degrees(ls.Angles.Hip),
			degrees(ls.Angles.Shoulder),
			degrees(ls.Angles.Knee),
			fmt.Sprintf("%.2f", foot.X),
			fmt.Sprintf("%.2f", foot.Y),
			fmt.Sprintf("%.2f", foot.Z),
			status,
		})
	}

	t.Render()
}

func degrees(rad float64) string {
	return fmt.Sprintf("%+.2f°", utils.Deg(rad))
}
