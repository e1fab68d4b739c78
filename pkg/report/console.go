package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/msimtools/motorsport-session-manager-go/pkg/model"
)

// RenderSummary writes a table of the given sessions with their
// average lap times and the overall average as footer. Console only,
// the report file keeps its own flat format.
func RenderSummary(w io.Writer, sessions []model.Session, overallAvg float64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Driver", "Track", "Vehicle", "Lap Times", "Avg Lap"})
	t.AppendRows(lo.Map(sessions, func(sess model.Session, i int) table.Row {
		return table.Row{
			i + 1,
			sess.Driver,
			sess.Track,
			sess.Vehicle.String(),
			formatLaps(sess.LapTimes),
			fmt.Sprintf("%.2f", sess.AverageLap()),
		}
	}))
	t.AppendFooter(table.Row{"", "", "", "", "Overall",
		fmt.Sprintf("%.2f", overallAvg)})
	t.Render()
}

func formatLaps(laps [model.LapsPerSession]float64) string {
	parts := lo.Map(laps[:], func(lap float64, _ int) string {
		return fmt.Sprintf("%.2f", lap)
	})
	return strings.Join(parts, " ")
}
