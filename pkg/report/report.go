// Package report renders recorded sessions: the flat fixed width
// report file and a console summary table.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/msimtools/motorsport-session-manager-go/pkg/model"
)

// column widths of the report, all columns are left aligned
const (
	widthDriver  = 15
	widthTrack   = 15
	widthVehicle = 10
	widthAvgLap  = 12
)

// Row is one report line, a session paired with its average lap time.
type Row struct {
	Session model.Session
	AvgLap  float64
}

// NewRow pairs a session with its computed average lap time.
func NewRow(sess model.Session) Row {
	return Row{Session: sess, AvgLap: sess.AverageLap()}
}

// Write renders the header line followed by one line per row. The
// average keeps up to six significant digits, display rounding is
// left to console layers. Overlong values push their line beyond the
// column width instead of being truncated.
func Write(w io.Writer, rows ...Row) error {
	if _, err := fmt.Fprintf(w, "%-*s%-*s%-*s%-*s\n",
		widthDriver, "Driver",
		widthTrack, "Track",
		widthVehicle, "Vehicle",
		widthAvgLap, "Avg Lap"); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-*s%-*s%-*s%-*s\n",
			widthDriver, row.Session.Driver,
			widthTrack, row.Session.Track,
			widthVehicle, row.Session.Vehicle.String(),
			widthAvgLap, formatAvg(row.AvgLap)); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	return nil
}

// WriteFile writes the report to path, replacing an existing file.
func WriteFile(path string, rows ...Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := Write(f, rows...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatAvg(avg float64) string {
	return strconv.FormatFloat(avg, 'g', 6, 64)
}
