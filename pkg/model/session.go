package model

// LapsPerSession is the number of timed laps each session records.
// Sessions always carry exactly this many lap times.
const LapsPerSession = 3

// Session is one recorded driving run. It is a plain value type:
// assigning or storing a session copies it including the lap times.
type Session struct {
	Driver   string
	Track    string
	Vehicle  VehicleType
	LapTimes [LapsPerSession]float64
}

// AverageLap returns the arithmetic mean of the lap times. No
// rounding is applied, rounding is left to the output layers.
func (s Session) AverageLap() float64 {
	var total float64
	for _, lapTime := range s.LapTimes {
		total += lapTime
	}
	return total / LapsPerSession
}
