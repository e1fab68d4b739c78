package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAverageLap(t *testing.T) {
	sess := Session{
		Driver:   "Alex Keller",
		Track:    "Silver Pines",
		Vehicle:  VehicleGT3,
		LapTimes: [LapsPerSession]float64{100.0, 98.0, 102.0},
	}
	assert.InDelta(t, (100.0+98.0+102.0)/3.0, sess.AverageLap(), 0)
}

func TestSessionAverageLapZeroLaps(t *testing.T) {
	sess := Session{Vehicle: VehicleFormula}
	assert.InDelta(t, 0.0, sess.AverageLap(), 0)
}

func TestSessionAverageLapStable(t *testing.T) {
	sess := Session{LapTimes: [LapsPerSession]float64{95.13, 97.87, 101.42}}
	assert.InDelta(t, sess.AverageLap(), sess.AverageLap(), 0)
}

func TestSessionIsValueType(t *testing.T) {
	orig := Session{
		Driver:   "Robin Vance",
		LapTimes: [LapsPerSession]float64{70.5, 71.5, 69.0},
	}
	copied := orig
	copied.LapTimes[0] = 0.0
	assert.InDelta(t, 70.5, orig.LapTimes[0], 0)
}
