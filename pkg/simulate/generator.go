// Package simulate produces session data: pseudo random lap times
// derived from a vehicle's base lap time and the console input
// collector of the interactive recorder.
package simulate

import (
	"math/rand"
	"time"

	"github.com/msimtools/motorsport-session-manager-go/pkg/model"
)

// lap offsets are drawn from [0s, 9.99s] in steps of 10ms
const offsetSteps = 1000

// LapTimeGenerator creates lap times for a vehicle class. Create
// instances with NewLapTimeGenerator.
type LapTimeGenerator struct {
	rnd *rand.Rand
}

type Option func(*LapTimeGenerator)

// WithRand supplies the random source to use. Tests inject a seeded
// source to get reproducible laps.
func WithRand(rnd *rand.Rand) Option {
	return func(g *LapTimeGenerator) {
		g.rnd = rnd
	}
}

// WithSeed derives the random source from a fixed seed.
func WithSeed(seed int64) Option {
	return func(g *LapTimeGenerator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

func NewLapTimeGenerator(opts ...Option) *LapTimeGenerator {
	ret := &LapTimeGenerator{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.rnd == nil {
		ret.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return ret
}

// LapTimes generates one session worth of lap times. Each lap is the
// vehicle's base lap time plus a random offset below 10 seconds.
func (g *LapTimeGenerator) LapTimes(vehicle model.VehicleType) [model.LapsPerSession]float64 {
	base := vehicle.BaseLapTime()
	var laps [model.LapsPerSession]float64
	for i := range laps {
		laps[i] = base + float64(g.rnd.Intn(offsetSteps))/100.0
	}
	return laps
}

// RandomSession builds a complete sample session from the sample
// pools. Used by demo runs.
func (g *LapTimeGenerator) RandomSession() model.Session {
	vehicles := model.VehicleTypes()
	vehicle := vehicles[g.rnd.Intn(len(vehicles))]
	return model.Session{
		Driver:   sampleDrivers[g.rnd.Intn(len(sampleDrivers))],
		Track:    sampleTracks[g.rnd.Intn(len(sampleTracks))],
		Vehicle:  vehicle,
		LapTimes: g.LapTimes(vehicle),
	}
}
