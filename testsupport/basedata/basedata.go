package basedata

import (
	"github.com/msimtools/motorsport-session-manager-go/pkg/model"
)

func SampleSession() model.Session {
	return model.Session{
		Driver:   "Ann Dale",
		Track:    "Monzetta",
		Vehicle:  model.VehicleGT3,
		LapTimes: [model.LapsPerSession]float64{100, 98, 102},
	}
}

func SampleSessions() []model.Session {
	return []model.Session{
		SampleSession(),
		{
			Driver:   "Robin Vance",
			Track:    "Nordwald",
			Vehicle:  model.VehicleFormula,
			LapTimes: [model.LapsPerSession]float64{70.5, 70.5, 70.5},
		},
	}
}
