package model

// VehicleType identifies the vehicle class driven in a session. The
// numeric values match the choices of the vehicle menu.
type VehicleType int

const (
	VehicleGT3 VehicleType = iota + 1
	VehicleFormula
	VehicleRally
)

// base lap times in seconds per vehicle class
const (
	baseLapGT3     = 95.0
	baseLapFormula = 70.0
	baseLapRally   = 120.0
)

// VehicleTypes lists the known vehicle classes in menu order.
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleGT3, VehicleFormula, VehicleRally}
}

// BaseLapTime returns the reference lap duration in seconds for this
// vehicle class.
func (v VehicleType) BaseLapTime() float64 {
	switch v {
	case VehicleGT3:
		return baseLapGT3
	case VehicleFormula:
		return baseLapFormula
	default:
		// Rally and any unknown value share this branch on purpose:
		// a choice outside the menu behaves like Rally.
		return baseLapRally
	}
}

func (v VehicleType) String() string {
	switch v {
	case VehicleGT3:
		return "GT3"
	case VehicleFormula:
		return "Formula"
	default:
		return "Rally"
	}
}
