// Package units holds the internal unit system and the physical constants
// expressed in it.
package units

import "fmt"

// Physical constants in cgs.
const (
	NewtonGCGS    = 6.67430e-8    // cm^3 g^-1 s^-2
	SpeedLightCGS = 2.99792458e10 // cm s^-1
	ProtonMassCGS = 1.67262192e-24
)

const (
	keyMass        = "InternalUnitSystem:UnitMass_in_cgs"
	keyLength      = "InternalUnitSystem:UnitLength_in_cgs"
	keyVelocity    = "InternalUnitSystem:UnitVelocity_in_cgs"
	keyCurrent     = "InternalUnitSystem:UnitCurrent_in_cgs"
	keyTemperature = "InternalUnitSystem:UnitTemp_in_cgs"
)

// Source is the subset of a parameter file the unit system reads.
type Source interface {
	OptFloat(key string, def float64) (float64, error)
}

// System is the internal unit system, each base unit given in cgs.
type System struct {
	UnitMass        float64
	UnitLength      float64
	UnitTime        float64
	UnitCurrent     float64
	UnitTemperature float64
}

func CGS() *System {
	return &System{UnitMass: 1, UnitLength: 1, UnitTime: 1, UnitCurrent: 1, UnitTemperature: 1}
}

// FromSource reads the InternalUnitSystem section. Missing units default to
// cgs. Time is derived from the length and velocity units.
func FromSource(src Source) (*System, error) {
	read := func(key string) (float64, error) {
		v, err := src.OptFloat(key, 1)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			return 0, fmt.Errorf("units: %s must be positive, got %g", key, v)
		}
		return v, nil
	}

	var us System
	var velocity float64
	var err error
	if us.UnitMass, err = read(keyMass); err != nil {
		return nil, err
	}
	if us.UnitLength, err = read(keyLength); err != nil {
		return nil, err
	}
	if velocity, err = read(keyVelocity); err != nil {
		return nil, err
	}
	if us.UnitCurrent, err = read(keyCurrent); err != nil {
		return nil, err
	}
	if us.UnitTemperature, err = read(keyTemperature); err != nil {
		return nil, err
	}
	us.UnitTime = us.UnitLength / velocity
	return &us, nil
}

// Constants are physical constants in internal units.
type Constants struct {
	NewtonG    float64
	SpeedLight float64
	ProtonMass float64
}

func NewConstants(us *System) *Constants {
	m, l, t := us.UnitMass, us.UnitLength, us.UnitTime
	return &Constants{
		NewtonG:    NewtonGCGS * m * t * t / (l * l * l),
		SpeedLight: SpeedLightCGS * t / l,
		ProtonMass: ProtonMassCGS / m,
	}
}
