//go:build !nosnapshot

package main

import (
	"github.com/san-kum/hydroprops/internal/hydro"
	"github.com/san-kum/hydroprops/internal/snapshot"
	"github.com/san-kum/hydroprops/internal/units"
)

func writeSnapshot(props *hydro.Properties, us *units.System) (string, error) {
	st := snapshot.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}

	snap, err := st.Create(snapBase, snapIndex)
	if err != nil {
		return "", err
	}

	if err := writeUnits(snap.Group("Units"), us); err != nil {
		return "", err
	}
	if err := props.WriteSnapshot(snap.Group("HydroScheme")); err != nil {
		return "", err
	}
	if err := snap.Close(); err != nil {
		return "", err
	}
	return snap.ID(), nil
}

func writeUnits(g *snapshot.Group, us *units.System) error {
	attrs := []struct {
		name string
		v    float64
	}{
		{"Unit mass in cgs (U_M)", us.UnitMass},
		{"Unit length in cgs (U_L)", us.UnitLength},
		{"Unit time in cgs (U_t)", us.UnitTime},
		{"Unit current in cgs (U_I)", us.UnitCurrent},
		{"Unit temperature in cgs (U_T)", us.UnitTemperature},
	}
	for _, a := range attrs {
		if err := g.WriteFloat(a.name, a.v); err != nil {
			return err
		}
	}
	return nil
}
