package hydro

import "github.com/san-kum/hydroprops/internal/units"

// Viscosity holds the artificial viscosity parameters.
type Viscosity struct {
	// Alpha is the fixed viscosity of simple schemes, and the initial one for
	// variable schemes.
	Alpha float64
}

var _ SubModel = (*Viscosity)(nil)

// Init reads SPH:viscosity_alpha, defaulting to DefaultViscosityAlpha. It only
// fails when the source holds a value that is not a number.
func (v *Viscosity) Init(src Source, _ *units.System, _ *units.Constants) error {
	alpha, err := src.OptFloat(KeyViscosityAlpha, DefaultViscosityAlpha)
	if err != nil {
		return err
	}
	*v = Viscosity{Alpha: alpha}
	return nil
}

func (v *Viscosity) InitForTesting() {
	*v = Viscosity{Alpha: DefaultViscosityAlpha}
}

func (v *Viscosity) Report(log Logger) {
	log.Infof("Artificial viscosity parameters set to alpha: %.3f", v.Alpha)
}
