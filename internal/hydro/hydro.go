// Package hydro holds the parameters of the physics sub-models attached to
// the Gadget-2 flavour of SPH: artificial viscosity, thermal diffusion and,
// in builds tagged mhd, MHD dissipation and divergence cleaning.
//
// Every sub-model follows the same lifecycle. A record is filled exactly once,
// either by Init from a parameter source or by InitForTesting, and is
// read-only afterwards. Report logs it at startup and, unless the build is
// tagged nosnapshot, WriteSnapshot stores it as snapshot metadata.
package hydro

import (
	"errors"

	"github.com/san-kum/hydroprops/internal/units"
)

// Scheme names the SPH flavour these parameters belong to.
const Scheme = "Gadget-2 version of SPH (Springel 2005)"

// ViscosityBeta is fixed at compile time, see Price (2010) eqn 103.
const ViscosityBeta = 3.0

// Defaults for run-time parameters.
const (
	// DefaultViscosityAlpha is the initial viscosity, or the fixed value for
	// non-variable schemes.
	DefaultViscosityAlpha = 0.8

	// DefaultViscosityAlphaFeedbackReset is the viscosity particles are reset
	// to after being hit by a feedback event. For fixed schemes it matches
	// DefaultViscosityAlpha.
	DefaultViscosityAlphaFeedbackReset = 0.8

	DefaultDivBOverCleanFactor = 1.0
)

// Parameter file keys.
const (
	KeyViscosityAlpha                 = "SPH:viscosity_alpha"
	KeyArtificialDissipationConstant  = "SPH:artificial_dissipation_constant"
	KeyArtificialDissipationMinimum   = "SPH:artificial_dissipation_minimum"
	KeyArtificialDissipationSource    = "SPH:artificial_dissipation_source"
	KeyArtificialDissipationTimescale = "SPH:artificial_dissipation_timescale"
	KeyWithDivBCleaning               = "SPH:with_div_B_cleaning"
	KeyDivBParabolicSigma             = "SPH:div_B_parabolic_sigma"
	KeyDivBOverCleanFactor            = "SPH:div_B_over_clean_factor"
)

// ErrInvalidConfig indicates parameters that were read fine but cannot be
// used together. Like a missing required key it must stop the run.
var ErrInvalidConfig = errors.New("hydro: invalid configuration")

// Source is a parameter file. Required lookups fail when the key is absent,
// optional ones fall back to def.
type Source interface {
	Float(key string) (float64, error)
	OptFloat(key string, def float64) (float64, error)
	Int(key string) (int, error)
	OptInt(key string, def int) (int, error)
}

// Logger receives the startup report, one line per call.
type Logger interface {
	Infof(format string, args ...any)
}

// SubModel is the lifecycle shared by the viscosity, diffusion and MHD
// records. The unit system and constants are accepted so every sub-model has
// the same signature; none of the current ones needs them.
type SubModel interface {
	Init(src Source, us *units.System, pc *units.Constants) error
	InitForTesting()
	Report(log Logger)
}
