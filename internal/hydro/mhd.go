//go:build mhd

package hydro

import (
	"fmt"

	"github.com/san-kum/hydroprops/internal/units"
)

// MHD holds the artificial resistivity and divergence cleaning parameters.
// DivBParabolicSigma and DivBOverCleanFactor are meaningless unless
// WithDivBCleaning is set.
type MHD struct {
	ArtificialDissipationConstant  float64
	ArtificialDissipationMinimum   float64
	ArtificialDissipationSource    float64
	ArtificialDissipationTimescale float64

	WithDivBCleaning    bool
	DivBParabolicSigma  float64
	DivBOverCleanFactor float64
}

var _ SubModel = (*MHD)(nil)

// Init reads the MHD parameters. The dissipation parameters and the
// parabolic sigma are required. The receiver is left untouched on error.
func (m *MHD) Init(src Source, _ *units.System, _ *units.Constants) error {
	var next MHD
	var err error

	required := []struct {
		key string
		dst *float64
	}{
		{KeyArtificialDissipationConstant, &next.ArtificialDissipationConstant},
		{KeyArtificialDissipationMinimum, &next.ArtificialDissipationMinimum},
		{KeyArtificialDissipationSource, &next.ArtificialDissipationSource},
		{KeyArtificialDissipationTimescale, &next.ArtificialDissipationTimescale},
	}
	for _, r := range required {
		if *r.dst, err = src.Float(r.key); err != nil {
			return err
		}
	}

	cleaning, err := src.OptInt(KeyWithDivBCleaning, 0)
	if err != nil {
		return err
	}
	next.WithDivBCleaning = cleaning != 0

	if next.DivBParabolicSigma, err = src.Float(KeyDivBParabolicSigma); err != nil {
		return err
	}
	if next.DivBOverCleanFactor, err = src.OptFloat(KeyDivBOverCleanFactor, DefaultDivBOverCleanFactor); err != nil {
		return err
	}

	// NaN must fail too.
	if !(next.DivBOverCleanFactor >= 1) {
		return fmt.Errorf("%w: cannot have div_B_over_clean_factor < 1 (got %g)",
			ErrInvalidConfig, next.DivBOverCleanFactor)
	}

	*m = next
	return nil
}

// InitForTesting zeroes every field. The result is structurally complete but
// not physical.
func (m *MHD) InitForTesting() {
	*m = MHD{}
}

func (m *MHD) Report(log Logger) {
	log.Infof("MHD artificial_dissipation_constant = %g", m.ArtificialDissipationConstant)
	log.Infof("MHD artificial_dissipation_minimum = %g", m.ArtificialDissipationMinimum)
	log.Infof("MHD artificial_dissipation_source = %g", m.ArtificialDissipationSource)
	log.Infof("MHD artificial_dissipation_timescale = %g", m.ArtificialDissipationTimescale)

	if !m.WithDivBCleaning {
		log.Infof("MHD is running with divB cleaning OFF.")
		return
	}
	log.Infof("MHD is running with divB cleaning ON.")
	log.Infof("MHD div_B_parabolic_sigma = %g", m.DivBParabolicSigma)
	log.Infof("MHD div_B_over_clean_factor = %g", m.DivBOverCleanFactor)
}
