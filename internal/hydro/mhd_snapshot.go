//go:build mhd && !nosnapshot

package hydro

const (
	AttrArtificialDissipationConstant  = "Artificial dissipation constant"
	AttrArtificialDissipationMinimum   = "Artificial dissipation minimum"
	AttrArtificialDissipationSource    = "Artificial dissipation source"
	AttrArtificialDissipationTimescale = "Artificial dissipation timescale"
	AttrDivBCleaning                   = "divB cleaning turned on"
	AttrDivBParabolicSigma             = "divB parabolic sigma"
	AttrDivBOverCleanFactor            = "divB over-cleaning factor"
)

var _ SnapshotWriter = (*MHD)(nil)

// WriteSnapshot stores the dissipation parameters and the cleaning flag. The
// cleaning parameters are only written when cleaning is on.
func (m *MHD) WriteSnapshot(w AttributeWriter) error {
	floats := []struct {
		name string
		v    float64
	}{
		{AttrArtificialDissipationConstant, m.ArtificialDissipationConstant},
		{AttrArtificialDissipationMinimum, m.ArtificialDissipationMinimum},
		{AttrArtificialDissipationSource, m.ArtificialDissipationSource},
		{AttrArtificialDissipationTimescale, m.ArtificialDissipationTimescale},
	}
	for _, f := range floats {
		if err := w.WriteFloat(f.name, f.v); err != nil {
			return err
		}
	}

	cleaning := 0
	if m.WithDivBCleaning {
		cleaning = 1
	}
	if err := w.WriteInt(AttrDivBCleaning, cleaning); err != nil {
		return err
	}
	if !m.WithDivBCleaning {
		return nil
	}

	if err := w.WriteFloat(AttrDivBParabolicSigma, m.DivBParabolicSigma); err != nil {
		return err
	}
	return w.WriteFloat(AttrDivBOverCleanFactor, m.DivBOverCleanFactor)
}
