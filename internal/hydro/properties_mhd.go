//go:build mhd

package hydro

// MHDEnabled reports whether the MHD sub-model is compiled in.
const MHDEnabled = true

type magnetic struct {
	MHD MHD
}

func (m *magnetic) subModels() []SubModel {
	return []SubModel{&m.MHD}
}
