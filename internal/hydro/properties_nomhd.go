//go:build !mhd

package hydro

// MHDEnabled reports whether the MHD sub-model is compiled in.
const MHDEnabled = false

type magnetic struct{}

func (m *magnetic) subModels() []SubModel { return nil }
