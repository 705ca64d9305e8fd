//go:build !nosnapshot

package hydro

// Snapshot attribute names.
const (
	AttrScheme         = "Scheme"
	AttrAlphaViscosity = "Alpha viscosity"
	AttrBetaViscosity  = "Beta viscosity"
)

// AttributeWriter is the snapshot group the hydro scheme writes its metadata
// to.
type AttributeWriter interface {
	WriteFloat(name string, v float64) error
	WriteInt(name string, v int) error
	WriteString(name string, v string) error
}

// SnapshotWriter is implemented by every sub-model in builds with snapshot
// metadata support.
type SnapshotWriter interface {
	WriteSnapshot(w AttributeWriter) error
}

var (
	_ SnapshotWriter = (*Viscosity)(nil)
	_ SnapshotWriter = (*Diffusion)(nil)
)

// WriteSnapshot stores alpha and the compile-time beta.
func (v *Viscosity) WriteSnapshot(w AttributeWriter) error {
	if err := w.WriteFloat(AttrAlphaViscosity, v.Alpha); err != nil {
		return err
	}
	return w.WriteFloat(AttrBetaViscosity, ViscosityBeta)
}

func (d *Diffusion) WriteSnapshot(AttributeWriter) error { return nil }
