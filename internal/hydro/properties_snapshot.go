//go:build !nosnapshot

package hydro

// WriteSnapshot stores the scheme name and every sub-model's parameters in w.
func (p *Properties) WriteSnapshot(w AttributeWriter) error {
	if err := w.WriteString(AttrScheme, Scheme); err != nil {
		return err
	}
	for _, m := range p.subModels() {
		if err := m.(SnapshotWriter).WriteSnapshot(w); err != nil {
			return err
		}
	}
	return nil
}
