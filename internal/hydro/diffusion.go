package hydro

import "github.com/san-kum/hydroprops/internal/units"

// Diffusion holds the thermal diffusion parameters. The scheme has none yet;
// the record keeps diffusion on the same lifecycle as the other sub-models.
type Diffusion struct{}

var _ SubModel = (*Diffusion)(nil)

func (d *Diffusion) Init(Source, *units.System, *units.Constants) error { return nil }

func (d *Diffusion) InitForTesting() {}

func (d *Diffusion) Report(Logger) {}
