package hydro

import "github.com/san-kum/hydroprops/internal/units"

// Properties gathers the parameters of every sub-model compiled into this
// build. The MHD record is only present in builds tagged mhd.
type Properties struct {
	Viscosity Viscosity
	Diffusion Diffusion
	magnetic
}

// NewProperties initialises every sub-model from src. Any error is fatal to
// the run: a missing required key, an unreadable value or a rejected
// combination of values. No Properties is returned in that case.
func NewProperties(src Source, us *units.System, pc *units.Constants) (*Properties, error) {
	p := &Properties{}
	for _, m := range p.subModels() {
		if err := m.Init(src, us, pc); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewPropertiesForTesting fills every sub-model without a parameter file.
func NewPropertiesForTesting() *Properties {
	p := &Properties{}
	for _, m := range p.subModels() {
		m.InitForTesting()
	}
	return p
}

func (p *Properties) Report(log Logger) {
	log.Infof("Hydrodynamic scheme: %s", Scheme)
	for _, m := range p.subModels() {
		m.Report(log)
	}
}

func (p *Properties) subModels() []SubModel {
	return append([]SubModel{&p.Viscosity, &p.Diffusion}, p.magnetic.subModels()...)
}
