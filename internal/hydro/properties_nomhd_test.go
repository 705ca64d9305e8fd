//go:build !mhd

package hydro_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hydroprops/internal/hydro"
	"github.com/san-kum/hydroprops/internal/params"
	"github.com/san-kum/hydroprops/internal/units"
)

var _ = Describe("Properties without MHD", func() {
	It("is compiled without the MHD sub-model", func() {
		Expect(hydro.MHDEnabled).To(BeFalse())
	})

	It("initialises from an empty parameter file", func() {
		us := units.CGS()
		p, err := hydro.NewProperties(params.New(), us, units.NewConstants(us))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Viscosity.Alpha).To(Equal(hydro.DefaultViscosityAlpha))
	})

	It("ignores MHD keys", func() {
		src := mustParse("SPH:\n  viscosity_alpha: 1.0\n  div_B_over_clean_factor: 0.5\n")
		p, err := hydro.NewProperties(src, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Viscosity.Alpha).To(Equal(1.0))
		Expect(src.Unused()).To(ConsistOf("SPH:div_B_over_clean_factor"))
	})

	It("returns no properties when a sub-model fails", func() {
		src := mustParse("SPH:\n  viscosity_alpha: high\n")
		p, err := hydro.NewProperties(src, nil, nil)
		Expect(err).To(MatchError(params.ErrInvalidValue))
		Expect(p).To(BeNil())
	})

	It("reports the scheme and the viscosity", func() {
		log := &recordingLogger{}
		hydro.NewPropertiesForTesting().Report(log)
		Expect(log.lines).To(Equal([]string{
			"Hydrodynamic scheme: " + hydro.Scheme,
			"Artificial viscosity parameters set to alpha: 0.800",
		}))
	})
})
