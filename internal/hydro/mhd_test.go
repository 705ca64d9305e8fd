//go:build mhd

package hydro_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hydroprops/internal/hydro"
	"github.com/san-kum/hydroprops/internal/params"
	"github.com/san-kum/hydroprops/internal/units"
)

var requiredMHD = map[string]string{
	"artificial_dissipation_constant":  "1.0",
	"artificial_dissipation_minimum":   "0.01",
	"artificial_dissipation_source":    "0.1",
	"artificial_dissipation_timescale": "0.5",
	"div_B_parabolic_sigma":            "0.5",
}

// mhdSource builds an SPH section from the required MHD keys minus omit,
// followed by extra "name: value" lines.
func mhdSource(omit string, extra ...string) *params.File {
	var b strings.Builder
	b.WriteString("SPH:\n")
	for name, value := range requiredMHD {
		if name == omit {
			continue
		}
		b.WriteString("  " + name + ": " + value + "\n")
	}
	for _, line := range extra {
		b.WriteString("  " + line + "\n")
	}
	return mustParse(b.String())
}

var sentinelMHD = hydro.MHD{
	ArtificialDissipationConstant: 42,
	WithDivBCleaning:              true,
	DivBOverCleanFactor:           42,
}

var _ = Describe("MHD", func() {
	Describe("Init", func() {
		It("reads every supplied value", func() {
			src := mhdSource("", "with_div_B_cleaning: 1", "div_B_over_clean_factor: 1.5")
			var m hydro.MHD
			Expect(m.Init(src, units.CGS(), nil)).To(Succeed())
			Expect(m).To(Equal(hydro.MHD{
				ArtificialDissipationConstant:  1.0,
				ArtificialDissipationMinimum:   0.01,
				ArtificialDissipationSource:    0.1,
				ArtificialDissipationTimescale: 0.5,
				WithDivBCleaning:               true,
				DivBParabolicSigma:             0.5,
				DivBOverCleanFactor:            1.5,
			}))
		})

		It("defaults the optional keys", func() {
			var m hydro.MHD
			Expect(m.Init(mhdSource(""), nil, nil)).To(Succeed())
			Expect(m.WithDivBCleaning).To(BeFalse())
			Expect(m.DivBOverCleanFactor).To(Equal(hydro.DefaultDivBOverCleanFactor))
		})

		It("accepts a boolean cleaning flag", func() {
			var m hydro.MHD
			Expect(m.Init(mhdSource("", "with_div_B_cleaning: true"), nil, nil)).To(Succeed())
			Expect(m.WithDivBCleaning).To(BeTrue())
		})

		DescribeTable("rejects a cleaning flag that is not an integer",
			func(value string) {
				m := sentinelMHD
				err := m.Init(mhdSource("", "with_div_B_cleaning: "+value), nil, nil)
				Expect(err).To(MatchError(params.ErrInvalidValue))
				Expect(m).To(Equal(sentinelMHD))
			},
			Entry("fraction below one", "0.5"),
			Entry("fraction above one", "1.5"),
			Entry("text", "yes please"),
		)

		DescribeTable("requires",
			func(name string) {
				m := sentinelMHD
				err := m.Init(mhdSource(name), nil, nil)
				Expect(err).To(MatchError(params.ErrMissingKey))
				Expect(err.Error()).To(ContainSubstring("SPH:" + name))
				Expect(m).To(Equal(sentinelMHD))
			},
			Entry(nil, "artificial_dissipation_constant"),
			Entry(nil, "artificial_dissipation_minimum"),
			Entry(nil, "artificial_dissipation_source"),
			Entry(nil, "artificial_dissipation_timescale"),
			Entry(nil, "div_B_parabolic_sigma"),
		)

		DescribeTable("accepts an over-cleaning factor of at least one",
			func(factor string, expected float64) {
				var m hydro.MHD
				Expect(m.Init(mhdSource("", "div_B_over_clean_factor: "+factor), nil, nil)).To(Succeed())
				Expect(m.DivBOverCleanFactor).To(Equal(expected))
			},
			Entry("exactly one", "1.0", 1.0),
			Entry("above one", "1.5", 1.5),
			Entry("large", "10", 10.0),
		)

		DescribeTable("rejects an over-cleaning factor below one",
			func(factor string) {
				m := sentinelMHD
				err := m.Init(mhdSource("", "with_div_B_cleaning: 1", "div_B_over_clean_factor: "+factor), nil, nil)
				Expect(err).To(MatchError(hydro.ErrInvalidConfig))
				Expect(err.Error()).To(ContainSubstring("div_B_over_clean_factor < 1"))
				Expect(m).To(Equal(sentinelMHD))
			},
			Entry("just below", "0.999"),
			Entry("half", "0.5"),
			Entry("zero", "0"),
			Entry("negative", "-1"),
			Entry("not a number", ".nan"),
		)
	})

	Describe("InitForTesting", func() {
		It("zeroes every field", func() {
			m := sentinelMHD
			m.InitForTesting()
			Expect(m).To(Equal(hydro.MHD{}))
		})
	})

	Describe("Report", func() {
		var log *recordingLogger

		BeforeEach(func() {
			log = &recordingLogger{}
		})

		dissipation := []string{
			"MHD artificial_dissipation_constant = 1",
			"MHD artificial_dissipation_minimum = 0.01",
			"MHD artificial_dissipation_source = 0.1",
			"MHD artificial_dissipation_timescale = 0.5",
		}

		It("includes the cleaning parameters when cleaning is on", func() {
			m := hydro.MHD{
				ArtificialDissipationConstant:  1.0,
				ArtificialDissipationMinimum:   0.01,
				ArtificialDissipationSource:    0.1,
				ArtificialDissipationTimescale: 0.5,
				WithDivBCleaning:               true,
				DivBParabolicSigma:             0.5,
				DivBOverCleanFactor:            1.5,
			}
			m.Report(log)
			Expect(log.lines).To(Equal(append(dissipation,
				"MHD is running with divB cleaning ON.",
				"MHD div_B_parabolic_sigma = 0.5",
				"MHD div_B_over_clean_factor = 1.5",
			)))
		})

		It("omits the cleaning parameters when cleaning is off", func() {
			m := hydro.MHD{
				ArtificialDissipationConstant:  1.0,
				ArtificialDissipationMinimum:   0.01,
				ArtificialDissipationSource:    0.1,
				ArtificialDissipationTimescale: 0.5,
				DivBParabolicSigma:             0.5,
				DivBOverCleanFactor:            1.5,
			}
			m.Report(log)
			Expect(log.lines).To(Equal(append(dissipation,
				"MHD is running with divB cleaning OFF.",
			)))
		})
	})
})

var _ = Describe("Properties with MHD", func() {
	It("is compiled with the MHD sub-model", func() {
		Expect(hydro.MHDEnabled).To(BeTrue())
	})

	It("initialises every sub-model", func() {
		src := mhdSource("", "viscosity_alpha: 1.0", "with_div_B_cleaning: 1")
		p, err := hydro.NewProperties(src, units.CGS(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Viscosity.Alpha).To(Equal(1.0))
		Expect(p.MHD.WithDivBCleaning).To(BeTrue())
		Expect(src.Unused()).To(BeEmpty())
	})

	It("fails without the MHD keys", func() {
		p, err := hydro.NewProperties(params.New(), nil, nil)
		Expect(err).To(MatchError(params.ErrMissingKey))
		Expect(p).To(BeNil())
	})

	It("returns no properties for an invalid over-cleaning factor", func() {
		p, err := hydro.NewProperties(mhdSource("", "div_B_over_clean_factor: 0.5"), nil, nil)
		Expect(err).To(MatchError(hydro.ErrInvalidConfig))
		Expect(p).To(BeNil())
	})

	It("reports MHD after viscosity", func() {
		log := &recordingLogger{}
		hydro.NewPropertiesForTesting().Report(log)
		Expect(log.lines).To(HaveLen(7))
		Expect(log.lines[1]).To(HavePrefix("Artificial viscosity"))
		Expect(log.lines[6]).To(Equal("MHD is running with divB cleaning OFF."))
	})
})
