package classify_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/vitals/classify"
)

var _ = Describe("Glucose", func() {
	DescribeTable("scans the thresholds in order",
		func(value float64, expected classify.GlucoseCategory) {
			Expect(classify.Glucose(value)).To(Equal(expected))
		},
		Entry("99", 99.0, classify.GlucoseNormal),
		Entry("100", 100.0, classify.GlucoseImpaired),
		Entry("125", 125.0, classify.GlucoseImpaired),
		Entry("126", 126.0, classify.GlucoseDiabetes),
		Entry("zero", 0.0, classify.GlucoseNormal),
	)

	It("decodes the labels written by older data files", func() {
		var category classify.GlucoseCategory
		Expect(category.UnmarshalText([]byte("Alterada"))).To(Succeed())
		Expect(category).To(Equal(classify.GlucoseImpaired))
		Expect(category.Portuguese()).To(Equal("Alterada"))
	})
})
