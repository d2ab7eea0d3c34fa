package classify_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/vitals/classify"
)

var _ = Describe("BMI", func() {
	It("computes the index and category from weight and height", func() {
		bmi, category, err := classify.BMI(70, 1.75)
		Expect(err).ToNot(HaveOccurred())
		Expect(bmi).To(BeNumerically("~", 22.857, 0.001))
		Expect(category).To(Equal(classify.BMINormal))
	})

	DescribeTable("rejects measurements without a finite bmi",
		func(weight, height float64) {
			_, _, err := classify.BMI(weight, height)
			Expect(err).To(MatchError(classify.ErrInvalidMeasurement))
		},
		Entry("zero weight", 0.0, 1.75),
		Entry("negative weight", -70.0, 1.75),
		Entry("zero height", 70.0, 0.0),
		Entry("negative height", 70.0, -1.75),
		Entry("not a number", math.NaN(), 1.75),
		Entry("infinite height", 70.0, math.Inf(1)),
		Entry("result overflows", 1e300, 1e-5),
		Entry("height squared underflows", 70.0, 1e-200),
	)

	DescribeTable("band boundaries are closed below and open above",
		func(bmi float64, expected classify.BMICategory) {
			Expect(classify.BMICategoryOf(bmi)).To(Equal(expected))
		},
		Entry("below 18.5", 18.49, classify.BMIUnderweight),
		Entry("exactly 18.5", 18.5, classify.BMINormal),
		Entry("just below 25", 24.99, classify.BMINormal),
		Entry("exactly 25", 25.0, classify.BMIOverweight),
		Entry("exactly 30", 30.0, classify.BMIObesityI),
		Entry("exactly 35", 35.0, classify.BMIObesityII),
		Entry("just below 40", 39.99, classify.BMIObesityII),
		Entry("exactly 40", 40.0, classify.BMIObesityIII),
		Entry("well above 40", 55.0, classify.BMIObesityIII),
	)

	It("classifies an exact threshold computed from measurements", func() {
		_, category, err := classify.BMI(40, 1)
		Expect(err).ToNot(HaveOccurred())
		Expect(category).To(Equal(classify.BMIObesityIII))
	})

	It("decodes the labels written by older data files", func() {
		var category classify.BMICategory
		Expect(category.UnmarshalText([]byte("Eutrófico"))).To(Succeed())
		Expect(category).To(Equal(classify.BMINormal))
		Expect(category.UnmarshalText([]byte("Obesidade Grau III"))).To(Succeed())
		Expect(category).To(Equal(classify.BMIObesityIII))
		Expect(category.UnmarshalText([]byte("Overweight"))).To(Succeed())
		Expect(category).To(Equal(classify.BMIOverweight))
	})

	It("keeps unknown labels verbatim", func() {
		var category classify.BMICategory
		Expect(category.UnmarshalText([]byte("Unknown"))).To(Succeed())
		Expect(string(category)).To(Equal("Unknown"))
	})

	It("namespaces the message key by metric", func() {
		Expect(classify.MessageKey(classify.BMINormal)).To(Equal("bmi:Normal"))
	})
})
