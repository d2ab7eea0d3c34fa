package locale_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/message"

	"github.com/tidepool-org/vitals/classify"
	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/locale"
)

var _ = Describe("Locale", func() {
	newPrinter := func(tag string) *message.Printer {
		printer, err := locale.NewPrinter(&config.Config{Locale: tag})
		Expect(err).ToNot(HaveOccurred())
		return printer
	}

	It("prints english messages by default", func() {
		printer := newPrinter("en")
		Expect(printer.Sprintf(locale.Welcome, "Ana")).To(Equal("Welcome, Ana!"))
		Expect(locale.Label(printer, classify.PressureStageII)).To(Equal("Hypertension Stage II"))
	})

	It("prints portuguese messages and labels", func() {
		printer := newPrinter("pt-BR")
		Expect(printer.Sprintf(locale.LoginFailed)).To(Equal("Nome ou senha incorretos."))
		Expect(locale.Label(printer, classify.BMINormal)).To(Equal("Eutrófico"))
		Expect(locale.Label(printer, classify.PressureNormal)).To(Equal("Pressão normal"))
		Expect(locale.Label(printer, classify.GlucoseImpaired)).To(Equal("Alterada"))
	})

	It("distinguishes labels shared by different metrics", func() {
		printer := newPrinter("pt-BR")
		Expect(locale.Label(printer, classify.BMINormal)).To(Equal("Eutrófico"))
		Expect(locale.Label(printer, classify.GlucoseNormal)).To(Equal("Normal"))
	})

	It("falls back to english for other languages", func() {
		printer := newPrinter("de")
		Expect(printer.Sprintf(locale.ProfessionalFailed)).To(Equal("Incorrect password."))
	})

	It("prints unknown labels as stored", func() {
		printer := newPrinter("pt-BR")
		Expect(locale.Label(printer, classify.BMICategory("Custom 100%"))).To(Equal("Custom 100%"))
	})

	It("rejects malformed locales", func() {
		_, err := locale.NewPrinter(&config.Config{Locale: "not a locale!"})
		Expect(err).To(HaveOccurred())
	})
})
