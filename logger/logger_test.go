package logger_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/config"
	"github.com/tidepool-org/vitals/logger"
)

var _ = Describe("Logger", func() {
	It("builds a logger at the configured level", func() {
		lgr, err := logger.NewProductionLogger(&config.Config{LogLevel: "error"})
		Expect(err).ToNot(HaveOccurred())
		Expect(lgr.Core().Enabled(zap.WarnLevel)).To(BeFalse())
		Expect(lgr.Core().Enabled(zap.ErrorLevel)).To(BeTrue())
		Expect(logger.Suggar(lgr)).ToNot(BeNil())
	})

	It("rejects unknown levels", func() {
		_, err := logger.NewProductionLogger(&config.Config{LogLevel: "loud"})
		Expect(err).To(HaveOccurred())
	})
})
