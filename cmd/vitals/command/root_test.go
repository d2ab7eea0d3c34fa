package command

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Log level", func() {
	BeforeEach(func() {
		previous, wasSet := os.LookupEnv("LOG_LEVEL")
		Expect(os.Unsetenv("LOG_LEVEL")).To(Succeed())
		DeferCleanup(func() {
			rootCmd.PersistentFlags().Lookup(logLevelFlag).Changed = false
			logLevel = "error"
			if wasSet {
				Expect(os.Setenv("LOG_LEVEL", previous)).To(Succeed())
			} else {
				Expect(os.Unsetenv("LOG_LEVEL")).To(Succeed())
			}
		})
	})

	It("keeps the configured level of the server", func() {
		Expect(serveCmd.ParseFlags(nil)).To(Succeed())
		Expect(overrideLogLevel(serveCmd)).To(Succeed())

		_, ok := os.LookupEnv("LOG_LEVEL")
		Expect(ok).To(BeFalse())
	})

	It("keeps a level set in the environment", func() {
		Expect(os.Setenv("LOG_LEVEL", "debug")).To(Succeed())
		Expect(patientsListCmd.ParseFlags(nil)).To(Succeed())
		Expect(overrideLogLevel(patientsListCmd)).To(Succeed())
		Expect(os.Getenv("LOG_LEVEL")).To(Equal("debug"))
	})

	It("quiets one-shot commands by default", func() {
		Expect(patientsListCmd.ParseFlags(nil)).To(Succeed())
		Expect(overrideLogLevel(patientsListCmd)).To(Succeed())
		Expect(os.Getenv("LOG_LEVEL")).To(Equal("error"))
	})

	It("applies the flag to every command", func() {
		Expect(os.Setenv("LOG_LEVEL", "debug")).To(Succeed())
		Expect(serveCmd.ParseFlags([]string{"--log-level", "warn"})).To(Succeed())
		Expect(overrideLogLevel(serveCmd)).To(Succeed())
		Expect(os.Getenv("LOG_LEVEL")).To(Equal("warn"))
	})
})
