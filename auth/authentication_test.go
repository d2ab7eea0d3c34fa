package auth_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/auth"
	"github.com/tidepool-org/vitals/config"
	vitalsErrors "github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/patients"
	patientsTest "github.com/tidepool-org/vitals/patients/test"
)

var _ = Describe("Patient Authenticator", func() {
	var ctrl *gomock.Controller
	var service *patientsTest.MockService
	var authenticator auth.PatientAuthenticator
	var stored []patients.Patient

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = patientsTest.NewMockService(ctrl)
		authenticator = auth.NewPatientAuthenticator(service, auth.NewPasswordMatcher(), zap.NewNop().Sugar())

		stored = []patients.Patient{
			patientsTest.RandomPatient(),
			patientsTest.RandomPatient(),
			patientsTest.RandomPatient(),
		}
		for i := range stored {
			stored[i].Index = i
		}
		stored[1].Profile.Name = "Ana"
		stored[1].Password = "abc123"
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("returns the patient with a matching name and password", func() {
		service.EXPECT().List(gomock.Any()).Return(stored, nil)

		patient, err := authenticator.Authenticate(context.Background(), "Ana", "abc123")
		Expect(err).ToNot(HaveOccurred())
		Expect(patient.Index).To(Equal(1))
		Expect(patient.Profile.Name).To(Equal("Ana"))
	})

	DescribeTable("rejects credentials that differ in any character",
		func(name, password string) {
			service.EXPECT().List(gomock.Any()).Return(stored, nil)

			_, err := authenticator.Authenticate(context.Background(), name, password)
			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
			Expect(errors.Is(err, vitalsErrors.Unauthorized)).To(BeTrue())
		},
		Entry("password with a changed character", "Ana", "abc124"),
		Entry("password with an extra character", "Ana", "abc1234"),
		Entry("password with a different case", "Ana", "ABC123"),
		Entry("name with a changed character", "Ama", "abc123"),
		Entry("name with trailing space", "Ana ", "abc123"),
		Entry("empty password", "Ana", ""),
	)

	It("resolves duplicate names to the first match in store order", func() {
		stored[2].Profile.Name = "Ana"
		stored[2].Password = "abc123"
		service.EXPECT().List(gomock.Any()).Return(stored, nil)

		patient, err := authenticator.Authenticate(context.Background(), "Ana", "abc123")
		Expect(err).ToNot(HaveOccurred())
		Expect(patient.Index).To(Equal(1))
	})

	It("skips a same-name patient with a different password", func() {
		stored[0].Profile.Name = "Ana"
		stored[0].Password = "other"
		service.EXPECT().List(gomock.Any()).Return(stored, nil)

		patient, err := authenticator.Authenticate(context.Background(), "Ana", "abc123")
		Expect(err).ToNot(HaveOccurred())
		Expect(patient.Index).To(Equal(1))
	})

	It("returns storage errors", func() {
		loadErr := errors.New("unable to load patients")
		service.EXPECT().List(gomock.Any()).Return(nil, loadErr)

		_, err := authenticator.Authenticate(context.Background(), "Ana", "abc123")
		Expect(err).To(MatchError(loadErr))
	})
})

var _ = Describe("Professional Authenticator", func() {
	var authenticator auth.ProfessionalAuthenticator

	BeforeEach(func() {
		cfg := &config.Config{ProfessionalPassword: "apeiron"}
		authenticator = auth.NewProfessionalAuthenticator(cfg, auth.NewPasswordMatcher(), zap.NewNop().Sugar())
	})

	It("accepts the configured password", func() {
		Expect(authenticator.Authenticate(context.Background(), "apeiron")).To(Succeed())
	})

	DescribeTable("rejects anything else",
		func(password string) {
			Expect(authenticator.Authenticate(context.Background(), password)).To(MatchError(auth.ErrInvalidCredentials))
		},
		Entry("changed character", "apeiron!"),
		Entry("different case", "Apeiron"),
		Entry("empty", ""),
	)
})
