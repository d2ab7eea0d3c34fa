package service_test

import (
	"context"
	"fmt"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/classify"
	"github.com/tidepool-org/vitals/errors"
	"github.com/tidepool-org/vitals/patients"
	patientsRepository "github.com/tidepool-org/vitals/patients/repository"
	patientsService "github.com/tidepool-org/vitals/patients/service"
	patientsTest "github.com/tidepool-org/vitals/patients/test"
	"github.com/tidepool-org/vitals/store"
	"github.com/tidepool-org/vitals/test"
)

var clock = time.Date(2025, time.March, 7, 9, 5, 0, 0, time.UTC)

func now() time.Time {
	return clock
}

var _ = Describe("Patients Service", func() {
	var service patients.Service
	var backend *store.MemoryBackend[patients.Patient]
	var created *patients.Patient

	BeforeEach(func() {
		backend = store.NewMemoryBackend[patients.Patient]()
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err := patientsRepository.NewRepository(backend, zap.NewNop().Sugar(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()

		service, err = patientsService.NewServiceWithClock(repo, zap.NewNop().Sugar(), now)
		Expect(err).ToNot(HaveOccurred())

		created, err = service.Create(context.Background(), patientsTest.RandomProfile(), "secret")
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("creates the patient with empty histories and persists it", func() {
			Expect(created.Index).To(Equal(0))
			Expect(created.BMIHistory).To(BeEmpty())
			Expect(created.PressureHistory).To(BeEmpty())
			Expect(created.GlucoseHistory).To(BeEmpty())

			persisted, err := backend.Load(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(persisted).To(HaveLen(1))
			Expect(persisted[0]).To(patientsTest.PatientFieldsMatcher(*created))
		})

		It("allows two patients with the same name", func() {
			second, err := service.Create(context.Background(), created.Profile, "other")
			Expect(err).ToNot(HaveOccurred())
			Expect(second.Index).To(Equal(1))

			list, err := service.List(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})

		It("rejects a negative age", func() {
			profile := patientsTest.RandomProfile()
			profile.Age = -1

			_, err := service.Create(context.Background(), profile, "secret")
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})

	Describe("RecordBMI", func() {
		It("computes, classifies and timestamps the reading", func() {
			reading, err := service.RecordBMI(context.Background(), created.Index, patients.BMIMeasurement{Weight: 70, Height: 1.75})
			Expect(err).ToNot(HaveOccurred())
			Expect(reading.BMI).To(BeNumerically("~", 22.86, 0.01))
			Expect(reading.Category).To(Equal(classify.BMINormal))
			Expect(reading.Time).To(Equal("07/03/2025 09:05"))

			patient, err := service.Get(context.Background(), created.Index)
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.BMIHistory).To(Equal([]patients.BMIReading{*reading}))
		})

		DescribeTable("rejects invalid measurements without appending",
			func(weight, height float64) {
				_, err := service.RecordBMI(context.Background(), created.Index, patients.BMIMeasurement{Weight: weight, Height: height})
				Expect(err).To(MatchError(errors.BadRequest))
				Expect(err).To(MatchError(classify.ErrInvalidMeasurement))

				patient, err := service.Get(context.Background(), created.Index)
				Expect(err).ToNot(HaveOccurred())
				Expect(patient.BMIHistory).To(BeEmpty())
			},
			Entry("zero weight", 0.0, 1.75),
			Entry("negative height", 70.0, -1.0),
			Entry("not a number", math.NaN(), 1.75),
			Entry("infinite weight", math.Inf(1), 1.75),
			Entry("bmi overflows", 1e300, 1e-5),
		)

		It("returns not found for an unknown patient", func() {
			_, err := service.RecordBMI(context.Background(), 42, patients.BMIMeasurement{Weight: 70, Height: 1.75})
			Expect(err).To(MatchError(patients.ErrNotFound))
			Expect(err).To(MatchError(errors.NotFound))
		})
	})

	Describe("RecordPressure", func() {
		It("classifies the pair and keeps the comment", func() {
			reading, err := service.RecordPressure(context.Background(), created.Index, patients.PressureMeasurement{Systolic: 135, Diastolic: 70, Comment: "after coffee"})
			Expect(err).ToNot(HaveOccurred())
			Expect(reading.Category).To(Equal(classify.PressureStageI))
			Expect(reading.Comment).To(Equal("after coffee"))
			Expect(reading.Time).To(Equal("07/03/2025 09:05"))
		})

		It("rejects negative values", func() {
			_, err := service.RecordPressure(context.Background(), created.Index, patients.PressureMeasurement{Systolic: -1, Diastolic: 70})
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})

	Describe("RecordGlucose", func() {
		It("classifies the value", func() {
			reading, err := service.RecordGlucose(context.Background(), created.Index, patients.GlucoseMeasurement{Glucose: 126})
			Expect(err).ToNot(HaveOccurred())
			Expect(reading.Category).To(Equal(classify.GlucoseDiabetes))
		})

		It("rejects negative values", func() {
			_, err := service.RecordGlucose(context.Background(), created.Index, patients.GlucoseMeasurement{Glucose: -0.5})
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})

	It("keeps readings in submission order and never changes earlier ones", func() {
		count := test.Faker.IntBetween(2, 10)
		var recorded []patients.GlucoseReading
		for i := 0; i < count; i++ {
			reading, err := service.RecordGlucose(context.Background(), created.Index, patients.GlucoseMeasurement{
				Glucose: float64(80 + i*10),
				Comment: fmt.Sprintf("reading %d", i),
			})
			Expect(err).ToNot(HaveOccurred())
			recorded = append(recorded, *reading)

			patient, err := service.Get(context.Background(), created.Index)
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.GlucoseHistory).To(Equal(recorded))
		}
	})
})

var _ = Describe("Patients Service with a failing repository", func() {
	var service patients.Service
	var repo *patientsTest.MockRepository
	var repoCtrl *gomock.Controller

	BeforeEach(func() {
		repoCtrl = gomock.NewController(GinkgoT())
		repo = patientsTest.NewMockRepository(repoCtrl)

		var err error
		service, err = patientsService.NewServiceWithClock(repo, zap.NewNop().Sugar(), now)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		repoCtrl.Finish()
	})

	It("surfaces storage errors", func() {
		storageErr := fmt.Errorf("unable to save patients: %w", context.DeadlineExceeded)
		repo.EXPECT().
			AddPressureReading(gomock.Any(), gomock.Eq(3), test.Match(func(r patients.PressureReading) bool {
				return r.Systolic == 120 && r.Diastolic == 80 && r.Category == classify.PressureStageI
			})).
			Return(nil, storageErr)

		reading, err := service.RecordPressure(context.Background(), 3, patients.PressureMeasurement{Systolic: 120, Diastolic: 80})
		Expect(err).To(MatchError(storageErr))
		Expect(reading).To(BeNil())
	})

	It("does not create the patient when the store cannot be read", func() {
		repo.EXPECT().List(gomock.Any()).Return(nil, context.Canceled)

		_, err := service.Create(context.Background(), patientsTest.RandomProfile(), "secret")
		Expect(err).To(MatchError(context.Canceled))
	})
})
