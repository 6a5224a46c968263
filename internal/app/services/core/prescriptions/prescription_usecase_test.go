package prescriptions

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) FindByID(ctx context.Context, id string) (*models.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByClinicID(ctx context.Context, clinicID string, page, pageSize int) ([]models.Prescription, int, error) {
	args := m.Called(ctx, clinicID, page, pageSize)
	return args.Get(0).([]models.Prescription), args.Int(1), args.Error(2)
}

func (m *MockPrescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID string) ([]models.Prescription, error) {
	args := m.Called(ctx, appointmentID)
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	args := m.Called(ctx, prescription)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByClinicID(ctx context.Context, clinicID string, page, pageSize int) ([]models.Appointment, int, error) {
	args := m.Called(ctx, clinicID, page, pageSize)
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string, page, pageSize int) ([]models.Appointment, int, error) {
	args := m.Called(ctx, doctorID, page, pageSize)
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentRepository) FindByDoctorAndDay(ctx context.Context, doctorID string, day time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID, day)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func newTestPrescriptionUsecase() (*prescriptionUsecase, *MockPrescriptionRepository, *MockAppointmentRepository) {
	prescriptionRepo := new(MockPrescriptionRepository)
	appointmentRepo := new(MockAppointmentRepository)
	uc := &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepo,
		AppointmentRepository:  appointmentRepo,
		Log:                    zap.NewNop(),
	}
	return uc, prescriptionRepo, appointmentRepo
}

func prescribingDoctor() *models.EnrichedProfile {
	clinicID := "org-1"
	return &models.EnrichedProfile{
		Profile: models.Profile{ID: "profile-1", Role: "doctor", Active: true, ClinicID: &clinicID},
		Doctor:  &models.DoctorContext{DoctorID: "doc-9"},
	}
}

func TestCreatePrescription(t *testing.T) {
	request := &requests.CreatePrescription{
		AppointmentID: "appt-1",
		Items: []requests.PrescriptionItem{
			{Medication: "Ibuprofen", Dosage: "400mg", Frequency: "3x daily", Duration: "5 days"},
		},
	}

	t.Run("doctor prescribes for own appointment", func(t *testing.T) {
		uc, prescriptionRepo, appointmentRepo := newTestPrescriptionUsecase()
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID: "appt-1", ClinicID: "org-1", DoctorID: "doc-9", PatientID: "patient-1",
		}, nil)
		prescriptionRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Prescription) bool {
			return p.ClinicID == "org-1" && p.DoctorID == "doc-9" && p.PatientID == "patient-1" && len(p.Items) == 1
		})).Return(nil)

		response, err := uc.Create(context.Background(), prescribingDoctor(), request)
		require.NoError(t, err)
		assert.Equal(t, "appt-1", response.AppointmentID)
		assert.Equal(t, "Ibuprofen", response.Items[0].Medication)
	})

	t.Run("another doctor's appointment rejected", func(t *testing.T) {
		uc, prescriptionRepo, appointmentRepo := newTestPrescriptionUsecase()
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID: "appt-1", ClinicID: "org-1", DoctorID: "doc-other",
		}, nil)

		_, err := uc.Create(context.Background(), prescribingDoctor(), request)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 403, customErr.StatusCode)
		prescriptionRepo.AssertNotCalled(t, "Create")
	})

	t.Run("appointment of another clinic hidden", func(t *testing.T) {
		uc, _, appointmentRepo := newTestPrescriptionUsecase()
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
			ID: "appt-1", ClinicID: "org-2", DoctorID: "doc-9",
		}, nil)

		_, err := uc.Create(context.Background(), prescribingDoctor(), request)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestFindByAppointment_ScopedToClinic(t *testing.T) {
	uc, prescriptionRepo, appointmentRepo := newTestPrescriptionUsecase()
	appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{
		ID: "appt-1", ClinicID: "org-2",
	}, nil)

	_, err := uc.FindByAppointment(context.Background(), "org-1", "appt-1")
	assert.Error(t, err)
	prescriptionRepo.AssertNotCalled(t, "FindByAppointmentID")
}
