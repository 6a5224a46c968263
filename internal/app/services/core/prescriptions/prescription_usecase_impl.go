package prescriptions

import (
	"context"
	"sync"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// prescriptionUsecase issues prescriptions against appointments. Only
// the doctor the appointment belongs to may prescribe for it.
type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			AppointmentRepository:  appointmentRepository,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) Create(ctx context.Context, doctor *models.EnrichedProfile, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.ClinicID != *doctor.ClinicID {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if doctor.Doctor == nil || appointment.DoctorID != doctor.Doctor.DoctorID {
		return nil, exceptions.ErrPrescribeOwnAppointments(nil)
	}

	items := make([]models.PrescriptionItem, len(request.Items))
	for i, item := range request.Items {
		items[i] = models.PrescriptionItem{
			Medication: item.Medication,
			Dosage:     item.Dosage,
			Frequency:  item.Frequency,
			Duration:   item.Duration,
		}
	}

	prescription := &models.Prescription{
		ID:            uuid.NewString(),
		ClinicID:      appointment.ClinicID,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Items:         items,
		Notes:         request.Notes,
	}
	if err := uc.PrescriptionRepository.Create(ctx, prescription); err != nil {
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicKey, appointment.ClinicID),
		zap.String("appointmentId", appointment.ID),
	)
	return buildPrescriptionResponse(prescription), nil
}

func (uc *prescriptionUsecase) FindByClinic(ctx context.Context, clinicID string, pagination *requests.Pagination) ([]responses.Prescription, int, error) {
	prescriptions, total, err := uc.PrescriptionRepository.FindByClinicID(ctx, clinicID, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Prescription, len(prescriptions))
	for i := range prescriptions {
		response[i] = *buildPrescriptionResponse(&prescriptions[i])
	}
	return response, total, nil
}

func (uc *prescriptionUsecase) FindByAppointment(ctx context.Context, clinicID, appointmentID string) ([]responses.Prescription, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.ClinicID != clinicID {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	prescriptions, err := uc.PrescriptionRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Prescription, len(prescriptions))
	for i := range prescriptions {
		response[i] = *buildPrescriptionResponse(&prescriptions[i])
	}
	return response, nil
}

func buildPrescriptionResponse(prescription *models.Prescription) *responses.Prescription {
	return &responses.Prescription{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		PatientID:     prescription.PatientID,
		DoctorID:      prescription.DoctorID,
		Items:         prescription.Items,
		Notes:         prescription.Notes,
		CreatedAt:     prescription.CreatedAt,
	}
}
