package appointments

import (
	"context"
	"sync"
	"time"

	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// appointmentUsecase covers the public booking flow and the tenant
// staff views over the resulting schedule. Bookings are anonymous;
// staff link the patient record afterwards, the booking itself only
// carries the contact details the visitor typed.
type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	OrganizationRepository contracts.OrganizationRepository
	DoctorRepository       contracts.DoctorRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	organizationRepository contracts.OrganizationRepository,
	doctorRepository contracts.DoctorRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			OrganizationRepository: organizationRepository,
			DoctorRepository:       doctorRepository,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Book(ctx context.Context, slug string, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	org, err := uc.OrganizationRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if org == nil || !org.Active {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.ClinicID != org.ID {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	startTime, err := time.Parse(time.RFC3339, request.StartTime)
	if err != nil {
		return nil, exceptions.ErrInvalidStartTime(err)
	}
	endTime := startTime.Add(time.Duration(uc.InternalConfig.App.DefaultAppointmentDurationInMinutes) * time.Minute)

	taken, err := uc.AppointmentRepository.FindByDoctorAndDay(ctx, doctor.ID, startTime)
	if err != nil {
		return nil, err
	}
	for i := range taken {
		if taken[i].Status == constvars.AppointmentStatusCancelled {
			continue
		}
		if startTime.Before(taken[i].EndTime) && taken[i].StartTime.Before(endTime) {
			return nil, exceptions.ErrSlotTaken(nil)
		}
	}

	appointment := &models.Appointment{
		ID:           uuid.NewString(),
		ClinicID:     org.ID,
		DoctorID:     doctor.ID,
		PatientName:  request.PatientName,
		PatientEmail: request.PatientEmail,
		PatientPhone: request.PatientPhone,
		StartTime:    startTime,
		EndTime:      endTime,
		Status:       constvars.AppointmentStatusPending,
		Reason:       request.Reason,
	}
	if err := uc.AppointmentRepository.Create(ctx, appointment); err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicKey, org.ID),
		zap.String("doctorId", doctor.ID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) Slots(ctx context.Context, slug, day string) (*responses.BookingSlots, error) {
	org, err := uc.OrganizationRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if org == nil || !org.Active {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	dayStart, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil, exceptions.ErrInvalidDay(err)
	}

	doctors, err := uc.DoctorRepository.FindByClinicID(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	slots := &responses.BookingSlots{
		Slug:    org.Slug,
		Day:     day,
		Doctors: make([]responses.DoctorSlots, 0, len(doctors)),
	}
	for _, doctor := range doctors {
		appointments, err := uc.AppointmentRepository.FindByDoctorAndDay(ctx, doctor.ID, dayStart)
		if err != nil {
			return nil, err
		}

		entry := responses.DoctorSlots{
			DoctorID:   doctor.ID,
			TakenSlots: make([]responses.TakenSlot, 0, len(appointments)),
		}
		for i := range appointments {
			if appointments[i].Status == constvars.AppointmentStatusCancelled {
				continue
			}
			entry.TakenSlots = append(entry.TakenSlots, responses.TakenSlot{
				StartTime: appointments[i].StartTime,
				EndTime:   appointments[i].EndTime,
			})
		}
		slots.Doctors = append(slots.Doctors, entry)
	}
	return slots, nil
}

func (uc *appointmentUsecase) FindByClinic(ctx context.Context, clinicID string, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	appointments, total, err := uc.AppointmentRepository.FindByClinicID(ctx, clinicID, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildAppointmentList(appointments), total, nil
}

func (uc *appointmentUsecase) FindByDoctor(ctx context.Context, doctorID string, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	appointments, total, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctorID, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildAppointmentList(appointments), total, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, clinicID, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.ClinicID != clinicID {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, request.Status); err != nil {
		return nil, err
	}
	appointment.Status = request.Status
	return buildAppointmentResponse(appointment), nil
}

func buildAppointmentList(appointments []models.Appointment) []responses.Appointment {
	response := make([]responses.Appointment, len(appointments))
	for i := range appointments {
		response[i] = *buildAppointmentResponse(&appointments[i])
	}
	return response
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:           appointment.ID,
		ClinicID:     appointment.ClinicID,
		DoctorID:     appointment.DoctorID,
		PatientID:    appointment.PatientID,
		PatientName:  appointment.PatientName,
		PatientEmail: appointment.PatientEmail,
		StartTime:    appointment.StartTime,
		EndTime:      appointment.EndTime,
		Status:       appointment.Status,
		Reason:       appointment.Reason,
	}
}
