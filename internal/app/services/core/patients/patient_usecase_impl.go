package patients

import (
	"context"
	"sync"
	"time"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// patientUsecase manages clinic patient records. Records are always
// scoped to the caller's clinic; a patient id from another clinic
// resolves to not found, never to another tenant's data.
type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	ProfileRepository contracts.ProfileRepository
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	profileRepository contracts.ProfileRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			ProfileRepository: profileRepository,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) Create(ctx context.Context, clinicID string, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient := &models.Patient{
		ID:       uuid.NewString(),
		ClinicID: clinicID,
		FullName: request.FullName,
		Email:    request.Email,
		Phone:    request.Phone,
	}
	if request.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInvalidDay(err)
		}
		patient.DateOfBirth = &dob
	}
	if request.PrincipalID != "" {
		profile, err := uc.ProfileRepository.FindByID(ctx, request.PrincipalID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, exceptions.ErrProfileNotFound(nil)
		}
		patient.PrincipalID = &request.PrincipalID
	}

	if err := uc.PatientRepository.Create(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicKey, clinicID),
	)
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindByClinic(ctx context.Context, clinicID string, pagination *requests.Pagination) ([]responses.Patient, int, error) {
	patients, total, err := uc.PatientRepository.FindByClinicID(ctx, clinicID, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Patient, len(patients))
	for i := range patients {
		response[i] = *buildPatientResponse(&patients[i])
	}
	return response, total, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, clinicID, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.ClinicID != clinicID {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return buildPatientResponse(patient), nil
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	response := &responses.Patient{
		ID:       patient.ID,
		FullName: patient.FullName,
		Email:    patient.Email,
		Phone:    patient.Phone,
	}
	if patient.PrincipalID != nil {
		response.PrincipalID = *patient.PrincipalID
	}
	return response
}
