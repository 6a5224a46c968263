package controllers

import (
	"context"
	"net/http"
	"time"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// PatientController serves clinic staff. The clinic id always comes
// from the caller's resolved profile, never from the request.
type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	DirectoryGuard contracts.DirectoryGuard
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, directoryGuard contracts.DirectoryGuard) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		DirectoryGuard: directoryGuard,
	}
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, redirect, err := ctrl.DirectoryGuard.RequireClinicID(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.PatientUsecase.Create(ctx, *profile.ClinicID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, response)
}

func (ctrl *PatientController) FindByClinic(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, redirect, err := ctrl.DirectoryGuard.RequireClinicID(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	response, total, err := ctrl.PatientUsecase.FindByClinic(ctx, *profile.ClinicID, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, paginationResponse, response)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, redirect, err := ctrl.DirectoryGuard.RequireClinicID(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	response, err := ctrl.PatientUsecase.FindByID(ctx, *profile.ClinicID, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, response)
}
