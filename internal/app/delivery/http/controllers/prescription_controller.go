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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
	DirectoryGuard      contracts.DirectoryGuard
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase, directoryGuard contracts.DirectoryGuard) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
		DirectoryGuard:      directoryGuard,
	}
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctor, redirect, err := ctrl.DirectoryGuard.RequireDoctorWithClinic(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	request := new(requests.CreatePrescription)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.PrescriptionUsecase.Create(ctx, doctor, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePrescriptionSuccessMessage, response)
}

func (ctrl *PrescriptionController) FindForClinic(w http.ResponseWriter, r *http.Request) {
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

	response, total, err := ctrl.PrescriptionUsecase.FindByClinic(ctx, *profile.ClinicID, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessMessage, paginationResponse, response)
}

func (ctrl *PrescriptionController) FindForAppointment(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	appointmentID := chi.URLParam(r, "appointmentID")

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

	response, err := ctrl.PrescriptionUsecase.FindByAppointment(ctx, *profile.ClinicID, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessMessage, response)
}
