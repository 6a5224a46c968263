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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// StaffController is the clinic owner's team management surface. Every
// handler asserts ownership through the directory guard before touching
// staff data.
type StaffController struct {
	Log            *zap.Logger
	StaffUsecase   contracts.StaffUsecase
	DirectoryGuard contracts.DirectoryGuard
}

func NewStaffController(logger *zap.Logger, staffUsecase contracts.StaffUsecase, directoryGuard contracts.DirectoryGuard) *StaffController {
	return &StaffController{
		Log:            logger,
		StaffUsecase:   staffUsecase,
		DirectoryGuard: directoryGuard,
	}
}

func (ctrl *StaffController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, redirect, err := ctrl.DirectoryGuard.RequireClinicOwner(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	request := new(requests.CreateDoctor)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.StaffUsecase.CreateDoctor(ctx, owner, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStaffSuccessMessage, response)
}

func (ctrl *StaffController) CreateAssistant(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, redirect, err := ctrl.DirectoryGuard.RequireClinicOwner(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	request := new(requests.CreateAssistant)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.StaffUsecase.CreateAssistant(ctx, owner, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStaffSuccessMessage, response)
}

func (ctrl *StaffController) ListStaff(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, redirect, err := ctrl.DirectoryGuard.RequireClinicOwner(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if redirect != nil {
		utils.BuildRedirectResponse(w, r, redirect.Target)
		return
	}

	response, err := ctrl.StaffUsecase.ListStaff(ctx, *owner.ClinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccessMessage, response)
}
