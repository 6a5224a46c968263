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

// AccountController is the superadmin user-management console. Every
// handler re-asserts the superadmin role against the directory before
// touching accounts.
type AccountController struct {
	Log            *zap.Logger
	AccountUsecase contracts.AccountUsecase
	DirectoryGuard contracts.DirectoryGuard
}

func NewAccountController(logger *zap.Logger, accountUsecase contracts.AccountUsecase, directoryGuard contracts.DirectoryGuard) *AccountController {
	return &AccountController{
		Log:            logger,
		AccountUsecase: accountUsecase,
		DirectoryGuard: directoryGuard,
	}
}

func (ctrl *AccountController) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	request := new(requests.CreateUser)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AccountUsecase.CreateUser(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, response)
}

func (ctrl *AccountController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	request := new(requests.UpdateUser)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AccountUsecase.UpdateUser(ctx, profileID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserSuccessMessage, response)
}

func (ctrl *AccountController) FindAllUsers(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	response, total, err := ctrl.AccountUsecase.FindAllUsers(ctx, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, paginationResponse, response)
}

func (ctrl *AccountController) FindUserByID(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	response, err := ctrl.AccountUsecase.FindUserByID(ctx, profileID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, response)
}

func (ctrl *AccountController) ResetUserPassword(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	request := new(requests.AdminResetPassword)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.AccountUsecase.ResetUserPassword(ctx, profileID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePasswordSuccessMessage, nil)
}

func (ctrl *AccountController) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	if err := ctrl.AccountUsecase.DeactivateUser(ctx, profileID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserSuccessMessage, nil)
}
