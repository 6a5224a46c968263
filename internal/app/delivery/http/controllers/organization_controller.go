package controllers

import (
	"context"
	"fmt"
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

// OrganizationController is the superadmin console for tenants plus the
// anonymous clinic landing page. Console handlers re-assert the
// superadmin role against the directory; PublicPage stays unguarded.
type OrganizationController struct {
	Log                 *zap.Logger
	OrganizationUsecase contracts.OrganizationUsecase
	DirectoryGuard      contracts.DirectoryGuard
}

func NewOrganizationController(logger *zap.Logger, organizationUsecase contracts.OrganizationUsecase, directoryGuard contracts.DirectoryGuard) *OrganizationController {
	return &OrganizationController{
		Log:                 logger,
		OrganizationUsecase: organizationUsecase,
		DirectoryGuard:      directoryGuard,
	}
}

func (ctrl *OrganizationController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	request := new(requests.CreateOrganization)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.OrganizationUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOrganizationSuccessMessage, response)
}

func (ctrl *OrganizationController) Update(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	request := new(requests.UpdateOrganization)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.OrganizationUsecase.Update(ctx, orgID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateOrganizationSuccessMessage, response)
}

func (ctrl *OrganizationController) SetOwner(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	request := new(requests.SetOrganizationOwner)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.OrganizationUsecase.SetOwner(ctx, orgID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateOrganizationSuccessMessage, response)
}

func (ctrl *OrganizationController) FindAll(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	response, total, err := ctrl.OrganizationUsecase.FindAll(ctx, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetOrganizationSuccessMessage, paginationResponse, response)
}

func (ctrl *OrganizationController) FindByID(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !requireSuperadmin(ctx, ctrl.Log, ctrl.DirectoryGuard, w, r) {
		return
	}

	response, err := ctrl.OrganizationUsecase.FindByID(ctx, orgID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrganizationSuccessMessage, response)
}

// PublicPage serves the anonymous clinic landing data used by the
// booking flow.
func (ctrl *OrganizationController) PublicPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !utils.IsValidSlug(slug) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(fmt.Errorf("invalid slug %q", slug), "slug"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrganizationUsecase.PublicPage(ctx, slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrganizationSuccessMessage, response)
}
