package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kolnlaviste/HireLink/internal/api/dto"
	"github.com/kolnlaviste/HireLink/internal/auth"
	"github.com/kolnlaviste/HireLink/internal/domain"
	"github.com/kolnlaviste/HireLink/internal/service"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

// ApplicationsHandler manages application endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// List GET /api/applications. Visibility depends on the caller's role.
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	applications, err := h.service.ListFor(c.Context(), principal)
	if err != nil {
		return err
	}
	items := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationResponse(&applications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/applications/:id.
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	application, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if !auth.CanModify(application.ApplicantID, principal) {
		return apperrors.NewForbiddenOwnership("not the applicant")
	}
	return c.JSON(fiber.Map{"data": dto.NewApplicationResponse(application)})
}

// Create POST /api/applications.
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	var req dto.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	application, err := h.service.Submit(c.Context(), principal, req.JobID, req.CoverNote)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewApplicationResponse(application)})
}

// UpdateStatus PUT /api/applications/:id.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	application, err := h.service.UpdateStatus(c.Context(), principal, c.Params("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewApplicationResponse(application)})
}

// Delete DELETE /api/applications/:id.
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	if err := h.service.Withdraw(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
