package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kolnlaviste/HireLink/internal/api/dto"
	"github.com/kolnlaviste/HireLink/internal/auth"
	"github.com/kolnlaviste/HireLink/internal/domain"
	"github.com/kolnlaviste/HireLink/internal/repository"
	"github.com/kolnlaviste/HireLink/internal/service"
	apperrors "github.com/kolnlaviste/HireLink/pkg/util"
)

// JobsHandler manages job listing endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// List GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context(), parseJobQuery(c))
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Create POST /api/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Create(c.Context(), principal, jobInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Update PUT /api/jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Update(c.Context(), principal, c.Params("id"), jobInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Delete DELETE /api/jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("authentication required")
	}
	if err := h.service.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

func parseJobQuery(c *fiber.Ctx) repository.JobFilter {
	filter := repository.JobFilter{
		CompanyID: c.Query("company"),
		Type:      domain.JobType(c.Query("type")),
		Location:  c.Query("location"),
		Tag:       c.Query("tag"),
		Status:    domain.JobStatus(c.Query("status")),
	}
	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("page_size"), 20)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize
	return filter
}

func parsePositiveInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func jobInput(req dto.JobRequest) service.JobInput {
	return service.JobInput{
		CompanyID:   req.CompanyID,
		Title:       req.Title,
		Location:    req.Location,
		Type:        domain.JobType(req.Type),
		Salary:      req.Salary,
		Tags:        req.Tags,
		Description: req.Description,
		ApplyInfo:   req.ApplyInfo,
		Status:      domain.JobStatus(req.Status),
	}
}
