package handlers

import (
	"RestoOps-Backend/domain"
	"RestoOps-Backend/internal/api/presenters"
	"RestoOps-Backend/pkg/menuimport"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type (
	MenuImportHandler interface {
		StartImport(c *fiber.Ctx) error
		GetImportJob(c *fiber.Ctx) error
		GetImportJobs(c *fiber.Ctx) error
	}

	menuImportHandler struct {
		importService menuimport.ImportService
		validator     *validator.Validate
	}
)

func NewMenuImportHandler(importService menuimport.ImportService, validator *validator.Validate) MenuImportHandler {
	return &menuImportHandler{
		importService: importService,
		validator:     validator,
	}
}

// StartImport accepts either a multipart menu file upload or a JSON body with
// pre-extracted raw items, never both.
func (h *menuImportHandler) StartImport(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)
	req := new(domain.StartImportRequest)

	if file, err := c.FormFile("menu_file"); err == nil {
		req.MenuFile = file
		req.NotifyEmail = c.FormValue("notify_email")
	} else if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartImport, err)
	}

	res, err := h.importService.StartImport(c.Context(), *req, tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrNoImportInput) || errors.Is(err, domain.ErrAmbiguousImportInput) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartImport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStartImport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusAccepted, domain.MessageSuccessStartImport)
}

func (h *menuImportHandler) GetImportJob(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)
	jobID := c.Params("id")

	res, err := h.importService.GetImportJob(c.Context(), jobID, tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrImportJobNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetImportJob, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetImportJob, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImportJob)
}

func (h *menuImportHandler) GetImportJobs(c *fiber.Ctx) error {
	tenantID := c.Locals("tenant_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	jobs, count, err := h.importService.GetImportJobs(c.Context(), tenantID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetImportJobs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"jobs": jobs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetImportJobs)
}
