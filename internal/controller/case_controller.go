// FILE: internal/controller/case_controller.go
// Controller for case management endpoints
package controller

import (
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/dto"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/pkg/serverutils"
	"github.com/D3M0MK1GN/Demonbot-Telegram/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type CaseController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type caseController struct {
	caseService service.ICaseService
	validate    *validator.Validate
}

func NewCaseController(caseService service.ICaseService) CaseController {
	return &caseController{
		caseService: caseService,
		validate:    validator.New(),
	}
}

func (c *caseController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	cases := api.Group("/cases", jwtMiddleware)
	cases.Get("/", c.ListCases)
	cases.Get("/:id", c.GetCase)
	cases.Patch("/:id/status", c.UpdateStatus)
}

// ListCases returns cases newest first, optionally filtered by status.
func (c *caseController) ListCases(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)
	status := ctx.Query("status")

	cases, err := c.caseService.ListCases(ctx.UserContext(), limit, offset, status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Cases retrieved", cases))
}

// GetCase returns one case with its evidence and reporting user.
func (c *caseController) GetCase(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid case ID"))
	}

	detail, err := c.caseService.GetCase(ctx.UserContext(), uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if detail == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Case not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Case retrieved", detail))
}

// UpdateStatus moves a case through the triage workflow.
func (c *caseController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid case ID"))
	}

	var req dto.UpdateCaseStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	updated, err := c.caseService.UpdateCaseStatus(ctx.UserContext(), uint(id), req.Status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if updated == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Case not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Status updated", updated))
}
