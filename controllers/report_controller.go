package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/middleware"
	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

func (rc *ReportController) Create(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	var req models.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}

	report, err := rc.service.Create(req, claims.UserID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Report submitted successfully", report, nil)
}
