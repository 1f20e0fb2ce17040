package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/middleware"
	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type AdminController struct {
	service *services.AdminService
}

func NewAdminController(service *services.AdminService) *AdminController {
	return &AdminController{service: service}
}

func (ac *AdminController) GetReports(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "date_created", "desc")
	reports, meta, err := ac.service.ListReports(c.Query("entity_type"), c.Query("status"), p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Reports retrieved successfully", reports, meta)
}

func (ac *AdminController) DismissReport(c *fiber.Ctx) error {
	if err := ac.service.DismissReport(c.Params("reportId")); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Report dismissed successfully", nil, nil)
}

func (ac *AdminController) DeleteReportedReview(c *fiber.Ctx) error {
	if err := ac.service.DeleteReportedReview(c.Params("reportId")); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Review deleted and report resolved", nil, nil)
}

func (ac *AdminController) DeleteReportedProfessor(c *fiber.Ctx) error {
	if err := ac.service.DeleteReportedProfessor(c.Params("reportId")); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Professor deleted and report resolved", nil, nil)
}

func (ac *AdminController) DeleteReportedCourse(c *fiber.Ctx) error {
	if err := ac.service.DeleteReportedCourse(c.Params("reportId")); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Course deleted and report resolved", nil, nil)
}

func (ac *AdminController) DeleteReportedDepartment(c *fiber.Ctx) error {
	if err := ac.service.DeleteReportedDepartment(c.Params("reportId")); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Department deleted and report resolved", nil, nil)
}

func (ac *AdminController) BanUser(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	var req models.BanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}

	if err := ac.service.BanUser(c.Params("userId"), req, claims.UserID); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "User banned successfully", nil, nil)
}

func (ac *AdminController) UnbanUser(c *fiber.Ctx) error {
	if err := ac.service.UnbanUser(c.Params("userId")); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "User unbanned successfully", nil, nil)
}

func (ac *AdminController) GetBannedUsers(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 10, "banned_at", "desc")
	bans, meta, err := ac.service.BannedUsers(p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Banned users retrieved successfully", bans, meta)
}
