package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type DepartmentController struct {
	service *services.DepartmentService
}

func NewDepartmentController(service *services.DepartmentService) *DepartmentController {
	return &DepartmentController{service: service}
}

func (dc *DepartmentController) GetPaginated(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "department_name", "asc")
	departments, meta, err := dc.service.ListPaginated(p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Departments retrieved successfully", departments, meta)
}

func (dc *DepartmentController) GetByUniversityID(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "department_name", "asc")
	departments, err := dc.service.ByUniversity(c.Params("id"), p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Departments retrieved successfully", departments, nil)
}

func (dc *DepartmentController) GetByID(c *fiber.Ctx) error {
	department, err := dc.service.GetByID(c.Params("id"))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Department retrieved successfully", department, nil)
}

func (dc *DepartmentController) Create(c *fiber.Ctx) error {
	var req struct {
		UniversityID   string `json:"university_id"`
		DepartmentName string `json:"department_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}
	department, err := dc.service.GetOrCreate(req.UniversityID, req.DepartmentName)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Department created successfully", department, nil)
}
