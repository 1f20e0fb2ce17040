package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type ProfessorController struct {
	service *services.ProfessorService
}

func NewProfessorController(service *services.ProfessorService) *ProfessorController {
	return &ProfessorController{service: service}
}

func (pc *ProfessorController) GetPaginated(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "professor_name", "asc")
	professors, meta, err := pc.service.ListPaginated(p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Professors retrieved successfully", professors, meta)
}

func (pc *ProfessorController) GetByUniversityID(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "professor_name", "asc")
	professors, meta, err := pc.service.ByUniversity(c.Params("id"), p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Professors retrieved successfully", professors, meta)
}

func (pc *ProfessorController) GetByCourseID(c *fiber.Ctx) error {
	professors, err := pc.service.ByCourse(c.Params("id"))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Professors retrieved successfully", professors, nil)
}
