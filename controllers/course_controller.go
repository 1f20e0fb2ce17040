package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/middleware"
	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type CourseController struct {
	service *services.CourseService
}

func NewCourseController(service *services.CourseService) *CourseController {
	return &CourseController{service: service}
}

func (cc *CourseController) GetPaginated(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "course_tag", "asc")
	courses, meta, err := cc.service.ListPaginated(p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Courses retrieved successfully", courses, meta)
}

func (cc *CourseController) GetByUniversityID(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "course_tag", "asc")
	courses, meta, err := cc.service.ByUniversity(c.Params("id"), c.Query("department_id"), p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Courses retrieved successfully", courses, meta)
}

func (cc *CourseController) GetByDepartmentID(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "course_tag", "asc")
	courses, meta, err := cc.service.ByDepartment(c.Params("id"), p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Courses retrieved successfully", courses, meta)
}

func (cc *CourseController) GetByID(c *fiber.Ctx) error {
	course, err := cc.service.GetByID(c.Params("id"))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Course retrieved successfully", course, nil)
}

func (cc *CourseController) GetByTag(c *fiber.Ctx) error {
	course, err := cc.service.ByTag(c.Params("id"), c.Params("tag"))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Course retrieved successfully", course, nil)
}

// Create adds a course together with its first review.
func (cc *CourseController) Create(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	var req models.CourseWithReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}

	course, err := cc.service.CreateWithReview(req, claims.UserID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Course created successfully", course, nil)
}
