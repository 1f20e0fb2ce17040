package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type UniversityController struct {
	service *services.UniversityService
}

func NewUniversityController(service *services.UniversityService) *UniversityController {
	return &UniversityController{service: service}
}

func (uc *UniversityController) GetPaginated(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "review_num", "desc")
	universities, meta, err := uc.service.ListPaginated(p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Universities retrieved successfully", universities, meta)
}

func (uc *UniversityController) GetByName(c *fiber.Ctx) error {
	university, err := uc.service.GetByName(c.Params("name"))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "University retrieved successfully", university, nil)
}

func (uc *UniversityController) GetByID(c *fiber.Ctx) error {
	university, err := uc.service.GetByID(c.Params("id"))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "University retrieved successfully", university, nil)
}

func (uc *UniversityController) GetDomains(c *fiber.Ctx) error {
	domains, err := uc.service.Domains()
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Domains retrieved successfully", domains, nil)
}

// requestToken reads the per-browser token cookie, minting and setting one
// when absent. University request votes are deduped on this token.
func requestToken(c *fiber.Ctx) string {
	token := c.Cookies("user_token")
	if token == "" {
		token = utils.NewAnonymousToken()
		c.Cookie(&fiber.Cookie{
			Name:     "user_token",
			Value:    token,
			Expires:  time.Now().Add(365 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	return token
}

func (uc *UniversityController) GetRequests(c *fiber.Ctx) error {
	token := requestToken(c)
	requests, err := uc.service.ListRequests(token)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "University requests retrieved successfully", requests, nil)
}

func (uc *UniversityController) CreateRequest(c *fiber.Ctx) error {
	var req models.UniversityRequestInput
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}
	token := requestToken(c)
	request, err := uc.service.CreateRequest(req, token)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "University request created successfully", request, nil)
}

func (uc *UniversityController) VoteRequest(c *fiber.Ctx) error {
	token := requestToken(c)
	if err := uc.service.VoteRequest(c.Params("id"), token); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Vote recorded successfully", nil, nil)
}
