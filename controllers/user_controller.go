package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/middleware"
	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type UserController struct {
	users   *services.UserService
	reviews *services.ReviewService
}

func NewUserController(users *services.UserService, reviews *services.ReviewService) *UserController {
	return &UserController{users: users, reviews: reviews}
}

func (uc *UserController) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}

	result, err := uc.users.Register(req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Account created successfully", result, nil)
}

func (uc *UserController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}

	result, err := uc.users.Login(req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Logged in successfully", result, nil)
}

func (uc *UserController) GetReviews(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	p := utils.ParsePageParams(c, 20, "date_uploaded", "desc")
	reviews, meta, err := uc.reviews.ByUser(claims.UserID, p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Reviews retrieved successfully", reviews, meta)
}

func (uc *UserController) GetUpvotedReviews(c *fiber.Ctx) error {
	return uc.votedReviews(c, models.VoteUp)
}

func (uc *UserController) GetDownvotedReviews(c *fiber.Ctx) error {
	return uc.votedReviews(c, models.VoteDown)
}

func (uc *UserController) votedReviews(c *fiber.Ctx, vote models.VoteType) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	p := utils.ParsePageParams(c, 20, "date_uploaded", "desc")
	reviews, meta, err := uc.reviews.VotedReviews(claims.UserID, vote, p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Reviews retrieved successfully", reviews, meta)
}
