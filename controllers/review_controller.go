package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mouizahmed/ratethatclass-sub000/middleware"
	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/services"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

func (rc *ReviewController) GetPaginated(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "date_uploaded", "desc")
	reviews, meta, err := rc.service.ListPaginated(p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Reviews retrieved successfully", reviews, meta)
}

func (rc *ReviewController) GetByCourseID(c *fiber.Ctx) error {
	p := utils.ParsePageParams(c, 20, "date_uploaded", "desc")
	filters := repositories.ReviewFilters{
		ProfessorID:    c.Query("professor_id"),
		Term:           c.Query("term"),
		DeliveryMethod: c.Query("delivery_method"),
	}

	viewerID := ""
	if claims := middleware.Claims(c); claims != nil {
		viewerID = claims.UserID
	}

	reviews, meta, err := rc.service.ByCourse(c.Params("courseId"), viewerID, filters, p)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Reviews retrieved successfully", reviews, meta)
}

// GetVotes returns the caller's vote per review for a comma-separated list
// of review ids.
func (rc *ReviewController) GetVotes(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	raw := strings.TrimSpace(c.Query("review_ids"))
	var reviewIDs []string
	if raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				reviewIDs = append(reviewIDs, id)
			}
		}
	}

	votes, err := rc.service.UserVotes(claims.UserID, reviewIDs)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Votes retrieved successfully", votes, nil)
}

func (rc *ReviewController) Vote(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	var req models.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}

	review, err := rc.service.Vote(req, claims.UserID, claims.Email)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Vote recorded successfully", fiber.Map{
		"review_id": review.ReviewID,
		"votes":     review.Votes,
	}, nil)
}

func (rc *ReviewController) Create(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	var req models.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, utils.NewValidationError("invalid request body"))
	}

	review, err := rc.service.Create(req, claims.UserID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, "Review created successfully", review, nil)
}

func (rc *ReviewController) Delete(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Error(c, utils.NewUnauthorizedError("no token provided"))
	}

	if err := rc.service.Delete(c.Params("reviewId"), claims.UserID); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.StatusOK, "Review deleted successfully", nil, nil)
}
