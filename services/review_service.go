package services

import (
	"github.com/lib/pq"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type ReviewService struct {
	repo *repositories.ReviewRepository
}

func NewReviewService(repo *repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func reviewFromRequest(req models.ReviewRequest) models.Review {
	methods := make(pq.StringArray, 0, len(req.EvaluationMethods))
	for _, m := range req.EvaluationMethods {
		methods = append(methods, string(m))
	}
	return models.Review{
		CourseID:          req.CourseID,
		Grade:             req.Grade,
		DeliveryMethod:    req.DeliveryMethod,
		Workload:          req.Workload,
		TextbookUse:       req.TextbookUse,
		EvaluationMethods: methods,
		OverallScore:      req.OverallScore,
		EasyScore:         req.EasyScore,
		InterestScore:     req.InterestScore,
		UsefulScore:       req.UsefulScore,
		TermTaken:         req.TermTaken,
		YearTaken:         req.YearTaken,
		CourseComments:    req.CourseComments,
		ProfessorComments: req.ProfessorComments,
		AdviceComments:    req.AdviceComments,
	}
}

func (s *ReviewService) ListPaginated(p utils.PageParams) ([]models.Review, utils.PageMeta, error) {
	reviews, total, err := s.repo.ListPaginated(p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return reviews, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

// ByCourse lists a course's reviews with optional professor/term/delivery
// filters. viewerID is empty for anonymous callers.
func (s *ReviewService) ByCourse(courseID, viewerID string, f repositories.ReviewFilters, p utils.PageParams) ([]models.Review, utils.PageMeta, error) {
	if err := utils.ValidateUUID(courseID, "course ID"); err != nil {
		return nil, utils.PageMeta{}, err
	}
	if f.ProfessorID != "" {
		if err := utils.ValidateUUID(f.ProfessorID, "professor ID"); err != nil {
			return nil, utils.PageMeta{}, err
		}
	}
	if f.Term != "" && !models.Term(f.Term).IsValid() {
		return nil, utils.PageMeta{}, utils.NewValidationError("invalid term filter")
	}
	if f.DeliveryMethod != "" && !models.Delivery(f.DeliveryMethod).IsValid() {
		return nil, utils.PageMeta{}, utils.NewValidationError("invalid delivery method filter")
	}

	reviews, total, err := s.repo.ByCourse(courseID, viewerID, f, p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return reviews, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *ReviewService) Create(req models.ReviewRequest, userID string) (models.Review, error) {
	if err := req.Validate(); err != nil {
		return models.Review{}, err
	}
	if err := utils.ValidateUUID(req.CourseID, "course ID"); err != nil {
		return models.Review{}, err
	}
	review := reviewFromRequest(req)
	if err := s.repo.Create(&review, req.ProfessorName, userID); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *ReviewService) Vote(req models.VoteRequest, userID, email string) (models.Review, error) {
	if err := req.Validate(); err != nil {
		return models.Review{}, err
	}
	return s.repo.HandleVote(userID, email, req.ReviewID, req.VoteType)
}

func (s *ReviewService) UserVotes(userID string, reviewIDs []string) (map[string]models.VoteType, error) {
	for _, id := range reviewIDs {
		if err := utils.ValidateUUID(id, "review ID"); err != nil {
			return nil, err
		}
	}
	return s.repo.UserVotes(userID, reviewIDs)
}

func (s *ReviewService) ByUser(userID string, p utils.PageParams) ([]models.Review, utils.PageMeta, error) {
	reviews, total, err := s.repo.ByUser(userID, p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return reviews, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *ReviewService) VotedReviews(userID string, vote models.VoteType, p utils.PageParams) ([]models.Review, utils.PageMeta, error) {
	reviews, total, err := s.repo.VotedReviews(userID, vote, p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return reviews, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *ReviewService) Delete(reviewID, userID string) error {
	if err := utils.ValidateUUID(reviewID, "review ID"); err != nil {
		return err
	}
	return s.repo.Delete(reviewID, userID)
}
