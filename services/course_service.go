package services

import (
	"strings"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type CourseService struct {
	repo *repositories.CourseRepository
}

func NewCourseService(repo *repositories.CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) ListPaginated(p utils.PageParams) ([]models.Course, utils.PageMeta, error) {
	courses, total, err := s.repo.ListPaginated(p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return courses, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *CourseService) ByUniversity(universityID, departmentID string, p utils.PageParams) ([]models.Course, utils.PageMeta, error) {
	if err := utils.ValidateUUID(universityID, "university ID"); err != nil {
		return nil, utils.PageMeta{}, err
	}
	if departmentID != "" {
		if err := utils.ValidateUUID(departmentID, "department ID"); err != nil {
			return nil, utils.PageMeta{}, err
		}
	}
	courses, total, err := s.repo.ByUniversity(universityID, departmentID, p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return courses, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *CourseService) ByDepartment(departmentID string, p utils.PageParams) ([]models.Course, utils.PageMeta, error) {
	if err := utils.ValidateUUID(departmentID, "department ID"); err != nil {
		return nil, utils.PageMeta{}, err
	}
	courses, total, err := s.repo.ByDepartment(departmentID, p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return courses, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *CourseService) GetByID(courseID string) (models.Course, error) {
	if err := utils.ValidateUUID(courseID, "course ID"); err != nil {
		return models.Course{}, err
	}
	return s.repo.GetByID(courseID)
}

// ByTag resolves a course from its URL form, where spaces arrive as
// underscores.
func (s *CourseService) ByTag(universityID, courseTag string) (models.Course, error) {
	if err := utils.ValidateUUID(universityID, "university ID"); err != nil {
		return models.Course{}, err
	}
	courseTag = strings.ReplaceAll(courseTag, "_", " ")
	if strings.TrimSpace(courseTag) == "" {
		return models.Course{}, utils.NewValidationError("course tag is required")
	}
	return s.repo.ByTag(universityID, courseTag)
}

// CreateWithReview validates both halves of the payload, then runs the
// course-plus-first-review transaction.
func (s *CourseService) CreateWithReview(req models.CourseWithReviewRequest, userID string) (models.Course, error) {
	if err := req.Course.Validate(); err != nil {
		return models.Course{}, err
	}
	if err := utils.ValidateUUID(req.Course.UniversityID, "university ID"); err != nil {
		return models.Course{}, err
	}
	if err := req.Review.ValidateBody(); err != nil {
		return models.Course{}, err
	}
	review := reviewFromRequest(req.Review)
	return s.repo.CreateWithReview(req.Course, &review, userID)
}
