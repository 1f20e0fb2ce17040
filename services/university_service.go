package services

import (
	"strings"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type UniversityService struct {
	repo *repositories.UniversityRepository
}

func NewUniversityService(repo *repositories.UniversityRepository) *UniversityService {
	return &UniversityService{repo: repo}
}

func (s *UniversityService) List() ([]models.University, error) {
	return s.repo.List()
}

func (s *UniversityService) ListPaginated(p utils.PageParams) ([]models.University, utils.PageMeta, error) {
	universities, total, err := s.repo.ListPaginated(p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return universities, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *UniversityService) GetByID(universityID string) (models.University, error) {
	if err := utils.ValidateUUID(universityID, "university ID"); err != nil {
		return models.University{}, err
	}
	return s.repo.GetByID(universityID)
}

// GetByName resolves a university from its URL form, where spaces arrive as
// underscores.
func (s *UniversityService) GetByName(name string) (models.University, error) {
	name = strings.ReplaceAll(name, "_", " ")
	if strings.TrimSpace(name) == "" {
		return models.University{}, utils.NewValidationError("university name is required")
	}
	return s.repo.GetByName(name)
}

func (s *UniversityService) Domains() ([]string, error) {
	return s.repo.Domains()
}

func (s *UniversityService) ListRequests(userToken string) ([]models.UniversityRequest, error) {
	return s.repo.ListRequests(userToken)
}

func (s *UniversityService) CreateRequest(req models.UniversityRequestInput, userToken string) (models.UniversityRequest, error) {
	if err := req.Validate(); err != nil {
		return models.UniversityRequest{}, err
	}
	return s.repo.CreateRequest(strings.TrimSpace(req.Name), userToken)
}

func (s *UniversityService) VoteRequest(universityID, userToken string) error {
	if err := utils.ValidateUUID(universityID, "university ID"); err != nil {
		return err
	}
	return s.repo.VoteRequest(universityID, userToken)
}
