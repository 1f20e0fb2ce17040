package services

import (
	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type ProfessorService struct {
	repo *repositories.ProfessorRepository
}

func NewProfessorService(repo *repositories.ProfessorRepository) *ProfessorService {
	return &ProfessorService{repo: repo}
}

func (s *ProfessorService) ListPaginated(p utils.PageParams) ([]models.Professor, utils.PageMeta, error) {
	professors, total, err := s.repo.ListPaginated(p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return professors, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *ProfessorService) ByUniversity(universityID string, p utils.PageParams) ([]models.Professor, utils.PageMeta, error) {
	if err := utils.ValidateUUID(universityID, "university ID"); err != nil {
		return nil, utils.PageMeta{}, err
	}
	professors, total, err := s.repo.ByUniversity(universityID, p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return professors, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *ProfessorService) ByCourse(courseID string) ([]models.Professor, error) {
	if err := utils.ValidateUUID(courseID, "course ID"); err != nil {
		return nil, err
	}
	return s.repo.ByCourse(courseID)
}
