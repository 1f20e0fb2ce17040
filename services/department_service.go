package services

import (
	"strings"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type DepartmentService struct {
	repo *repositories.DepartmentRepository
}

func NewDepartmentService(repo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

func (s *DepartmentService) ListPaginated(p utils.PageParams) ([]models.Department, utils.PageMeta, error) {
	departments, total, err := s.repo.ListPaginated(p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return departments, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *DepartmentService) ByUniversity(universityID string, p utils.PageParams) ([]models.Department, error) {
	if err := utils.ValidateUUID(universityID, "university ID"); err != nil {
		return nil, err
	}
	return s.repo.ByUniversity(universityID, p)
}

func (s *DepartmentService) GetByID(departmentID string) (models.Department, error) {
	if err := utils.ValidateUUID(departmentID, "department ID"); err != nil {
		return models.Department{}, err
	}
	return s.repo.GetByID(departmentID)
}

func (s *DepartmentService) GetOrCreate(universityID, name string) (models.Department, error) {
	if err := utils.ValidateUUID(universityID, "university ID"); err != nil {
		return models.Department{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Department{}, utils.NewValidationError("department name is required")
	}
	return s.repo.GetOrCreate(universityID, name)
}
