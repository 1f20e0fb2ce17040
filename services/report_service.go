package services

import (
	"strings"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type ReportService struct {
	repo *repositories.ReportRepository
}

func NewReportService(repo *repositories.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) Create(req models.ReportRequest, userID string) (models.Report, error) {
	if err := req.Validate(); err != nil {
		return models.Report{}, err
	}
	if err := utils.ValidateUUID(req.EntityID, "entity ID"); err != nil {
		return models.Report{}, err
	}

	report := models.Report{
		UserID:       userID,
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		ReportReason: strings.TrimSpace(req.ReportReason),
	}
	if err := s.repo.Create(&report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}
