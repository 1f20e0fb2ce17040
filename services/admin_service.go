package services

import (
	"strings"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

// AdminService fronts the moderation workflows: report listing, dismissal,
// resolve-by-delete actions and the ban lifecycle.
type AdminService struct {
	admins  *repositories.AdminRepository
	reports *repositories.ReportRepository
}

func NewAdminService(admins *repositories.AdminRepository, reports *repositories.ReportRepository) *AdminService {
	return &AdminService{admins: admins, reports: reports}
}

func (s *AdminService) ListReports(entityType, status string, p utils.PageParams) ([]models.Report, utils.PageMeta, error) {
	et := models.ReportEntityType(entityType)
	if !et.IsValid() {
		return nil, utils.PageMeta{}, utils.NewValidationError("entity_type must be one of: course, review")
	}
	st := models.ReportStatus(status)
	if status != "" && !st.IsValid() {
		return nil, utils.PageMeta{}, utils.NewValidationError("status must be one of: pending, resolved, dismissed")
	}

	reports, total, err := s.reports.ListPaginated(et, st, p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return reports, utils.NewPageMeta(p.Page, p.Limit, total), nil
}

func (s *AdminService) DismissReport(reportID string) error {
	if err := utils.ValidateUUID(reportID, "report ID"); err != nil {
		return err
	}
	return s.reports.Dismiss(reportID)
}

func (s *AdminService) DeleteReportedReview(reportID string) error {
	if err := utils.ValidateUUID(reportID, "report ID"); err != nil {
		return err
	}
	return s.admins.DeleteReportedReview(reportID)
}

func (s *AdminService) DeleteReportedProfessor(reportID string) error {
	if err := utils.ValidateUUID(reportID, "report ID"); err != nil {
		return err
	}
	return s.admins.DeleteReportedProfessor(reportID)
}

func (s *AdminService) DeleteReportedCourse(reportID string) error {
	if err := utils.ValidateUUID(reportID, "report ID"); err != nil {
		return err
	}
	return s.admins.DeleteReportedCourse(reportID)
}

func (s *AdminService) DeleteReportedDepartment(reportID string) error {
	if err := utils.ValidateUUID(reportID, "report ID"); err != nil {
		return err
	}
	return s.admins.DeleteReportedDepartment(reportID)
}

func (s *AdminService) BanUser(userID string, req models.BanRequest, adminID string) error {
	if err := utils.ValidateUUID(userID, "user ID"); err != nil {
		return err
	}
	reason := strings.TrimSpace(req.BanReason)
	if reason == "" {
		return utils.NewValidationError("ban reason is required")
	}
	return s.admins.BanUser(userID, reason, adminID)
}

func (s *AdminService) UnbanUser(userID string) error {
	if err := utils.ValidateUUID(userID, "user ID"); err != nil {
		return err
	}
	return s.admins.UnbanUser(userID)
}

func (s *AdminService) BannedUsers(p utils.PageParams) ([]models.Ban, utils.PageMeta, error) {
	bans, total, err := s.admins.BannedUsers(p)
	if err != nil {
		return nil, utils.PageMeta{}, err
	}
	return bans, utils.NewPageMeta(p.Page, p.Limit, total), nil
}
