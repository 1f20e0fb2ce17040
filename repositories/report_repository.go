package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Create files a report after verifying the reported entity exists.
func (r *ReportRepository) Create(report *models.Report) error {
	var count int64
	var err error
	switch report.EntityType {
	case models.EntityCourse:
		err = r.DB.Model(&models.Course{}).
			Where("course_id = ?", report.EntityID).Count(&count).Error
	case models.EntityReview:
		err = r.DB.Model(&models.Review{}).
			Where("review_id = ?", report.EntityID).Count(&count).Error
	default:
		return utils.NewValidationError("invalid entity_type %q", report.EntityType)
	}
	if err != nil {
		return utils.NewInternalError("failed to check reported entity: %v", err)
	}
	if count == 0 {
		return utils.NewNotFoundError("%s with ID %s not found", report.EntityType, report.EntityID)
	}

	report.Status = models.ReportPending
	if err := r.DB.Create(report).Error; err != nil {
		return utils.NewInternalError("failed to create report: %v", err)
	}
	return nil
}

// entityDetailsSelect builds the per-report detail blob so the admin UI can
// show what was reported without a second round trip.
const entityDetailsSelect = `reports.*,
users.display_name AS display_name,
CASE
  WHEN reports.entity_type = 'course' THEN (
    SELECT json_build_object(
      'course_name', courses.course_name,
      'course_tag', courses.course_tag,
      'department_name', departments.department_name,
      'department_id', departments.department_id,
      'university_name', universities.university_name
    )
    FROM courses
    LEFT JOIN departments ON departments.department_id = courses.department_id
    LEFT JOIN universities ON universities.university_id = departments.university_id
    WHERE courses.course_id = reports.entity_id::uuid
  )
  WHEN reports.entity_type = 'review' THEN (
    SELECT json_build_object(
      'course_name', courses.course_name,
      'course_tag', courses.course_tag,
      'department_name', departments.department_name,
      'university_name', universities.university_name,
      'professor_name', professors.professor_name,
      'professor_id', professors.professor_id,
      'course_comments', reviews.course_comments,
      'professor_comments', reviews.professor_comments,
      'advice_comments', reviews.advice_comments,
      'reviewer_display_name', review_users.display_name,
      'reviewer_email', review_users.email,
      'reviewer_id', reviews.user_id
    )
    FROM reviews
    LEFT JOIN courses ON courses.course_id = reviews.course_id
    LEFT JOIN professors ON professors.professor_id = reviews.professor_id
    LEFT JOIN departments ON departments.department_id = courses.department_id
    LEFT JOIN universities ON universities.university_id = departments.university_id
    LEFT JOIN users review_users ON review_users.user_id = reviews.user_id
    WHERE reviews.review_id = reports.entity_id::uuid
  )
END AS entity_details`

// ListPaginated lists reports of one entity type, optionally filtered by
// status, newest first unless asked otherwise.
func (r *ReportRepository) ListPaginated(entityType models.ReportEntityType, status models.ReportStatus, p utils.PageParams) ([]models.Report, int64, error) {
	count := r.DB.Model(&models.Report{}).Where("entity_type = ?", entityType)
	if status != "" {
		count = count.Where("status = ?", status)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count reports: %v", err)
	}

	query := r.DB.Model(&models.Report{}).
		Select(entityDetailsSelect).
		Joins("LEFT JOIN users ON users.user_id = reports.user_id").
		Where("reports.entity_type = ?", entityType)
	if status != "" {
		query = query.Where("reports.status = ?", status)
	}

	order := utils.OrderClause(
		map[string]string{"date_created": "reports.report_date"},
		p.SortBy, p.SortOrder, "date_created", "reports.report_id ASC")

	var reports []models.Report
	err := query.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&reports).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list reports: %v", err)
	}
	return reports, total, nil
}

func (r *ReportRepository) GetByID(reportID string) (models.Report, error) {
	return getReport(r.DB, reportID)
}

func getReport(tx *gorm.DB, reportID string) (models.Report, error) {
	var report models.Report
	err := tx.Where("report_id = ?", reportID).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return report, utils.NewNotFoundError("report with ID %s not found", reportID)
	}
	if err != nil {
		return report, utils.NewInternalError("failed to get report: %v", err)
	}
	return report, nil
}

// Dismiss moves a pending report to dismissed. Resolved and dismissed are
// terminal states.
func (r *ReportRepository) Dismiss(reportID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		report, err := getReport(tx, reportID)
		if err != nil {
			return err
		}
		if report.Status != models.ReportPending {
			return utils.NewConflictError("report is already %s", report.Status)
		}
		err = tx.Model(&models.Report{}).
			Where("report_id = ?", reportID).
			Update("status", models.ReportDismissed).Error
		if err != nil {
			return utils.NewInternalError("failed to dismiss report: %v", err)
		}
		return nil
	})
}

// resolvePendingReports marks every pending report on the given entities as
// resolved. Used when a moderation action removes the reported content.
func resolvePendingReports(tx *gorm.DB, entityType models.ReportEntityType, entityIDs ...string) error {
	if len(entityIDs) == 0 {
		return nil
	}
	err := tx.Model(&models.Report{}).
		Where("entity_type = ? AND entity_id IN ? AND status = ?", entityType, entityIDs, models.ReportPending).
		Update("status", models.ReportResolved).Error
	if err != nil {
		return utils.NewInternalError("failed to resolve reports: %v", err)
	}
	return nil
}
