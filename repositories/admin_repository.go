package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

// AdminRepository holds the moderation transactions: resolve-by-delete
// cascades and the ban workflow.
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// deleteReviews removes reviews and their vote rows, and resolves any
// pending reports filed against them.
func deleteReviews(tx *gorm.DB, reviewIDs []string) error {
	if len(reviewIDs) == 0 {
		return nil
	}
	if err := resolvePendingReports(tx, models.EntityReview, reviewIDs...); err != nil {
		return err
	}
	if err := tx.Delete(&models.UserVote{}, "review_id IN ?", reviewIDs).Error; err != nil {
		return utils.NewInternalError("failed to delete votes: %v", err)
	}
	if err := tx.Delete(&models.Review{}, "review_id IN ?", reviewIDs).Error; err != nil {
		return utils.NewInternalError("failed to delete reviews: %v", err)
	}
	return nil
}

func reviewIDsWhere(tx *gorm.DB, query string, args ...interface{}) ([]string, error) {
	var ids []string
	err := tx.Model(&models.Review{}).Where(query, args...).Pluck("review_id", &ids).Error
	if err != nil {
		return nil, utils.NewInternalError("failed to collect reviews: %v", err)
	}
	return ids, nil
}

func deleteProfessors(tx *gorm.DB, professorIDs []string) error {
	if len(professorIDs) == 0 {
		return nil
	}
	reviewIDs, err := reviewIDsWhere(tx, "professor_id IN ?", professorIDs)
	if err != nil {
		return err
	}
	if err := deleteReviews(tx, reviewIDs); err != nil {
		return err
	}
	if err := tx.Delete(&models.Professor{}, "professor_id IN ?", professorIDs).Error; err != nil {
		return utils.NewInternalError("failed to delete professors: %v", err)
	}
	return nil
}

func deleteCourses(tx *gorm.DB, courseIDs []string) error {
	if len(courseIDs) == 0 {
		return nil
	}
	if err := resolvePendingReports(tx, models.EntityCourse, courseIDs...); err != nil {
		return err
	}
	reviewIDs, err := reviewIDsWhere(tx, "course_id IN ?", courseIDs)
	if err != nil {
		return err
	}
	if err := deleteReviews(tx, reviewIDs); err != nil {
		return err
	}
	if err := tx.Delete(&models.Professor{}, "course_id IN ?", courseIDs).Error; err != nil {
		return utils.NewInternalError("failed to delete professors: %v", err)
	}
	if err := tx.Delete(&models.Course{}, "course_id IN ?", courseIDs).Error; err != nil {
		return utils.NewInternalError("failed to delete courses: %v", err)
	}
	return nil
}

// reportedReview loads the report and the review it points at. Every
// moderation cascade except course-on-course starts here.
func reportedReview(tx *gorm.DB, reportID string) (models.Report, models.Review, error) {
	report, err := getReport(tx, reportID)
	if err != nil {
		return report, models.Review{}, err
	}
	if report.EntityType != models.EntityReview {
		return report, models.Review{}, utils.NewValidationError("report %s is not a review report", reportID)
	}
	var review models.Review
	err = tx.Where("review_id = ?", report.EntityID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return report, review, utils.NewNotFoundError("reported review no longer exists")
	}
	if err != nil {
		return report, review, utils.NewInternalError("failed to get review: %v", err)
	}
	return report, review, nil
}

// DeleteReportedReview removes the review a report points at and resolves
// every pending report on that review.
func (r *AdminRepository) DeleteReportedReview(reportID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		_, review, err := reportedReview(tx, reportID)
		if err != nil {
			return err
		}
		return deleteReviews(tx, []string{review.ReviewID})
	})
}

// DeleteReportedProfessor removes the professor behind a reported review,
// together with all of that professor's reviews.
func (r *AdminRepository) DeleteReportedProfessor(reportID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		_, review, err := reportedReview(tx, reportID)
		if err != nil {
			return err
		}
		if review.ProfessorID == nil {
			return utils.NewNotFoundError("reported review has no professor")
		}
		return deleteProfessors(tx, []string{*review.ProfessorID})
	})
}

// DeleteReportedCourse removes the course behind a report. Course reports
// name the course directly; review reports resolve it through the review.
func (r *AdminRepository) DeleteReportedCourse(reportID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		courseID, err := courseForReport(tx, reportID)
		if err != nil {
			return err
		}
		return deleteCourses(tx, []string{courseID})
	})
}

// DeleteReportedDepartment removes the department behind a report and
// everything under it.
func (r *AdminRepository) DeleteReportedDepartment(reportID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		courseID, err := courseForReport(tx, reportID)
		if err != nil {
			return err
		}
		var course models.Course
		if err := tx.Where("course_id = ?", courseID).First(&course).Error; err != nil {
			return utils.NewInternalError("failed to get course: %v", err)
		}

		var courseIDs []string
		err = tx.Model(&models.Course{}).
			Where("department_id = ?", course.DepartmentID).
			Pluck("course_id", &courseIDs).Error
		if err != nil {
			return utils.NewInternalError("failed to collect courses: %v", err)
		}
		if err := deleteCourses(tx, courseIDs); err != nil {
			return err
		}
		if err := tx.Delete(&models.Department{}, "department_id = ?", course.DepartmentID).Error; err != nil {
			return utils.NewInternalError("failed to delete department: %v", err)
		}
		return nil
	})
}

func courseForReport(tx *gorm.DB, reportID string) (string, error) {
	report, err := getReport(tx, reportID)
	if err != nil {
		return "", err
	}
	switch report.EntityType {
	case models.EntityCourse:
		return report.EntityID, nil
	case models.EntityReview:
		var review models.Review
		err := tx.Where("review_id = ?", report.EntityID).First(&review).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", utils.NewNotFoundError("reported review no longer exists")
		}
		if err != nil {
			return "", utils.NewInternalError("failed to get review: %v", err)
		}
		return review.CourseID, nil
	default:
		return "", utils.NewValidationError("invalid entity type for this action")
	}
}

// BanUser records the ban, deletes the user's reviews and resolves the
// pending reports on them, all in one transaction.
func (r *AdminRepository) BanUser(userID, reason, adminID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return utils.NewInternalError("failed to check user: %v", err)
		}
		if count == 0 {
			return utils.NewNotFoundError("user with ID %s not found", userID)
		}

		if err := tx.Model(&models.Ban{}).
			Where("user_id = ? AND unbanned_at IS NULL", userID).
			Count(&count).Error; err != nil {
			return utils.NewInternalError("failed to check ban status: %v", err)
		}
		if count > 0 {
			return utils.NewConflictError("user is already banned")
		}

		ban := models.Ban{UserID: userID, BanReason: reason, BannedBy: adminID}
		if err := tx.Create(&ban).Error; err != nil {
			return utils.NewInternalError("failed to create ban: %v", err)
		}

		reviewIDs, err := reviewIDsWhere(tx, "user_id = ?", userID)
		if err != nil {
			return err
		}
		return deleteReviews(tx, reviewIDs)
	})
}

// UnbanUser closes the user's active ban. Absence of one is an error.
func (r *AdminRepository) UnbanUser(userID string) error {
	now := time.Now()
	result := r.DB.Model(&models.Ban{}).
		Where("user_id = ? AND unbanned_at IS NULL", userID).
		Update("unbanned_at", &now)
	if result.Error != nil {
		return utils.NewInternalError("failed to unban user: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NewNotFoundError("no active ban found for this user")
	}
	return nil
}

// BannedUsers lists active bans with the user's email and display name.
func (r *AdminRepository) BannedUsers(p utils.PageParams) ([]models.Ban, int64, error) {
	var total int64
	err := r.DB.Model(&models.Ban{}).Where("unbanned_at IS NULL").Count(&total).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to count bans: %v", err)
	}

	var bans []models.Ban
	err = r.DB.Model(&models.Ban{}).
		Select("bans.*, users.email AS email, users.display_name AS display_name").
		Joins("JOIN users ON users.user_id = bans.user_id").
		Where("bans.unbanned_at IS NULL").
		Order("bans.banned_at DESC").
		Limit(p.Limit).Offset(p.Offset()).
		Find(&bans).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list bans: %v", err)
	}
	return bans, total, nil
}
