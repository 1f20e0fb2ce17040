package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

var courseSortKeys = map[string]string{
	"course_tag":     "courses.course_tag",
	"course_name":    "courses.course_name",
	"review_num":     "COUNT(reviews.review_id)",
	"overall_score":  "COALESCE(AVG(reviews.overall_score), 0)",
	"easy_score":     "COALESCE(AVG(reviews.easy_score), 0)",
	"interest_score": "COALESCE(AVG(reviews.interest_score), 0)",
	"useful_score":   "COALESCE(AVG(reviews.useful_score), 0)",
}

const courseSelect = `courses.*,
	departments.department_name AS department_name,
	departments.university_id AS university_id,
	universities.university_name AS university_name,
	ROUND(COALESCE(AVG(reviews.overall_score), 0)::numeric, 1) AS overall_score,
	ROUND(COALESCE(AVG(reviews.easy_score), 0)::numeric, 1) AS easy_score,
	ROUND(COALESCE(AVG(reviews.interest_score), 0)::numeric, 1) AS interest_score,
	ROUND(COALESCE(AVG(reviews.useful_score), 0)::numeric, 1) AS useful_score,
	COUNT(reviews.review_id) AS review_num`

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) withScores() *gorm.DB {
	return r.DB.Model(&models.Course{}).
		Select(courseSelect).
		Joins("JOIN departments ON departments.department_id = courses.department_id").
		Joins("JOIN universities ON universities.university_id = departments.university_id").
		Joins("LEFT JOIN reviews ON reviews.course_id = courses.course_id").
		Group("courses.course_id, departments.department_name, departments.university_id, universities.university_name")
}

func applyCourseSearch(query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}
	pattern := "%" + search + "%"
	return query.Where("courses.course_name ILIKE ? OR courses.course_tag ILIKE ?", pattern, pattern)
}

func (r *CourseRepository) countCourses(universityID, departmentID, search string) (int64, error) {
	count := r.DB.Model(&models.Course{}).
		Joins("JOIN departments ON departments.department_id = courses.department_id")
	if universityID != "" {
		count = count.Where("departments.university_id = ?", universityID)
	}
	if departmentID != "" {
		count = count.Where("courses.department_id = ?", departmentID)
	}
	count = applyCourseSearch(count, search)

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return 0, utils.NewInternalError("failed to count courses: %v", err)
	}
	return total, nil
}

func (r *CourseRepository) listCourses(universityID, departmentID string, p utils.PageParams) ([]models.Course, int64, error) {
	total, err := r.countCourses(universityID, departmentID, p.Search)
	if err != nil {
		return nil, 0, err
	}

	query := r.withScores()
	if universityID != "" {
		query = query.Where("departments.university_id = ?", universityID)
	}
	if departmentID != "" {
		query = query.Where("courses.department_id = ?", departmentID)
	}
	query = applyCourseSearch(query, p.Search)

	order := utils.OrderClause(courseSortKeys, p.SortBy, p.SortOrder,
		"course_tag", "courses.course_tag ASC")

	var courses []models.Course
	err = query.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&courses).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list courses: %v", err)
	}
	return courses, total, nil
}

func (r *CourseRepository) ListPaginated(p utils.PageParams) ([]models.Course, int64, error) {
	return r.listCourses("", "", p)
}

func (r *CourseRepository) ByUniversity(universityID, departmentID string, p utils.PageParams) ([]models.Course, int64, error) {
	return r.listCourses(universityID, departmentID, p)
}

func (r *CourseRepository) ByDepartment(departmentID string, p utils.PageParams) ([]models.Course, int64, error) {
	return r.listCourses("", departmentID, p)
}

func (r *CourseRepository) GetByID(courseID string) (models.Course, error) {
	var course models.Course
	err := r.withScores().
		Where("courses.course_id = ?", courseID).
		First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return course, utils.NewNotFoundError("course with ID %s not found", courseID)
	}
	if err != nil {
		return course, utils.NewInternalError("failed to get course: %v", err)
	}
	return course, nil
}

func (r *CourseRepository) ByTag(universityID, courseTag string) (models.Course, error) {
	var course models.Course
	err := r.withScores().
		Where("departments.university_id = ? AND courses.course_tag ILIKE ?", universityID, courseTag).
		First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return course, utils.NewNotFoundError("course %s not found at this university", courseTag)
	}
	if err != nil {
		return course, utils.NewInternalError("failed to get course: %v", err)
	}
	return course, nil
}

// CreateWithReview inserts a course together with its first review in one
// transaction: get-or-create the department, reject duplicate course tags
// within it, insert the course, optionally get-or-create the professor, then
// insert the review with the author's implicit up-vote.
func (r *CourseRepository) CreateWithReview(req models.CourseRequest, review *models.Review, userID string) (models.Course, error) {
	var created models.Course

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		department, err := getOrCreateDepartment(tx, req.UniversityID, req.DepartmentName)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Course{}).
			Where("department_id = ? AND course_tag ILIKE ?", department.DepartmentID, req.CourseTag).
			Count(&count).Error; err != nil {
			return utils.NewInternalError("failed to check course: %v", err)
		}
		if count > 0 {
			return utils.NewConflictError("course %s already exists in this department", req.CourseTag)
		}

		created = models.Course{
			DepartmentID: department.DepartmentID,
			CourseTag:    req.CourseTag,
			CourseName:   req.CourseName,
		}
		if err := tx.Create(&created).Error; err != nil {
			return utils.NewInternalError("failed to create course: %v", err)
		}

		review.CourseID = created.CourseID
		review.UserID = &userID
		if review.ProfessorName != "" {
			professor, err := getOrCreateProfessor(tx, created.CourseID, review.ProfessorName)
			if err != nil {
				return err
			}
			review.ProfessorID = &professor.ProfessorID
		}

		return insertReviewWithAuthorVote(tx, review)
	})
	if err != nil {
		return models.Course{}, err
	}
	return created, nil
}
