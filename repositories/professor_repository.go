package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

var professorSortKeys = map[string]string{
	"professor_name": "professors.professor_name",
	"course_tag":     "courses.course_tag",
}

type ProfessorRepository struct {
	DB *gorm.DB
}

func NewProfessorRepository(db *gorm.DB) *ProfessorRepository {
	return &ProfessorRepository{DB: db}
}

func (r *ProfessorRepository) withCourse() *gorm.DB {
	return r.DB.Model(&models.Professor{}).
		Select("professors.*, courses.course_name AS course_name, courses.course_tag AS course_tag").
		Joins("JOIN courses ON courses.course_id = professors.course_id")
}

func (r *ProfessorRepository) listProfessors(universityID string, p utils.PageParams) ([]models.Professor, int64, error) {
	count := r.DB.Model(&models.Professor{}).
		Joins("JOIN courses ON courses.course_id = professors.course_id")
	query := r.withCourse()

	if universityID != "" {
		join := "JOIN departments ON departments.department_id = courses.department_id"
		count = count.Joins(join).Where("departments.university_id = ?", universityID)
		query = query.Joins(join).Where("departments.university_id = ?", universityID)
	}
	if p.Search != "" {
		pattern := "%" + p.Search + "%"
		count = count.Where("professors.professor_name ILIKE ?", pattern)
		query = query.Where("professors.professor_name ILIKE ?", pattern)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count professors: %v", err)
	}

	order := utils.OrderClause(professorSortKeys, p.SortBy, p.SortOrder,
		"professor_name", "professors.professor_name ASC")

	var professors []models.Professor
	err := query.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&professors).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list professors: %v", err)
	}
	return professors, total, nil
}

func (r *ProfessorRepository) ListPaginated(p utils.PageParams) ([]models.Professor, int64, error) {
	return r.listProfessors("", p)
}

func (r *ProfessorRepository) ByUniversity(universityID string, p utils.PageParams) ([]models.Professor, int64, error) {
	return r.listProfessors(universityID, p)
}

func (r *ProfessorRepository) ByCourse(courseID string) ([]models.Professor, error) {
	var professors []models.Professor
	err := r.withCourse().
		Where("professors.course_id = ?", courseID).
		Order("professors.professor_name ASC").
		Find(&professors).Error
	if err != nil {
		return nil, utils.NewInternalError("failed to list professors: %v", err)
	}
	return professors, nil
}

func getOrCreateProfessor(tx *gorm.DB, courseID, name string) (models.Professor, error) {
	var professor models.Professor
	err := tx.Where("course_id = ? AND professor_name ILIKE ?", courseID, name).
		First(&professor).Error
	if err == nil {
		return professor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return professor, utils.NewInternalError("failed to get professor: %v", err)
	}

	professor = models.Professor{CourseID: courseID, ProfessorName: name}
	if err := tx.Create(&professor).Error; err != nil {
		return professor, utils.NewInternalError("failed to create professor: %v", err)
	}
	return professor, nil
}
