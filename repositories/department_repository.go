package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

var departmentSortKeys = map[string]string{
	"department_name": "departments.department_name",
	"university_name": "universities.university_name",
	"total_reviews":   "COUNT(reviews.review_id)",
}

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) withContext() *gorm.DB {
	return r.DB.Model(&models.Department{}).
		Select("departments.*, universities.university_name AS university_name, COUNT(reviews.review_id) AS total_reviews").
		Joins("JOIN universities ON universities.university_id = departments.university_id").
		Joins("LEFT JOIN courses ON courses.department_id = departments.department_id").
		Joins("LEFT JOIN reviews ON reviews.course_id = courses.course_id").
		Group("departments.department_id, universities.university_name")
}

func (r *DepartmentRepository) ListPaginated(p utils.PageParams) ([]models.Department, int64, error) {
	count := r.DB.Model(&models.Department{}).
		Joins("JOIN universities ON universities.university_id = departments.university_id")
	if p.Search != "" {
		count = count.Where("departments.department_name ILIKE ?", "%"+p.Search+"%")
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count departments: %v", err)
	}

	query := r.withContext()
	if p.Search != "" {
		query = query.Where("departments.department_name ILIKE ?", "%"+p.Search+"%")
	}
	order := utils.OrderClause(departmentSortKeys, p.SortBy, p.SortOrder,
		"department_name", "departments.department_name ASC")

	var departments []models.Department
	err := query.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&departments).Error
	if err != nil {
		return nil, 0, utils.NewInternalError("failed to list departments: %v", err)
	}
	return departments, total, nil
}

// ByUniversity lists every department of a university, searched and sorted
// but not paginated.
func (r *DepartmentRepository) ByUniversity(universityID string, p utils.PageParams) ([]models.Department, error) {
	query := r.withContext().Where("departments.university_id = ?", universityID)
	if p.Search != "" {
		query = query.Where("departments.department_name ILIKE ?", "%"+p.Search+"%")
	}
	order := utils.OrderClause(departmentSortKeys, p.SortBy, p.SortOrder,
		"department_name", "departments.department_name ASC")

	var departments []models.Department
	if err := query.Order(order).Find(&departments).Error; err != nil {
		return nil, utils.NewInternalError("failed to list departments: %v", err)
	}
	return departments, nil
}

func (r *DepartmentRepository) GetByID(departmentID string) (models.Department, error) {
	var department models.Department
	err := r.withContext().
		Where("departments.department_id = ?", departmentID).
		First(&department).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return department, utils.NewNotFoundError("department with ID %s not found", departmentID)
	}
	if err != nil {
		return department, utils.NewInternalError("failed to get department: %v", err)
	}
	return department, nil
}

// GetOrCreate finds a department by name within a university, creating it if
// absent. Name comparison is case-insensitive.
func (r *DepartmentRepository) GetOrCreate(universityID, name string) (models.Department, error) {
	return getOrCreateDepartment(r.DB, universityID, name)
}

func getOrCreateDepartment(tx *gorm.DB, universityID, name string) (models.Department, error) {
	var department models.Department
	err := tx.Where("university_id = ? AND department_name ILIKE ?", universityID, name).
		First(&department).Error
	if err == nil {
		return department, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return department, utils.NewInternalError("failed to get department: %v", err)
	}

	var count int64
	if err := tx.Model(&models.University{}).
		Where("university_id = ?", universityID).
		Count(&count).Error; err != nil {
		return department, utils.NewInternalError("failed to check university: %v", err)
	}
	if count == 0 {
		return department, utils.NewNotFoundError("university with ID %s not found", universityID)
	}

	department = models.Department{UniversityID: universityID, DepartmentName: name}
	if err := tx.Create(&department).Error; err != nil {
		return department, utils.NewInternalError("failed to create department: %v", err)
	}
	return department, nil
}
