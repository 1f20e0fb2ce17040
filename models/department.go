package models

type Department struct {
	DepartmentID   string `gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_id"`
	UniversityID   string `gorm:"column:university_id;type:uuid;not null;index" json:"university_id"`
	DepartmentName string `gorm:"column:department_name;not null" json:"department_name"`

	UniversityName string `gorm:"-:migration;->" json:"university_name,omitempty"`
	TotalReviews   int64  `gorm:"-:migration;->" json:"total_reviews"`
}

func (Department) TableName() string { return "departments" }
