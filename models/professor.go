package models

type Professor struct {
	ProfessorID   string `gorm:"column:professor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"professor_id"`
	CourseID      string `gorm:"column:course_id;type:uuid;not null;index" json:"course_id"`
	ProfessorName string `gorm:"column:professor_name;not null" json:"professor_name"`

	CourseName string `gorm:"-:migration;->" json:"course_name,omitempty"`
	CourseTag  string `gorm:"-:migration;->" json:"course_tag,omitempty"`
}

func (Professor) TableName() string { return "professors" }
