package models

type Course struct {
	CourseID     string `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	DepartmentID string `gorm:"column:department_id;type:uuid;not null;index" json:"department_id"`
	CourseTag    string `gorm:"column:course_tag;not null" json:"course_tag"`
	CourseName   string `gorm:"column:course_name;not null" json:"course_name"`

	// Averages and counts computed by listing queries, not stored.
	OverallScore   float64 `gorm:"-:migration;->" json:"overall_score"`
	EasyScore      float64 `gorm:"-:migration;->" json:"easy_score"`
	InterestScore  float64 `gorm:"-:migration;->" json:"interest_score"`
	UsefulScore    float64 `gorm:"-:migration;->" json:"useful_score"`
	ReviewNum      int64   `gorm:"-:migration;->" json:"review_num"`
	UniversityID   string  `gorm:"-:migration;->" json:"university_id,omitempty"`
	UniversityName string  `gorm:"-:migration;->" json:"university_name,omitempty"`
	DepartmentName string  `gorm:"-:migration;->" json:"department_name,omitempty"`
}

func (Course) TableName() string { return "courses" }
