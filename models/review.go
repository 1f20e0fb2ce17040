package models

import (
	"time"

	"github.com/lib/pq"
)

type Review struct {
	ReviewID          string         `gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"review_id"`
	CourseID          string         `gorm:"column:course_id;type:uuid;not null;index" json:"course_id"`
	ProfessorID       *string        `gorm:"column:professor_id;type:uuid;index" json:"professor_id,omitempty"`
	UserID            *string        `gorm:"column:user_id;type:uuid;index" json:"user_id,omitempty"`
	Grade             Grade          `gorm:"column:grade" json:"grade"`
	DeliveryMethod    Delivery       `gorm:"column:delivery_method" json:"delivery_method"`
	Workload          Workload       `gorm:"column:workload" json:"workload"`
	TextbookUse       Textbook       `gorm:"column:textbook_use" json:"textbook_use"`
	EvaluationMethods pq.StringArray `gorm:"column:evaluation_methods;type:text[]" json:"evaluation_methods"`
	OverallScore      int            `gorm:"column:overall_score;not null" json:"overall_score"`
	EasyScore         int            `gorm:"column:easy_score;not null" json:"easy_score"`
	InterestScore     int            `gorm:"column:interest_score;not null" json:"interest_score"`
	UsefulScore       int            `gorm:"column:useful_score;not null" json:"useful_score"`
	TermTaken         Term           `gorm:"column:term_taken" json:"term_taken"`
	YearTaken         int            `gorm:"column:year_taken" json:"year_taken"`
	DateUploaded      time.Time      `gorm:"column:date_uploaded;autoCreateTime" json:"date_uploaded"`
	CourseComments    string         `gorm:"column:course_comments" json:"course_comments"`
	ProfessorComments string         `gorm:"column:professor_comments" json:"professor_comments"`
	AdviceComments    string         `gorm:"column:advice_comments" json:"advice_comments"`

	// Denormalized running sum of the review's up/down votes. Kept in step
	// with user_votes inside the vote transaction.
	Votes int `gorm:"column:votes;not null;default:0" json:"votes"`

	// Joined context for listing queries.
	ProfessorName  string  `gorm:"-:migration;->" json:"professor_name,omitempty"`
	DepartmentID   string  `gorm:"-:migration;->" json:"department_id,omitempty"`
	DepartmentName string  `gorm:"-:migration;->" json:"department_name,omitempty"`
	UniversityID   string  `gorm:"-:migration;->" json:"university_id,omitempty"`
	UniversityName string  `gorm:"-:migration;->" json:"university_name,omitempty"`
	CourseName     string  `gorm:"-:migration;->" json:"course_name,omitempty"`
	CourseTag      string  `gorm:"-:migration;->" json:"course_tag,omitempty"`
	Vote           *string `gorm:"-:migration;->" json:"vote,omitempty"`
}

func (Review) TableName() string { return "reviews" }
