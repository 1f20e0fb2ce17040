package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

var validate = validator.New()

var plainTextPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.,!?'"()\-:;]*$`)

func validateTextInput(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return utils.NewValidationError("%s is required", fieldName)
	}
	if !plainTextPattern.MatchString(value) {
		return utils.NewValidationError("%s contains invalid characters", fieldName)
	}
	return nil
}

type RegisterRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return utils.NewValidationError("invalid registration data: %v", err)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return utils.NewValidationError("invalid login data: %v", err)
	}
	return nil
}

type VoteRequest struct {
	ReviewID string   `json:"review_id" validate:"required,uuid"`
	VoteType VoteType `json:"vote_type" validate:"required"`
}

func (r *VoteRequest) Validate() error {
	if r.ReviewID == "" || r.VoteType == "" {
		return utils.NewValidationError("review_id and vote_type must be provided")
	}
	if err := validate.Struct(r); err != nil {
		return utils.NewValidationError("invalid vote data: %v", err)
	}
	if !r.VoteType.IsValid() {
		return utils.NewValidationError(`vote_type must be either "up" or "down"`)
	}
	return nil
}

// ReviewRequest is the payload for posting a review to an existing course.
type ReviewRequest struct {
	CourseID          string       `json:"course_id"`
	ProfessorName     string       `json:"professor_name"`
	Grade             Grade        `json:"grade"`
	DeliveryMethod    Delivery     `json:"delivery_method"`
	Workload          Workload     `json:"workload"`
	TextbookUse       Textbook     `json:"textbook_use"`
	EvaluationMethods []Evaluation `json:"evaluation_methods"`
	OverallScore      int          `json:"overall_score"`
	EasyScore         int          `json:"easy_score"`
	InterestScore     int          `json:"interest_score"`
	UsefulScore       int          `json:"useful_score"`
	TermTaken         Term         `json:"term_taken"`
	YearTaken         int          `json:"year_taken"`
	CourseComments    string       `json:"course_comments"`
	ProfessorComments string       `json:"professor_comments"`
	AdviceComments    string       `json:"advice_comments"`
}

func validScore(score int) bool { return score >= 1 && score <= 5 }

func (r *ReviewRequest) Validate() error {
	if r.CourseID == "" {
		return utils.NewValidationError("Course ID is required")
	}
	return r.ValidateBody()
}

// ValidateBody checks everything except course_id, for payloads where the
// course is created in the same request.
func (r *ReviewRequest) ValidateBody() error {
	if err := validateTextInput(r.ProfessorName, "Professor name"); err != nil {
		return err
	}
	if !r.Grade.IsValid() {
		return utils.NewValidationError("Valid grade is required")
	}
	if !r.DeliveryMethod.IsValid() {
		return utils.NewValidationError("Valid delivery method is required")
	}
	if !r.Workload.IsValid() {
		return utils.NewValidationError("Valid workload is required")
	}
	if !r.TextbookUse.IsValid() {
		return utils.NewValidationError("Valid textbook use is required")
	}
	for _, method := range r.EvaluationMethods {
		if !method.IsValid() {
			return utils.NewValidationError("Invalid evaluation method: %s", method)
		}
	}
	if !validScore(r.OverallScore) {
		return utils.NewValidationError("Overall score must be between 1 and 5")
	}
	if !validScore(r.EasyScore) {
		return utils.NewValidationError("Easy score must be between 1 and 5")
	}
	if !validScore(r.InterestScore) {
		return utils.NewValidationError("Interest score must be between 1 and 5")
	}
	if !validScore(r.UsefulScore) {
		return utils.NewValidationError("Useful score must be between 1 and 5")
	}
	if !r.TermTaken.IsValid() {
		return utils.NewValidationError("Valid term taken is required")
	}
	if r.YearTaken < 1900 || r.YearTaken > time.Now().Year() {
		return utils.NewValidationError("Valid year taken is required")
	}
	for _, c := range []struct{ value, name string }{
		{r.CourseComments, "Course comments"},
		{r.ProfessorComments, "Professor comments"},
		{r.AdviceComments, "Advice comments"},
	} {
		if len(c.value) > 1000 {
			return utils.NewValidationError("%s must be less than 1000 characters", c.name)
		}
	}
	return nil
}

// CourseRequest is the course half of the add-course-with-review payload.
type CourseRequest struct {
	UniversityID   string `json:"university_id"`
	DepartmentName string `json:"department_name"`
	CourseTag      string `json:"course_tag"`
	CourseName     string `json:"course_name"`
}

func (r *CourseRequest) Validate() error {
	if r.UniversityID == "" {
		return utils.NewValidationError("University ID is required")
	}
	if err := validateTextInput(r.CourseTag, "Course tag"); err != nil {
		return err
	}
	if err := validateTextInput(r.CourseName, "Course name"); err != nil {
		return err
	}
	return validateTextInput(r.DepartmentName, "Department name")
}

type CourseWithReviewRequest struct {
	Course CourseRequest `json:"course"`
	Review ReviewRequest `json:"review"`
}

type ReportRequest struct {
	EntityType   ReportEntityType `json:"entity_type"`
	EntityID     string           `json:"entity_id"`
	ReportReason string           `json:"report_reason"`
}

func (r *ReportRequest) Validate() error {
	if !r.EntityType.IsValid() {
		return utils.NewValidationError("Invalid entity_type. Must be one of: course, review")
	}
	if r.EntityID == "" {
		return utils.NewValidationError("entity_id is required")
	}
	reason := strings.TrimSpace(r.ReportReason)
	if reason == "" {
		return utils.NewValidationError("Report reason is required")
	}
	if len(reason) > 1000 {
		return utils.NewValidationError("Report reason must be less than 1000 characters")
	}
	return nil
}

type UniversityRequestInput struct {
	Name string `json:"name"`
}

func (r *UniversityRequestInput) Validate() error {
	if r.Name == "" {
		return utils.NewValidationError("University name is required")
	}
	if len(r.Name) < 2 {
		return utils.NewValidationError("University name must be at least 2 characters long")
	}
	if len(r.Name) > 100 {
		return utils.NewValidationError("University name must be less than 100 characters")
	}
	return nil
}

type BanRequest struct {
	BanReason string `json:"ban_reason"`
}
