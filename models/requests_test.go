package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validReviewRequest() ReviewRequest {
	return ReviewRequest{
		CourseID:          "6f1e2ad0-0000-0000-0000-000000000001",
		ProfessorName:     "Ada Lovelace",
		Grade:             GradeA,
		DeliveryMethod:    DeliveryInPerson,
		Workload:          WorkloadModerate,
		TextbookUse:       TextbookNo,
		EvaluationMethods: []Evaluation{EvaluationExamHeavy},
		OverallScore:      4,
		EasyScore:         3,
		InterestScore:     5,
		UsefulScore:       4,
		TermTaken:         TermFall,
		YearTaken:         time.Now().Year() - 1,
		CourseComments:    "Solid course.",
	}
}

func TestReviewRequestValidate(t *testing.T) {
	req := validReviewRequest()
	assert.NoError(t, req.Validate())

	t.Run("missing course id", func(t *testing.T) {
		req := validReviewRequest()
		req.CourseID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("score out of range", func(t *testing.T) {
		req := validReviewRequest()
		req.OverallScore = 6
		assert.Error(t, req.Validate())
		req.OverallScore = 0
		assert.Error(t, req.Validate())
	})

	t.Run("bad enum", func(t *testing.T) {
		req := validReviewRequest()
		req.Grade = "A++"
		assert.Error(t, req.Validate())

		req = validReviewRequest()
		req.EvaluationMethods = []Evaluation{"Vibes Heavy"}
		assert.Error(t, req.Validate())
	})

	t.Run("future year", func(t *testing.T) {
		req := validReviewRequest()
		req.YearTaken = time.Now().Year() + 1
		assert.Error(t, req.Validate())
	})

	t.Run("comment too long", func(t *testing.T) {
		req := validReviewRequest()
		req.AdviceComments = strings.Repeat("a", 1001)
		assert.Error(t, req.Validate())
	})
}

func TestVoteRequestValidate(t *testing.T) {
	req := VoteRequest{ReviewID: "6f1e2ad0-0000-0000-0000-000000000001", VoteType: VoteUp}
	assert.NoError(t, req.Validate())

	req.VoteType = "sideways"
	assert.Error(t, req.Validate())

	req = VoteRequest{VoteType: VoteDown}
	assert.Error(t, req.Validate())
}

func TestReportRequestValidate(t *testing.T) {
	req := ReportRequest{
		EntityType:   EntityReview,
		EntityID:     "6f1e2ad0-0000-0000-0000-000000000001",
		ReportReason: "spam",
	}
	assert.NoError(t, req.Validate())

	req.EntityType = "professor"
	assert.Error(t, req.Validate())

	req = ReportRequest{EntityType: EntityCourse, EntityID: "x", ReportReason: "   "}
	assert.Error(t, req.Validate())

	req = ReportRequest{
		EntityType:   EntityCourse,
		EntityID:     "6f1e2ad0-0000-0000-0000-000000000001",
		ReportReason: strings.Repeat("r", 1001),
	}
	assert.Error(t, req.Validate())
}

func TestUniversityRequestInputValidate(t *testing.T) {
	assert.NoError(t, (&UniversityRequestInput{Name: "Wilfrid Laurier University"}).Validate())
	assert.Error(t, (&UniversityRequestInput{Name: ""}).Validate())
	assert.Error(t, (&UniversityRequestInput{Name: "W"}).Validate())
	assert.Error(t, (&UniversityRequestInput{Name: strings.Repeat("u", 101)}).Validate())
}
