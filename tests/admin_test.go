package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouizahmed/ratethatclass-sub000/models"
)

func fileReport(t *testing.T, token, entityType, entityID, reason string) models.Report {
	t.Helper()
	_, env := request(t, "POST", "/report/create", map[string]string{
		"entity_type":   entityType,
		"entity_id":     entityID,
		"report_reason": reason,
	}, token)
	require.True(t, env.Success, "file report: %s", env.Message)
	var report models.Report
	decodeData(t, env, &report)
	return report
}

func TestReportCreation(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "report-author@example.com")
	reporter, _ := registerUser(t, "report-reporter@example.com")
	university := seedUniversity(t, "Reporting University")
	course := createCourse(t, author, university.UniversityID, "ENGL 109", "Academic Writing")

	report := fileReport(t, reporter, "course", course.CourseID, "misleading course info")
	assert.Equal(t, models.ReportPending, report.Status)

	t.Run("unknown entity is 404", func(t *testing.T) {
		resp, _ := request(t, "POST", "/report/create", map[string]string{
			"entity_type":   "review",
			"entity_id":     "6f1e2ad0-0000-0000-0000-0000000000cc",
			"report_reason": "spam",
		}, reporter)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad entity type is 400", func(t *testing.T) {
		resp, _ := request(t, "POST", "/report/create", map[string]string{
			"entity_type":   "professor",
			"entity_id":     course.CourseID,
			"report_reason": "spam",
		}, reporter)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty reason is 400", func(t *testing.T) {
		resp, _ := request(t, "POST", "/report/create", map[string]string{
			"entity_type":   "course",
			"entity_id":     course.CourseID,
			"report_reason": "   ",
		}, reporter)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestReportListingAndDismissal(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "dismiss-author@example.com")
	reporter, _ := registerUser(t, "dismiss-reporter@example.com")
	admin, _ := adminToken(t, "dismiss-admin@example.com")
	university := seedUniversity(t, "Dismissal University")
	course := createCourse(t, author, university.UniversityID, "HIST 200", "Modern History")

	report := fileReport(t, reporter, "course", course.CourseID, "duplicate entry")

	t.Run("entity_type is required", func(t *testing.T) {
		resp, _ := request(t, "GET", "/admin/reports", nil, admin)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("pending listing carries entity details", func(t *testing.T) {
		_, env := request(t, "GET", "/admin/reports?entity_type=course&status=pending", nil, admin)
		require.True(t, env.Success, env.Message)
		var reports []models.Report
		decodeData(t, env, &reports)

		found := false
		for _, r := range reports {
			if r.ReportID == report.ReportID {
				found = true
				assert.NotEmpty(t, r.EntityDetails)
			}
		}
		assert.True(t, found)
	})

	t.Run("dismiss is terminal", func(t *testing.T) {
		resp, env := request(t, "PATCH", "/admin/reports/"+report.ReportID+"/dismiss", nil, admin)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)

		resp, _ = request(t, "PATCH", "/admin/reports/"+report.ReportID+"/dismiss", nil, admin)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		// Dismissal leaves the course alone.
		_, env = request(t, "GET", "/course/by-id/"+course.CourseID, nil, "")
		assert.True(t, env.Success)
	})
}

func TestResolveByDelete(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "resolve-author@example.com")
	reporterA, _ := registerUser(t, "resolve-reporter-a@example.com")
	reporterB, _ := registerUser(t, "resolve-reporter-b@example.com")
	admin, _ := adminToken(t, "resolve-admin@example.com")
	university := seedUniversity(t, "Resolution University")
	course := createCourse(t, author, university.UniversityID, "CHEM 120", "General Chemistry")

	reviews := courseReviews(t, course.CourseID, "")
	require.Len(t, reviews, 1)
	reviewID := reviews[0].ReviewID

	first := fileReport(t, reporterA, "review", reviewID, "offensive content")
	second := fileReport(t, reporterB, "review", reviewID, "same thing, different reporter")

	resp, env := request(t, "DELETE", "/admin/reports/"+first.ReportID+"/reviews", nil, admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Message)

	t.Run("review is gone", func(t *testing.T) {
		assert.Empty(t, courseReviews(t, course.CourseID, ""))
	})

	t.Run("every pending report on the review is resolved", func(t *testing.T) {
		_, env := request(t, "GET", "/admin/reports?entity_type=review&status=resolved", nil, admin)
		require.True(t, env.Success)
		var reports []models.Report
		decodeData(t, env, &reports)

		resolved := map[string]bool{}
		for _, r := range reports {
			resolved[r.ReportID] = true
		}
		assert.True(t, resolved[first.ReportID])
		assert.True(t, resolved[second.ReportID], "sibling report must be resolved too")
	})

	t.Run("acting on a resolved report fails", func(t *testing.T) {
		resp, _ := request(t, "DELETE", "/admin/reports/"+second.ReportID+"/reviews", nil, admin)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteCourseFromReport(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "course-resolve-author@example.com")
	reporter, _ := registerUser(t, "course-resolve-reporter@example.com")
	admin, _ := adminToken(t, "course-resolve-admin@example.com")
	university := seedUniversity(t, "Course Removal University")
	course := createCourse(t, author, university.UniversityID, "BUS 111", "Intro to Business")

	report := fileReport(t, reporter, "course", course.CourseID, "not a real course")

	resp, env := request(t, "DELETE", "/admin/reports/"+report.ReportID+"/courses", nil, admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Message)

	resp, _ = request(t, "GET", "/course/by-id/"+course.CourseID, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBanWorkflow(t *testing.T) {
	requireDB(t)

	userToken, userID := registerUser(t, "ban-target@example.com")
	reporter, _ := registerUser(t, "ban-reporter@example.com")
	admin, _ := adminToken(t, "ban-admin@example.com")
	university := seedUniversity(t, "Banning University")
	course := createCourse(t, userToken, university.UniversityID, "SOC 101", "Intro to Sociology")

	reviews := courseReviews(t, course.CourseID, "")
	require.Len(t, reviews, 1)
	report := fileReport(t, reporter, "review", reviews[0].ReviewID, "abusive language")

	resp, env := request(t, "POST", "/admin/users/"+userID+"/ban", map[string]string{
		"ban_reason": "repeated abuse",
	}, admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Message)

	t.Run("reviews removed and reports resolved", func(t *testing.T) {
		assert.Empty(t, courseReviews(t, course.CourseID, ""))

		_, env := request(t, "GET", "/admin/reports?entity_type=review&status=resolved", nil, admin)
		var reports []models.Report
		decodeData(t, env, &reports)
		found := false
		for _, r := range reports {
			if r.ReportID == report.ReportID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("banned user cannot write", func(t *testing.T) {
		payload := reviewPayload()
		payload["course_id"] = course.CourseID
		resp, _ := request(t, "POST", "/review/", payload, userToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("banned listing includes the user", func(t *testing.T) {
		_, env := request(t, "GET", "/admin/users/banned", nil, admin)
		require.True(t, env.Success)
		var bans []models.Ban
		decodeData(t, env, &bans)
		found := false
		for _, b := range bans {
			if b.UserID == userID {
				found = true
				assert.Equal(t, "repeated abuse", b.BanReason)
				assert.NotEmpty(t, b.Email)
			}
		}
		assert.True(t, found)
	})

	t.Run("double ban conflicts", func(t *testing.T) {
		resp, _ := request(t, "POST", "/admin/users/"+userID+"/ban", map[string]string{
			"ban_reason": "again",
		}, admin)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("unban restores access", func(t *testing.T) {
		resp, _ := request(t, "PATCH", "/admin/users/"+userID+"/unban", nil, admin)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		payload := reviewPayload()
		payload["course_id"] = course.CourseID
		_, env := request(t, "POST", "/review/", payload, userToken)
		assert.True(t, env.Success)
	})

	t.Run("unban without active ban is 404", func(t *testing.T) {
		resp, _ := request(t, "PATCH", "/admin/users/"+userID+"/unban", nil, admin)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
