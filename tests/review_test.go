package tests

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouizahmed/ratethatclass-sub000/models"
)

func reviewPayload() map[string]interface{} {
	return map[string]interface{}{
		"professor_name":     "Grace Hopper",
		"grade":              "A",
		"delivery_method":    "In-Person",
		"workload":           "Moderate",
		"textbook_use":       "No",
		"evaluation_methods": []string{"Exam Heavy", "Assignment Heavy"},
		"overall_score":      4,
		"easy_score":         3,
		"interest_score":     5,
		"useful_score":       4,
		"term_taken":         "Fall",
		"year_taken":         time.Now().Year() - 1,
		"course_comments":    "Great lectures.",
		"professor_comments": "Approachable and fair.",
		"advice_comments":    "Do the practice problems.",
	}
}

// createCourse posts a course with its first review and returns the course.
func createCourse(t *testing.T, token, universityID, tag, name string) models.Course {
	t.Helper()
	_, env := request(t, "POST", "/course/", map[string]interface{}{
		"course": map[string]string{
			"university_id":   universityID,
			"department_name": "Computer Science",
			"course_tag":      tag,
			"course_name":     name,
		},
		"review": reviewPayload(),
	}, token)
	require.True(t, env.Success, "create course: %s", env.Message)

	var course models.Course
	decodeData(t, env, &course)
	return course
}

func courseReviews(t *testing.T, courseID, token string) []models.Review {
	t.Helper()
	_, env := request(t, "GET", "/review/by-course-id/"+courseID, nil, token)
	require.True(t, env.Success, "list reviews: %s", env.Message)
	var reviews []models.Review
	decodeData(t, env, &reviews)
	return reviews
}

func TestCourseWithReviewCreation(t *testing.T) {
	requireDB(t)

	token, userID := registerUser(t, "course-author@example.com")
	university := seedUniversity(t, "Helix University")

	course := createCourse(t, token, university.UniversityID, "CS 135", "Designing Functional Programs")
	assert.NotEmpty(t, course.CourseID)

	reviews := courseReviews(t, course.CourseID, "")
	require.Len(t, reviews, 1)
	review := reviews[0]

	assert.Equal(t, 1, review.Votes, "new review starts with the author's up-vote")
	require.NotNil(t, review.UserID)
	assert.Equal(t, userID, *review.UserID)
	assert.Equal(t, "Grace Hopper", review.ProfessorName)
	assert.ElementsMatch(t, []string{"Exam Heavy", "Assignment Heavy"}, []string(review.EvaluationMethods))

	t.Run("duplicate tag in department conflicts", func(t *testing.T) {
		_, env := request(t, "POST", "/course/", map[string]interface{}{
			"course": map[string]string{
				"university_id":   university.UniversityID,
				"department_name": "Computer Science",
				"course_tag":      "CS 135",
				"course_name":     "Different Name",
			},
			"review": reviewPayload(),
		}, token)
		assert.False(t, env.Success)
	})

	t.Run("invalid review body rejected", func(t *testing.T) {
		bad := reviewPayload()
		bad["overall_score"] = 9
		resp, _ := request(t, "POST", "/course/", map[string]interface{}{
			"course": map[string]string{
				"university_id":   university.UniversityID,
				"department_name": "Computer Science",
				"course_tag":      "CS 999",
				"course_name":     "Bad Review Course",
			},
			"review": bad,
		}, token)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("anonymous cannot create", func(t *testing.T) {
		resp, _ := request(t, "POST", "/course/", map[string]interface{}{}, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestReviewOnExistingCourse(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "second-reviewer@example.com")
	owner, _ := registerUser(t, "course-owner@example.com")
	university := seedUniversity(t, "Solstice University")
	course := createCourse(t, owner, university.UniversityID, "MATH 239", "Introduction to Combinatorics")

	payload := reviewPayload()
	payload["course_id"] = course.CourseID
	payload["professor_name"] = "Paul Erdos"

	_, env := request(t, "POST", "/review/", payload, author)
	require.True(t, env.Success, "create review: %s", env.Message)

	reviews := courseReviews(t, course.CourseID, "")
	assert.Len(t, reviews, 2)

	t.Run("professor filter", func(t *testing.T) {
		var target models.Review
		for _, r := range reviews {
			if r.ProfessorName == "Paul Erdos" {
				target = r
			}
		}
		require.NotNil(t, target.ProfessorID)

		_, env := request(t, "GET", "/review/by-course-id/"+course.CourseID+"?professor_id="+*target.ProfessorID, nil, "")
		var filtered []models.Review
		decodeData(t, env, &filtered)
		require.Len(t, filtered, 1)
		assert.Equal(t, "Paul Erdos", filtered[0].ProfessorName)
	})

	t.Run("unknown course is 404", func(t *testing.T) {
		payload := reviewPayload()
		payload["course_id"] = "6f1e2ad0-0000-0000-0000-0000000000aa"
		resp, _ := request(t, "POST", "/review/", payload, author)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestVoteStateMachine(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "vote-author@example.com")
	voter, _ := registerUser(t, "vote-caster@example.com")
	university := seedUniversity(t, "Voting University")
	course := createCourse(t, author, university.UniversityID, "STAT 230", "Probability")

	reviews := courseReviews(t, course.CourseID, "")
	require.Len(t, reviews, 1)
	reviewID := reviews[0].ReviewID

	vote := func(direction string) (int, envelope) {
		_, env := request(t, "POST", "/review/vote", map[string]string{
			"review_id": reviewID,
			"vote_type": direction,
		}, voter)
		var result struct {
			ReviewID string `json:"review_id"`
			Votes    int    `json:"votes"`
		}
		decodeData(t, env, &result)
		return result.Votes, env
	}

	// Fresh up-vote adds one on top of the author's.
	votes, env := vote("up")
	require.True(t, env.Success, env.Message)
	assert.Equal(t, 2, votes)

	// Same direction again removes the vote.
	votes, _ = vote("up")
	assert.Equal(t, 1, votes)

	// Down from nothing subtracts one.
	votes, _ = vote("down")
	assert.Equal(t, 0, votes)

	// Switching direction swings the tally by two.
	votes, _ = vote("up")
	assert.Equal(t, 2, votes)

	t.Run("votes listing reflects current state", func(t *testing.T) {
		_, env := request(t, "GET", "/review/votes?review_ids="+reviewID, nil, voter)
		require.True(t, env.Success)
		var votes map[string]string
		decodeData(t, env, &votes)
		assert.Equal(t, "up", votes[reviewID])
	})

	t.Run("viewer vote joined into course listing", func(t *testing.T) {
		reviews := courseReviews(t, course.CourseID, voter)
		require.Len(t, reviews, 1)
		require.NotNil(t, reviews[0].Vote)
		assert.Equal(t, "up", *reviews[0].Vote)
	})

	t.Run("invalid direction rejected", func(t *testing.T) {
		resp, _ := request(t, "POST", "/review/vote", map[string]string{
			"review_id": reviewID,
			"vote_type": "sideways",
		}, voter)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown review is 404", func(t *testing.T) {
		resp, _ := request(t, "POST", "/review/vote", map[string]string{
			"review_id": "6f1e2ad0-0000-0000-0000-0000000000bb",
			"vote_type": "up",
		}, voter)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestReviewDeletion(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "delete-author@example.com")
	stranger, _ := registerUser(t, "delete-stranger@example.com")
	university := seedUniversity(t, "Deletion University")
	course := createCourse(t, author, university.UniversityID, "PHIL 145", "Critical Thinking")

	reviews := courseReviews(t, course.CourseID, "")
	require.Len(t, reviews, 1)
	reviewID := reviews[0].ReviewID

	t.Run("stranger cannot delete", func(t *testing.T) {
		resp, _ := request(t, "DELETE", "/review/"+reviewID, nil, stranger)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("author deletes own review", func(t *testing.T) {
		resp, env := request(t, "DELETE", "/review/"+reviewID, nil, author)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, env.Success)
		assert.Empty(t, courseReviews(t, course.CourseID, ""))
	})

	t.Run("deleting again is 404", func(t *testing.T) {
		resp, _ := request(t, "DELETE", "/review/"+reviewID, nil, author)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestUserReviewListings(t *testing.T) {
	requireDB(t)

	author, _ := registerUser(t, "listings-author@example.com")
	voter, _ := registerUser(t, "listings-voter@example.com")
	university := seedUniversity(t, "Listings University")
	course := createCourse(t, author, university.UniversityID, "ECON 101", "Microeconomics")

	reviews := courseReviews(t, course.CourseID, "")
	require.Len(t, reviews, 1)

	_, env := request(t, "POST", "/review/vote", map[string]string{
		"review_id": reviews[0].ReviewID,
		"vote_type": "down",
	}, voter)
	require.True(t, env.Success)

	t.Run("own reviews", func(t *testing.T) {
		_, env := request(t, "GET", "/user/reviews", nil, author)
		require.True(t, env.Success)
		var mine []models.Review
		decodeData(t, env, &mine)
		require.Len(t, mine, 1)
		assert.Equal(t, reviews[0].ReviewID, mine[0].ReviewID)
	})

	t.Run("downvoted reviews", func(t *testing.T) {
		_, env := request(t, "GET", "/user/downvoted-reviews", nil, voter)
		require.True(t, env.Success)
		var down []models.Review
		decodeData(t, env, &down)
		require.Len(t, down, 1)
		assert.Equal(t, reviews[0].ReviewID, down[0].ReviewID)

		_, env = request(t, "GET", "/user/upvoted-reviews", nil, voter)
		var up []models.Review
		decodeData(t, env, &up)
		assert.Empty(t, up)
	})
}
