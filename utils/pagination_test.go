package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(2, 20, 45)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 20, meta.PageSize)
	assert.Equal(t, int64(45), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)

	meta = NewPageMeta(1, 20, 0)
	assert.Equal(t, 0, meta.TotalPages)

	meta = NewPageMeta(1, 20, 20)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 1, Limit: 20}
	assert.Equal(t, 0, p.Offset())

	p = PageParams{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"course_tag": "courses.course_tag",
		"review_num": "COUNT(reviews.review_id)",
	}

	t.Run("known key", func(t *testing.T) {
		clause := OrderClause(allowed, "review_num", "desc", "course_tag", "courses.course_tag ASC")
		assert.Equal(t, "COUNT(reviews.review_id) DESC, courses.course_tag ASC", clause)
	})

	t.Run("unknown key falls back", func(t *testing.T) {
		clause := OrderClause(allowed, "votes; DROP TABLE courses", "asc", "course_tag", "courses.course_tag ASC")
		assert.Equal(t, "courses.course_tag ASC", clause)
	})

	t.Run("stable key not duplicated", func(t *testing.T) {
		clause := OrderClause(allowed, "course_tag", "desc", "course_tag", "courses.course_tag ASC")
		assert.Equal(t, "courses.course_tag DESC", clause)
	})

	t.Run("invalid order defaults to asc", func(t *testing.T) {
		clause := OrderClause(allowed, "review_num", "sideways", "course_tag", "")
		assert.Equal(t, "COUNT(reviews.review_id) ASC", clause)
	})
}
