package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PageParams carries the pagination/sorting/search query parameters shared by
// every listing endpoint.
type PageParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams reads page, limit, sort_by, sort_order and search from the
// query string, clamping page and limit to at least 1.
func ParsePageParams(c *fiber.Ctx, defaultLimit int, defaultSortBy, defaultSortOrder string) PageParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	sortOrder := strings.ToLower(c.Query("sort_order", defaultSortOrder))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = defaultSortOrder
	}
	return PageParams{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sort_by", defaultSortBy),
		SortOrder: sortOrder,
		Search:    c.Query("search"),
	}
}

// OrderClause builds an ORDER BY expression from an allow-list of sort keys.
// Unknown sort keys fall back to the default key, and the stable secondary
// expression is always appended so pages stay deterministic.
func OrderClause(allowed map[string]string, sortBy, sortOrder, defaultKey, stable string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column = allowed[defaultKey]
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	clause := column + " " + direction
	if stable != "" && stable != column && !strings.HasPrefix(stable, column+" ") {
		clause += ", " + stable
	}
	return clause
}
