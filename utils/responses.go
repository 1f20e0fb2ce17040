package utils

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta"`
}

// PageMeta describes a page of a listing endpoint.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

func NewPageMeta(page, limit int, totalItems int64) PageMeta {
	return PageMeta{
		CurrentPage: page,
		PageSize:    limit,
		TotalItems:  totalItems,
		TotalPages:  int(math.Ceil(float64(totalItems) / float64(limit))),
	}
}

// Success writes a success envelope. Nil data/meta serialize as empty objects
// so clients always see all four envelope fields.
func Success(c *fiber.Ctx, status int, message string, data interface{}, meta interface{}) error {
	if data == nil {
		data = fiber.Map{}
	}
	if meta == nil {
		meta = fiber.Map{}
	}
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Error writes an error envelope, selecting the status from the error's kind.
func Error(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(Response{
		Success: false,
		Message: err.Error(),
		Data:    fiber.Map{},
		Meta:    fiber.Map{},
	})
}
