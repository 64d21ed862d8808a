package http

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// PerPage is the fixed page size applied to every list endpoint.
const PerPage = 100

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
}

// PaginatedResponse wraps one page of records with its descriptor.
type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response with a
// field-specific message.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends the generic 404 Not Found response. Lookup
// failures never leak which resource was missing.
func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
}

// respondInternalError logs the error and sends a 500 response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// --- Pagination Helpers ---

// parsePage reads the 1-based "page" query parameter, defaulting to 1.
// Values below 1 and unparsable values clamp to 1.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pageOffset converts a 1-based page number to a row offset.
func pageOffset(page int) int {
	return (page - 1) * PerPage
}

// newPagination builds the descriptor for one page of total items.
func newPagination(page int, total int64) Pagination {
	return Pagination{
		CurrentPage: page,
		PerPage:     PerPage,
		TotalPages:  int(math.Ceil(float64(total) / float64(PerPage))),
		TotalItems:  total,
	}
}

// respondPage sends a 200 response with the records and descriptor.
func respondPage(c *gin.Context, data any, page int, total int64) {
	c.JSON(http.StatusOK, PaginatedResponse{
		Data:       data,
		Pagination: newPagination(page, total),
	})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Unparsable IDs are treated as nonexistent resources.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondNotFound(c)
		return 0, false
	}
	return uint(id), true
}

// --- Serialization Helpers ---

// formatTimestamp renders a timestamp as UTC RFC3339 with a trailing Z,
// or nil for the zero value.
func formatTimestamp(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// roundRate rounds a percentage to one decimal place.
func roundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
