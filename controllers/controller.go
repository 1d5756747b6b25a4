package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// respondError writes the shared error envelope.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondValidationError writes a 400 with binding details attached.
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Invalid request data",
			"details": details,
		},
	})
}

// parseIDParam reads a numeric URL parameter. A non-numeric value answers
// 404, matching the behavior for IDs that simply do not exist.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "No record with this ID")
		return 0, false
	}
	return uint(id), true
}
