// Package controller contain implementation of each route handlers
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamedazad/synurix/internal/database"
	"github.com/hamedazad/synurix/internal/intake"
	"github.com/hamedazad/synurix/internal/query"
	"github.com/hamedazad/synurix/internal/utilities"
)

// SubmissionController wires the intake and query services into HTTP handlers.
type SubmissionController struct {
	Intake *intake.Service
	Query  *query.Service
}

// NewSubmissionController constructs the controller over one storage engine.
func NewSubmissionController(db *database.DBinstanceStruct) *SubmissionController {
	return &SubmissionController{
		Intake: intake.NewService(db),
		Query:  query.NewService(db),
	}
}

// bindRequest binds the JSON body into req and writes the error response
// itself when the body is malformed or fails validation. Returns false when
// the handler should stop.
func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if verr, ok := intake.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{
				Success: false,
				Error:   "Missing or invalid fields",
				Fields:  verr.Fields,
			})
			return false
		}
		c.JSON(http.StatusBadRequest, utilities.Fail("Invalid request body"))
		return false
	}
	return true
}

// renderSubmitError maps an intake failure onto the response envelope.
// Validation details go back to the client; storage details are logged and
// replaced with a generic message.
func renderSubmitError(c *gin.Context, err error, generic string) {
	var verr *intake.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{
			Success: false,
			Error:   "Missing or invalid fields",
			Fields:  verr.Fields,
		})
		return
	}
	log.Printf("%s: %v", generic, err)
	c.JSON(http.StatusInternalServerError, utilities.Fail(generic))
}

// renderListError logs the storage failure and returns the generic envelope.
func renderListError(c *gin.Context, err error, generic string) {
	log.Printf("%s: %v", generic, err)
	c.JSON(http.StatusInternalServerError, utilities.Fail(generic))
}
