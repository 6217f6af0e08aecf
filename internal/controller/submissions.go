package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamedazad/synurix/internal/intake"
	"github.com/hamedazad/synurix/internal/utilities"
)

// SubmitCareerApplication handles the careers form
// @Summary Submit a career application
// @Tags Intake
// @Accept json
// @Produce json
// @Param Application body intake.CareerApplicationRequest true "Career application fields"
// @Success 200 {object} utilities.SubmitResponse
// @Failure 400 {object} utilities.ValidationErrorResponse "Missing or invalid fields"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /careers [post]
func (sc *SubmissionController) SubmitCareerApplication(c *gin.Context) {
	var req intake.CareerApplicationRequest
	if !bindRequest(c, &req) {
		return
	}

	app, err := sc.Intake.SubmitCareerApplication(c.Request.Context(), req)
	if err != nil {
		renderSubmitError(c, err, "Failed to save application")
		return
	}

	c.JSON(http.StatusOK, utilities.SubmitResponse{Success: true, ID: app.ID})
}

// SubmitCooperation handles the cooperation form
// @Summary Submit a cooperation application
// @Tags Intake
// @Accept json
// @Produce json
// @Param Application body intake.CooperationRequest true "Cooperation application fields"
// @Success 200 {object} utilities.SubmitResponse
// @Failure 400 {object} utilities.ValidationErrorResponse "Missing or invalid fields"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /cooperation [post]
func (sc *SubmissionController) SubmitCooperation(c *gin.Context) {
	var req intake.CooperationRequest
	if !bindRequest(c, &req) {
		return
	}

	app, err := sc.Intake.SubmitCooperationApplication(c.Request.Context(), req)
	if err != nil {
		renderSubmitError(c, err, "Failed to save application")
		return
	}

	c.JSON(http.StatusOK, utilities.SubmitResponse{Success: true, ID: app.ID})
}

// SubmitProject handles the enterprise project form
// @Summary Submit an enterprise project
// @Tags Intake
// @Accept json
// @Produce json
// @Param Project body intake.EnterpriseProjectRequest true "Enterprise project fields"
// @Success 200 {object} utilities.SubmitResponse
// @Failure 400 {object} utilities.ValidationErrorResponse "Missing or invalid fields"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /projects [post]
func (sc *SubmissionController) SubmitProject(c *gin.Context) {
	var req intake.EnterpriseProjectRequest
	if !bindRequest(c, &req) {
		return
	}

	project, err := sc.Intake.SubmitEnterpriseProject(c.Request.Context(), req)
	if err != nil {
		renderSubmitError(c, err, "Failed to save project")
		return
	}

	c.JSON(http.StatusOK, utilities.SubmitResponse{Success: true, ID: project.ID})
}

// SubmitProjectLegacy serves the alternate /submit-project path, writing to
// the legacy project_submissions table. The {ok:true} envelope is the shape
// that path has always returned, so it stays.
// @Summary Submit an enterprise project (legacy path)
// @Tags Intake
// @Accept json
// @Produce json
// @Param Project body intake.EnterpriseProjectRequest true "Enterprise project fields"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} utilities.ValidationErrorResponse "Missing or invalid fields"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /submit-project [post]
func (sc *SubmissionController) SubmitProjectLegacy(c *gin.Context) {
	var req intake.EnterpriseProjectRequest
	if !bindRequest(c, &req) {
		return
	}

	if _, err := sc.Intake.SubmitLegacyProject(c.Request.Context(), req); err != nil {
		renderSubmitError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CooperateLegacy serves the alternate /cooperate path, writing to the legacy
// career_submissions table. Nothing reads that table back; the endpoint is
// kept because the deployed forms still post to it. See DESIGN.md.
// @Summary Submit a cooperation application (legacy path)
// @Tags Intake
// @Accept json
// @Produce json
// @Param Application body intake.CooperationRequest true "Cooperation application fields"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} utilities.ValidationErrorResponse "Missing or invalid fields"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /cooperate [post]
func (sc *SubmissionController) CooperateLegacy(c *gin.Context) {
	var req intake.CooperationRequest
	if !bindRequest(c, &req) {
		return
	}

	if _, err := sc.Intake.SubmitLegacyCooperate(c.Request.Context(), req); err != nil {
		renderSubmitError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
