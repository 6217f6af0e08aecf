package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamedazad/synurix/internal/utilities"
)

// ListCareerApplications returns every career application, newest first
// @Summary List career applications
// @Tags Admin
// @Produce json
// @Success 200 {object} utilities.DataResponse{data=[]model.CareerApplication}
// @Failure 401 {object} utilities.ErrorResponse "Authentication required"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /careers [get]
func (sc *SubmissionController) ListCareerApplications(c *gin.Context) {
	apps, err := sc.Query.ListCareerApplications(c.Request.Context())
	if err != nil {
		renderListError(c, err, "Failed to load applications")
		return
	}
	c.JSON(http.StatusOK, utilities.DataResponse{Success: true, Data: apps})
}

// ListCooperationApplications returns every cooperation application, newest first
// @Summary List cooperation applications
// @Tags Admin
// @Produce json
// @Success 200 {object} utilities.DataResponse{data=[]model.CooperationApplication}
// @Failure 401 {object} utilities.ErrorResponse "Authentication required"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /cooperation [get]
func (sc *SubmissionController) ListCooperationApplications(c *gin.Context) {
	apps, err := sc.Query.ListCooperationApplications(c.Request.Context())
	if err != nil {
		renderListError(c, err, "Failed to load applications")
		return
	}
	c.JSON(http.StatusOK, utilities.DataResponse{Success: true, Data: apps})
}

// ListProjects returns the merged canonical and legacy project view
// @Summary List enterprise projects
// @Description Merges enterprise_projects with the legacy project_submissions table into one chronological view
// @Tags Admin
// @Produce json
// @Success 200 {object} utilities.DataResponse{data=[]model.EnterpriseProject}
// @Failure 401 {object} utilities.ErrorResponse "Authentication required"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /projects [get]
func (sc *SubmissionController) ListProjects(c *gin.Context) {
	projects, err := sc.Query.ListProjects(c.Request.Context())
	if err != nil {
		renderListError(c, err, "Failed to load projects")
		return
	}
	c.JSON(http.StatusOK, utilities.DataResponse{Success: true, Data: projects})
}

// AdminSummary reports per-table submission counts for the admin landing page
// @Summary Admin dashboard summary
// @Tags Admin
// @Produce json
// @Success 200 {object} utilities.DataResponse{data=map[string]int64}
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /admin [get]
func (sc *SubmissionController) AdminSummary(c *gin.Context) {
	counts, err := sc.Query.Summary(c.Request.Context())
	if err != nil {
		renderListError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, utilities.DataResponse{Success: true, Data: counts})
}
