package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"jobdock/internal/response"
	"jobdock/internal/service"
)

// SavedJobHandler handles saved-job endpoints.
type SavedJobHandler struct {
	savedJobs service.SavedJobService
}

// NewSavedJobHandler creates a new saved-job handler.
func NewSavedJobHandler(savedJobs service.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{savedJobs: savedJobs}
}

// JobPayload is the external job listing carried in a save request.
type JobPayload struct {
	ID       string          `json:"id" validate:"required"`
	Title    string          `json:"title"`
	Company  string          `json:"company"`
	Location string          `json:"location"`
	URL      string          `json:"url"`
	Salary   decimal.Decimal `json:"salary"`
}

// SaveJobRequest represents a save request.
type SaveJobRequest struct {
	Email string     `json:"email" validate:"required,email"`
	Job   JobPayload `json:"job" validate:"required"`
}

// List godoc
// @Summary List the caller's saved jobs
// @Tags jobs
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /jobs/saved [get]
func (h *SavedJobHandler) List(c echo.Context) error {
	email := c.QueryParam("email")

	jobs, err := h.savedJobs.List(c.Request().Context(), email)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, http.StatusOK, "saved jobs fetched", jobs)
}

// Save godoc
// @Summary Save a job for the caller
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body SaveJobRequest true "Job to save"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Security BearerAuth
// @Router /jobs/saved [post]
func (h *SavedJobHandler) Save(c echo.Context) error {
	var req SaveJobRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "missing required field", err.Error())
	}

	saved, err := h.savedJobs.Save(c.Request().Context(), req.Email, service.JobInput{
		ID:       req.Job.ID,
		Title:    req.Job.Title,
		Company:  req.Job.Company,
		Location: req.Job.Location,
		URL:      req.Job.URL,
		Salary:   req.Job.Salary,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, http.StatusCreated, "job saved", saved)
}

// Unsave godoc
// @Summary Remove a saved job
// @Tags jobs
// @Produce json
// @Param jobId path string true "External job identifier"
// @Param email query string true "Owner email"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /jobs/saved/{jobId} [delete]
func (h *SavedJobHandler) Unsave(c echo.Context) error {
	email := c.QueryParam("email")
	jobID := c.Param("jobId")

	if err := h.savedJobs.Unsave(c.Request().Context(), email, jobID); err != nil {
		return response.FromError(c, err)
	}

	return response.OK(c, http.StatusOK, "job unsaved", nil)
}
