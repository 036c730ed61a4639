package handler

import (
	"github.com/labstack/echo/v4"

	"huduma/internal/usecase"
	"huduma/pkg/response"
)

type JobHandler struct {
	jobUseCase *usecase.JobUseCase
}

func NewJobHandler(jobUseCase *usecase.JobUseCase) *JobHandler {
	return &JobHandler{
		jobUseCase: jobUseCase,
	}
}

func (h *JobHandler) CreateJob(c echo.Context) error {
	var req usecase.CreateJobInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	job, err := h.jobUseCase.CreateJob(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, job)
}

func (h *JobHandler) ListMyJobs(c echo.Context) error {
	uid := c.Get("uid").(string)

	jobs, err := h.jobUseCase.ListForUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, jobs)
}

func (h *JobHandler) GetJob(c echo.Context) error {
	uid := c.Get("uid").(string)

	job, err := h.jobUseCase.GetJob(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}

func (h *JobHandler) UpdateJob(c echo.Context) error {
	var req usecase.UpdateJobInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	job, err := h.jobUseCase.UpdateJob(c.Request().Context(), uid, c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, job)
}
