package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/pure_utils"
	"github.com/printfarm/printfarm-backend/usecases"
)

type JobIdUriInput struct {
	JobId int64 `uri:"job_id" binding:"required"`
}

func handleListJobs(uc usecases.Usecases, filter models.JobListFilter) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewJobUsecase()
		jobs, err := usecase.ListJobs(ctx, filter)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(jobs, dto.AdaptJobDto))
	}
}

func handlePostJob(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateJobBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewJobUsecase()
		job, err := usecase.CreateJob(ctx, dto.AdaptCreateJobInput(data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptJobDto(job))
	}
}

func handlePutJob(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri JobIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}
		var data dto.UpdateJobBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewJobUsecase()
		job, err := usecase.UpdateJob(ctx, dto.AdaptUpdateJobInput(uri.JobId, data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptJobDto(job))
	}
}

func handleDeleteJob(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri JobIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewJobUsecase()
		if presentError(ctx, c, usecase.DeleteJob(ctx, uri.JobId)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
