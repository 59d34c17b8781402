package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/usecases"
)

func handleHealth(location *time.Location) func(c *gin.Context) {
	if location == nil {
		location = time.UTC
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status: "ok",
			Time:   time.Now().In(location),
		})
	}
}

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewLivenessUsecase()
		err := usecase.Liveness(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.LivenessResponse{Mood: "ok"})
	}
}
