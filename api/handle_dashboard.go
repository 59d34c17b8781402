package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/usecases"
)

func handleDashboardOverview(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewDashboardUsecase()
		overview, err := usecase.GetOverview(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptDashboardOverviewDto(overview))
	}
}
