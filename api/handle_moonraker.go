package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/usecases"
)

func handleMoonrakerSync(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri PrinterIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewMoonrakerUsecase()
		sync, err := usecase.SyncPrinter(ctx, uri.PrinterId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptMoonrakerSyncDto(sync))
	}
}
