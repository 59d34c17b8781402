package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/pure_utils"
	"github.com/printfarm/printfarm-backend/usecases"
)

type SettingIdUriInput struct {
	SettingId int64 `uri:"setting_id" binding:"required"`
}

func handleListSettings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewSettingUsecase()
		settings, err := usecase.ListSettings(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(settings, dto.AdaptSettingDto))
	}
}

func handlePostSetting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateSettingBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewSettingUsecase()
		setting, err := usecase.CreateSetting(ctx, dto.AdaptCreateSettingInput(data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptSettingDto(setting))
	}
}

func handlePutSetting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri SettingIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}
		var data dto.UpdateSettingBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewSettingUsecase()
		setting, err := usecase.UpdateSetting(ctx, dto.AdaptUpdateSettingInput(uri.SettingId, data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptSettingDto(setting))
	}
}

func handleDeleteSetting(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri SettingIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewSettingUsecase()
		if presentError(ctx, c, usecase.DeleteSetting(ctx, uri.SettingId)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
