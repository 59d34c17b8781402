package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/pure_utils"
	"github.com/printfarm/printfarm-backend/usecases"
)

type FilamentIdUriInput struct {
	FilamentId int64 `uri:"filament_id" binding:"required"`
}

func handleListFilaments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewFilamentUsecase()
		filaments, err := usecase.ListFilaments(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(filaments, dto.AdaptFilamentDto))
	}
}

func handlePostFilament(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateFilamentBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewFilamentUsecase()
		filament, err := usecase.CreateFilament(ctx, dto.AdaptCreateFilamentInput(data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptFilamentDto(filament))
	}
}

func handlePutFilament(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri FilamentIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}
		var data dto.UpdateFilamentBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewFilamentUsecase()
		filament, err := usecase.UpdateFilament(ctx, dto.AdaptUpdateFilamentInput(uri.FilamentId, data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptFilamentDto(filament))
	}
}

func handleDeleteFilament(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri FilamentIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewFilamentUsecase()
		if presentError(ctx, c, usecase.DeleteFilament(ctx, uri.FilamentId)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
