package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/pure_utils"
	"github.com/printfarm/printfarm-backend/usecases"
)

type PrinterIdUriInput struct {
	PrinterId int64 `uri:"printer_id" binding:"required"`
}

func handleListPrinters(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewPrinterUsecase()
		printers, err := usecase.ListPrinters(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(printers, dto.AdaptPrinterDto))
	}
}

func handleGetPrinter(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri PrinterIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewPrinterUsecase()
		printer, err := usecase.GetPrinter(ctx, uri.PrinterId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptPrinterDto(printer))
	}
}

func handlePostPrinter(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreatePrinterBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewPrinterUsecase()
		printer, err := usecase.CreatePrinter(ctx, dto.AdaptCreatePrinterInput(data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptPrinterDto(printer))
	}
}

func handlePutPrinter(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri PrinterIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}
		var data dto.UpdatePrinterBody
		if err := c.ShouldBindJSON(&data); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewPrinterUsecase()
		printer, err := usecase.UpdatePrinter(ctx, dto.AdaptUpdatePrinterInput(uri.PrinterId, data))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptPrinterDto(printer))
	}
}

func handleDeletePrinter(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri PrinterIdUriInput
		if err := c.ShouldBindUri(&uri); presentBindingError(ctx, c, err) {
			return
		}

		usecase := uc.NewPrinterUsecase()
		if presentError(ctx, c, usecase.DeletePrinter(ctx, uri.PrinterId)) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
