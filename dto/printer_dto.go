package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/printfarm/printfarm-backend/models"
)

type APIPrinter struct {
	Id              int64       `json:"id"`
	Name            string      `json:"name"`
	MoonrakerUrl    null.String `json:"moonraker_url"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	CurrentFilename null.String `json:"current_filename"`
	Progress        null.Float  `json:"progress"`
	PrintDuration   null.Float  `json:"print_duration"`
	CurrentLayer    *int        `json:"current_layer"`
	TotalLayer      *int        `json:"total_layer"`
	LastSyncedAt    null.Time   `json:"last_synced_at"`
}

func AdaptPrinterDto(p models.Printer) APIPrinter {
	return APIPrinter{
		Id:              p.Id,
		Name:            p.Name,
		MoonrakerUrl:    null.StringFromPtr(p.MoonrakerUrl),
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		CurrentFilename: null.StringFromPtr(p.CurrentFilename),
		Progress:        null.FloatFromPtr(p.Progress),
		PrintDuration:   null.FloatFromPtr(p.PrintDuration),
		CurrentLayer:    p.CurrentLayer,
		TotalLayer:      p.TotalLayer,
		LastSyncedAt:    null.TimeFromPtr(p.LastSyncedAt),
	}
}

type CreatePrinterBody struct {
	Name         string      `json:"name" binding:"required,max=120"`
	MoonrakerUrl null.String `json:"moonraker_url" binding:"omitempty,max=255,moonrakerurl"`
	Status       null.String `json:"status" binding:"omitempty,max=50"`
}

func AdaptCreatePrinterInput(body CreatePrinterBody) models.CreatePrinterInput {
	status := body.Status.ValueOrZero()
	if status == "" {
		status = models.PrinterStatusOffline
	}
	return models.CreatePrinterInput{
		Name:         body.Name,
		MoonrakerUrl: models.NormalizeMoonrakerUrl(body.MoonrakerUrl.Ptr()),
		Status:       status,
	}
}

// UpdatePrinterBody fields left out or null are not changed. An empty moonraker_url removes it.
type UpdatePrinterBody struct {
	Name         null.String `json:"name" binding:"omitempty,max=120"`
	MoonrakerUrl null.String `json:"moonraker_url" binding:"omitempty,max=255,moonrakerurl"`
	Status       null.String `json:"status" binding:"omitempty,max=50"`
}

func AdaptUpdatePrinterInput(printerId int64, body UpdatePrinterBody) models.UpdatePrinterInput {
	return models.UpdatePrinterInput{
		Id:           printerId,
		Name:         body.Name.Ptr(),
		MoonrakerUrl: body.MoonrakerUrl.Ptr(),
		Status:       body.Status.Ptr(),
	}
}
