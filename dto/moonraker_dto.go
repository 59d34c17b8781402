package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/printfarm/printfarm-backend/models"
)

type APIMoonrakerSync struct {
	Printer        string      `json:"printer"`
	State          string      `json:"state"`
	Filename       null.String `json:"filename"`
	Progress       null.Float  `json:"progress"`
	CurrentLayer   *int        `json:"current_layer"`
	TotalLayer     *int        `json:"total_layer"`
	PrintDuration  null.Float  `json:"print_duration"`
	Remaining      null.Float  `json:"remaining"`
	ElapsedLabel   string      `json:"elapsed_label"`
	RemainingLabel string      `json:"remaining_label"`
	LayerLabel     string      `json:"layer_label"`
	Timestamp      time.Time   `json:"timestamp"`
}

func AdaptMoonrakerSyncDto(sync models.MoonrakerSync) APIMoonrakerSync {
	remaining := sync.Status.Remaining()
	return APIMoonrakerSync{
		Printer:        sync.Printer.Name,
		State:          sync.Status.State,
		Filename:       null.StringFromPtr(sync.Status.Filename),
		Progress:       null.FloatFromPtr(sync.Status.Progress),
		CurrentLayer:   sync.Status.CurrentLayer,
		TotalLayer:     sync.Status.TotalLayer,
		PrintDuration:  null.FloatFromPtr(sync.Status.PrintDuration),
		Remaining:      null.FloatFromPtr(remaining),
		ElapsedLabel:   models.FormatDuration(sync.Status.PrintDuration),
		RemainingLabel: models.FormatDuration(remaining),
		LayerLabel:     sync.Status.LayerLabel(),
		Timestamp:      sync.Timestamp.UTC(),
	}
}
