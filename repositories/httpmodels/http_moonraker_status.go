package httpmodels

import (
	"math"
	"strings"

	"github.com/printfarm/printfarm-backend/models"
)

// HTTPMoonrakerQueryResponse is the body of GET /printer/objects/query?print_stats&display_status
type HTTPMoonrakerQueryResponse struct {
	Result struct {
		EventTime float64 `json:"eventtime"`
		Status    struct {
			PrintStats    HTTPMoonrakerPrintStats    `json:"print_stats"`
			DisplayStatus HTTPMoonrakerDisplayStatus `json:"display_status"`
		} `json:"status"`
	} `json:"result"`
}

type HTTPMoonrakerPrintStats struct {
	State         string   `json:"state"`
	Filename      string   `json:"filename"`
	PrintDuration *float64 `json:"print_duration"`
	Info          struct {
		CurrentLayer *float64 `json:"current_layer"`
		TotalLayer   *float64 `json:"total_layer"`
	} `json:"info"`
}

type HTTPMoonrakerDisplayStatus struct {
	Progress     *float64 `json:"progress"`
	Message      *string  `json:"message"`
	CurrentLayer *float64 `json:"current_layer"`
	TotalLayer   *float64 `json:"total_layer"`
}

func AdaptMoonrakerStatus(response HTTPMoonrakerQueryResponse) models.MoonrakerStatus {
	printStats := response.Result.Status.PrintStats
	displayStatus := response.Result.Status.DisplayStatus

	state := strings.TrimSpace(printStats.State)
	if state == "" {
		state = models.PrinterStatusOffline
	}

	var filename *string
	if printStats.Filename != "" {
		filename = &printStats.Filename
	}

	// display_status carries the layers on older firmwares, print_stats.info on recent ones
	currentLayer := displayStatus.CurrentLayer
	if currentLayer == nil {
		currentLayer = printStats.Info.CurrentLayer
	}
	totalLayer := displayStatus.TotalLayer
	if totalLayer == nil {
		totalLayer = printStats.Info.TotalLayer
	}

	return models.MoonrakerStatus{
		State:         state,
		Filename:      filename,
		Progress:      displayStatus.Progress,
		PrintDuration: printStats.PrintDuration,
		CurrentLayer:  toInt(currentLayer),
		TotalLayer:    toInt(totalLayer),
	}
}

func toInt(f *float64) *int {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	i := int(math.Round(*f))
	return &i
}
