package models

import (
	"fmt"
	"math"
	"time"
)

const LayerLabelUnknown = "N/A"

// MoonrakerStatus is the subset of print_stats and display_status we read from a printer.
type MoonrakerStatus struct {
	State         string
	Filename      *string
	Progress      *float64
	PrintDuration *float64
	CurrentLayer  *int
	TotalLayer    *int
}

// Remaining estimates the remaining print time in seconds from the elapsed time and
// the progress ratio. Nil when it cannot be computed.
func (s MoonrakerStatus) Remaining() *float64 {
	return EstimateRemaining(s.PrintDuration, s.Progress)
}

func (s MoonrakerStatus) LayerLabel() string {
	return LayerLabel(s.CurrentLayer, s.TotalLayer)
}

func EstimateRemaining(printDuration, progress *float64) *float64 {
	if printDuration == nil || progress == nil {
		return nil
	}
	if !isFinite(*printDuration) || !isFinite(*progress) || *progress <= 0 {
		return nil
	}
	remaining := *printDuration * (1 / *progress - 1)
	if remaining < 0 {
		return nil
	}
	return &remaining
}

func LayerLabel(current, total *int) string {
	switch {
	case current != nil && total != nil:
		return fmt.Sprintf("%d / %d", *current, *total)
	case current != nil:
		return fmt.Sprintf("%d", *current)
	default:
		return LayerLabelUnknown
	}
}

// FormatDuration renders seconds as "1 h 5 min" or "5 min".
func FormatDuration(seconds *float64) string {
	if seconds == nil || !isFinite(*seconds) || *seconds <= 0 {
		return LayerLabelUnknown
	}
	d := time.Duration(*seconds * float64(time.Second))
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%d h %d min", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MoonrakerSync is the result of a synchronisation of a printer with its Moonraker instance.
type MoonrakerSync struct {
	Printer   Printer
	Status    MoonrakerStatus
	Timestamp time.Time
}

type SyncAllReport struct {
	Synced  int
	Failed  int
	Skipped int
}
