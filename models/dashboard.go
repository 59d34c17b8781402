package models

import (
	"math"
	"sort"
	"strings"
	"time"
)

const (
	latestJobsCount = 5
	unknownMaterial = "unknown"
)

type PrinterHours struct {
	PrinterId int64
	Name      string
	Hours     float64
}

type MaterialStock struct {
	Material   string
	StockGrams float64
}

type DashboardOverview struct {
	ActivePrinters  int
	TotalPrinters   int
	PrintingJobs    int
	QueuedJobs      int
	TotalJobs       int
	JobsThisMonth   int
	SuccessRate     int
	FailRate        int
	TotalPrintHours float64
	HoursByPrinter  []PrinterHours
	StockByMaterial []MaterialStock
	LatestJobs      []Job
}

// BuildDashboardOverview aggregates the fleet state. Jobs are expected most recent first.
// "now" is used, in its own location, to decide which jobs belong to the current month.
func BuildDashboardOverview(printers []Printer, jobs []Job, filaments []Filament, now time.Time) DashboardOverview {
	overview := DashboardOverview{
		TotalPrinters:   len(printers),
		TotalJobs:       len(jobs),
		HoursByPrinter:  []PrinterHours{},
		StockByMaterial: []MaterialStock{},
		LatestJobs:      jobs[:min(latestJobsCount, len(jobs))],
	}

	for _, printer := range printers {
		if printer.IsActive() {
			overview.ActivePrinters++
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	hoursByPrinter := make(map[int64]float64)
	var completed, failed int
	for _, job := range jobs {
		switch strings.ToLower(job.Status) {
		case JobStatusPrinting:
			overview.PrintingJobs++
		case JobStatusQueued:
			overview.QueuedJobs++
		}
		if job.IsCompleted() {
			completed++
		}
		if job.IsFailed() {
			failed++
		}
		if job.StartTime != nil && !job.StartTime.In(now.Location()).Before(monthStart) {
			overview.JobsThisMonth++
		}
		if d := job.Duration(); d > 0 {
			hoursByPrinter[job.PrinterId] += d.Hours()
		}
	}

	if len(jobs) > 0 {
		overview.SuccessRate = int(math.Round(100 * float64(completed) / float64(len(jobs))))
		overview.FailRate = int(math.Round(100 * float64(failed) / float64(len(jobs))))
	}

	for _, printer := range printers {
		hours, ok := hoursByPrinter[printer.Id]
		if !ok {
			continue
		}
		overview.TotalPrintHours += hours
		overview.HoursByPrinter = append(overview.HoursByPrinter, PrinterHours{
			PrinterId: printer.Id,
			Name:      printer.Name,
			Hours:     roundHours(hours),
		})
	}
	overview.TotalPrintHours = roundHours(overview.TotalPrintHours)
	sort.SliceStable(overview.HoursByPrinter, func(i, j int) bool {
		return overview.HoursByPrinter[i].Hours > overview.HoursByPrinter[j].Hours
	})

	stock := make(map[string]float64)
	for _, filament := range filaments {
		material := unknownMaterial
		if filament.Material != nil && strings.TrimSpace(*filament.Material) != "" {
			material = strings.TrimSpace(*filament.Material)
		}
		grams := 0.0
		if filament.StockGrams != nil {
			grams = *filament.StockGrams
		}
		stock[material] += grams
	}
	for material, grams := range stock {
		overview.StockByMaterial = append(overview.StockByMaterial, MaterialStock{
			Material:   material,
			StockGrams: grams,
		})
	}
	sort.Slice(overview.StockByMaterial, func(i, j int) bool {
		return overview.StockByMaterial[i].Material < overview.StockByMaterial[j].Material
	})

	return overview
}

func roundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}
