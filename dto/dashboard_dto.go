package dto

import (
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/pure_utils"
)

type APIPrinterHours struct {
	PrinterId int64   `json:"printer_id"`
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
}

type APIMaterialStock struct {
	Material   string  `json:"material"`
	StockGrams float64 `json:"stock_grams"`
}

type APIDashboardOverview struct {
	ActivePrinters  int                `json:"active_printers"`
	TotalPrinters   int                `json:"total_printers"`
	PrintingJobs    int                `json:"printing_jobs"`
	QueuedJobs      int                `json:"queued_jobs"`
	TotalJobs       int                `json:"total_jobs"`
	JobsThisMonth   int                `json:"jobs_this_month"`
	SuccessRate     int                `json:"success_rate"`
	FailRate        int                `json:"fail_rate"`
	TotalPrintHours float64            `json:"total_print_hours"`
	HoursByPrinter  []APIPrinterHours  `json:"hours_by_printer"`
	StockByMaterial []APIMaterialStock `json:"stock_by_material"`
	LatestJobs      []APIJob           `json:"latest_jobs"`
}

func AdaptDashboardOverviewDto(o models.DashboardOverview) APIDashboardOverview {
	return APIDashboardOverview{
		ActivePrinters:  o.ActivePrinters,
		TotalPrinters:   o.TotalPrinters,
		PrintingJobs:    o.PrintingJobs,
		QueuedJobs:      o.QueuedJobs,
		TotalJobs:       o.TotalJobs,
		JobsThisMonth:   o.JobsThisMonth,
		SuccessRate:     o.SuccessRate,
		FailRate:        o.FailRate,
		TotalPrintHours: o.TotalPrintHours,
		HoursByPrinter: pure_utils.Map(o.HoursByPrinter, func(h models.PrinterHours) APIPrinterHours {
			return APIPrinterHours{PrinterId: h.PrinterId, Name: h.Name, Hours: h.Hours}
		}),
		StockByMaterial: pure_utils.Map(o.StockByMaterial, func(s models.MaterialStock) APIMaterialStock {
			return APIMaterialStock{Material: s.Material, StockGrams: s.StockGrams}
		}),
		LatestJobs: pure_utils.Map(o.LatestJobs, AdaptJobDto),
	}
}
