package models

import "time"

type TimelineJob struct {
	Id        int64
	Filename  string
	Status    string
	StartTime *time.Time
	EndTime   *time.Time
}

type TimelineItem struct {
	Id           int64
	Name         string
	Status       string
	MoonrakerUrl *string
	Jobs         []TimelineJob
}

// BuildTimelineItems groups jobs under their printer. Printer order is kept, and jobs
// keep the order in which they are given.
func BuildTimelineItems(printers []Printer, jobs []Job) []TimelineItem {
	jobsByPrinter := make(map[int64][]TimelineJob, len(printers))
	for _, job := range jobs {
		jobsByPrinter[job.PrinterId] = append(jobsByPrinter[job.PrinterId], TimelineJob{
			Id:        job.Id,
			Filename:  job.Filename,
			Status:    job.Status,
			StartTime: job.StartTime,
			EndTime:   job.EndTime,
		})
	}

	items := make([]TimelineItem, 0, len(printers))
	for _, printer := range printers {
		printerJobs := jobsByPrinter[printer.Id]
		if printerJobs == nil {
			printerJobs = []TimelineJob{}
		}
		items = append(items, TimelineItem{
			Id:           printer.Id,
			Name:         printer.Name,
			Status:       printer.TimelineStatus(),
			MoonrakerUrl: printer.MoonrakerUrl,
			Jobs:         printerJobs,
		})
	}
	return items
}

// TimelineUpdate is what subscribers of the live timeline receive.
type TimelineUpdate struct {
	Items     []TimelineItem
	Timestamp *time.Time
}
