package models

import (
	"slices"
	"strings"
	"time"
)

const (
	JobStatusPrinting  = "printing"
	JobStatusQueued    = "queued"
	JobStatusCompleted = "completed"
)

var (
	ActiveJobStatuses    = []string{JobStatusPrinting, JobStatusQueued}
	completedJobStatuses = []string{JobStatusCompleted, "complete"}
	failedJobStatuses    = []string{"error", "failed", "cancelled", "canceled"}
)

type JobListFilter int

const (
	JobListAll JobListFilter = iota
	JobListCurrent
	JobListHistory
)

type Job struct {
	Id                int64
	PrinterId         int64
	Filename          string
	Material          *string
	DurationEstimated *float64
	DurationSlicer    *float64
	StartTime         *time.Time
	EndTime           *time.Time
	Status            string
}

func (j Job) IsActive() bool {
	return slices.Contains(ActiveJobStatuses, strings.ToLower(j.Status))
}

func (j Job) IsCompleted() bool {
	return slices.Contains(completedJobStatuses, strings.ToLower(j.Status))
}

func (j Job) IsFailed() bool {
	return slices.Contains(failedJobStatuses, strings.ToLower(j.Status))
}

// Duration is the time between start and end, zero unless both are known and ordered.
func (j Job) Duration() time.Duration {
	if j.StartTime == nil || j.EndTime == nil || j.EndTime.Before(*j.StartTime) {
		return 0
	}
	return j.EndTime.Sub(*j.StartTime)
}

type CreateJobInput struct {
	PrinterId         int64
	Filename          string
	Material          *string
	DurationEstimated *float64
	DurationSlicer    *float64
	StartTime         *time.Time
	EndTime           *time.Time
	Status            string
}

type UpdateJobInput struct {
	Id                int64
	PrinterId         *int64
	Filename          *string
	Material          *string
	DurationEstimated *float64
	DurationSlicer    *float64
	StartTime         *time.Time
	EndTime           *time.Time
	Status            *string
}
