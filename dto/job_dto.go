package dto

import (
	"github.com/guregu/null/v5"

	"github.com/printfarm/printfarm-backend/models"
)

type APIJob struct {
	Id                int64       `json:"id"`
	PrinterId         int64       `json:"printer_id"`
	Filename          string      `json:"filename"`
	Material          null.String `json:"material"`
	DurationEstimated null.Float  `json:"duration_estimated"`
	DurationSlicer    null.Float  `json:"duration_slicer"`
	StartTime         null.Time   `json:"start_time"`
	EndTime           null.Time   `json:"end_time"`
	Status            string      `json:"status"`
}

func AdaptJobDto(j models.Job) APIJob {
	return APIJob{
		Id:                j.Id,
		PrinterId:         j.PrinterId,
		Filename:          j.Filename,
		Material:          null.StringFromPtr(j.Material),
		DurationEstimated: null.FloatFromPtr(j.DurationEstimated),
		DurationSlicer:    null.FloatFromPtr(j.DurationSlicer),
		StartTime:         null.TimeFromPtr(j.StartTime),
		EndTime:           null.TimeFromPtr(j.EndTime),
		Status:            j.Status,
	}
}

type CreateJobBody struct {
	PrinterId         *int64      `json:"printer_id" binding:"required"`
	Filename          string      `json:"filename" binding:"required,max=255"`
	Material          null.String `json:"material" binding:"omitempty,max=50"`
	DurationEstimated null.Float  `json:"duration_estimated" binding:"omitempty,gte=0"`
	DurationSlicer    null.Float  `json:"duration_slicer" binding:"omitempty,gte=0"`
	StartTime         null.Time   `json:"start_time"`
	EndTime           null.Time   `json:"end_time"`
	Status            string      `json:"status" binding:"required,max=50"`
}

func AdaptCreateJobInput(body CreateJobBody) models.CreateJobInput {
	return models.CreateJobInput{
		PrinterId:         *body.PrinterId,
		Filename:          body.Filename,
		Material:          body.Material.Ptr(),
		DurationEstimated: body.DurationEstimated.Ptr(),
		DurationSlicer:    body.DurationSlicer.Ptr(),
		StartTime:         body.StartTime.Ptr(),
		EndTime:           body.EndTime.Ptr(),
		Status:            body.Status,
	}
}

type UpdateJobBody struct {
	PrinterId         null.Int    `json:"printer_id"`
	Filename          null.String `json:"filename" binding:"omitempty,max=255"`
	Material          null.String `json:"material" binding:"omitempty,max=50"`
	DurationEstimated null.Float  `json:"duration_estimated" binding:"omitempty,gte=0"`
	DurationSlicer    null.Float  `json:"duration_slicer" binding:"omitempty,gte=0"`
	StartTime         null.Time   `json:"start_time"`
	EndTime           null.Time   `json:"end_time"`
	Status            null.String `json:"status" binding:"omitempty,max=50"`
}

func AdaptUpdateJobInput(jobId int64, body UpdateJobBody) models.UpdateJobInput {
	input := models.UpdateJobInput{
		Id:                jobId,
		Filename:          body.Filename.Ptr(),
		Material:          body.Material.Ptr(),
		DurationEstimated: body.DurationEstimated.Ptr(),
		DurationSlicer:    body.DurationSlicer.Ptr(),
		StartTime:         body.StartTime.Ptr(),
		EndTime:           body.EndTime.Ptr(),
		Status:            body.Status.Ptr(),
	}
	// printer_id 0 is treated as absent
	if body.PrinterId.Valid && body.PrinterId.Int64 != 0 {
		input.PrinterId = body.PrinterId.Ptr()
	}
	return input
}
