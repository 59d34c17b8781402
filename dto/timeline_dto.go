package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/pure_utils"
)

type APITimelineJob struct {
	Id        int64     `json:"id"`
	Filename  string    `json:"filename"`
	Status    string    `json:"status"`
	StartTime null.Time `json:"start_time"`
	EndTime   null.Time `json:"end_time"`
}

type APITimelineItem struct {
	Id           int64            `json:"id"`
	Name         string           `json:"name"`
	Status       string           `json:"status"`
	MoonrakerUrl null.String      `json:"moonraker_url"`
	Jobs         []APITimelineJob `json:"jobs"`
}

type APITimeline struct {
	Items []APITimelineItem `json:"items"`
	Ts    *time.Time        `json:"ts,omitempty"`
}

func adaptTimelineJobDto(j models.TimelineJob) APITimelineJob {
	return APITimelineJob{
		Id:        j.Id,
		Filename:  j.Filename,
		Status:    j.Status,
		StartTime: null.TimeFromPtr(j.StartTime),
		EndTime:   null.TimeFromPtr(j.EndTime),
	}
}

func AdaptTimelineItemDto(item models.TimelineItem) APITimelineItem {
	return APITimelineItem{
		Id:           item.Id,
		Name:         item.Name,
		Status:       item.Status,
		MoonrakerUrl: null.StringFromPtr(item.MoonrakerUrl),
		Jobs:         pure_utils.Map(item.Jobs, adaptTimelineJobDto),
	}
}

func AdaptTimelineDto(update models.TimelineUpdate) APITimeline {
	timeline := APITimeline{
		Items: pure_utils.Map(update.Items, AdaptTimelineItemDto),
	}
	if update.Timestamp != nil {
		ts := update.Timestamp.UTC()
		timeline.Ts = &ts
	}
	return timeline
}
