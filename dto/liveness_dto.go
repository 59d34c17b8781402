package dto

import "time"

type LivenessResponse struct {
	Mood string `json:"mood"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
