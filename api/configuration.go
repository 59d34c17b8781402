package api

import (
	"time"
)

type Configuration struct {
	Env            string
	AppName        string
	AppVersion     string
	Port           string
	CorsOrigins    []string
	DefaultTimeout time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	Location         *time.Location
	EnablePrometheus bool
}

func (conf Configuration) IsDevelopment() bool {
	return conf.Env == "development"
}
