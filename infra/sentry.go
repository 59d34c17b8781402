package infra

import (
	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

func SetupSentry(dsn, env, apiVersion string) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:           dsn,
		EnableTracing: true,
		Release:       apiVersion,
		Environment:   env,
		TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
			switch ctx.Span.Name {
			case "GET /liveness", "GET /health", "GET /metrics":
				return 0.0
			case "river task printer_sync_all":
				return 0.05
			}
			return 0.2
		}),
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Request != nil {
				if _, ok := event.Request.Headers["Authorization"]; ok {
					event.Request.Headers["Authorization"] = "[redacted]"
				}
			}
			if hint != nil && event != nil && len(event.Exception) > 0 {
				originalErr := errors.UnwrapAll(hint.OriginalException)
				if originalErr != nil {
					event.Exception[len(event.Exception)-1].Type = originalErr.Error()
				}
			}
			return event
		},
	}); err != nil {
		panic(err)
	}
}
