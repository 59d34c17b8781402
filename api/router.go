package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/printfarm/printfarm-backend/api/middleware"
	"github.com/printfarm/printfarm-backend/infra"
	"github.com/printfarm/printfarm-backend/utils"
)

// allowedOrigins keeps the scheme and host of the configured origins. "*" allows any origin.
func allowedOrigins(ctx context.Context, conf Configuration) []string {
	logger := utils.LoggerFromContext(ctx)
	origins := []string{}
	for _, s := range conf.CorsOrigins {
		if s == "*" {
			origins = append(origins, s)
			continue
		}
		parsedUrl, err := url.Parse(s)
		switch {
		case err != nil:
			logger.Error(
				"Failed to parse a CORS origin. Requests made from the browser from this url to the API will be rejected.",
				"url", s)
		case !slices.Contains([]string{"http", "https"}, parsedUrl.Scheme):
			logger.Error(
				fmt.Sprintf("The url %s does not contain a scheme (http or https), so it cannot be used for CORS.", s),
				"url", s)
		default:
			u := url.URL{
				Scheme: parsedUrl.Scheme,
				Host:   parsedUrl.Host,
			}
			origins = append(origins, u.String())
		}
	}

	if conf.IsDevelopment() {
		origins = append(origins, "http://localhost:3000", "http://localhost:5173")
	}
	return origins
}

func corsOption(ctx context.Context, conf Configuration) cors.Config {
	config := cors.Config{
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodPut, http.MethodDelete,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type", "baggage", "sentry-trace"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := allowedOrigins(ctx, conf)
	if slices.Contains(origins, "*") {
		// credentials can not be combined with a wildcard origin
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = origins
	}
	return config
}

func InitRouterMiddlewares(
	ctx context.Context,
	conf Configuration,
	telemetryRessources infra.TelemetryRessources,
) (*gin.Engine, error) {
	if !conf.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	rateLimiter, err := middleware.NewRateLimiter(conf.RateLimitRequests, conf.RateLimitWindow)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(cors.New(corsOption(ctx, conf)))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(middleware.NewLogging(logger, middleware.WithIgnorePath([]string{"/liveness", "/metrics"})))
	r.Use(otelgin.Middleware(
		conf.AppName,
		otelgin.WithTracerProvider(telemetryRessources.TracerProvider),
		otelgin.WithPropagators(telemetryRessources.TextMapPropagator),
	))
	r.Use(rateLimiter.Middleware())

	return r, nil
}
