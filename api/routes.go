package api

import (
	"context"
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/usecases"
	"github.com/printfarm/printfarm-backend/usecases/timeline"
	"github.com/printfarm/printfarm-backend/utils"
)

const maxRequestBodySize = 1 * 1024 * 1024 // 1MB

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg(`{"detail": "request timeout"}`),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth utils.Authentication, hub *timeline.Hub) {
	r.GET("/health", handleHealth(conf.Location))
	r.GET("/liveness", handleLivenessProbe(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	upgrader := newWebsocketUpgrader(allowedOrigins(context.Background(), conf))
	r.GET("/ws/timeline", auth.Middleware(true), handleTimelineWebsocket(uc, hub, upgrader))

	api := r.Group("/", limits.RequestSizeLimiter(maxRequestBodySize), timeoutMiddleware(conf.DefaultTimeout))
	api.POST("/auth/login", handleLogin(uc))

	router := api.Group("/", auth.Middleware(false))

	router.GET("/auth/me", handleGetCurrentUser)

	router.GET("/printers", handleListPrinters(uc))
	router.POST("/printers", handlePostPrinter(uc))
	router.GET("/printers/:printer_id", handleGetPrinter(uc))
	router.PUT("/printers/:printer_id", handlePutPrinter(uc))
	router.DELETE("/printers/:printer_id", handleDeletePrinter(uc))

	router.GET("/filaments", handleListFilaments(uc))
	router.POST("/filaments", handlePostFilament(uc))
	router.PUT("/filaments/:filament_id", handlePutFilament(uc))
	router.DELETE("/filaments/:filament_id", handleDeleteFilament(uc))

	router.GET("/jobs", handleListJobs(uc, models.JobListAll))
	router.GET("/jobs/current", handleListJobs(uc, models.JobListCurrent))
	router.GET("/jobs/history", handleListJobs(uc, models.JobListHistory))
	router.POST("/jobs", handlePostJob(uc))
	router.PUT("/jobs/:job_id", handlePutJob(uc))
	router.DELETE("/jobs/:job_id", handleDeleteJob(uc))

	router.GET("/settings", handleListSettings(uc))
	router.POST("/settings", handlePostSetting(uc))
	router.PUT("/settings/:setting_id", handlePutSetting(uc))
	router.DELETE("/settings/:setting_id", handleDeleteSetting(uc))

	router.GET("/moonraker/sync/:printer_id", handleMoonrakerSync(uc))

	router.GET("/timeline", handleGetTimeline(uc))

	router.GET("/dashboard/overview", handleDashboardOverview(uc))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
}
