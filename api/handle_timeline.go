package api

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/usecases"
	"github.com/printfarm/printfarm-backend/usecases/timeline"
	"github.com/printfarm/printfarm-backend/utils"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = (wsPongWait * 9) / 10
	wsMaxMessageSize = 4096
)

func handleGetTimeline(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewTimelineUsecase()
		items, err := usecase.BuildTimeline(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptTimelineDto(models.TimelineUpdate{Items: items}))
	}
}

// newWebsocketUpgrader accepts the same origins as the CORS configuration. Requests without an
// Origin header (non browser clients) are accepted.
func newWebsocketUpgrader(origins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || slices.Contains(origins, "*") {
				return true
			}
			return slices.Contains(origins, origin)
		},
	}
}

func handleTimelineWebsocket(uc usecases.Usecases, hub *timeline.Hub, upgrader websocket.Upgrader) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := utils.LoggerFromContext(ctx)

		usecase := uc.NewTimelineUsecase()
		items, err := usecase.BuildTimeline(ctx)
		if presentError(ctx, c, err) {
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// the upgrader has already replied with an http error
			logger.InfoContext(ctx, "websocket upgrade failed", "error", err.Error())
			return
		}
		defer conn.Close()

		sub := hub.Subscribe()
		defer hub.Unsubscribe(sub)

		socket := timelineSocket{conn: conn, usecase: usecase, subscription: sub}
		if err := socket.write(dto.AdaptTimelineDto(models.TimelineUpdate{Items: items})); err != nil {
			logger.InfoContext(ctx, "could not send initial timeline", "error", err.Error())
			return
		}

		requests := make(chan struct{})
		stop := make(chan struct{})
		go socket.readLoop(requests, stop)

		err = socket.writeLoop(ctx, requests)
		close(stop)
		if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logger.InfoContext(ctx, "timeline websocket closed", "error", err.Error())
		}
	}
}

// timelineSocket serializes all writes to the connection in writeLoop. readLoop is the only reader.
type timelineSocket struct {
	conn         *websocket.Conn
	usecase      usecases.TimelineUsecase
	subscription *timeline.Subscription
}

func (s timelineSocket) write(payload dto.APITimeline) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(payload)
}

func (s timelineSocket) close(code int) error {
	return s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, ""),
		time.Now().Add(wsWriteWait))
}

// readLoop forwards every text message from the client as a timeline request, and closes
// requests when the connection fails.
func (s timelineSocket) readLoop(requests chan<- struct{}, stop <-chan struct{}) {
	defer close(requests)

	s.conn.SetReadLimit(wsMaxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		messageType, _, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		select {
		case requests <- struct{}{}:
		case <-stop:
			return
		}
	}
}

func (s timelineSocket) writeLoop(ctx context.Context, requests <-chan struct{}) error {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.close(websocket.CloseGoingAway)
		case _, ok := <-requests:
			if !ok {
				return nil
			}
			update, err := s.usecase.TimestampedTimeline(ctx)
			if err != nil {
				_ = s.close(websocket.CloseInternalServerErr)
				return errors.Wrap(err, "could not build timeline")
			}
			if err := s.write(dto.AdaptTimelineDto(update)); err != nil {
				return err
			}
		case update, ok := <-s.subscription.Updates():
			if !ok {
				return s.close(websocket.CloseGoingAway)
			}
			if err := s.write(dto.AdaptTimelineDto(update)); err != nil {
				return err
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return err
			}
		}
	}
}
