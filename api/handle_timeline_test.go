package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printfarm/printfarm-backend/dto"
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
)

func expectTimelineQueries(db pgxmock.PgxPoolIface) {
	created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)
	db.ExpectQuery("SELECT .* FROM printers ORDER BY id").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPrinterColumn).
			AddRow(int64(1), "Voron", nil, "printing", created, nil, nil, nil, nil, nil, nil))
	db.ExpectQuery("SELECT .* FROM jobs").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectJobColumn).
			AddRow(int64(7), int64(1), "benchy.gcode", nil, nil, nil, &start, nil, "printing"))
}

func dialTimeline(t *testing.T, server *httptest.Server, query string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsUrl := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/timeline" + query
	return websocket.DefaultDialer.Dial(wsUrl, nil)
}

func TestTimelineWebsocket(t *testing.T) {
	s := newTestServer(t)
	server := httptest.NewServer(s.router)
	defer server.Close()

	expectTimelineQueries(s.db)
	conn, _, err := dialTimeline(t, server, "?token="+testToken)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var initial dto.APITimeline
	require.NoError(t, conn.ReadJSON(&initial))
	require.Len(t, initial.Items, 1)
	assert.Equal(t, "Voron", initial.Items[0].Name)
	require.Len(t, initial.Items[0].Jobs, 1)
	assert.Nil(t, initial.Ts)

	t.Run("reply to client messages with a timestamped timeline", func(t *testing.T) {
		expectTimelineQueries(s.db)
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("refresh")))

		var reply dto.APITimeline
		require.NoError(t, conn.ReadJSON(&reply))
		require.NotNil(t, reply.Ts)
		assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), *reply.Ts)
		assert.Len(t, reply.Items, 1)
	})

	t.Run("push hub updates", func(t *testing.T) {
		require.Eventually(t, func() bool { return s.hub.Len() == 1 }, time.Second, 10*time.Millisecond)

		ts := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
		s.hub.Broadcast(models.TimelineUpdate{
			Items:     []models.TimelineItem{{Id: 2, Name: "Prusa", Status: "offline", Jobs: []models.TimelineJob{}}},
			Timestamp: &ts,
		})

		var pushed dto.APITimeline
		require.NoError(t, conn.ReadJSON(&pushed))
		require.Len(t, pushed.Items, 1)
		assert.Equal(t, "Prusa", pushed.Items[0].Name)
	})

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	assert.Eventually(t, func() bool { return s.hub.Len() == 0 }, time.Second, 10*time.Millisecond)
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestTimelineWebsocket_Unauthenticated(t *testing.T) {
	s := newTestServer(t)
	server := httptest.NewServer(s.router)
	defer server.Close()

	_, resp, err := dialTimeline(t, server, "")

	assert.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebsocketUpgraderCheckOrigin(t *testing.T) {
	upgrader := newWebsocketUpgrader([]string{"https://farm.example.com"})

	request := httptest.NewRequest(http.MethodGet, "/ws/timeline", nil)
	assert.True(t, upgrader.CheckOrigin(request))

	request.Header.Set("Origin", "https://farm.example.com")
	assert.True(t, upgrader.CheckOrigin(request))

	request.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, upgrader.CheckOrigin(request))

	assert.True(t, newWebsocketUpgrader([]string{"*"}).CheckOrigin(request))
}
