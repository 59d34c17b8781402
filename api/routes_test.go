package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/h2non/gock"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/repositories"
	"github.com/printfarm/printfarm-backend/repositories/clock"
	"github.com/printfarm/printfarm-backend/repositories/dbmodels"
	"github.com/printfarm/printfarm-backend/usecases"
	"github.com/printfarm/printfarm-backend/usecases/executor_factory"
	"github.com/printfarm/printfarm-backend/usecases/timeline"
	"github.com/printfarm/printfarm-backend/utils"
)

const testToken = "valid-token"

type tokenValidatorStub struct{}

func (tokenValidatorStub) ValidateToken(ctx context.Context, token string) (models.User, error) {
	if token != testToken {
		return models.User{}, errors.WithStack(models.ErrInvalidToken)
	}
	return models.User{Id: 1, Email: "admin@printfarm.local"}, nil
}

type testServer struct {
	router *gin.Engine
	db     pgxmock.PgxPoolIface
	hub    *timeline.Hub
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	stub := executor_factory.NewExecutorFactoryStub()
	uc := usecases.NewUsecases(repositories.Repositories{
		ExecutorGetter:        stub,
		PrintfarmDbRepository: &repositories.PrintfarmDbRepository{},
		TaskQueueRepository:   repositories.NewTaskQueueRepository(nil),
		MoonrakerRepository:   repositories.NewMoonrakerRepository(&http.Client{}),
		JwtRepository: repositories.NewJwtRepository([]byte("secret"), time.Hour,
			clock.NewMock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))),
		TimelineNotifier: repositories.NewTimelineNotifier(nil),
		Clock:            clock.NewMock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
	})

	hub := timeline.NewHub(0)
	router := gin.New()
	addRoutes(router, Configuration{
		Env:            "test",
		DefaultTimeout: 5 * time.Second,
		Location:       time.UTC,
	}, uc, utils.NewAuthentication(tokenValidatorStub{}), hub)

	return testServer{router: router, db: stub.Mock, hub: hub}
}

func (s testServer) do(method, target string, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Authorization", "Bearer "+testToken)

	r := httptest.NewRecorder()
	s.router.ServeHTTP(r, request)
	return r
}

func printerRows() *pgxmock.Rows {
	return pgxmock.NewRows(dbmodels.SelectPrinterColumn)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	r := httptest.NewRecorder()
	s.router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, r.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339, body["time"])
	assert.NoError(t, err)
}

func TestAuthenticationRequired(t *testing.T) {
	s := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		r := httptest.NewRecorder()
		s.router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, "/printers", nil))

		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.JSONEq(t, `{"detail": "not authenticated"}`, r.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/printers", nil)
		request.Header.Set("Authorization", "Bearer nope")
		r := httptest.NewRecorder()
		s.router.ServeHTTP(r, request)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.JSONEq(t, `{"detail": "invalid token"}`, r.Body.String())
	})

	t.Run("query token is only accepted on the websocket", func(t *testing.T) {
		r := httptest.NewRecorder()
		s.router.ServeHTTP(r, httptest.NewRequest(http.MethodGet, "/printers?token="+testToken, nil))

		assert.Equal(t, http.StatusUnauthorized, r.Code)
	})
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	hashed, err := usecases.HashPassword("p4ssword")
	require.NoError(t, err)

	s.db.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
		WithArgs("admin@printfarm.local").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectUserColumn).
			AddRow(int64(1), "admin@printfarm.local", hashed, time.Now()))
	s.db.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
		WithArgs("admin@printfarm.local").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectUserColumn).
			AddRow(int64(1), "admin@printfarm.local", hashed, time.Now()))

	login := func(password string) *httptest.ResponseRecorder {
		form := url.Values{"username": {"admin@printfarm.local"}, "password": {password}}
		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r := httptest.NewRecorder()
		s.router.ServeHTTP(r, request)
		return r
	}

	r := login("p4ssword")
	assert.Equal(t, http.StatusOK, r.Code)
	var token map[string]any
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &token))
	assert.NotEmpty(t, token["access_token"])
	assert.Equal(t, "bearer", token["token_type"])

	r = login("wrong")
	assert.Equal(t, http.StatusBadRequest, r.Code)
	assert.JSONEq(t, `{"detail": "invalid credentials"}`, r.Body.String())

	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestListPrinters(t *testing.T) {
	s := newTestServer(t)
	created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	url := "http://voron.local"

	s.db.ExpectQuery("SELECT .* FROM printers ORDER BY id").
		WillReturnRows(printerRows().
			AddRow(int64(1), "Voron", &url, "printing", created, nil, nil, nil, nil, nil, nil).
			AddRow(int64(2), "Prusa", nil, "offline", created, nil, nil, nil, nil, nil, nil))

	r := s.do(http.MethodGet, "/printers", "")

	assert.Equal(t, http.StatusOK, r.Code)
	var printers []map[string]any
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &printers))
	require.Len(t, printers, 2)
	assert.Equal(t, "Voron", printers[0]["name"])
	assert.Equal(t, url, printers[0]["moonraker_url"])
	assert.Nil(t, printers[1]["moonraker_url"])
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestPostPrinter(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

		s.db.ExpectBegin()
		s.db.ExpectQuery("INSERT INTO printers").
			WithArgs("Prusa", (*string)(nil), models.PrinterStatusOffline).
			WillReturnRows(printerRows().
				AddRow(int64(3), "Prusa", nil, "offline", created, nil, nil, nil, nil, nil, nil))
		s.db.ExpectExec("SELECT pg_notify").
			WithArgs(repositories.TimelineChannel).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		s.db.ExpectCommit()

		r := s.do(http.MethodPost, "/printers", `{"name": "  Prusa "}`)

		assert.Equal(t, http.StatusCreated, r.Code)
		assert.Contains(t, r.Body.String(), `"id":3`)
		assert.NoError(t, s.db.ExpectationsWereMet())
	})

	t.Run("validation errors", func(t *testing.T) {
		s := newTestServer(t)

		for _, body := range []string{
			`{}`,
			`{"name": ""}`,
			`{"name": "   "}`,
			`{"name": "Voron", "moonraker_url": "ftp://voron.local"}`,
			`{"name": 12}`,
			``,
		} {
			r := s.do(http.MethodPost, "/printers", body)
			assert.Equal(t, http.StatusBadRequest, r.Code, body)
		}
		assert.NoError(t, s.db.ExpectationsWereMet())
	})
}

func TestPutPrinter_NotFound(t *testing.T) {
	s := newTestServer(t)

	s.db.ExpectBegin()
	s.db.ExpectQuery("UPDATE printers SET name = \\$1 WHERE id = \\$2").
		WithArgs("Voron", int64(42)).
		WillReturnRows(printerRows())
	s.db.ExpectRollback()

	r := s.do(http.MethodPut, "/printers/42", `{"name": "Voron"}`)

	assert.Equal(t, http.StatusNotFound, r.Code)
	assert.JSONEq(t, `{"detail": "printer not found"}`, r.Body.String())
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestGetPrinter(t *testing.T) {
	s := newTestServer(t)
	created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	s.db.ExpectQuery("SELECT .* FROM printers WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(printerRows().
			AddRow(int64(1), "Voron", nil, "standby", created, nil, nil, nil, nil, nil, nil))
	s.db.ExpectQuery("SELECT .* FROM printers WHERE id = \\$1").
		WithArgs(int64(2)).
		WillReturnRows(printerRows())

	r := s.do(http.MethodGet, "/printers/1", "")
	assert.Equal(t, http.StatusOK, r.Code)
	assert.Contains(t, r.Body.String(), `"name":"Voron"`)

	r = s.do(http.MethodGet, "/printers/2", "")
	assert.Equal(t, http.StatusNotFound, r.Code)
	assert.JSONEq(t, `{"detail": "printer not found"}`, r.Body.String())
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestNotFoundDetails(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		expect func(db pgxmock.PgxPoolIface)
		detail string
	}{
		{
			name:   "update missing job",
			method: http.MethodPut,
			target: "/jobs/7",
			body:   `{"status": "completed"}`,
			expect: func(db pgxmock.PgxPoolIface) {
				db.ExpectBegin()
				db.ExpectQuery("SELECT .* FROM jobs WHERE id = \\$1").
					WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows(dbmodels.SelectJobColumn))
				db.ExpectRollback()
			},
			detail: "job not found",
		},
		{
			name:   "create job on printer 0",
			method: http.MethodPost,
			target: "/jobs",
			body:   `{"printer_id": 0, "filename": "benchy.gcode", "status": "queued"}`,
			expect: func(db pgxmock.PgxPoolIface) {
				db.ExpectBegin()
				db.ExpectQuery("SELECT .* FROM printers WHERE id = \\$1").
					WithArgs(int64(0)).
					WillReturnRows(printerRows())
				db.ExpectRollback()
			},
			detail: "printer not found",
		},
		{
			name:   "delete missing filament",
			method: http.MethodDelete,
			target: "/filaments/5",
			expect: func(db pgxmock.PgxPoolIface) {
				db.ExpectExec("DELETE FROM filaments WHERE id = \\$1").
					WithArgs(int64(5)).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			detail: "filament not found",
		},
		{
			name:   "update missing setting",
			method: http.MethodPut,
			target: "/settings/4",
			body:   `{"value": "UTC"}`,
			expect: func(db pgxmock.PgxPoolIface) {
				db.ExpectQuery("UPDATE settings SET value = \\$1 WHERE id = \\$2").
					WithArgs("UTC", int64(4)).
					WillReturnRows(pgxmock.NewRows(dbmodels.SelectSettingColumn))
			},
			detail: "setting not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.expect(s.db)

			r := s.do(tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusNotFound, r.Code)
			assert.JSONEq(t, `{"detail": "`+tt.detail+`"}`, r.Body.String())
			assert.NoError(t, s.db.ExpectationsWereMet())
		})
	}
}

func TestPostJob_MissingPrinterId(t *testing.T) {
	s := newTestServer(t)

	r := s.do(http.MethodPost, "/jobs", `{"filename": "benchy.gcode", "status": "queued"}`)

	assert.Equal(t, http.StatusBadRequest, r.Code)
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestDeletePrinter(t *testing.T) {
	s := newTestServer(t)

	s.db.ExpectBegin()
	s.db.ExpectExec("DELETE FROM printers WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	s.db.ExpectExec("SELECT pg_notify").
		WithArgs(repositories.TimelineChannel).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	s.db.ExpectCommit()

	r := s.do(http.MethodDelete, "/printers/3", "")

	assert.Equal(t, http.StatusNoContent, r.Code)
	assert.Empty(t, r.Body.String())
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestInvalidPathParameter(t *testing.T) {
	s := newTestServer(t)

	r := s.do(http.MethodDelete, "/printers/abc", "")

	assert.Equal(t, http.StatusBadRequest, r.Code)
}

func TestMoonrakerSync_NotConfigured(t *testing.T) {
	s := newTestServer(t)
	created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	s.db.ExpectQuery("SELECT .* FROM printers WHERE id = \\$1").
		WithArgs(int64(2)).
		WillReturnRows(printerRows().
			AddRow(int64(2), "Prusa", nil, "offline", created, nil, nil, nil, nil, nil, nil))

	r := s.do(http.MethodGet, "/moonraker/sync/2", "")

	assert.Equal(t, http.StatusNotFound, r.Code)
	assert.JSONEq(t, `{"detail": "printer not configured for sync"}`, r.Body.String())
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestMoonrakerSync_Unreachable(t *testing.T) {
	defer gock.Off()
	s := newTestServer(t)
	created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	syncedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	url := "http://voron.local"

	gock.New(url).
		Get("/printer/objects/query").
		Reply(http.StatusBadRequest)

	s.db.ExpectQuery("SELECT .* FROM printers WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(printerRows().
			AddRow(int64(1), "Voron", &url, "printing", created, nil, nil, nil, nil, nil, nil))
	s.db.ExpectQuery("UPDATE printers SET status = \\$1, last_synced_at = \\$2 WHERE id = \\$3").
		WithArgs(models.PrinterStatusOffline, syncedAt, int64(1)).
		WillReturnRows(printerRows().
			AddRow(int64(1), "Voron", &url, "offline", created, nil, nil, nil, nil, nil, &syncedAt))
	s.db.ExpectExec("SELECT pg_notify").
		WithArgs(repositories.TimelineChannel).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	r := s.do(http.MethodGet, "/moonraker/sync/1", "")

	assert.Equal(t, http.StatusBadGateway, r.Code)
	assert.JSONEq(t, `{"detail": "error querying Moonraker: Moonraker returned status 400"}`, r.Body.String())
	assert.True(t, gock.IsDone())
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestListCurrentJobs(t *testing.T) {
	s := newTestServer(t)
	start := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	s.db.ExpectQuery("SELECT .* FROM jobs WHERE lower\\(status\\) IN \\(\\$1,\\$2\\)").
		WithArgs(models.JobStatusPrinting, models.JobStatusQueued).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectJobColumn).
			AddRow(int64(7), int64(1), "benchy.gcode", nil, nil, nil, &start, nil, "printing"))

	r := s.do(http.MethodGet, "/jobs/current", "")

	assert.Equal(t, http.StatusOK, r.Code)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "benchy.gcode", jobs[0]["filename"])
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestGetTimeline(t *testing.T) {
	s := newTestServer(t)
	created := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	s.db.ExpectQuery("SELECT .* FROM printers ORDER BY id").
		WillReturnRows(printerRows().
			AddRow(int64(1), "Voron", nil, "", created, nil, nil, nil, nil, nil, nil))
	s.db.ExpectQuery("SELECT .* FROM jobs").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectJobColumn))

	r := s.do(http.MethodGet, "/timeline", "")

	assert.Equal(t, http.StatusOK, r.Code)
	assert.JSONEq(t,
		`{"items": [{"id": 1, "name": "Voron", "status": "offline", "moonraker_url": null, "jobs": []}]}`,
		r.Body.String())
	assert.NoError(t, s.db.ExpectationsWereMet())
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t)

	r := s.do(http.MethodGet, "/unknown", "")

	assert.Equal(t, http.StatusNotFound, r.Code)
	assert.JSONEq(t, `{"detail": "Not Found"}`, r.Body.String())
}
