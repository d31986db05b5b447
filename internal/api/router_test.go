package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcstudio-server/internal/auth"
	"bcstudio-server/internal/briefing"
	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/errors"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/copygen"
)

// newTestServer wires the router with real services over a single sqlmock
// connection. No cache, no search, no notifier.
func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	pg := &database.PostgresClient{DB: db}
	log := logger.NewNoOpLogger()

	srv := NewServer(Deps{
		Config:    config.Config{},
		Logger:    log,
		Auth:      auth.NewService(pg, nil, log),
		Briefings: briefing.NewService(pg, nil, config.BriefingConfig{}, log),
		Copies:    copygen.NewService(pg, nil, log),
	})
	return srv, mock
}

func sessionRow(plan string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "email", "full_name", "plan", "role", "created_at", "updated_at"}).
		AddRow("u-1", "joao@example.com", "João Designer", plan, "user", now, now)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestPublicBriefingUnknownToken(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM briefing_forms WHERE token").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/briefing/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), string(errors.ErrCodeNotFound))
}

func TestSubmitBriefingRejectsBadPayload(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, body := range []string{`{}`, `{"responses":{}}`, `{"responses":{"a":1}}`, `not json`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/briefing/tok-1", strings.NewReader(body))
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestSubmitBriefingAccepted(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery("UPDATE briefing_forms SET responses").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "tok-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title"}).
			AddRow("b-1", "u-1", "Meu site"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/briefing/tok-1",
		strings.NewReader(`{"responses":{"business_name":"Studio Alpha"}}`))
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submitted":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitBriefingDuplicateConflicts(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery("UPDATE briefing_forms SET responses").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "tok-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title"}))
	mock.ExpectQuery("SELECT submitted_at FROM briefing_forms").
		WithArgs("tok-1").
		WillReturnRows(sqlmock.NewRows([]string{"submitted_at"}).AddRow(time.Now()))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/briefing/tok-1",
		strings.NewReader(`{"responses":{"business_name":"Outro"}}`))
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), string(errors.ErrCodeAlreadySubmitted))
}

func TestV1RequiresBearerToken(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/briefings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestV1ListBriefingsAuthenticated(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("sess-1").
		WillReturnRows(sessionRow("pro"))
	mock.ExpectQuery("SELECT (.+) FROM briefing_forms WHERE owner_id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "client_id", "token", "page_type", "niche_selected", "title", "responses", "submitted_at", "created_at"}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/briefings", nil)
	req.Header.Set("Authorization", "Bearer sess-1")
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateCopyDeniedBelowPro(t *testing.T) {
	for _, plan := range []string{"free", "basic"} {
		srv, mock := newTestServer(t)

		mock.ExpectQuery("SELECT (.+) FROM sessions").
			WithArgs("sess-" + plan).
			WillReturnRows(sessionRow(plan))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/copy/generate",
			strings.NewReader(`{"niche":"Outro","copy_type":"landing_page","responses":{"business_name":"X"}}`))
		req.Header.Set("Authorization", "Bearer sess-"+plan)
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, plan)
		assert.Contains(t, rec.Body.String(), string(errors.ErrCodePlanRequired), plan)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestGenerateCopyAllowedForPro(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("sess-1").
		WillReturnRows(sessionRow("pro"))
	mock.ExpectExec("INSERT INTO generated_copies").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/copy/generate",
		strings.NewReader(`{"niche":"Outro","copy_type":"landing_page","responses":{"business_name":"X"}}`))
	req.Header.Set("Authorization", "Bearer sess-1")
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusForCode(t *testing.T) {
	cases := map[errors.ErrorCode]int{
		errors.ErrCodeValidationFailed: http.StatusBadRequest,
		errors.ErrCodeUnauthorized:     http.StatusUnauthorized,
		errors.ErrCodePlanRequired:     http.StatusForbidden,
		errors.ErrCodeNotFound:         http.StatusNotFound,
		errors.ErrCodeAlreadySubmitted: http.StatusConflict,
		errors.ErrCodeExternalService:  http.StatusBadGateway,
		errors.ErrCodeGenerationFailed: http.StatusInternalServerError,
		errors.ErrCodeDatabaseFailure:  http.StatusInternalServerError,
		errors.ErrCodeInternal:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, statusForCode(code), string(code))
	}
}

func TestWriteErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
