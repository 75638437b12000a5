package controller

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/service"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *echo.Echo {
	t.Helper()

	services := service.NewServices(&service.Deps{
		Repos:  repo.NewMemoryRepositories(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(services.Leaderboard.Shutdown)

	handler := echo.New()
	SetupRoutesHandlers(handler, services, nil)

	return handler
}

func doRequest(handler *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestPostJobRoute(t *testing.T) {
	handler := newTestHandler(t)

	rec := doRequest(handler, http.MethodPost, "/api/jobs/new",
		`{"title":"Clean condo","description":"Two bedrooms","pay":600,"community":"Cancún","schedule":"2025-10-01","employerId":"e1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var job entity.JobOutputModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.NotEmpty(t, job.Id)
	assert.Equal(t, "Open", job.Status)
	assert.Empty(t, job.Bids)
}

func TestPostJobRouteValidation(t *testing.T) {
	handler := newTestHandler(t)

	// Missing employerId.
	rec := doRequest(handler, http.MethodPost, "/api/jobs/new",
		`{"title":"Clean condo","pay":600,"community":"Cancún"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Maid posting a job.
	rec = doRequest(handler, http.MethodPost, "/api/jobs/new",
		`{"title":"Clean condo","pay":600,"community":"Cancún","employerId":"m1"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBidAndAcceptRoutes(t *testing.T) {
	handler := newTestHandler(t)

	// job-1 is seeded Open with bids from m1 and m2; m3 joins.
	rec := doRequest(handler, http.MethodPost, "/api/jobs/job-1/bids/new",
		`{"bidderId":"m3","price":1000,"message":"Happy to help"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var bid entity.BidOutputModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bid))
	assert.Equal(t, "Pending", bid.Status)
	assert.Equal(t, "Rosa Martínez", bid.BidderName)

	// Duplicate bid from m1.
	rec = doRequest(handler, http.MethodPost, "/api/jobs/job-1/bids/new",
		`{"bidderId":"m1","price":1000}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Only the owner accepts.
	rec = doRequest(handler, http.MethodPut, "/api/jobs/job-1/bids/0/accept?requesterId=e2", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(handler, http.MethodPut, "/api/jobs/job-1/bids/0/accept?requesterId=e1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var job entity.JobOutputModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "Hired", job.Status)
	assert.Equal(t, "m1", job.HiredBidderId)

	// The job closed, second accept conflicts.
	rec = doRequest(handler, http.MethodPut, "/api/jobs/job-1/bids/1/accept?requesterId=e1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCompleteJobRoute(t *testing.T) {
	handler := newTestHandler(t)

	// job-3 is seeded Hired with m3.
	rec := doRequest(handler, http.MethodPut, "/api/jobs/job-3/complete?requesterId=e1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(handler, http.MethodPut, "/api/jobs/job-3/complete?requesterId=m3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var job entity.JobOutputModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "Completed", job.Status)
}

func TestGetJobRoutes(t *testing.T) {
	handler := newTestHandler(t)

	rec := doRequest(handler, http.MethodGet, "/api/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var jobs []entity.JobOutputModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	assert.Len(t, jobs, 3)

	rec = doRequest(handler, http.MethodGet, "/api/jobs/job-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(handler, http.MethodGet, "/api/jobs/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(handler, http.MethodGet, "/api/jobs/my?userId=e1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	assert.Len(t, jobs, 2)
}

func TestPingRoute(t *testing.T) {
	handler := newTestHandler(t)

	rec := doRequest(handler, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationRoutes(t *testing.T) {
	handler := newTestHandler(t)

	// Completing job-3 notifies e1 and m3.
	rec := doRequest(handler, http.MethodPut, "/api/jobs/job-3/complete?requesterId=m3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(handler, http.MethodGet, "/api/notifications?userId=e1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var notifications []entity.NotificationOutputModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifications))
	require.NotEmpty(t, notifications)
	assert.Equal(t, "job-completed", notifications[0].Kind)

	rec = doRequest(handler, http.MethodPut, "/api/notifications/"+notifications[0].Id+"/read?userId=e1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(handler, http.MethodPut, "/api/notifications/read-all?userId=e1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
