package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expedientes_app_go/config"
	"expedientes_app_go/repository"
	"expedientes_app_go/services"
	"expedientes_app_go/storage"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func setupTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	seq := 0
	store := storage.NewVersionedStore(storage.NewMemoryBackend(), config.DefaultStorageKey, config.DefaultStorageVersion)
	return repository.New(context.Background(), store,
		repository.WithClock(func() time.Time { return testNow }),
		repository.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

// setupTestServer wires the API over an in-memory repository and the given transport
func setupTestServer(t *testing.T, transport services.Transport) (*echo.Echo, *repository.Repository) {
	t.Helper()
	repo := setupTestRepo(t)
	svc := services.New(repo, transport, services.WithClock(func() time.Time { return testNow }))
	e := echo.New()
	Register(e, NewAPI(svc, repo, &config.Config{Environment: "test", EmailTestMode: true}))
	return e, repo
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

// doRequest sends a JSON request through the router
func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

type listBody[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
	ActiveFilters int `json:"active_filters"`
}

// failingTransport fails every call with the simulated connection error
type failingTransport struct{}

func (failingTransport) Wait(ctx context.Context, op services.Op) error { return services.ErrConnection }

