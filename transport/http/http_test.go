package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelhills/config"
	otelMocks "hotelhills/infras/otel/mocks"
	"hotelhills/transport/http/middleware"
	"hotelhills/transport/http/router"
)

func newTestServer() *HTTP {
	cfg := &config.Config{}
	ot := otelMocks.NewOtel()

	return New(cfg, router.New(router.DomainHandlers{}), middleware.NewAppMiddleware(ot, cfg, nil), nil, nil, ot)
}

func get(h *HTTP, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestHTTP_Root(t *testing.T) {
	recorder := get(newTestServer(), "/")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"HotelHills API is running"}`, recorder.Body.String())
}

func TestHTTP_Health(t *testing.T) {
	h := newTestServer()

	recorder := get(h, "/health")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"OK"}`, recorder.Body.String())

	h.setState(ServerStateInGracePeriod)

	recorder = get(h, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, recorder.Body.String())
}

func TestHTTP_UnknownRoute(t *testing.T) {
	recorder := get(newTestServer(), "/api/unknown")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
