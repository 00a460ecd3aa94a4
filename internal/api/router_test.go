package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/am-saksham/rescue-api/internal/api"
	"github.com/am-saksham/rescue-api/internal/config"
	"github.com/am-saksham/rescue-api/internal/dispatcher"
	"github.com/am-saksham/rescue-api/internal/domain"
	"github.com/am-saksham/rescue-api/internal/observability"
	"github.com/am-saksham/rescue-api/internal/service"
	"github.com/am-saksham/rescue-api/internal/storage/memory"
	"github.com/am-saksham/rescue-api/pkg/logger"
)

func newTestServer(t *testing.T, corsOrigins ...string) *httptest.Server {
	t.Helper()

	log := logger.Discard()
	metrics, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	volunteers := memory.NewVolunteers()
	emergencies := memory.NewEmergencies()
	push := dispatcher.NewLog(log)

	svc := service.NewService(
		service.NewVolunteerService(volunteers, nil, log),
		service.NewEmergencyService(emergencies, volunteers, push, nil, metrics, log, 20),
		service.NewResponseService(emergencies, volunteers, nil, metrics, log),
	)

	cfg := &config.Config{Http: config.HttpConfig{Port: ":0", CORSOrigins: corsOrigins}}
	srv := httptest.NewServer(api.NewServer(cfg, log, svc, nil, metrics.Handler()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func register(t *testing.T, base, name string, lat, lng float64) uuid.UUID {
	t.Helper()

	code, body := do(t, http.MethodPost, base+"/api/v1/volunteers", map[string]string{
		"name": name, "contact": strings.ToLower(name) + "@example.com", "message": "can help",
	})
	require.Equal(t, http.StatusCreated, code, string(body))

	var reg domain.RegisterVolunteerResponse
	require.NoError(t, json.Unmarshal(body, &reg))
	require.True(t, reg.Success)

	code, body = do(t, http.MethodPut, fmt.Sprintf("%s/api/v1/volunteers/%s/location", base, reg.ID), map[string]float64{"lat": lat, "lng": lng})
	require.Equal(t, http.StatusOK, code, string(body))

	code, body = do(t, http.MethodPut, fmt.Sprintf("%s/api/v1/volunteers/%s/push-token", base, reg.ID), map[string]string{"token": "ExponentPushToken[" + name + "]"})
	require.Equal(t, http.StatusOK, code, string(body))

	return reg.ID
}

func TestRouter_HelpRequestLifecycle(t *testing.T) {
	srv := newTestServer(t)

	requester := register(t, srv.URL, "Ravi", 12.9716, 77.5946)
	helper := register(t, srv.URL, "Asha", 12.9800, 77.6000)
	register(t, srv.URL, "Far", 13.5, 78.5)

	code, body := do(t, http.MethodPost, srv.URL+"/api/v1/emergencies", map[string]any{
		"requester_id": requester.String(),
		"lat":          12.9716,
		"lng":          77.5946,
		"radius_km":    5,
	})
	require.Equal(t, http.StatusCreated, code, string(body))

	var help domain.HelpResponse
	require.NoError(t, json.Unmarshal(body, &help))
	assert.Equal(t, 1, help.NotifiedCount)
	require.Len(t, help.Deliveries, 1)
	assert.Equal(t, helper, help.Deliveries[0].VolunteerID)
	assert.True(t, help.Deliveries[0].Delivered)

	respondURL := fmt.Sprintf("%s/api/v1/emergencies/%s/responses", srv.URL, help.RequestID)

	code, body = do(t, http.MethodPost, respondURL, map[string]any{"volunteer_id": helper.String(), "accept": true})
	require.Equal(t, http.StatusOK, code, string(body))

	var res domain.RespondResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, domain.RequestCompleted, res.Status)
	require.NotNil(t, res.Volunteer)
	assert.Equal(t, "Asha", res.Volunteer.Name)

	code, _ = do(t, http.MethodPost, respondURL, map[string]any{"volunteer_id": helper.String(), "accept": false})
	assert.Equal(t, http.StatusConflict, code)

	code, body = do(t, http.MethodGet, fmt.Sprintf("%s/api/v1/emergencies/%s", srv.URL, help.RequestID), nil)
	require.Equal(t, http.StatusOK, code, string(body))

	var req domain.EmergencyRequest
	require.NoError(t, json.Unmarshal(body, &req))
	require.Len(t, req.Entries, 1)
	assert.Equal(t, domain.ResponseAccepted, req.Entries[0].Response)

	code, body = do(t, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), `help_requests_total{outcome="created"} 1`)
}

func TestRouter_NoVolunteersAndBadInput(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, http.MethodPost, srv.URL+"/api/v1/emergencies", map[string]any{"lat": 0, "lng": 0, "radius_km": 10})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, http.MethodPost, srv.URL+"/api/v1/emergencies", map[string]any{"lat": 0, "lng": 0, "radius_km": 51})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, http.MethodPost, srv.URL+"/api/v1/volunteers", map[string]any{"name": "A", "contact": "a@example.com", "message": "m", "role": "admin"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, http.MethodGet, srv.URL+"/api/v1/volunteers/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, http.MethodGet, srv.URL+"/api/v1/volunteers/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body := do(t, http.MethodGet, srv.URL+"/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), `"ok"`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, "https://app.example.com")

	preflight := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/emergencies", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	resp := preflight("https://app.example.com")
	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)

	resp = preflight("https://evil.example.com")
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	got, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer got.Body.Close()
	assert.Equal(t, "https://app.example.com", got.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSWildcard(t *testing.T) {
	srv := newTestServer(t, "*")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/emergencies", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://anywhere.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
