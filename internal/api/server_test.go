package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limb-salvage-engine/internal/domain"
	"github.com/limb-salvage-engine/internal/service"
)

func newTestServer() *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &domain.Config{
		Server:    domain.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Logging:   domain.LoggingConfig{Level: "info", Format: "json"},
		RateLimit: domain.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}

	return NewServer(config, logger, service.NewEngine(logger))
}

func performRequest(s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	w := performRequest(s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestScoreEndpoint(t *testing.T) {
	s := newTestServer()

	assessment := map[string]interface{}{
		"patient_age":  70,
		"wagner_grade": 3,
		"doppler_findings": map[string]interface{}{
			"arterial": map[string]interface{}{"abi": 0.55},
		},
	}

	w := performRequest(s, http.MethodPost, "/api/v1/assessments/score", assessment)

	require.Equal(t, http.StatusOK, w.Code)

	var score domain.Score
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &score))
	assert.Equal(t, 100.0, score.MaxScore)
	assert.Greater(t, score.TotalScore, 0.0)
	assert.True(t, score.RiskCategory.IsValid())
	assert.True(t, score.SalvageProbability.IsValid())
}

func TestScoreEndpointMalformedBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/score",
		bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrInvalidInput, apiErr.Code)
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestRecommendationsEndpoint(t *testing.T) {
	s := newTestServer()

	assessment := map[string]interface{}{
		"wagner_grade": 2,
		"sepsis":       map[string]interface{}{"severity": "septic_shock"},
	}

	w := performRequest(s, http.MethodPost, "/api/v1/assessments/recommendations", assessment)

	require.Equal(t, http.StatusOK, w.Code)

	var recs []domain.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.NotEmpty(t, recs)

	// Septic shock must surface a critical immediate recommendation first.
	assert.Equal(t, domain.CategoryImmediate, recs[0].Category)
	assert.Equal(t, domain.PriorityCritical, recs[0].Priority)
}

func TestAmputationLevelEndpoint(t *testing.T) {
	s := newTestServer()

	assessment := map[string]interface{}{
		"wagner_grade": 5,
		"doppler_findings": map[string]interface{}{
			"arterial": map[string]interface{}{"abi": 0.3, "femoral": "occluded"},
		},
	}

	w := performRequest(s, http.MethodPost, "/api/v1/assessments/amputation-level", assessment)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]domain.AmputationLevel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.AmputationAKA, resp["amputation_level"])
}

func TestManagementEndpoint(t *testing.T) {
	s := newTestServer()

	w := performRequest(s, http.MethodPost, "/api/v1/assessments/management",
		map[string]interface{}{"wagner_grade": 1})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]domain.ManagementStrategy
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ManagementConservative, resp["management_strategy"])
}

func TestEvaluateEndpoint(t *testing.T) {
	s := newTestServer()

	assessment := map[string]interface{}{
		"patient_age":    72,
		"wagner_grade":   4,
		"wound_location": "left hallux",
		"doppler_findings": map[string]interface{}{
			"arterial": map[string]interface{}{"abi": 0.45},
		},
		"sepsis": map[string]interface{}{"severity": "sepsis"},
		"osteomyelitis": map[string]interface{}{
			"chronicity": "chronic",
			"sequestrum": true,
		},
	}

	w := performRequest(s, http.MethodPost, "/api/v1/assessments/evaluate", assessment)

	require.Equal(t, http.StatusOK, w.Code)

	var result EvaluationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	require.NotNil(t, result.Score)
	assert.True(t, result.Score.RiskCategory.IsValid())
	assert.NotEmpty(t, result.Recommendations)
	assert.True(t, result.AmputationLevel.IsValid())
	assert.True(t, result.ManagementStrategy.IsValid())
	require.NotNil(t, result.SINBAD)
	assert.NotEmpty(t, result.Display.Summary)
}

func TestCorrelationIDPropagation(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Correlation-ID", "test-correlation-123")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "test-correlation-123", w.Header().Get("X-Correlation-ID"))
}

func TestCorrelationIDGenerated(t *testing.T) {
	s := newTestServer()

	w := performRequest(s, http.MethodGet, "/health", nil)

	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer()

	w := performRequest(s, http.MethodGet, "/health", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer()

	w := performRequest(s, http.MethodOptions, "/api/v1/assessments/score", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitExceeded(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &domain.Config{
		Server:    domain.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Logging:   domain.LoggingConfig{Level: "info", Format: "json"},
		RateLimit: domain.RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
	}
	s := NewServer(config, logger, service.NewEngine(logger))

	first := performRequest(s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := performRequest(s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrRateLimit, apiErr.Code)
}
