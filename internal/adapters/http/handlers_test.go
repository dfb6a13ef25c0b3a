package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/attempts"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/config"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/core"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/evaluator"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/generator"
)

func testRouter(t *testing.T) (*gin.Engine, *API) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := attempts.NewMemoryStore(0)
	t.Cleanup(func() { store.Close() })

	api := &API{
		Cfg: &config.Config{
			Mode:         "release",
			Secret:       "test-secret",
			ReadLimit:    64 * 1024,
			PingPeriod:   20 * time.Second,
			JoinLimit:    10,
			JoinInterval: time.Second,
		},
		Reg:      core.NewRegistry(),
		Gen:      generator.NewService(nil),
		Eval:     evaluator.NewService(nil),
		Attempts: store,
	}
	return SetupRouter(context.Background(), api), api
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK        bool   `json:"ok"`
		Service   string `json:"service"`
		Timestamp int64  `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "interview-backend", resp.Service)
	assert.NotZero(t, resp.Timestamp)
}

func TestGenerateRequiresCategory(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/generate", gin.H{"difficulty": "Easy"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category is required")
}

func TestGenerateFallback(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/generate", gin.H{
		"category":   "Coding",
		"difficulty": "Easy",
		"count":      5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items  []json.RawMessage `json:"items"`
		Source string            `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 5)
	assert.Equal(t, generator.SourceFallback, resp.Source)
}

func TestGenerateClampsCount(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/generate", gin.H{
		"category": "HR",
		"count":    100,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 20)
}

func TestEvaluateOffline(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/evaluate", gin.H{
		"category": "HR",
		"question": "Tell me about yourself.",
		"answer":   "I build backend services.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Score      float64  `json:"score"`
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.5, resp.Score)
	assert.Equal(t, []string{"clarity", "structure", "relevance"}, resp.Categories)
}

func TestAttemptsRoundTrip(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/attempts", gin.H{
		"question": "Reverse a list.",
		"answer":   "use a loop",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/attempts/%s", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var loaded struct {
		ID        string          `json:"id"`
		Payload   json.RawMessage `json:"payload"`
		CreatedAt int64           `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, created.ID, loaded.ID)
	assert.Contains(t, string(loaded.Payload), "Reverse a list.")
	assert.NotZero(t, loaded.CreatedAt)
}

func TestAttemptsNotFound(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodGet, "/api/attempts/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomsEmpty(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rooms []core.RoomInfo `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Rooms)
}
