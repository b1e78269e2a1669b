package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"

	"github.com/Priest98/whatsapp-CRM/assist"
	"github.com/Priest98/whatsapp-CRM/config"
	"github.com/Priest98/whatsapp-CRM/routes"
	"github.com/Priest98/whatsapp-CRM/store"
	"github.com/Priest98/whatsapp-CRM/utils"
)

type stubGenerator struct {
	textOut string
	textErr error
	jsonOut string
	jsonErr error
}

func (s *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	return s.textOut, s.textErr
}

func (s *stubGenerator) GenerateJSON(_ context.Context, _ string, _ *genai.Schema) (string, error) {
	return s.jsonOut, s.jsonErr
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		BusinessName: "Tesla Motors (Mock)",
	}
}

func newTestRouter(gen assist.Generator) (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	st := store.NewSeeded()
	r := gin.New()
	routes.Register(r, cfg, st, assist.New(gen, cfg.BusinessName))
	return r, st
}

func ownerToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT(testConfig().JWTSecret, "u1", "b1", "OWNER", time.Hour)
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
