package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"telegram-llm-relay/internal/httpserver"
	pkgLog "telegram-llm-relay/pkg/log"
	"telegram-llm-relay/pkg/response"
)

type stubTelegramHandler struct{ hits int }

func (s *stubTelegramHandler) HandleWebhook(c *gin.Context) {
	s.hits++
	response.OK(c, map[string]string{"status": "accepted"})
}
func (s *stubTelegramHandler) Poll(ctx context.Context, timeoutSeconds int) error { return nil }
func (s *stubTelegramHandler) Wait()                                              {}

func TestNew_Validation(t *testing.T) {
	if _, err := httpserver.New(nil, httpserver.Config{Port: 8080, Mode: gin.TestMode}); err == nil {
		t.Error("expected error without logger")
	}
	if _, err := httpserver.New(pkgLog.NewNop(), httpserver.Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error without port")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, err := httpserver.New(pkgLog.NewNop(), httpserver.Config{Port: 8080, Mode: gin.TestMode, Environment: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, w.Code)
			continue
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		if data["status"] != status || data["service"] != httpserver.ServiceName {
			t.Errorf("%s: unexpected body %s", path, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("webhook route should not exist without a handler, got %d", w.Code)
	}
}

func TestWebhookRoute(t *testing.T) {
	stub := &stubTelegramHandler{}
	srv, err := httpserver.New(pkgLog.NewNop(), httpserver.Config{
		Port:            8080,
		Mode:            gin.TestMode,
		TelegramHandler: stub,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	if w.Code != http.StatusOK || stub.hits != 1 {
		t.Errorf("status %d, hits %d", w.Code, stub.hits)
	}
}
