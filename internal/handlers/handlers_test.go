package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"afspraaksms/internal/models"
	"afspraaksms/internal/services"
	"afspraaksms/internal/store"

	"github.com/gin-gonic/gin"
)

type emptySource struct{}

func (emptySource) ListUpcoming(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}

type nopDispatcher struct{}

func (nopDispatcher) Send(to, message string) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "sent_reminders.json"))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	scheduler := services.NewScheduler(emptySource{}, nopDispatcher{}, st, "vincent@energy-lovers.com")
	worker := services.NewWorker(scheduler, nil, time.Minute)

	h := NewHandler(worker)
	router := gin.New()
	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.GET("/send-reminders", h.SendReminders)
	router.POST("/ringring-webhook", h.RingRingWebhook)
	return router
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health = %d, want 200", w.Code)
	}
}

func TestSendRemindersReturnsImmediately(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/send-reminders", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /send-reminders = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "started in background") {
		t.Errorf("unexpected acknowledgement body %q", w.Body.String())
	}
}

func TestWebhookAcksAnyPayload(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{`{"messageId":"abc","status":"delivered"}`, `not json at all`, ``} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ringring-webhook", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("POST /ringring-webhook with body %q = %d, want 200", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"status":"ok"`) {
			t.Errorf("webhook ack body = %q", w.Body.String())
		}
	}
}
