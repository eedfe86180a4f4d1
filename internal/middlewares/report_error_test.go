package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

type captureTransport struct {
	events []*sentry.Event
}

func (t *captureTransport) Configure(sentry.ClientOptions) {}
func (t *captureTransport) SendEvent(e *sentry.Event) { t.events = append(t.events, e) }
func (t *captureTransport) Flush(time.Duration) bool { return true }
func (t *captureTransport) FlushWithContext(context.Context) bool { return true }
func (t *captureTransport) Close() {}

func TestReportError_TagsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tr := &captureTransport{}
	if err := sentry.Init(sentry.ClientOptions{Dsn: "https://public@example.com/1", Transport: tr}); err != nil {
		t.Fatalf("sentry init: %v", err)
	}
	t.Cleanup(func() { sentry.CurrentHub().BindClient(nil) })

	r := gin.New()
	r.Use(RequestID())
	r.GET("/fail", func(c *gin.Context) {
		ReportError(c, errors.New("mix failed"), "generate_podcast")
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	if len(tr.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(tr.events))
	}
	if got := tr.events[0].Tags["request_id"]; got != w.Header().Get(RequestIDHeader) {
		t.Fatalf("request_id tag=%q header=%q", got, w.Header().Get(RequestIDHeader))
	}
}
