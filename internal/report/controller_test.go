package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gemcast-api/internal/util"

	"github.com/gin-gonic/gin"
)

type stubReportService struct {
	rep    *Report
	err    error
	format string
}

func (s *stubReportService) Generate(_ context.Context, _, _, format string) (*Report, error) {
	s.format = format
	return s.rep, s.err
}

func postReport(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate_report", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportController_GenerateReport_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubReportService{rep: &Report{URL: "/static/generated_reports/report_x.pdf", Format: FormatPDF, Path: "static/generated_reports/report_x.pdf"}}
	r := gin.New()
	RegisterRoutes(r, svc)

	w := postReport(r, url.Values{"query": {"q"}, "format": {"pdf"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["report_url"] != "/static/generated_reports/report_x.pdf" || resp["report_format"] != "pdf" {
		t.Fatalf("unexpected body %v", resp)
	}
	if len(resp) != 2 {
		t.Fatalf("unexpected extra keys %v", resp)
	}
	if svc.format != "pdf" {
		t.Fatalf("format=%q", svc.format)
	}
}

func TestReportController_GenerateReport_MissingQuery_400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, &stubReportService{})

	if w := postReport(r, url.Values{}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestReportController_GenerateReport_BadFormat_400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, &stubReportService{err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, "docx")})

	if w := postReport(r, url.Values{"query": {"q"}, "format": {"docx"}}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestReportController_GenerateReport_StageError_500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, &stubReportService{err: util.NewStageError("render", msgGenerateFailed, errors.New("font"))})

	w := postReport(r, url.Values{"query": {"q"}})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != msgGenerateFailed || resp["details"] != "font" {
		t.Fatalf("unexpected body %v", resp)
	}
}
