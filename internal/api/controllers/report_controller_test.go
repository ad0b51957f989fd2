package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/GAJULASAINATH/MacroVerse/internal/services"
)

type fakeReportService struct {
	result *services.ReportResult
	err    error
}

func (f *fakeReportService) GenerateMonthlyReport(ctx context.Context, userID string, month int) (*services.ReportResult, error) {
	return f.result, f.err
}

func reportRouter(svc services.ReportServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewReportController(svc)
	r.POST("/main-core/getMonthlyReport", func(c *gin.Context) {
		c.Set("user_id", "u1")
		ctrl.GetMonthlyReport(c)
	})
	return r
}

func TestGetMonthlyReportInvalidMonth(t *testing.T) {
	r := reportRouter(&fakeReportService{})

	for _, q := range []string{"", "month=12", "month=-1", "month=abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/main-core/getMonthlyReport?"+q, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", q, w.Code)
		}
	}
}

func TestGetMonthlyReportNoData(t *testing.T) {
	r := reportRouter(&fakeReportService{result: &services.ReportResult{NoData: true}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/main-core/getMonthlyReport?month=8", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No data for report") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGetMonthlyReportStreamsAndCleansUp(t *testing.T) {
	pdfPath := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.5 fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	cleanupRuns := 0
	r := reportRouter(&fakeReportService{result: &services.ReportResult{
		PDFPath:  pdfPath,
		Filename: "monthly_report_September.pdf",
		Cleanup:  func() { cleanupRuns++ },
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/main-core/getMonthlyReport?month=8", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, `attachment`) ||
		!strings.Contains(got, "monthly_report_September.pdf") {
		t.Errorf("Content-Disposition = %q", got)
	}
	if w.Body.String() != "%PDF-1.5 fake" {
		t.Errorf("body = %q", w.Body.String())
	}
	if cleanupRuns != 1 {
		t.Errorf("cleanup runs = %d, want 1 after the stream completed", cleanupRuns)
	}
}
