package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
)

type fakeAnalysisService struct {
	estimate *response_models.NutrientEstimate
	err      error
	gotMime  string
	gotImage []byte
}

func (f *fakeAnalysisService) AnalyzeFood(ctx context.Context, userID string, image []byte, mimeType string) (*response_models.NutrientEstimate, error) {
	f.gotImage = image
	f.gotMime = mimeType
	return f.estimate, f.err
}

func foodRouter(svc *fakeAnalysisService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewFoodController(svc)
	r.POST("/main-core/analyzeFoodImage", func(c *gin.Context) {
		c.Set("user_id", "u1")
		ctrl.AnalyzeFoodImage(c)
	})
	return r
}

func TestAnalyzeFoodImageNoImage(t *testing.T) {
	r := foodRouter(&fakeAnalysisService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/main-core/analyzeFoodImage", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeFoodImage(t *testing.T) {
	svc := &fakeAnalysisService{estimate: &response_models.NutrientEstimate{
		Macros: response_models.Macros{Calories: 500, Protein: 20, Carbs: 60, Fats: 15},
	}}
	r := foodRouter(svc)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="lunch.jpg"`)
	hdr.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("jpegdata"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/main-core/analyzeFoodImage", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if string(svc.gotImage) != "jpegdata" {
		t.Errorf("image bytes = %q", svc.gotImage)
	}
	if svc.gotMime != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", svc.gotMime)
	}

	var resp struct {
		Data response_models.NutrientEstimate `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Macros.Calories != 500 {
		t.Errorf("macros = %+v", resp.Data.Macros)
	}
}
