package artwork

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubArtworkService struct {
	b64      string
	err      error
	gotDream string
}

func (s *stubArtworkService) GenerateImage(_ context.Context, dream string) (string, error) {
	s.gotDream = dream
	return s.b64, s.err
}

func newTestRouter(svc artworkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(r.Group("/api"))
	return r
}

func TestGenerateReturnsImage(t *testing.T) {
	svc := &stubArtworkService{b64: "aW1n"}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/image", strings.NewReader(`{"dream":"the flooded cinema"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"b64":"aW1n"`) {
		t.Errorf("body = %s", w.Body.String())
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Error("image response must not be cached")
	}
	if svc.gotDream != "the flooded cinema" {
		t.Errorf("service got %q", svc.gotDream)
	}
}

func TestGenerateRejectsMissingDream(t *testing.T) {
	r := newTestRouter(&stubArtworkService{})

	req := httptest.NewRequest(http.MethodPost, "/api/image", strings.NewReader(`{"dream":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing dream text.") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	r := newTestRouter(&stubArtworkService{err: errors.New("model overloaded")})

	req := httptest.NewRequest(http.MethodPost, "/api/image", strings.NewReader(`{"dream":"a hallway"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "model overloaded") {
		t.Error("upstream error detail leaked to the client")
	}
}
