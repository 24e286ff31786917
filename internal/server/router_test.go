package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck-backend/internal/handlers"
	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/services"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
	// nil services are fine here: these tests never reach a handler body
	// that dereferences them.
	questionHandler := handlers.NewQuestionHandler(log, services.QuestionBankService(nil))
	practiceHandler := handlers.NewPracticeHandler(log, services.PracticeService(nil), services.GenerationService(nil))
	return NewRouter(RouterConfig{
		AllowOrigins:    []string{"http://localhost:3000"},
		QuestionHandler: questionHandler,
		PracticeHandler: practiceHandler,
	})
}

func TestHealthcheckRoute(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
}

func TestCORSPreflightAllowsConfiguredOrigin(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin header: got=%q", got)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
}
