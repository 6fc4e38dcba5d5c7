package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-screenshot-organizer/internal/capture"
	captureHTTP "smart-screenshot-organizer/internal/capture/delivery/http"
	"smart-screenshot-organizer/internal/middleware"
	"smart-screenshot-organizer/internal/model"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	processOutput    capture.ProcessOutput
	processErr       error
	processScope     model.Scope
	categorizeOutput capture.CategorizeOutput
	categorizeErr    error
	detailOutput     capture.DetailOutput
	detailErr        error
	listOutput       capture.ListOutput
	listErr          error
	deleteErr        error
}

func (m *mockUseCase) Process(ctx context.Context, sc model.Scope, input capture.ProcessInput) (capture.ProcessOutput, error) {
	m.processScope = sc
	return m.processOutput, m.processErr
}
func (m *mockUseCase) Categorize(ctx context.Context, input capture.CategorizeInput) (capture.CategorizeOutput, error) {
	return m.categorizeOutput, m.categorizeErr
}
func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (capture.DetailOutput, error) {
	return m.detailOutput, m.detailErr
}
func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input capture.ListInput) (capture.ListOutput, error) {
	return m.listOutput, m.listErr
}
func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.deleteErr
}

func newTestRouter(uc capture.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := captureHTTP.New(&mockLogger{}, uc)
	mw := middleware.New(&mockLogger{}, 0)
	captureHTTP.RegisterRoutes(r.Group("/api/v1/captures"), h, mw)
	return r
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestProcessEndpoint(t *testing.T) {
	uc := &mockUseCase{
		processOutput: capture.ProcessOutput{
			Capture: model.Capture{
				ID:     "cap-1",
				UserID: "alice",
				Result: model.NewCategorizedResult(),
				Source: model.SourceRuleBased,
			},
		},
	}
	r := newTestRouter(uc)

	body, _ := json.Marshal(map[string]any{"text": "Buy milk", "confidence": 90})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/captures", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.processScope.UserID != "alice" {
		t.Errorf("scope user = %q, want alice", uc.processScope.UserID)
	}

	var resp struct {
		Data struct {
			Capture struct {
				ID     string `json:"id"`
				Source string `json:"source"`
			} `json:"capture"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Capture.ID != "cap-1" || resp.Data.Capture.Source != "rule_based" {
		t.Errorf("capture = %+v", resp.Data.Capture)
	}
}

func TestProcessEndpointRejectsMissingText(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/captures", bytes.NewReader([]byte(`{"confidence": 90}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestProcessEndpointInvalidConfidence(t *testing.T) {
	uc := &mockUseCase{processErr: capture.ErrInvalidConfidence}
	r := newTestRouter(uc)

	body, _ := json.Marshal(map[string]any{"text": "Buy milk", "confidence": 150})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/captures", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDetailEndpointNotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: capture.ErrCaptureNotFound}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/captures/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCategorizeEndpoint(t *testing.T) {
	result := model.NewCategorizedResult()
	result.Todos = append(result.Todos, model.ExtractedTodo{
		Title:    "Buy milk",
		Priority: model.PriorityMedium,
		Status:   model.StatusPending,
	})
	uc := &mockUseCase{categorizeOutput: capture.CategorizeOutput{Result: result}}
	r := newTestRouter(uc)

	body, _ := json.Marshal(map[string]any{"text": "buy milk", "confidence": 80})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/captures/categorize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Result struct {
				Todos     []map[string]any `json:"todos"`
				ItemCount int              `json:"item_count"`
			} `json:"result"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Result.ItemCount != 1 || len(resp.Data.Result.Todos) != 1 {
		t.Errorf("result = %+v", resp.Data.Result)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/captures/cap-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
