package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nextplay-automation/internal/automation"
	automationHTTP "nextplay-automation/internal/automation/delivery/http"
	"nextplay-automation/internal/automation/usecase"
	"nextplay-automation/internal/intent"
)

type mockUseCase struct {
	automateFunc func(ctx context.Context, input automation.AutomateInput) (automation.Result, error)
	lastInput    automation.AutomateInput
}

func (m *mockUseCase) Automate(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
	m.lastInput = input
	return m.automateFunc(ctx, input)
}

func newTestRouter(uc automation.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := automationHTTP.New(usecase.NewMockLogger(), uc)
	automationHTTP.RegisterRoutes(router.Group("/api/v1/automation"), h)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/automation", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAutomateEndpoint(t *testing.T) {
	t.Run("Success Returns Flat Payload", func(t *testing.T) {
		at := time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC)
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				return automation.Result{Intent: intent.IntentBuy, Reply: "here are our listings", Time: at}, nil
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message":"I want to buy a house"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp["intent"] != "BUY" {
			t.Errorf("intent = %v, want BUY", resp["intent"])
		}
		if resp["reply"] != "here are our listings" {
			t.Errorf("reply = %v", resp["reply"])
		}
		if resp["time"] != "2026-05-02T10:30:00Z" {
			t.Errorf("time = %v, want RFC3339 UTC", resp["time"])
		}
		if len(resp) != 3 {
			t.Errorf("expected exactly intent/reply/time keys, got %v", resp)
		}
	})

	t.Run("Missing Message Is Invalid Payload", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				t.Error("use case should not run on malformed body")
				return automation.Result{}, nil
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"channel":"chat"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != automationHTTP.MsgInvalidPayload {
			t.Errorf("error = %q, want %q", resp["error"], automationHTTP.MsgInvalidPayload)
		}
	})

	t.Run("Malformed JSON Is Invalid Payload", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				return automation.Result{}, nil
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message": `)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Unknown Channel Rejected By Binding", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				t.Error("use case should not run on invalid channel")
				return automation.Result{}, nil
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message":"hello","channel":"sms"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != automationHTTP.MsgInvalidPayload {
			t.Errorf("error = %q, want %q", resp["error"], automationHTTP.MsgInvalidPayload)
		}
	})

	t.Run("Empty Channel String Rejected", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				t.Error("use case should not run when channel is present but empty")
				return automation.Result{}, nil
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message":"hello","channel":""}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != automationHTTP.MsgInvalidPayload {
			t.Errorf("error = %q, want %q", resp["error"], automationHTTP.MsgInvalidPayload)
		}
	})

	t.Run("Absent Channel Defaults To Chat", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				return automation.Result{Intent: intent.IntentUnknown, Reply: "ok", Time: time.Now()}, nil
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message":"hello"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if string(uc.lastInput.Channel) != "chat" {
			t.Errorf("channel = %q, want chat", uc.lastInput.Channel)
		}
	})

	t.Run("Whitespace Message Is Invalid Payload", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				return automation.Result{}, automation.ErrEmptyMessage
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message":"   "}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != automationHTTP.MsgInvalidPayload {
			t.Errorf("error = %q, want %q", resp["error"], automationHTTP.MsgInvalidPayload)
		}
	})

	t.Run("Runtime Failure Uses Generic Message", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				return automation.Result{}, errors.New("openai: 500 Internal Server Error from upstream")
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message":"hello"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != automationHTTP.MsgGenerateFailed {
			t.Errorf("error = %q, want generic message", resp["error"])
		}
		if bytes.Contains(w.Body.Bytes(), []byte("upstream")) {
			t.Error("internal error detail leaked to the client")
		}
	})

	t.Run("Classification Failure Uses Generic Message", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				return automation.Result{}, automation.ErrClassification
			},
		}
		w := doRequest(t, newTestRouter(uc), `{"message":"hello"}`)

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != automationHTTP.MsgGenerateFailed {
			t.Errorf("error = %q, want %q", resp["error"], automationHTTP.MsgGenerateFailed)
		}
	})

	t.Run("Fields Pass Through To Use Case", func(t *testing.T) {
		uc := &mockUseCase{
			automateFunc: func(ctx context.Context, input automation.AutomateInput) (automation.Result, error) {
				return automation.Result{Intent: intent.IntentCall, Reply: "ok", Time: time.Now()}, nil
			},
		}
		router := newTestRouter(uc)
		w := doRequest(t, router, `{"message":"call me","channel":"call","customerName":"Alex"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastInput.Message != "call me" {
			t.Errorf("message = %q", uc.lastInput.Message)
		}
		if string(uc.lastInput.Channel) != "call" {
			t.Errorf("channel = %q", uc.lastInput.Channel)
		}
		if uc.lastInput.CustomerName != "Alex" {
			t.Errorf("customerName = %q", uc.lastInput.CustomerName)
		}
	})
}
