package handlers_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nextplay-automation/internal/automation/handlers"
	"nextplay-automation/pkg/llmprovider"
)

type mockGenerator struct {
	text       string
	err        error
	lastSystem string
	lastText   string
}

func (m *mockGenerator) GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastSystem = req.System
	if len(req.Messages) > 0 {
		m.lastText = req.Messages[len(req.Messages)-1].Text
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestGenerativeHandlers(t *testing.T) {
	ctx := context.Background()
	cfg := handlers.Config{Temperature: 0.7, MaxTokens: 256}

	t.Run("Sales Uses Sales Prompt", func(t *testing.T) {
		gen := &mockGenerator{text: "sales reply"}
		h := handlers.NewSales(gen, cfg, &mockLogger{})

		reply, err := h.Reply(ctx, "What does the enterprise plan cost?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "sales reply" {
			t.Errorf("unexpected reply: %s", reply)
		}
		if gen.lastSystem != handlers.PromptSales {
			t.Errorf("expected sales prompt, got %q", gen.lastSystem)
		}
		if gen.lastText != "What does the enterprise plan cost?" {
			t.Errorf("message not passed through: %q", gen.lastText)
		}
	})

	t.Run("Support Uses Support Prompt", func(t *testing.T) {
		gen := &mockGenerator{text: "support reply"}
		h := handlers.NewSupport(gen, cfg, &mockLogger{})

		if _, err := h.Reply(ctx, "Dashboard is broken"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.lastSystem != handlers.PromptSupport {
			t.Errorf("expected support prompt, got %q", gen.lastSystem)
		}
	})

	t.Run("Email Uses Email Prompt", func(t *testing.T) {
		gen := &mockGenerator{text: "email reply"}
		h := handlers.NewEmail(gen, cfg, &mockLogger{})

		if _, err := h.Reply(ctx, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.lastSystem != handlers.PromptEmail {
			t.Errorf("expected email prompt, got %q", gen.lastSystem)
		}
	})

	t.Run("General Uses General Prompt", func(t *testing.T) {
		gen := &mockGenerator{text: "general reply"}
		h := handlers.NewGeneral(gen, cfg, &mockLogger{})

		if _, err := h.Reply(ctx, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.lastSystem != handlers.PromptGeneral {
			t.Errorf("expected general prompt, got %q", gen.lastSystem)
		}
	})

	t.Run("Generation Error Surfaces", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("timeout")}
		h := handlers.NewSales(gen, cfg, &mockLogger{})

		if _, err := h.Reply(ctx, "Hello"); err == nil {
			t.Errorf("expected error when generation fails")
		}
	})
}

func TestPaymentHandler(t *testing.T) {
	h := handlers.NewPayment()

	first, err := h.Reply(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := h.Reply(context.Background())

	if first != second {
		t.Errorf("payment reply not byte-identical across calls")
	}
	if first != handlers.PaymentReply {
		t.Errorf("unexpected payment reply: %s", first)
	}
}

func TestCallHandler(t *testing.T) {
	// No calendar client configured: reply still produced, no hold booked.
	h := handlers.NewCall(nil, "", &mockLogger{})

	t.Run("Incorporates Customer Name", func(t *testing.T) {
		reply, err := h.Reply(context.Background(), "Alex")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply, "Alex") {
			t.Errorf("reply does not mention customer name: %s", reply)
		}
	})

	t.Run("Deterministic For Same Name", func(t *testing.T) {
		first, _ := h.Reply(context.Background(), "Customer")
		second, _ := h.Reply(context.Background(), "Customer")
		if first != second {
			t.Errorf("call reply not deterministic")
		}
	})
}
