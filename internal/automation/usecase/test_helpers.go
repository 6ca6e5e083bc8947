package usecase

import (
	"context"

	"nextplay-automation/internal/intent"
)

// Mock logger for testing
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

// NewMockLogger returns a no-op logger for tests.
func NewMockLogger() *mockLogger {
	return &mockLogger{}
}

// StubClassifier returns a fixed intent or error.
type StubClassifier struct {
	Intent intent.Intent
	Err    error
	Calls  int
}

func (s *StubClassifier) Classify(ctx context.Context, message string) (intent.Intent, error) {
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}
	return s.Intent, nil
}

// RecordingMessageHandler records the message it was invoked with.
type RecordingMessageHandler struct {
	ReplyText string
	Err       error
	Calls     int
	LastInput string
}

func (r *RecordingMessageHandler) Reply(ctx context.Context, message string) (string, error) {
	r.Calls++
	r.LastInput = message
	if r.Err != nil {
		return "", r.Err
	}
	return r.ReplyText, nil
}

// RecordingPaymentHandler records invocations of the parameterless handler.
type RecordingPaymentHandler struct {
	ReplyText string
	Calls     int
}

func (r *RecordingPaymentHandler) Reply(ctx context.Context) (string, error) {
	r.Calls++
	return r.ReplyText, nil
}

// RecordingCallHandler records the customer name it was invoked with.
type RecordingCallHandler struct {
	Calls    int
	LastName string
}

func (r *RecordingCallHandler) Reply(ctx context.Context, customerName string) (string, error) {
	r.Calls++
	r.LastName = customerName
	return "We will call you, " + customerName, nil
}
