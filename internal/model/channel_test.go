package model_test

import (
	"testing"

	"nextplay-automation/internal/model"
)

func TestParseChannel(t *testing.T) {
	t.Run("Empty Defaults To Chat", func(t *testing.T) {
		ch, err := model.ParseChannel("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ch != model.ChannelChat {
			t.Errorf("expected chat, got %s", ch)
		}
	})

	t.Run("Valid Channels", func(t *testing.T) {
		for _, raw := range []string{"chat", "email", "call"} {
			ch, err := model.ParseChannel(raw)
			if err != nil {
				t.Errorf("unexpected error for %q: %v", raw, err)
			}
			if string(ch) != raw {
				t.Errorf("expected %q, got %q", raw, ch)
			}
		}
	})

	t.Run("Unknown Channel Rejected", func(t *testing.T) {
		for _, raw := range []string{"sms", "Chat", "EMAIL", "fax"} {
			if _, err := model.ParseChannel(raw); err == nil {
				t.Errorf("expected error for %q", raw)
			}
		}
	})
}
