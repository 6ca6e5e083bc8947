package handlers

import (
	"context"
	"fmt"
	"time"

	"nextplay-automation/pkg/gcalendar"
	"nextplay-automation/pkg/log"
)

// CallHoldLeadTime is how far ahead the tentative call hold is booked.
const CallHoldLeadTime = time.Hour

// CallHoldDuration is the length of the tentative call hold.
const CallHoldDuration = 15 * time.Minute

// Call produces the call-scheduling reply. The reply itself is deterministic;
// when a calendar client is configured, a tentative hold event is booked as a
// best-effort side effect and never changes or fails the reply.
type Call struct {
	calendar   *gcalendar.Client
	calendarID string
	l          log.Logger
}

// Reply returns the call-scheduling reply for the given customer name.
func (h *Call) Reply(ctx context.Context, customerName string) (string, error) {
	if h.calendar != nil {
		h.bookHold(ctx, customerName)
	}

	return fmt.Sprintf(
		"Thanks %s! We've got your request and someone from our team will call you within one business day. "+
			"If there's a time that works best for you, reply here and we'll match it.",
		customerName,
	), nil
}

// bookHold creates a tentative calendar event for the callback.
func (h *Call) bookHold(ctx context.Context, customerName string) {
	start := time.Now().Add(CallHoldLeadTime)
	event, err := h.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  h.calendarID,
		Summary:     fmt.Sprintf("Call hold: %s", customerName),
		Description: "Tentative callback slot created by the automation service.",
		StartTime:   start,
		EndTime:     start.Add(CallHoldDuration),
	})
	if err != nil {
		h.l.Warnf(ctx, "call handler: failed to book calendar hold: %v", err)
		return
	}
	h.l.Infof(ctx, "call handler: booked calendar hold %s", event.ID)
}
