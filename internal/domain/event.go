package domain

import "time"

// ConversionEvent records one edit on a session's conversion form.
type ConversionEvent struct {
	SessionID  string    `json:"session_id"`
	Locale     string    `json:"locale"`
	Accepted   bool      `json:"accepted"`
	Text       string    `json:"text"`
	Fahrenheit *float64  `json:"fahrenheit"`
	Celsius    *float64  `json:"celsius"`
	Display    string    `json:"display"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventType is the header value identifying conversion events downstream.
const EventType = "conversion"

// NewConversionEvent stamps an edit result with the package clock.
func NewConversionEvent(sessionID, locale string, res EditResult) ConversionEvent {
	return ConversionEvent{
		SessionID:  sessionID,
		Locale:     locale,
		Accepted:   res.Accepted,
		Text:       res.Text,
		Fahrenheit: res.Fahrenheit,
		Celsius:    res.Celsius,
		Display:    res.Display,
		OccurredAt: clock.Now().UTC(),
	}
}
