package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestNewConversionEvent(t *testing.T) {
	fixedTime := time.Date(2024, 4, 26, 12, 30, 45, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	res := EditResult{Accepted: true, Text: "212", Fahrenheit: floatPtr(212), Celsius: floatPtr(100), Display: "100"}
	ev := NewConversionEvent("sess-1", "en-US", res)

	assert.Equal(t, "sess-1", ev.SessionID)
	assert.Equal(t, "en-US", ev.Locale)
	assert.True(t, ev.Accepted)
	assert.Equal(t, "100", ev.Display)
	assert.Equal(t, 100.0, *ev.Celsius)
	assert.Equal(t, fixedTime, ev.OccurredAt)
}
