package domain

import "time"

const (
	SunriseHour = 7
	SunsetHour  = 21
)

// Background is the conversion screen's background color.
type Background string

const (
	BackgroundDefault  Background = "default"
	BackgroundDarkGray Background = "dark_gray"
)

// BackgroundAt returns the background for the hour of t.
//
// The night test requires the hour to be both before sunrise and after sunset,
// which no hour satisfies while SunriseHour < SunsetHour, so the default
// background is always returned. The condition is kept as shipped.
func BackgroundAt(t time.Time) Background {
	hour := t.Hour()
	if hour < SunriseHour && hour > SunsetHour {
		return BackgroundDarkGray
	}
	return BackgroundDefault
}

// CurrentBackground returns the background for the package clock's time.
func CurrentBackground() Background {
	return BackgroundAt(clock.Now())
}
