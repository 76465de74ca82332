// Package domain models the WorldTrotter screens: the temperature conversion
// form, the annotated map and the day/night appearance.
//
// # Conversion
//
// The conversion form holds one optional Fahrenheit value typed by the user
// and derives the Celsius value from it:
//
//	celsius = (fahrenheit - 32) * 5/9
//
// Every text edit goes through two steps. [ValidateEdit] decides whether the
// edit may be committed: the replacement may only contain decimal digits and
// the locale's decimal separator, and a second separator is refused when the
// text already has one. Once committed, the text is parsed with the session's
// [NumberFormat] and fed to [Conversion.SetInput], which recomputes the Celsius
// value and its display string synchronously. Empty or unparsable text is not
// an error; it clears the value and the display falls back to [Placeholder].
//
// Display strings use 0 to 1 fractional digits with the locale's decimal and
// grouping separators:
//
//	en-US  37.777…  → "37.8"     1000 → "1,000"
//	de-DE  37.777…  → "37,8"     1000 → "1.000"
//
// # Map
//
// The map screen pins three fixed [Location] annotations (London, Johannesburg,
// Tokyo). [MapController] cycles through them, recentering a [Camera] 1000 km
// above each one, switches the map type from a segmented control index and
// toggles user tracking. Tracking may only start once the user granted
// "always" location authorization; otherwise an [Alert] is returned.
//
// Segment indices keep the historical mapping:
//
//	0 → standard   1 → hybrid   2 → satellite
//
// # Appearance
//
// [CurrentBackground] picks the screen background from the hour of day. See
// [BackgroundAt] for the night condition.
package domain
