package domain

import "golang.org/x/text/language"

// Strings holds the user-facing text of the map screen for one language.
type Strings struct {
	Standard        string `json:"standard"`
	Satellite       string `json:"satellite"`
	Hybrid          string `json:"hybrid"`
	EnableLocation  string `json:"enable_location"`
	DisableLocation string `json:"disable_location"`
	ShowAnnotation  string `json:"show_annotation"`
	AlertTitle      string `json:"alert_title"`
	AlertMessage    string `json:"alert_message"`
	AlertOK         string `json:"alert_ok"`
}

// Segments returns the map type control labels in display order.
func (s Strings) Segments() []string {
	return []string{s.Standard, s.Satellite, s.Hybrid}
}

var supportedLanguages = []language.Tag{
	language.English, // first entry is the fallback
	language.French,
}

var catalog = []Strings{
	{
		Standard:        "Standard",
		Satellite:       "Satellite",
		Hybrid:          "Hybrid",
		EnableLocation:  "Enable your location",
		DisableLocation: "Disable your location",
		ShowAnnotation:  "See annotation",
		AlertTitle:      "User Location not authorized",
		AlertMessage:    "Please allow the app to know your location in your device settings.",
		AlertOK:         "OK",
	},
	{
		Standard:        "Standard",
		Satellite:       "Satellite",
		Hybrid:          "Mixte",
		EnableLocation:  "Activer votre position",
		DisableLocation: "Désactiver votre position",
		ShowAnnotation:  "Voir une annotation",
		AlertTitle:      "Position non autorisée",
		AlertMessage:    "Veuillez autoriser l'application à connaître votre position dans les réglages de l'appareil.",
		AlertOK:         "OK",
	},
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// StringsFor returns the catalog entry closest to tag, falling back to English.
func StringsFor(tag language.Tag) Strings {
	_, idx, _ := languageMatcher.Match(tag)
	return catalog[idx]
}

// ParseLocale picks the preferred locale from an Accept-Language header value.
// It returns fallback when the header is empty or malformed.
func ParseLocale(acceptLanguage string, fallback language.Tag) language.Tag {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	return tags[0]
}
