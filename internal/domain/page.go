package domain

import "time"

// Page summarizes a loaded web page.
type Page struct {
	URL         string    `json:"url"`
	StatusCode  int       `json:"status_code"`
	ContentType string    `json:"content_type,omitempty"`
	Title       string    `json:"title,omitempty"`
	Bytes       int64     `json:"bytes"`
	LoadedAt    time.Time `json:"loaded_at"`
}
