// Package web loads the book web page shown on the third screen.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/couchcryptid/worldtrotter-service/internal/domain"
)

// maxBodyBytes caps how much of a page is read.
const maxBodyBytes = 5 << 20

// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
var ErrInvalidURL = errors.New("invalid page url")

// Loader fetches web pages and summarizes them.
type Loader struct {
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewLoader creates a page loader with a per-request timeout.
func NewLoader(timeout time.Duration, logger *slog.Logger) *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: timeout},
		clock:      clockwork.NewRealClock(),
		logger:     logger,
	}
}

// Load fetches rawURL. Non-2xx responses are returned as errors.
func (l *Loader) Load(ctx context.Context, rawURL string) (domain.Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Page{}, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("load page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Page{}, fmt.Errorf("load page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Page{}, fmt.Errorf("read page body: %w", err)
	}

	page := domain.Page{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Title:       extractTitle(body),
		Bytes:       int64(len(body)),
		LoadedAt:    l.clock.Now().UTC(),
	}
	l.logger.Debug("page loaded", "url", page.URL, "status", page.StatusCode, "bytes", page.Bytes)
	return page, nil
}

// extractTitle returns the text of the first document <title>. Titles inside
// comments, scripts and inline SVG or MathML are not the page title.
func extractTitle(body []byte) string {
	z := html.NewTokenizer(bytes.NewReader(body))
	foreign := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Svg, atom.Math:
				foreign++
			case atom.Title:
				if foreign == 0 {
					return titleText(z)
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if a := atom.Lookup(name); (a == atom.Svg || a == atom.Math) && foreign > 0 {
				foreign--
			}
		}
	}
}

func titleText(z *html.Tokenizer) string {
	var b strings.Builder
	for z.Next() == html.TextToken {
		b.Write(z.Text())
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
