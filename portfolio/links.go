package portfolio

import (
	"log"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// LinkOpener opens outbound links. Opening is fire-and-forget: callers never
// receive a result.
type LinkOpener interface {
	// Open resolves target and hands it to the platform browser.
	//
	// Parameters:
	//   - target: an absolute URL, a mailto: address, or a site-relative path such as /resume.pdf
	Open(target string)
}

// BrowserOpener opens links with the user's default browser.
type BrowserOpener struct {
	// BaseURL resolves site-relative paths. Relative paths are dropped when empty.
	BaseURL string

	// open is swapped in tests.
	open func(string) error
}

var _ LinkOpener = &BrowserOpener{}

// NewBrowserOpener creates a BrowserOpener that resolves relative paths against baseURL.
//
// Parameters:
//   - baseURL: the site root, e.g. https://bharathkumar.dev
//
// Returns:
//   - *BrowserOpener: the opener
func NewBrowserOpener(baseURL string) *BrowserOpener {
	return &BrowserOpener{BaseURL: baseURL, open: browser.OpenURL}
}

func (b *BrowserOpener) Open(target string) {
	resolved, ok := ResolveLink(b.BaseURL, target)
	if !ok {
		log.Printf("[links] cannot resolve %q against %q", target, b.BaseURL)
		return
	}
	open := b.open
	if open == nil {
		open = browser.OpenURL
	}
	go func() {
		if err := open(resolved); err != nil {
			log.Printf("[links] failed to open %s: %v", resolved, err)
		}
	}()
}

// ResolveLink turns a link target into an absolute URL.
//
// Parameters:
//   - baseURL: the site root used for relative paths
//   - target: the link target
//
// Returns:
//   - string: the absolute URL
//   - bool: false if the target is empty or relative without a usable base
func ResolveLink(baseURL, target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", false
	}
	if u.IsAbs() {
		return u.String(), true
	}
	if baseURL == "" {
		return "", false
	}
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return "", false
	}
	return base.ResolveReference(u).String(), true
}
