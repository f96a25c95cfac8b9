package scenario

import (
	"context"
	"time"
)

// Page is the single browser tab a scenario drives.
// Every call blocks until the browser has answered.
type Page interface {
	// Goto navigates and waits for the load event
	Goto(url string) error
	URL() string
	// QueryAll returns every element matching selector, possibly none
	QueryAll(selector string) ([]Element, error)
	// Click clicks the first element matching selector
	Click(selector string) error
	// TextContent returns the text of the first element matching selector
	TextContent(selector string) (string, error)
	// TextContents returns the text of every element matching selector
	TextContents(selector string) ([]string, error)
	// WaitForText blocks until the first element matching selector has the
	// trimmed text want. A non-positive timeout uses the driver default.
	WaitForText(selector, want string, timeout time.Duration) error
}

// Element is a matched element. It is valid until the next navigation.
type Element interface {
	Click(selector string) error
	TextContent(selector string) (string, error)
}

// Session owns one browser process and its page
type Session interface {
	Page() Page
	Close() error
}

// SessionFactory opens a fresh, isolated session per scenario
type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}
