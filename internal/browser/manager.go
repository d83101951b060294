package browser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// PageStableTimeout is the timeout used when waiting for page stability.
var PageStableTimeout = 30 * time.Second

// ErrClosed is returned by WithPage and HTML after Close.
var ErrClosed = errors.New("browser closed")

// Interface runs a callback with a rod page loaded at a given URL.
type Interface interface {
	WithPage(ctx context.Context, url string, fn func(*rod.Page) error) error
	// HTML loads url and returns the rendered document.
	HTML(ctx context.Context, url string) (string, error)

	io.Closer
}

// headlessBrowser manages a single rod browser instance. A channel of capacity 1 serializes
// access: callers receive the browser, use it, then send it back so only one WithPage runs at a time.
// The channel is closed once the browser is gone, either because launch failed or Close ran.
type headlessBrowser struct {
	initOnce sync.Once
	initErr  error
	ch       chan *rod.Browser

	closeOnce    sync.Once
	closeErr     error
	closeBrowser func(*rod.Browser) error
}

// Headless returns a Browser that launches one headless chrome on first use and reuses it.
func Headless() Interface {
	return &headlessBrowser{
		ch:           make(chan *rod.Browser, 1),
		closeBrowser: (*rod.Browser).Close,
	}
}

func (h *headlessBrowser) launch() {
	u, err := launcher.New().Logger(newRodLauncherLogger()).Leakless(false).Launch()
	if err != nil {
		h.initErr = fmt.Errorf("launch browser: %w", err)
		close(h.ch)
		return
	}
	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		h.initErr = fmt.Errorf("connect to browser: %w", err)
		close(h.ch)
		return
	}
	h.ch <- browser
}

// Close waits for any running WithPage, then shuts the browser down. A browser that was
// never used has nothing to close. Later calls return the first result.
func (h *headlessBrowser) Close() error {
	h.closeOnce.Do(func() {
		h.initOnce.Do(func() { close(h.ch) })
		browser, ok := <-h.ch
		if !ok {
			h.closeErr = h.initErr
			return
		}
		h.closeErr = h.closeBrowser(browser)
		close(h.ch)
	})
	return h.closeErr
}

// WithPage receives the shared browser from the channel, creates a page at url, runs fn, then sends the browser back.
// Serializes with other callers (one WithPage at a time). The page is closed when fn returns.
func (h *headlessBrowser) WithPage(ctx context.Context, url string, fn func(page *rod.Page) error) error {
	h.initOnce.Do(h.launch)
	if h.initErr != nil {
		return h.initErr
	}
	var browser *rod.Browser
	select {
	case b, ok := <-h.ch:
		if !ok {
			return ErrClosed
		}
		browser = b
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { h.ch <- browser }()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	defer page.MustClose()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := rod.Try(func() {
		page.Timeout(PageStableTimeout).MustWaitStable()
	}); err != nil {
		return fmt.Errorf("wait for page stable: %w", err)
	}

	return fn(page)
}

func (h *headlessBrowser) HTML(ctx context.Context, url string) (string, error) {
	var html string
	err := h.WithPage(ctx, url, func(page *rod.Page) error {
		var err error
		html, err = page.HTML()
		if err != nil {
			return fmt.Errorf("read html of %s: %w", url, err)
		}
		return nil
	})
	return html, err
}

// rodLauncherLogger is an io.Writer that forwards launcher output (e.g. download progress) to slog at debug level.
type rodLauncherLogger struct {
	buf []byte
}

func (w *rodLauncherLogger) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimSpace(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
		if line != "" {
			slog.Debug("rod launcher", "message", line)
		}
	}
	return len(p), nil
}

func newRodLauncherLogger() io.Writer {
	return &rodLauncherLogger{}
}
