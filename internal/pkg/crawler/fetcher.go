package crawler

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// FetcherConfig configures the headless browser.
type FetcherConfig struct {
	// NavigationTimeout bounds the whole navigate-and-render phase.
	NavigationTimeout time.Duration
	// ExecPath points at a Chrome binary; empty means auto-discovery.
	ExecPath string
	// Headless toggles headless mode; on in every environment except local debugging.
	Headless bool
}

// Fetcher renders pages with a headless Chrome instance. Every Fetch call
// owns its browser for the duration of the call: the allocator and browser
// contexts are created inside Fetch and cancelled on every exit path, so a
// failed or timed-out navigation never leaks a browser process into the next
// request. Concurrent Fetch calls each get their own instance.
type Fetcher struct {
	config FetcherConfig
	logger zerolog.Logger
}

// NewFetcher creates a new Fetcher
func NewFetcher(config FetcherConfig, logger zerolog.Logger) *Fetcher {
	if config.NavigationTimeout <= 0 {
		config.NavigationTimeout = 30 * time.Second
	}
	return &Fetcher{
		config: config,
		logger: logger,
	}
}

// Fetch navigates to url, waits for the page to go network idle and returns
// the rendered HTML. Navigation is bounded by the configured timeout and
// fails fast rather than blocking indefinitely.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.config.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	if f.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(f.config.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Starting the browser is separate from navigating, so a launch failure
	// is distinguishable from an unreachable page.
	if err := chromedp.Run(browserCtx); err != nil {
		f.logger.Error().Err(err).Msg("Failed to launch headless browser")
		return "", apperrors.NewCustomError(apperrors.ErrBrowserUnavailable, err.Error())
	}

	navCtx, cancelNav := context.WithTimeout(browserCtx, f.config.NavigationTimeout)
	defer cancelNav()

	var content string
	err := chromedp.Run(navCtx,
		enableLifecycleEvents(),
		navigateAndWaitForNetworkIdle(url),
		chromedp.OuterHTML("html", &content, chromedp.ByQuery),
	)
	if err != nil {
		f.logger.Warn().Err(err).Str("url", url).Msg("Page navigation failed")
		return "", classifyNavigationError(err)
	}

	f.logger.Debug().Str("url", url).Int("contentBytes", len(content)).Msg("Page rendered")
	return content, nil
}

// networkIdleEvent is the page lifecycle event Chrome emits once the page has
// gone quiet on the network. Pages that fill their entries from a script after
// the load event are only complete once this fires.
const networkIdleEvent = "networkIdle"

func enableLifecycleEvents() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		if err := page.Enable().Do(ctx); err != nil {
			return err
		}
		return page.SetLifecycleEventsEnabled(true).Do(ctx)
	}
}

// navigateAndWaitForNetworkIdle navigates to url and blocks until the
// networkIdle lifecycle event arrives, or the navigation context expires.
// Waiting on DOM readiness alone is not enough: it captures script-hydrated
// pages before their vocabulary exists.
func navigateAndWaitForNetworkIdle(url string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		idle := make(chan struct{})
		listenCtx, cancelListen := context.WithCancel(ctx)
		defer cancelListen()

		chromedp.ListenTarget(listenCtx, func(ev interface{}) {
			if isNetworkIdleEvent(ev) {
				cancelListen()
				close(idle)
			}
		})

		_, _, errorText, err := page.Navigate(url).Do(ctx)
		if err != nil {
			return err
		}
		if errorText != "" {
			return errors.New(errorText)
		}

		select {
		case <-idle:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// isNetworkIdleEvent reports whether ev is the networkIdle lifecycle event.
func isNetworkIdleEvent(ev interface{}) bool {
	e, ok := ev.(*page.EventLifecycleEvent)
	return ok && e.Name == networkIdleEvent
}

// classifyNavigationError maps a chromedp failure to the acquisition error taxonomy.
func classifyNavigationError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewCustomError(apperrors.ErrNavigationTimeout, err.Error())
	}
	return apperrors.NewCustomError(apperrors.ErrNavigationFailed, err.Error())
}
