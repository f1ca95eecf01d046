package snapshot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"spacex-dashboard/config"
	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

const (
	renderedSelector  = `body[data-rendered="true"]`
	pageTimeout       = 45 * time.Second
	screenshotQuality = 100
)

// Server is the dashboard surface a Renderer photographs.
type Server interface {
	Serve(ctx context.Context, ln net.Listener) error
}

// Target is one dashboard state to capture.
type Target struct {
	Site string
	Slug string
}

// Result is the outcome of capturing one target.
type Result struct {
	Target Target
	Path   string
	Err    error
}

// Renderer captures headless-browser screenshots of dashboard states.
type Renderer struct {
	cfg    *config.Config
	server Server
	logger *utils.Logger
	pool   *utils.WorkerPool
	retry  *utils.RetryConfig
}

// New creates a Renderer for server.
func New(cfg *config.Config, server Server, logger *utils.Logger) *Renderer {
	return &Renderer{
		cfg:    cfg,
		server: server,
		logger: logger,
		pool:   utils.NewWorkerPool(cfg.SnapshotConcurrency, cfg.SnapshotRateMs),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.SnapshotRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
	}
}

// DefaultTargets is every dropdown option: All Sites then the known sites.
func DefaultTargets() []Target {
	return Targets(append([]string{models.AllSites}, models.KnownSites...)...)
}

// Targets builds one Target per distinct slug, in first-seen order.
func Targets(sites ...string) []Target {
	seen := utils.NewKeySet()
	targets := make([]Target, 0, len(sites))
	for _, site := range sites {
		slug := Slug(site)
		if !seen.Add(slug) {
			continue
		}
		targets = append(targets, Target{Site: site, Slug: slug})
	}
	return targets
}

// Slug turns a site selector into a file name stem: lower case ASCII
// letters and digits with single dashes between words.
func Slug(site string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(site) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "site"
	}
	return b.String()
}

// PageURL is the dashboard URL that opens with site selected.
func PageURL(base, site string) string {
	return base + "/?" + url.Values{"site": {site}}.Encode()
}

// Run serves the dashboard on a loopback port and captures every target.
// Results come back in target order; the returned error joins all failures.
func (r *Renderer) Run(ctx context.Context, targets []Target) ([]Result, error) {
	if err := os.MkdirAll(r.cfg.SnapshotDir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: create %s: %w", r.cfg.SnapshotDir, err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("snapshot: listen: %w", err)
	}
	base := "http://" + ln.Addr().String()

	serveCtx, stopServer := context.WithCancel(ctx)
	served := make(chan error, 1)
	go func() { served <- r.server.Serve(serveCtx, ln) }()
	defer func() {
		stopServer()
		if err := <-served; err != nil {
			r.logger.Warn("[snapshot] dashboard server: %v", err)
		}
	}()

	r.logger.Info("[snapshot] Dashboard on %s — capturing %d targets into %s",
		base, len(targets), r.cfg.SnapshotDir)

	chromeBin := findChromeBinary(r.cfg.ChromeBin)
	r.logger.Info("[snapshot] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1280, 1600),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("snapshot: start browser: %w", err)
	}

	var mu sync.Mutex
	results := make([]Result, len(targets))
	for i, target := range targets {
		r.pool.Submit(func() {
			path, err := r.capture(browserCtx, base, target)
			if err != nil {
				r.logger.Warn("[snapshot] %s failed: %v", target.Site, err)
			} else {
				r.logger.Info("[snapshot] %s → %s", target.Site, path)
			}
			mu.Lock()
			results[i] = Result{Target: target, Path: path, Err: err}
			mu.Unlock()
		})
	}
	r.pool.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Target.Site, res.Err))
		}
	}
	return results, errors.Join(errs...)
}

func (r *Renderer) capture(browserCtx context.Context, base string, target Target) (string, error) {
	var buf []byte
	err := r.retry.Do(browserCtx, "snapshot "+target.Slug, func(ctx context.Context) error {
		tabCtx, cancelTab := chromedp.NewContext(ctx)
		defer cancelTab()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, pageTimeout)
		defer cancelTimeout()

		return chromedp.Run(tabCtx,
			chromedp.Navigate(PageURL(base, target.Site)),
			chromedp.WaitVisible(renderedSelector, chromedp.ByQuery),
			chromedp.FullScreenshot(&buf, screenshotQuality),
		)
	})
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.cfg.SnapshotDir, target.Slug+".png")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// findChromeBinary prefers the configured binary, then well-known names and paths.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
