package backend

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Browser opens submitted videos in a visible Chrome window using chromedp
type Browser struct {
	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	userDataDir string
	logger      *zap.Logger
}

// NewBrowser creates a browser launcher. Chrome is not started until the first Open.
func NewBrowser(userDataDir string, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Browser{
		userDataDir: userDataDir,
		logger:      logger,
	}
}

// start launches Chrome. Caller must hold b.mu.
func (b *Browser) start() error {
	if b.ctx != nil {
		return nil
	}

	// Persistent profile so YouTube consent/login survives restarts
	if err := os.MkdirAll(b.userDataDir, 0755); err != nil {
		return fmt.Errorf("failed to create user data dir: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserDataDir(b.userDataDir),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("headless", false),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(b.logger.Sugar().Infof))

	// first Run actually starts the browser
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return fmt.Errorf("failed to start browser: %w", err)
	}

	b.ctx = ctx
	b.cancel = cancel
	b.allocCancel = allocCancel
	return nil
}

// Open navigates the browser to the video's watch page and returns the page title
func (b *Browser) Open(videoID string) (string, error) {
	if videoID == "" {
		return "", ErrEmptyVideoID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.start(); err != nil {
		return "", err
	}

	var title string
	err := chromedp.Run(b.ctx,
		chromedp.Navigate(WatchURL(videoID)),
		chromedp.WaitReady("body"),
		chromedp.Title(&title),
	)
	if err != nil {
		// the user may have closed the window; start fresh next time
		b.stop()
		return "", fmt.Errorf("failed to open video: %w", err)
	}

	b.logger.Info("Opened video in browser", zap.String("video_id", videoID))
	return strings.TrimSuffix(title, " - YouTube"), nil
}

// Stop closes the browser if it was started
func (b *Browser) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stop()
}

func (b *Browser) stop() {
	if b.cancel != nil {
		b.cancel()
	}
	if b.allocCancel != nil {
		b.allocCancel()
	}
	b.ctx = nil
	b.cancel = nil
	b.allocCancel = nil
}
