package preview

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/njyeung/tubechat/backend"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// maxThumbnailBytes caps the downloaded image size
const maxThumbnailBytes = 4 << 20

// Thumbnail is a decoded video thumbnail scaled for display
type Thumbnail struct {
	RGBA   []byte // RGBA pixel data
	Width  int
	Height int
}

// Fetcher downloads and scales thumbnails, keeping recent ones in memory
// so switching back to a video does not refetch.
type Fetcher struct {
	client   *http.Client
	cache    *cache.Cache
	heightPx int
	logger   *zap.Logger

	// urlFor maps a video id to its image URL
	urlFor func(videoID string) string
}

// NewFetcher creates a fetcher scaling thumbnails to heightPx pixels tall
func NewFetcher(heightPx int, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:   &http.Client{Timeout: 10 * time.Second},
		cache:    cache.New(30*time.Minute, 10*time.Minute),
		heightPx: heightPx,
		logger:   logger,
		urlFor:   backend.ThumbnailURL,
	}
}

// Fetch returns the thumbnail for videoID, from cache when possible
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (*Thumbnail, error) {
	if x, found := f.cache.Get(videoID); found {
		return x.(*Thumbnail), nil
	}

	url := f.urlFor(videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build thumbnail request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch thumbnail: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxThumbnailBytes))
	if err != nil {
		return nil, fmt.Errorf("decode thumbnail: %w", err)
	}

	t := newThumbnail(img, f.heightPx)
	f.cache.Set(videoID, t, cache.DefaultExpiration)

	f.logger.Debug("Fetched thumbnail",
		zap.String("video_id", videoID),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height),
	)
	return t, nil
}

// newThumbnail scales img to heightPx tall, keeping its aspect ratio.
// Very wide images are capped at twice their height.
func newThumbnail(img image.Image, heightPx int) *Thumbnail {
	b := img.Bounds()
	dstW, dstH := fitSize(b.Dx(), b.Dy(), 2*heightPx, heightPx)
	dstW = max(dstW, 1)
	dstH = max(dstH, 1)

	return &Thumbnail{
		RGBA:   scaleToRGBA(img, dstW, dstH),
		Width:  dstW,
		Height: dstH,
	}
}
