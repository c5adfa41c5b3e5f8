package backend

import (
	"fmt"
	"regexp"
)

// videoIDRegex matches short links, embed and path-segment forms, and the
// v= query parameter. The id is the first 11 characters after the marker and
// may not contain '#', '&' or '?'.
var videoIDRegex = regexp.MustCompile(`^.*(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]{11}).*`)

// ResolveVideoID extracts the video id from a URL.
// Returns false if the URL has no recognized shape.
func ResolveVideoID(url string) (string, bool) {
	matches := videoIDRegex.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

// ThumbnailURL returns the thumbnail URL for a video id
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(ThumbnailURLFormat, videoID)
}

// WatchURL returns the watch page URL for a video id
func WatchURL(videoID string) string {
	return fmt.Sprintf(WatchURLFormat, videoID)
}
