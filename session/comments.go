package session

import "github.com/njyeung/tubechat/backend"

// CommentCache holds the most recently fetched comments for the current video.
// Each successful fetch replaces the contents; nothing is merged.
type CommentCache struct {
	videoID  string
	comments []backend.Comment
}

// VideoID returns which video the cached comments belong to
func (cc *CommentCache) VideoID() string {
	return cc.videoID
}

// Comments returns a copy of the cached comments
func (cc *CommentCache) Comments() []backend.Comment {
	result := make([]backend.Comment, len(cc.comments))
	copy(result, cc.comments)
	return result
}

// Len returns the number of cached comments
func (cc *CommentCache) Len() int {
	return len(cc.comments)
}

// replace swaps in a freshly fetched list
func (cc *CommentCache) replace(videoID string, comments []backend.Comment) {
	cc.videoID = videoID
	cc.comments = make([]backend.Comment, len(comments))
	copy(cc.comments, comments)
}

// clear empties the cache (called when a new video is submitted)
func (cc *CommentCache) clear() {
	cc.videoID = ""
	cc.comments = nil
}
