package backend

import "context"

// Backend defines the interface between the client and the remote processing service
type Backend interface {

	// Submit asks the service to fetch and index the video's transcript.
	// The success body is ignored.
	Submit(ctx context.Context, videoID string) error

	// Ask sends a question about an already submitted video and returns the answer text
	Ask(ctx context.Context, videoID, question string) (string, error)

	// GetComments returns the video's top-level comments
	GetComments(ctx context.Context, videoID string) ([]Comment, error)
}

const (
	// VideoIDLength is the length of a YouTube video id
	VideoIDLength = 11

	// AnonymousAuthor is shown for comments without an author
	AnonymousAuthor = "Anonymous"

	// ThumbnailURLFormat builds the high quality thumbnail URL for a video id
	ThumbnailURLFormat = "https://img.youtube.com/vi/%s/hqdefault.jpg"

	// WatchURLFormat builds the watch page URL for a video id
	WatchURLFormat = "https://www.youtube.com/watch?v=%s"
)

// Comment is a single comment on a video
type Comment struct {
	Author string
	Text   string
}

// submitRequest is the body of POST /submit and POST /getcomment
type submitRequest struct {
	VideoID string `json:"video_id"`
}

// askRequest is the body of POST /ask
type askRequest struct {
	VideoID  string `json:"video_id"`
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type commentsResponse struct {
	Comments []struct {
		Author  *string `json:"author"`
		Comment string  `json:"comment"`
	} `json:"comments"`
}

// errorResponse is the failure body shared by every endpoint
type errorResponse struct {
	Detail string `json:"detail"`
}
