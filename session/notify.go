package session

// Level classifies a notification
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
	LevelSuccess
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Notification is a transient user-facing message
type Notification struct {
	Level Level
	Text  string
}

// Notifier displays notifications. Rendering is up to the implementation.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Notification texts
const (
	msgInvalidURL       = "Invalid YouTube URL"
	msgAlreadySubmitted = "This video has already been submitted."
	msgSubmitted        = "Video processed successfully. You can now ask questions."
	msgEmptyQuestion    = "Please enter a question."
	msgNoVideo          = "Submit a video first!"
	msgCommentsLoaded   = "Comments loaded!"
	msgBusy             = "A request is already in progress."
	msgErrorPrefix      = "Error: "
	msgCommentsPrefix   = "Failed to load comments: "
)
