package mockapi

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotSubmitted is returned by Ask for a video that was never submitted
	ErrNotSubmitted = errors.New("Video not submitted. Please submit first.")
	// ErrNoVideoID is returned when the request has an empty video id
	ErrNoVideoID = errors.New("video_id is required")
)

// Comment is a stored comment. An empty Author is sent without the author field.
type Comment struct {
	Author string `json:"author,omitempty"`
	Text   string `json:"comment"`
}

// UnavailableError is returned by Submit for videos marked unavailable
type UnavailableError struct {
	Detail string
}

func (e *UnavailableError) Error() string { return e.Detail }

// Service is an in-memory stand-in for the transcript question-answering service
type Service struct {
	mu          sync.Mutex
	submitted   map[string]bool
	comments    map[string][]Comment
	unavailable map[string]string
	questions   map[string]int
}

// NewService creates an empty service
func NewService() *Service {
	return &Service{
		submitted:   make(map[string]bool),
		comments:    make(map[string][]Comment),
		unavailable: make(map[string]string),
		questions:   make(map[string]int),
	}
}

// SetComments sets the comments returned for a video
func (s *Service) SetComments(videoID string, comments []Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[videoID] = comments
}

// SetUnavailable makes Submit fail for videoID with the given detail
func (s *Service) SetUnavailable(videoID, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable[videoID] = detail
}

// Submit marks a video as processed
func (s *Service) Submit(videoID string) error {
	if videoID == "" {
		return ErrNoVideoID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if detail, ok := s.unavailable[videoID]; ok {
		return &UnavailableError{Detail: detail}
	}
	s.submitted[videoID] = true
	return nil
}

// Ask answers a question about a submitted video
func (s *Service) Ask(videoID, question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.submitted[videoID] {
		return "", ErrNotSubmitted
	}
	s.questions[videoID]++
	return fmt.Sprintf("Answer #%d about %s: %s", s.questions[videoID], videoID, question), nil
}

// Comments returns a video's comments. Unknown videos have none.
func (s *Service) Comments(videoID string) ([]Comment, error) {
	if videoID == "" {
		return nil, ErrNoVideoID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Comment, len(s.comments[videoID]))
	copy(result, s.comments[videoID])
	return result, nil
}

// Submitted reports whether a video has been submitted
func (s *Service) Submitted(videoID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted[videoID]
}
