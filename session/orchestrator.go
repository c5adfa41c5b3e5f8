package session

import (
	"context"
	"strings"
	"time"

	"github.com/njyeung/tubechat/backend"
	"go.uber.org/zap"
)

// Phase is the logical state of the client
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseReady
	PhaseAsking
	PhaseLoadingComments
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseReady:
		return "ready"
	case PhaseAsking:
		return "asking"
	case PhaseLoadingComments:
		return "loading comments"
	default:
		return "unknown"
	}
}

// Session is the current video context
type Session struct {
	RawURL    string
	VideoID   string
	Submitted bool
}

// Call is a remote operation that passed local validation and holds a gate slot.
// Do may run on any goroutine; it never touches orchestrator state.
type Call struct {
	Kind     Kind
	RawURL   string
	VideoID  string
	Question string

	token   uint64
	askedAt time.Time
	backend backend.Backend
}

// Result is the settled outcome of a Call, to be passed to Orchestrator.Settle
type Result struct {
	Call     *Call
	Answer   string
	Comments []backend.Comment
	Err      error
}

// Do performs the remote call
func (c *Call) Do(ctx context.Context) Result {
	res := Result{Call: c}
	switch c.Kind {
	case KindSubmit:
		res.Err = c.backend.Submit(ctx, c.VideoID)
	case KindAsk:
		res.Answer, res.Err = c.backend.Ask(ctx, c.VideoID, c.Question)
	case KindComments:
		res.Comments, res.Err = c.backend.GetComments(ctx, c.VideoID)
	}
	return res
}

// Orchestrator owns the session, chat history, comment cache and loading gate,
// and is the only thing that mutates them.
//
// Each operation is split in two: BeginX validates and takes a gate slot,
// Settle applies the Result of Call.Do. An Orchestrator must only be used from
// one goroutine (the UI event loop).
type Orchestrator struct {
	backend  backend.Backend
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time

	session  Session
	answer   string
	draft    string
	history  History
	comments CommentCache
	gate     *Gate
	closed   bool
}

// New creates an orchestrator in the Idle phase
func New(b backend.Backend, n Notifier, logger *zap.Logger) *Orchestrator {
	if n == nil {
		n = NotifierFunc(func(Notification) {})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		backend:  b,
		notifier: n,
		logger:   logger,
		now:      time.Now,
		gate:     NewGate(),
	}
}

func (o *Orchestrator) Session() Session        { return o.session }
func (o *Orchestrator) Answer() string          { return o.answer }
func (o *Orchestrator) Draft() string           { return o.draft }
func (o *Orchestrator) History() *History       { return &o.history }
func (o *Orchestrator) Comments() *CommentCache { return &o.comments }

// SetDraft records the question input as typed
func (o *Orchestrator) SetDraft(s string) {
	o.draft = s
}

// Loading reports whether any call is in flight
func (o *Orchestrator) Loading() bool {
	return o.gate.Loading()
}

// InFlight reports whether a call of kind k is in flight
func (o *Orchestrator) InFlight(k Kind) bool {
	return o.gate.InFlight(k)
}

// Phase returns the current logical state
func (o *Orchestrator) Phase() Phase {
	switch {
	case o.gate.InFlight(KindSubmit):
		return PhaseSubmitting
	case o.gate.InFlight(KindAsk):
		return PhaseAsking
	case o.gate.InFlight(KindComments):
		return PhaseLoadingComments
	case o.session.Submitted:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// Close disposes the orchestrator. Later Begin calls return nil and later
// settlements are dropped.
func (o *Orchestrator) Close() {
	o.closed = true
}

func (o *Orchestrator) notify(level Level, text string) {
	o.notifier.Notify(Notification{Level: level, Text: text})
}

// acquire takes a gate slot for k, warning the user if one is not free
func (o *Orchestrator) acquire(k Kind) (uint64, bool) {
	token, ok := o.gate.Acquire(k)
	if !ok {
		o.logger.Debug("Rejected call, gate busy", zap.Stringer("kind", k))
		o.notify(LevelWarn, msgBusy)
	}
	return token, ok
}

// BeginSubmit validates rawURL and returns the submit call, or nil if no
// remote call should be made.
func (o *Orchestrator) BeginSubmit(rawURL string) *Call {
	if o.closed {
		return nil
	}

	id, ok := backend.ResolveVideoID(rawURL)
	if !ok {
		o.notify(LevelError, msgInvalidURL)
		return nil
	}
	if id == o.session.VideoID && o.session.Submitted {
		o.notify(LevelInfo, msgAlreadySubmitted)
		return nil
	}

	token, ok := o.acquire(KindSubmit)
	if !ok {
		return nil
	}
	o.logger.Debug("Submitting video", zap.String("video_id", id))
	return &Call{Kind: KindSubmit, RawURL: rawURL, VideoID: id, token: token, backend: o.backend}
}

// BeginAsk validates the question and returns the ask call, or nil.
// On success the draft is cleared before the call resolves.
func (o *Orchestrator) BeginAsk(question string) *Call {
	if o.closed {
		return nil
	}
	o.draft = question

	q := strings.TrimSpace(question)
	if q == "" {
		o.notify(LevelWarn, msgEmptyQuestion)
		return nil
	}

	token, ok := o.acquire(KindAsk)
	if !ok {
		return nil
	}
	o.draft = ""
	return &Call{
		Kind:     KindAsk,
		VideoID:  o.session.VideoID,
		Question: q,
		token:    token,
		askedAt:  o.now(),
		backend:  o.backend,
	}
}

// BeginLoadComments returns the comment fetch call, or nil if no video is set
func (o *Orchestrator) BeginLoadComments() *Call {
	if o.closed {
		return nil
	}
	if o.session.VideoID == "" {
		o.notify(LevelWarn, msgNoVideo)
		return nil
	}

	token, ok := o.acquire(KindComments)
	if !ok {
		return nil
	}
	return &Call{Kind: KindComments, VideoID: o.session.VideoID, token: token, backend: o.backend}
}

// Settle applies a call's result: state first, then the gate slot is
// released, then the user is notified. It reports false if the result was
// dropped because the orchestrator is closed or the call no longer holds
// its slot.
func (o *Orchestrator) Settle(res Result) bool {
	c := res.Call
	if c == nil || o.closed || !o.gate.Holds(c.Kind, c.token) {
		return false
	}

	var n Notification
	switch c.Kind {
	case KindSubmit:
		n = o.settleSubmit(c, res)
	case KindAsk:
		n = o.settleAsk(c, res)
	case KindComments:
		n = o.settleComments(c, res)
	}

	o.gate.Release(c.Kind, c.token)

	if res.Err != nil {
		o.logger.Warn("Call failed",
			zap.Stringer("kind", c.Kind),
			zap.String("video_id", c.VideoID),
			zap.Error(res.Err),
		)
	}
	if n.Text != "" {
		o.notifier.Notify(n)
	}
	return true
}

func (o *Orchestrator) settleSubmit(c *Call, res Result) Notification {
	if res.Err != nil {
		return Notification{Level: LevelError, Text: msgErrorPrefix + backend.ErrorDetail(res.Err)}
	}

	o.session = Session{RawURL: c.RawURL, VideoID: c.VideoID, Submitted: true}
	o.answer = ""
	o.history.reset()
	o.comments.clear()
	return Notification{Level: LevelSuccess, Text: msgSubmitted}
}

func (o *Orchestrator) settleAsk(c *Call, res Result) Notification {
	if res.Err != nil {
		// give the typed question back unless the user already started a new one
		if o.draft == "" {
			o.draft = c.Question
		}
		return Notification{Level: LevelError, Text: msgErrorPrefix + backend.ErrorDetail(res.Err)}
	}

	o.answer = res.Answer
	o.history.appendExchange(c.Question, c.askedAt, res.Answer, o.now())
	return Notification{}
}

func (o *Orchestrator) settleComments(c *Call, res Result) Notification {
	if res.Err != nil {
		return Notification{Level: LevelError, Text: msgCommentsPrefix + backend.ErrorDetail(res.Err)}
	}

	comments := make([]backend.Comment, len(res.Comments))
	for i, cm := range res.Comments {
		if cm.Author == "" {
			cm.Author = backend.AnonymousAuthor
		}
		comments[i] = cm
	}
	o.comments.replace(c.VideoID, comments)
	return Notification{Level: LevelSuccess, Text: msgCommentsLoaded}
}

// SubmitVideo runs a whole submit on the calling goroutine
func (o *Orchestrator) SubmitVideo(ctx context.Context, rawURL string) {
	if c := o.BeginSubmit(rawURL); c != nil {
		o.Settle(c.Do(ctx))
	}
}

// AskQuestion runs a whole ask on the calling goroutine
func (o *Orchestrator) AskQuestion(ctx context.Context, question string) {
	if c := o.BeginAsk(question); c != nil {
		o.Settle(c.Do(ctx))
	}
}

// LoadComments runs a whole comment fetch on the calling goroutine
func (o *Orchestrator) LoadComments(ctx context.Context) {
	if c := o.BeginLoadComments(); c != nil {
		o.Settle(c.Do(ctx))
	}
}
