package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/njyeung/tubechat/backend"
	"github.com/njyeung/tubechat/config"
	"github.com/njyeung/tubechat/preview"
	"github.com/njyeung/tubechat/session"
	"go.uber.org/zap"
)

// Messages
type callSettledMsg struct{ res session.Result }

type thumbnailMsg struct {
	videoID string
	thumb   *preview.Thumbnail
	err     error
}

type browserOpenedMsg struct {
	videoID string
	title   string
	err     error
}

// focus is the widget receiving key input
type focus int

const (
	focusURL focus = iota
	focusQuestion
	focusPanel
)

// tab is the content shown in the main panel
type tab int

const (
	tabChat tab = iota
	tabHistory
	tabComments
)

// Browser opens a video for watching and returns the page title
type Browser interface {
	Open(videoID string) (string, error)
	Stop()
}

// ThumbnailFetcher loads the preview image for a video
type ThumbnailFetcher interface {
	Fetch(ctx context.Context, videoID string) (*preview.Thumbnail, error)
}

// ThumbnailRenderer draws the preview image at a terminal cell
type ThumbnailRenderer interface {
	Show(t *preview.Thumbnail, row, col int) error
	Hide() error
}

// Deps are the collaborators of the TUI. Browser, Fetcher and Renderer may be
// nil to disable the feature.
type Deps struct {
	Backend  backend.Backend
	Config   *config.Config
	Logger   *zap.Logger
	Browser  Browser
	Fetcher  ThumbnailFetcher
	Renderer ThumbnailRenderer
}

// Model is the Bubble Tea model
type Model struct {
	orch     *session.Orchestrator
	toasts   *toasts
	comments *CommentsPanel
	cfg      *config.Config
	logger   *zap.Logger

	browser  Browser
	fetcher  ThumbnailFetcher
	renderer ThumbnailRenderer

	ctx    context.Context
	cancel context.CancelFunc

	width    int
	height   int
	spinner  spinner.Model
	urlInput textinput.Model
	question textarea.Model
	viewport viewport.Model
	focus    focus
	tab      tab

	// Video card
	videoTitle string
	thumb      *preview.Thumbnail
	thumbFor   string
}

// NewModel creates a new TUI model
func NewModel(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	urlInput := textinput.New()
	urlInput.Placeholder = "Paste a YouTube URL"
	urlInput.Prompt = "▶ "
	urlInput.Focus()

	question := textarea.New()
	question.Placeholder = "Ask a question about the video..."
	question.ShowLineNumbers = false
	question.CharLimit = 0
	question.SetHeight(3)
	question.KeyMap.InsertNewline = keys.Newline
	question.Blur()

	t := &toasts{}
	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		orch:     session.New(deps.Backend, t, logger),
		toasts:   t,
		comments: NewCommentsPanel(),
		cfg:      cfg,
		logger:   logger,
		browser:  deps.Browser,
		fetcher:  deps.Fetcher,
		renderer: deps.Renderer,
		ctx:      ctx,
		cancel:   cancel,
		spinner:  s,
		urlInput: urlInput,
		question: question,
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
	)
}

// run executes a call off the event loop and reports back with callSettledMsg
func (m Model) run(c *session.Call) tea.Cmd {
	if c == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return callSettledMsg{c.Do(ctx)}
	}
}

func (m Model) fetchThumbnail(videoID string) tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	ctx := m.ctx
	fetcher := m.fetcher
	return func() tea.Msg {
		t, err := fetcher.Fetch(ctx, videoID)
		return thumbnailMsg{videoID: videoID, thumb: t, err: err}
	}
}

func (m Model) openBrowser(videoID string) tea.Cmd {
	b := m.browser
	return func() tea.Msg {
		title, err := b.Open(videoID)
		return browserOpenedMsg{videoID: videoID, title: title, err: err}
	}
}

// showThumbnail draws the thumbnail into the space the video card reserves
func (m Model) showThumbnail() tea.Cmd {
	if m.renderer == nil || m.thumb == nil || m.thumbFor != m.orch.Session().VideoID {
		return nil
	}
	r, t := m.renderer, m.thumb
	row, col := m.thumbnailCell()
	logger := m.logger
	return func() tea.Msg {
		if err := r.Show(t, row, col); err != nil {
			logger.Warn("Failed to render thumbnail", zap.Error(err))
		}
		return nil
	}
}

func (m Model) hideThumbnail() {
	if m.renderer == nil {
		return
	}
	if err := m.renderer.Hide(); err != nil {
		m.logger.Warn("Failed to clear thumbnail", zap.Error(err))
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.shutdown()
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshContent()
		cmds = append(cmds, m.showThumbnail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case callSettledMsg:
		cmds = append(cmds, m.settle(msg.res))

	case toastExpiredMsg:
		m.toasts.expire(msg.id)

	case thumbnailMsg:
		if msg.err != nil {
			m.logger.Warn("Failed to fetch thumbnail", zap.String("video_id", msg.videoID), zap.Error(msg.err))
			break
		}
		if msg.videoID == m.orch.Session().VideoID {
			m.thumb = msg.thumb
			m.thumbFor = msg.videoID
			m.layout()
			cmds = append(cmds, m.showThumbnail())
		}

	case browserOpenedMsg:
		if msg.err != nil {
			m.toasts.Notify(session.Notification{Level: session.LevelError, Text: "Could not open browser: " + msg.err.Error()})
			break
		}
		if msg.videoID == m.orch.Session().VideoID {
			m.videoTitle = msg.title
		}

	default:
		// cursor blink and other component messages
		cmds = append(cmds, m.updateInputs(msg))
	}

	// toasts and the video card change the space left for the main panel
	m.layout()
	cmds = append(cmds, m.toasts.schedule(m.toastDuration()))
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.NextFocus):
		m.setFocus((m.focus + 1) % 3)
		return nil

	case key.Matches(msg, keys.PrevFocus):
		m.setFocus((m.focus + 2) % 3)
		return nil

	case key.Matches(msg, keys.NextTab):
		m.tab = (m.tab + 1) % 3
		m.refreshContent()
		return nil

	case key.Matches(msg, keys.ToggleHelp):
		if _, err := m.cfg.ToggleHelp(); err != nil {
			m.logger.Warn("Failed to save config", zap.Error(err))
		}
		return nil

	case key.Matches(msg, keys.LoadComments):
		c := m.orch.BeginLoadComments()
		if c != nil {
			m.tab = tabComments
			m.refreshContent()
		}
		return m.run(c)

	case key.Matches(msg, keys.OpenBrowser):
		return m.watch()

	case key.Matches(msg, keys.ScrollUp):
		m.scroll(-1)
		return nil

	case key.Matches(msg, keys.ScrollDown):
		m.scroll(1)
		return nil

	case key.Matches(msg, keys.Send) && m.focus == focusURL:
		return m.run(m.orch.BeginSubmit(m.urlInput.Value()))

	case key.Matches(msg, keys.Send) && m.focus == focusQuestion:
		c := m.orch.BeginAsk(m.question.Value())
		m.syncDraft()
		if c != nil {
			m.tab = tabChat
			m.refreshContent()
		}
		return m.run(c)
	}

	if m.focus == focusPanel {
		switch msg.String() {
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		}
		return nil
	}

	if m.inputLocked() {
		return nil
	}
	return m.updateInputs(msg)
}

// inputLocked reports whether the focused input is read-only. The URL is
// locked while anything is loading, the question while a submit or ask is.
func (m Model) inputLocked() bool {
	switch m.focus {
	case focusURL:
		return m.orch.Loading()
	case focusQuestion:
		return m.orch.InFlight(session.KindSubmit) || m.orch.InFlight(session.KindAsk)
	}
	return false
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case focusQuestion:
		m.question, cmd = m.question.Update(msg)
		m.orch.SetDraft(m.question.Value())
	}
	return cmd
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.urlInput.Blur()
	m.question.Blur()
	switch f {
	case focusURL:
		m.urlInput.Focus()
	case focusQuestion:
		m.question.Focus()
	}
}

// syncDraft makes the question box show the orchestrator's draft
func (m *Model) syncDraft() {
	if m.question.Value() != m.orch.Draft() {
		m.question.SetValue(m.orch.Draft())
	}
}

func (m *Model) scroll(delta int) {
	if m.tab == tabComments {
		m.comments.Scroll(delta)
		return
	}
	if delta < 0 {
		m.viewport.LineUp(-delta)
	} else {
		m.viewport.LineDown(delta)
	}
}

func (m *Model) watch() tea.Cmd {
	videoID := m.orch.Session().VideoID
	switch {
	case m.browser == nil:
		m.toasts.Notify(session.Notification{Level: session.LevelWarn, Text: "Browser is disabled."})
		return nil
	case videoID == "":
		m.toasts.Notify(session.Notification{Level: session.LevelWarn, Text: "Submit a video first!"})
		return nil
	}
	m.toasts.Notify(session.Notification{Level: session.LevelInfo, Text: "Opening video in browser..."})
	return m.openBrowser(videoID)
}

// settle applies a finished call and refreshes what depends on it
func (m *Model) settle(res session.Result) tea.Cmd {
	prevVideo := m.orch.Session().VideoID
	if !m.orch.Settle(res) {
		return nil
	}
	m.syncDraft()

	var cmd tea.Cmd
	if res.Call.Kind == session.KindSubmit && res.Err == nil {
		videoID := m.orch.Session().VideoID
		if videoID != prevVideo || m.thumbFor != videoID {
			m.videoTitle = ""
			m.thumb = nil
			m.thumbFor = ""
			m.hideThumbnail()
			cmd = m.fetchThumbnail(videoID)
		}
		m.tab = tabChat
		m.setFocus(focusQuestion)
	}

	cc := m.orch.Comments()
	m.comments.SetComments(cc.VideoID(), cc.Comments())

	m.refreshContent()
	return cmd
}

func (m *Model) shutdown() {
	m.orch.Close()
	m.cancel()
	m.hideThumbnail()
	if m.browser != nil {
		m.browser.Stop()
	}
}

// Orchestrator exposes the core state
func (m Model) Orchestrator() *session.Orchestrator {
	return m.orch
}

// toastDuration falls back to a sane default for zero configs
func (m Model) toastDuration() time.Duration {
	if m.cfg.UI.ToastDuration <= 0 {
		return 4 * time.Second
	}
	return m.cfg.UI.ToastDuration
}
