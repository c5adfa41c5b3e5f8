package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/njyeung/tubechat/preview"
	"github.com/njyeung/tubechat/session"
)

// fallback cell size when the terminal does not report pixels
const (
	defaultCellW = 8
	defaultCellH = 16
)

// thumbnail left padding in cells
const thumbCol = 3

func (m Model) headerView() string {
	title := titleStyle.Render("tubechat")

	var status string
	switch m.orch.Phase() {
	case session.PhaseSubmitting:
		status = "Processing video..."
	case session.PhaseAsking:
		status = "Thinking..."
	case session.PhaseLoadingComments:
		status = "Loading comments..."
	case session.PhaseReady:
		status = readyStyle.Render("Ready")
	}
	if m.orch.Loading() {
		status = m.spinner.View() + " " + mutedStyle.Render(status)
	}

	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(status), 1)
	return title + strings.Repeat(" ", gap) + status
}

func (m Model) urlView() string {
	style := inputBoxStyle
	if m.focus == focusURL {
		style = focusedBoxStyle
	}
	return style.Width(max(m.width-2, 1)).Render(m.urlInput.View())
}

// cardView shows the submitted video and reserves rows for the thumbnail
func (m Model) cardView() string {
	s := m.orch.Session()
	if s.VideoID == "" {
		return mutedStyle.Render("No video submitted yet.")
	}

	name := s.VideoID
	if m.videoTitle != "" {
		name = m.videoTitle + mutedStyle.Render(" ("+s.VideoID+")")
	}
	line := "▶ " + name + "  " + readyStyle.Render("Ready for questions")

	if rows := m.thumbRows(); rows > 0 {
		line += strings.Repeat("\n", rows)
	}
	return line
}

// thumbRows is how many blank rows the thumbnail covers
func (m Model) thumbRows() int {
	if m.renderer == nil || m.thumb == nil || m.thumbFor != m.orch.Session().VideoID {
		return 0
	}
	cellW, cellH, ok := preview.CellSize()
	if !ok {
		cellW, cellH = defaultCellW, defaultCellH
	}
	_, rows := preview.CellsFor(m.thumb.Width, m.thumb.Height, cellW, cellH)
	return rows
}

// thumbnailCell returns the 1-indexed cell the thumbnail is drawn at,
// just under the card's first line
func (m Model) thumbnailCell() (row, col int) {
	row = lipgloss.Height(m.headerView()) + lipgloss.Height(m.urlView()) + 1 + 1
	return row, thumbCol
}

func (m Model) tabsView() string {
	labels := []string{
		"Chat",
		fmt.Sprintf("History (%d)", m.orch.History().Questions()),
		fmt.Sprintf("Comments (%d)", m.comments.Len()),
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(l)
		} else {
			parts[i] = tabStyle.Render(l)
		}
	}
	return strings.Join(parts, "   ")
}

func (m Model) questionView() string {
	style := inputBoxStyle
	if m.focus == focusQuestion {
		style = focusedBoxStyle
	}
	return style.Render(m.question.View())
}

func (m Model) helpView() string {
	var parts []string
	for _, b := range keys.helpLine() {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return navStyle.Width(max(m.width, 1)).Render(strings.Join(parts, "  "))
}

// mainView is the content of the active tab, as tall as the viewport
func (m Model) mainView() string {
	if m.tab == tabComments {
		return lipgloss.NewStyle().Height(m.viewport.Height).MaxHeight(m.viewport.Height).
			Render(m.comments.View(m.width, m.viewport.Height))
	}
	return m.viewport.View()
}

// layout sizes the inputs and the scrolling area to the window
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.urlInput.Width = max(m.width-8, 1)
	m.question.SetWidth(max(m.width-4, 1))

	fixed := []string{m.headerView(), m.urlView(), m.cardView(), m.tabsView(), m.questionView()}
	if t := m.toasts.view(); t != "" {
		fixed = append(fixed, t)
	}
	if m.cfg.UI.ShowHelp {
		fixed = append(fixed, m.helpView())
	}

	used := 0
	for _, s := range fixed {
		used += lipgloss.Height(s)
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-used, 1)
}

// refreshContent re-renders the chat or history text into the viewport
func (m *Model) refreshContent() {
	width := max(m.width, 20)

	switch m.tab {
	case tabChat:
		m.viewport.SetContent(m.chatContent(width))
		m.viewport.GotoTop()
	case tabHistory:
		m.viewport.SetContent(m.historyContent(width))
		m.viewport.GotoBottom()
	}
}

func (m Model) chatContent(width int) string {
	if m.orch.InFlight(session.KindAsk) {
		return mutedStyle.Render("Thinking...")
	}

	entries := m.orch.History().Entries()
	if len(entries) < 2 || m.orch.Answer() == "" {
		if m.orch.Session().VideoID == "" {
			return mutedStyle.Render("Submit a YouTube URL above, then ask anything about the video.")
		}
		return mutedStyle.Render("Ask a question about the video below.")
	}

	q := entries[len(entries)-2]
	var b strings.Builder
	b.WriteString(questionStyle.Render("Q: ") + wrapStyled(q.Content, width-3, questionStyle) + "\n\n")
	b.WriteString(wrapStyled(m.orch.Answer(), width, answerStyle))
	return b.String()
}

func (m Model) historyContent(width int) string {
	entries := m.orch.History().Entries()
	if len(entries) == 0 {
		return mutedStyle.Render("No questions asked yet.")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 && e.Kind == session.EntryQuestion {
			b.WriteString("\n")
		}
		stamp := timestampStyle.Render(e.Timestamp.Format("15:04:05"))
		switch e.Kind {
		case session.EntryQuestion:
			b.WriteString(stamp + " " + questionStyle.Render("You") + "\n")
			b.WriteString(wrapStyled(e.Content, width-2, questionStyle) + "\n")
		case session.EntryAnswer:
			b.WriteString(stamp + " " + authorStyle.Render("Answer") + "\n")
			b.WriteString(wrapStyled(e.Content, width-2, answerStyle) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// wrapStyled wraps every paragraph of s and styles each line
func wrapStyled(s string, width int, style lipgloss.Style) string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		for _, l := range wrapByWidth(para, width) {
			lines = append(lines, style.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.spinner.View() + " Starting..."
	}

	sections := []string{
		m.headerView(),
		m.urlView(),
		m.cardView(),
		m.tabsView(),
		m.mainView(),
		m.questionView(),
	}
	if t := m.toasts.view(); t != "" {
		sections = append(sections, t)
	}
	if m.cfg.UI.ShowHelp {
		sections = append(sections, m.helpView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
