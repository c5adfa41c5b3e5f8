package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/njyeung/tubechat/backend"
)

// CommentsPanel renders the cached comments with its own scroll position
type CommentsPanel struct {
	comments []backend.Comment
	scroll   int

	// Which video these comments belong to
	videoID string
}

// NewCommentsPanel creates a new CommentsPanel instance
func NewCommentsPanel() *CommentsPanel {
	return &CommentsPanel{}
}

// SetComments replaces the displayed comments.
// Scroll is kept when the same video is refreshed.
func (cp *CommentsPanel) SetComments(videoID string, comments []backend.Comment) {
	if cp.videoID != videoID {
		cp.scroll = 0
	}
	cp.videoID = videoID
	cp.comments = comments
	cp.Scroll(0)
}

// Len returns the number of comments shown
func (cp *CommentsPanel) Len() int {
	return len(cp.comments)
}

// Scroll moves the scroll position by the given delta
func (cp *CommentsPanel) Scroll(delta int) {
	newScroll := cp.scroll + delta
	maxScroll := max(len(cp.comments)-1, 0)
	cp.scroll = min(max(newScroll, 0), maxScroll)
}

// View renders the comments panel
// width: available width in characters
// height: available height in lines
func (cp *CommentsPanel) View(width, height int) string {
	if len(cp.comments) == 0 {
		return mutedStyle.Render("No comments loaded. Press ctrl+l to load them.")
	}

	var b strings.Builder

	header := titleStyle.Render(fmt.Sprintf("Comments (%d)", len(cp.comments)))
	b.WriteString(header + "\n\n")

	// header + blank line
	availableLines := max(height-2, 0)

	linesUsed := 0
	for i := cp.scroll; i < len(cp.comments) && linesUsed < availableLines; i++ {
		comment := cp.comments[i]

		b.WriteString(authorStyle.Render("@"+comment.Author) + "\n")
		linesUsed++

		for _, line := range wrapByWidth(strings.ReplaceAll(comment.Text, "\n", " "), width-2) {
			if linesUsed >= availableLines {
				break
			}
			b.WriteString("  " + commentTextStyle.Render(line) + "\n")
			linesUsed++
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// wrapByWidth splits s into lines no wider than width cells, breaking on
// spaces where possible
func wrapByWidth(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(s) {
		wordW := runewidth.StringWidth(word)

		if lineW > 0 && lineW+1+wordW > width {
			flush()
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}

		// hard-break words that do not fit on their own line
		for wordW > width-lineW {
			head := runewidth.Truncate(word, width-lineW, "")
			if head == "" {
				break
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			wordW = runewidth.StringWidth(word)
		}
		line.WriteString(word)
		lineW += wordW
	}

	if lineW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
