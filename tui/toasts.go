package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/njyeung/tubechat/session"
)

// maxVisibleToasts is how many notifications are stacked at once
const maxVisibleToasts = 3

type toast struct {
	id int
	n  session.Notification
}

type toastExpiredMsg struct{ id int }

// toasts collects notifications until they expire. It is the orchestrator's
// Notifier, so it is only touched from Update.
type toasts struct {
	next        int
	items       []toast
	unscheduled []int
}

func (t *toasts) Notify(n session.Notification) {
	t.next++
	t.items = append(t.items, toast{id: t.next, n: n})
	t.unscheduled = append(t.unscheduled, t.next)
}

// schedule returns the expiry timers for toasts added since the last call
func (t *toasts) schedule(d time.Duration) tea.Cmd {
	if len(t.unscheduled) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(t.unscheduled))
	for _, id := range t.unscheduled {
		cmds = append(cmds, tea.Tick(d, func(time.Time) tea.Msg {
			return toastExpiredMsg{id}
		}))
	}
	t.unscheduled = t.unscheduled[:0]
	return tea.Batch(cmds...)
}

func (t *toasts) expire(id int) {
	for i, it := range t.items {
		if it.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// visible returns the newest toasts, oldest first
func (t *toasts) visible() []toast {
	if len(t.items) <= maxVisibleToasts {
		return t.items
	}
	return t.items[len(t.items)-maxVisibleToasts:]
}

func (t *toasts) view() string {
	var out string
	for i, it := range t.visible() {
		if i > 0 {
			out += "\n"
		}
		style, ok := toastStyles[it.n.Level.String()]
		if !ok {
			style = mutedStyle
		}
		out += style.Render("● " + it.n.Text)
	}
	return out
}
