package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastError
)

const toastDuration = 4 * time.Second

type toastExpiredMsg struct{ id int }

// toastModel holds a single transient status-line notification. A new
// toast replaces the current one; expiry is tick-driven and keyed by id
// so a stale expiry never clears a newer toast.
type toastModel struct {
	id   int
	kind toastKind
	text string
}

func (t *toastModel) Show(kind toastKind, text string) tea.Cmd {
	t.id++
	t.kind = kind
	t.text = text
	id := t.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (t *toastModel) Expire(id int) {
	if id == t.id {
		t.text = ""
	}
}

func (t *toastModel) View(theme Theme) string {
	if t.text == "" {
		return ""
	}
	if t.kind == toastError {
		return theme.ToastError.Render(t.text)
	}
	return theme.ToastInfo.Render(t.text)
}
