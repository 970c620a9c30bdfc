package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"livechat/internal/chat"
)

const genericSendError = "something went wrong"

type pollTickMsg struct{}

type pollResultMsg struct {
	seq  int
	conv chat.Conversation
	err  error
}

type sendResultMsg struct {
	err error
}

// Model is the chat widget. It keeps polling the backend on a fixed
// cadence whether the panel is open or closed, so the unread badge and
// notifications keep working for a closed panel.
type Model struct {
	cfg      chat.Config
	client   *chat.Client
	sess     *chat.Session
	logger   *chat.Logger
	clientID string

	theme Theme
	help  helpModel

	width  int
	height int
	ready  bool

	// true only until the first successful fetch; the snapshot is kept
	// through later refreshes so the view never flashes empty.
	loadingChat bool
	conv        chat.Conversation

	// Responses are sequenced by request-issue order. A slow response
	// that arrives after a newer one is dropped instead of regressing
	// the snapshot.
	pollSeq    int
	appliedSeq int

	// At most one in-flight send per widget.
	pending  string
	sending  bool
	inputErr string

	input    textarea.Model
	viewport viewport.Model

	pageVisible bool

	toast toastModel
}

func New(cfg chat.Config, client *chat.Client, sess *chat.Session, clientID string, logger *chat.Logger) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(1)
	ta.Prompt = "▍ "
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return &Model{
		cfg:         cfg,
		client:      client,
		sess:        sess,
		logger:      logger,
		clientID:    clientID,
		theme:       NewTheme(),
		help:        newHelpModel(),
		width:       80,
		height:      24,
		loadingChat: true,
		pageVisible: true,
		input:       ta,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.pollCmd(), m.tickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)

		vpW := max(20, m.width-4)
		vpH := max(3, m.height-9)
		if !m.ready {
			m.viewport = viewport.New(vpW, vpH)
			m.viewport.Style = lipgloss.NewStyle()
			m.ready = true
		} else {
			m.viewport.Width = vpW
			m.viewport.Height = vpH
		}
		m.input.SetWidth(max(10, m.width-8))
		m.syncViewport()
		m.viewport.GotoBottom()
		return m, nil

	case tea.FocusMsg:
		m.pageVisible = true
		return m, nil

	case tea.BlurMsg:
		m.pageVisible = false
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case pollTickMsg:
		return m, tea.Batch(m.pollCmd(), m.tickCmd())

	case pollResultMsg:
		return m, m.applyPoll(msg)

	case sendResultMsg:
		return m, m.applySendResult(msg.err)

	case toastExpiredMsg:
		m.toast.Expire(msg.id)
		return m, nil
	}

	return m, m.updateInput(msg)
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.help.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.help.keys.Toggle):
		m.sess.Toggle()
		if m.sess.Open() {
			m.syncViewport()
			m.viewport.GotoBottom()
			m.input.Focus()
			return m, textarea.Blink
		}
		return m, nil

	case key.Matches(msg, m.help.keys.Close):
		if m.sess.Open() {
			m.sess.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.help.keys.Enter):
		if !m.sess.Open() || m.sending {
			return m, nil
		}
		return m, m.submit()
	}

	return m, m.updateInput(msg)
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	if !m.sess.Open() {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submit validates locally, installs the optimistic pending row and fires
// the POST. The sent message is never merged into the conversation here;
// the next poll surfaces the persisted copy, which keeps duplicates
// structurally impossible at the cost of up to one poll interval of lag.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.inputErr = "Message is required"
		return nil
	}
	m.inputErr = ""
	m.pending = text
	m.sending = true
	m.syncViewport()
	m.viewport.GotoBottom()
	return m.sendCmd(text)
}

func (m *Model) applySendResult(err error) tea.Cmd {
	m.sending = false
	m.pending = ""

	var cmds []tea.Cmd
	if err != nil {
		text := genericSendError
		var apiErr *chat.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			text = apiErr.Message
		}
		m.logger.Error("send failed", map[string]interface{}{"error": err.Error()})
		cmds = append(cmds, m.toast.Show(toastError, text))
	} else {
		m.input.Reset()
	}

	m.syncViewport()
	m.viewport.GotoBottom()
	return tea.Batch(cmds...)
}

func (m *Model) applyPoll(msg pollResultMsg) tea.Cmd {
	if msg.err != nil {
		// Transient poll failures are retried on the next tick with no
		// user-visible feedback.
		m.logger.Warn("poll failed", map[string]interface{}{"error": msg.err.Error()})
		return nil
	}
	if msg.seq <= m.appliedSeq {
		return nil // stale response, already superseded
	}
	m.appliedSeq = msg.seq
	m.loadingChat = false

	prev := len(m.conv.Messages)
	m.conv = msg.conv
	if len(m.conv.Messages) == prev {
		return nil
	}
	return m.onMessagesChanged()
}

func (m *Model) onMessagesChanged() tea.Cmd {
	var cmds []tea.Cmd

	n := chat.EvaluateNotify(m.sess, m.pageVisible)
	if n.Toast != "" {
		cmds = append(cmds, m.toast.Show(toastInfo, n.Toast))
	}
	if n.Sound {
		cmds = append(cmds, m.bellCmd())
	}

	m.syncViewport()
	m.viewport.GotoBottom()
	return tea.Batch(cmds...)
}

func (m *Model) pollCmd() tea.Cmd {
	if m.clientID == "" {
		return nil
	}
	m.pollSeq++
	seq := m.pollSeq
	client, clientID := m.client, m.clientID
	return func() tea.Msg {
		conv, err := client.FetchConversation(context.Background(), clientID)
		return pollResultMsg{seq: seq, conv: conv, err: err}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval(), func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m *Model) sendCmd(text string) tea.Cmd {
	client, clientID := m.client, m.clientID
	return func() tea.Msg {
		return sendResultMsg{err: client.SendMessage(context.Background(), clientID, text)}
	}
}

func (m *Model) bellCmd() tea.Cmd {
	if !m.cfg.Sound {
		return nil
	}
	return func() tea.Msg {
		// BEL is non-printing, safe to emit under the renderer.
		os.Stdout.Write([]byte{'\a'})
		return nil
	}
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderConversation(m.theme, m.conv, m.clientID, m.pending, m.viewport.Width))
}

func (m *Model) View() string {
	if !m.sess.Open() {
		return m.viewClosed()
	}
	return m.viewOpen()
}

func (m *Model) viewClosed() string {
	var b strings.Builder

	bar := m.theme.TopBarTitle.Render("Live Support")
	if n := len(m.conv.Messages); n > 0 {
		bar += "  " + m.theme.TopBarBadge.Render(fmt.Sprintf("● %d", n))
	}
	bar += "  " + m.theme.TopBarMeta.Render("ctrl+o to open")
	b.WriteString(bar)
	b.WriteString("\n")

	if t := m.toast.View(m.theme); t != "" {
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewOpen() string {
	var b strings.Builder

	status := m.theme.StatusOK.Render("Connected")
	if m.loadingChat {
		status = m.theme.StatusWait.Render("Connecting…")
	}
	b.WriteString(m.theme.TopBarTitle.Render("Live Support") + "  " + status)
	b.WriteString("\n")

	if m.loadingChat || !m.ready {
		b.WriteString(m.theme.TopBarMeta.Render("Loading chat…"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.theme.Pane.Render(m.viewport.View()))
		b.WriteString("\n")
	}

	if m.inputErr != "" {
		b.WriteString(m.theme.FieldError.Render(m.inputErr))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.InputBox.Render(m.input.View()))
	b.WriteString("\n")

	if t := m.toast.View(m.theme); t != "" {
		b.WriteString(t)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.theme))
	return b.String()
}
