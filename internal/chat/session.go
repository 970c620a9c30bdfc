package chat

// Session is the shared widget session state, passed explicitly to every
// component that reads or flips it instead of living in a global.
//
// The single liveChat flag serves double duty, matching the widget's
// behavior: it is both "the chat panel is open" and "the latest message
// batch has been acknowledged". Opening the panel clears the notification
// gate, and the notification gate firing opens the panel.
type Session struct {
	liveChat bool
}

func NewSession() *Session {
	return &Session{}
}

// Open reports whether the chat panel is open, which is also whether the
// latest batch has been acknowledged.
func (s *Session) Open() bool {
	return s.liveChat
}

// Toggle flips the panel between open and closed.
func (s *Session) Toggle() {
	s.liveChat = !s.liveChat
}

// MarkSeen acknowledges the current batch, forcing the flag on.
func (s *Session) MarkSeen() {
	s.liveChat = true
}
