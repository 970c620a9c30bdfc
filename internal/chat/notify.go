package chat

// Notification describes the alerts to raise after a change in the
// observed message count.
type Notification struct {
	Toast string // info toast text, empty when none
	Sound bool
}

const newMessageToast = "You have a new message!"

// EvaluateNotify decides which alerts fire for one message-count change.
// Two independent gates, both of which may fire on the same change:
//
//  1. If the session's seen flag is down, it is raised and a toast plus
//     the sound fire. This is once per unacknowledged batch, not once per
//     message; opening the panel re-arms the gate for the next batch.
//  2. If the page is not visible to the user, the sound fires on every
//     count change. No toast, since the user cannot see one.
//
// "Panel closed" and "page hidden" are orthogonal reasons the user might
// miss a message, which is why the gates stay separate.
func EvaluateNotify(sess *Session, pageVisible bool) Notification {
	var n Notification
	if !sess.Open() {
		sess.MarkSeen()
		n.Toast = newMessageToast
		n.Sound = true
	}
	if !pageVisible {
		n.Sound = true
	}
	return n
}
