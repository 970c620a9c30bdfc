package chat

import "testing"

func TestEvaluateNotify_FiresOncePerBatch(t *testing.T) {
	sess := NewSession()

	// 0 -> 3 with the panel closed and the batch unseen.
	n := EvaluateNotify(sess, true)
	if n.Toast == "" || !n.Sound {
		t.Fatalf("first change: got %+v, want toast and sound", n)
	}
	if !sess.Open() {
		t.Fatal("first alert should mark the batch seen")
	}

	// 3 -> 5 with the seen flag still up: no alert from the seen gate.
	n = EvaluateNotify(sess, true)
	if n.Toast != "" || n.Sound {
		t.Fatalf("second change while seen: got %+v, want none", n)
	}
}

func TestEvaluateNotify_HiddenPageAlwaysPlaysSound(t *testing.T) {
	sess := NewSession()
	sess.MarkSeen()

	for i := 0; i < 3; i++ {
		n := EvaluateNotify(sess, false)
		if !n.Sound {
			t.Fatalf("change %d on hidden page: sound did not fire", i)
		}
		if n.Toast != "" {
			t.Fatalf("change %d on hidden page: unexpected toast %q", i, n.Toast)
		}
	}
}

func TestEvaluateNotify_BothGatesOnSameChange(t *testing.T) {
	sess := NewSession()

	n := EvaluateNotify(sess, false)
	if n.Toast == "" || !n.Sound {
		t.Fatalf("closed panel + hidden page: got %+v, want toast and sound", n)
	}
}

func TestEvaluateNotify_ReArmsAfterToggle(t *testing.T) {
	sess := NewSession()
	EvaluateNotify(sess, true)

	// Closing the panel re-arms the gate for the next batch.
	sess.Toggle()
	n := EvaluateNotify(sess, true)
	if n.Toast == "" {
		t.Fatalf("after closing the panel a new batch should toast again, got %+v", n)
	}
}
