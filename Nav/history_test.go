package Nav

import "testing"

func TestHistoryStartsEmpty(t *testing.T) {
	h := NewHistory()
	if h.CanBack() || h.CanForward() {
		t.Fatal("new history should have nothing to go to")
	}
	if _, ok := h.Back("/a"); ok {
		t.Error("Back on empty history should fail")
	}
	if _, ok := h.Forward("/a"); ok {
		t.Error("Forward on empty history should fail")
	}
}

func TestHistoryFirstNavigationPushesNothing(t *testing.T) {
	h := NewHistory()
	h.Record("")
	if h.CanBack() {
		t.Error("first navigation must not create a back entry")
	}
}

func TestHistoryBackForward(t *testing.T) {
	h := NewHistory()
	h.Record("")   // -> /a
	h.Record("/a") // -> /b
	h.Record("/b") // -> /c

	loc, ok := h.Back("/c")
	if !ok || loc != "/b" {
		t.Fatalf("Back = %q, %v, want /b", loc, ok)
	}
	loc, ok = h.Back("/b")
	if !ok || loc != "/a" {
		t.Fatalf("Back = %q, %v, want /a", loc, ok)
	}
	if h.CanBack() {
		t.Error("back stack should be drained")
	}
	if !h.CanForward() {
		t.Error("forward stack should hold the undone moves")
	}

	loc, ok = h.Forward("/a")
	if !ok || loc != "/b" {
		t.Fatalf("Forward = %q, %v, want /b", loc, ok)
	}
	if !h.CanBack() {
		t.Error("forward move must restore the back stack")
	}
}

func TestHistoryBranchClearsForward(t *testing.T) {
	h := NewHistory()
	h.Record("")
	h.Record("/a")
	h.Record("/b")

	if _, ok := h.Back("/c"); !ok {
		t.Fatal("Back failed")
	}
	if !h.CanForward() {
		t.Fatal("expected forward entry after Back")
	}

	// Branching navigation invalidates the forward path
	h.Record("/b")
	if h.CanForward() {
		t.Error("Record must clear the forward stack")
	}
	if !h.CanBack() {
		t.Error("Record must keep the back stack")
	}
}
