package Nav

// History holds the back and forward navigation stacks. It is a pure
// state machine: it does no I/O and never inspects the filesystem.
type History struct {
	back    []string
	forward []string
}

// NewHistory creates an empty navigation history
func NewHistory() *History {
	return &History{}
}

// Record registers a branching navigation from one location to
// another: the old location is pushed onto the back stack and the
// forward stack is discarded entirely. An empty from marks the very
// first navigation and pushes nothing.
func (h *History) Record(from string) {
	if from != "" {
		h.back = append(h.back, from)
	}
	h.forward = h.forward[:0]
}

// Back moves one step backwards. It pushes current onto the forward
// stack and returns the popped location. Returns false, with no state
// change, when there is nothing to go back to.
func (h *History) Back(current string) (string, bool) {
	if len(h.back) == 0 {
		return "", false
	}
	h.forward = append(h.forward, current)
	last := len(h.back) - 1
	loc := h.back[last]
	h.back = h.back[:last]
	return loc, true
}

// Forward moves one step forwards, symmetric to Back.
func (h *History) Forward(current string) (string, bool) {
	if len(h.forward) == 0 {
		return "", false
	}
	h.back = append(h.back, current)
	last := len(h.forward) - 1
	loc := h.forward[last]
	h.forward = h.forward[:last]
	return loc, true
}

// CanBack reports whether Back would succeed.
func (h *History) CanBack() bool {
	return len(h.back) > 0
}

// CanForward reports whether Forward would succeed.
func (h *History) CanForward() bool {
	return len(h.forward) > 0
}
