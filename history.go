package histfsm

// History is the ordered log of visited states.
//
// Undo and redo have no cursor: the anchor is the last occurrence of the
// current state in the log, recomputed on every call. When a state recurs
// non-consecutively, navigation jumps relative to its latest occurrence.
type History struct {
	entries []StateID
}

// Len returns the number of recorded entries
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log
func (h *History) Entries() []StateID {
	out := make([]StateID, len(h.entries))
	copy(out, h.entries)
	return out
}

// Last returns the most recently recorded entry
func (h *History) Last() (StateID, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Push appends id unconditionally
func (h *History) Push(id StateID) {
	h.entries = append(h.entries, id)
}

// PushDistinct appends id unless it equals the last entry.
// It reports whether the log grew.
func (h *History) PushDistinct(id StateID) bool {
	if last, ok := h.Last(); ok && last == id {
		return false
	}
	h.Push(id)
	return true
}

// Clear empties the log
func (h *History) Clear() {
	h.entries = nil
}

// lastIndex returns the position of the last occurrence of id, or -1
func (h *History) lastIndex(id StateID) int {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i] == id {
			return i
		}
	}
	return -1
}

// Previous returns the entry before the anchor of current
func (h *History) Previous(current StateID) (StateID, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	idx := h.lastIndex(current) - 1
	if idx < 0 {
		return "", false
	}
	return h.entries[idx], true
}

// Next returns the entry after the anchor of current.
// A current state absent from the log anchors before the first entry.
func (h *History) Next(current StateID) (StateID, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	idx := h.lastIndex(current) + 1
	if idx < 0 || idx >= len(h.entries) {
		return "", false
	}
	return h.entries[idx], true
}
