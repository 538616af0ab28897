package session

import "strings"

// MaxHistorySize is the number of lines kept before the oldest is evicted.
const MaxHistorySize = 100

// History is a bounded list of input lines with a traversal cursor. The
// cursor sits one past the newest entry after every add.
type History struct {
	entries []string
	pos     int
}

// Add records line unless it is blank or equal to the newest entry, both
// compared after trimming. The cursor is reset to the end either way.
func (h *History) Add(line string) {
	line = strings.TrimSpace(line)
	if line != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != line) {
		h.entries = append(h.entries, line)
		if len(h.entries) > MaxHistorySize {
			h.entries = h.entries[len(h.entries)-MaxHistorySize:]
		}
	}
	h.pos = len(h.entries)
}

// Previous steps the cursor back and returns that entry.
func (h *History) Previous() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next steps the cursor forward. Stepping past the newest entry is refused.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.entries)-1 {
		return "", false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Entries returns a copy, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) resetCursor() {
	h.pos = len(h.entries)
}
