package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for the leader, "SPC r"
// for leader then r. Single keys: "q", "esc", "ctrl+c", "enter".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key sequence with a description for the help view.
// If modes is empty the binding applies in every mode.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix reports whether any binding continues past seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns next-key hints for the current leader sequence,
// filtered by mode. With an empty currentSeq it lists first-level keys
// after SPC.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesToMode(seq, mode) {
			continue
		}
		next, _, deeper := strings.Cut(strings.TrimPrefix(seq, prefix), " ")
		switch {
		case deeper:
			out[next] = next + "…"
		case r.descriptions[seq] != "":
			out[next] = r.descriptions[seq]
		default:
			out[next] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to the canonical notation.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" || p == " " {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // true when waiting for keys after the leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. When consumed is true the key belongs to the
// keybind system and must not reach the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	key := keyToSeqPart(msg.String())

	if !h.LeaderWaiting {
		switch key {
		case "SPC":
			h.LeaderWaiting = true
			h.Buffer = []string{"SPC"}
			return true, nil
		case "esc":
			return false, nil
		}
		if c := h.Registry.Lookup(key); c != nil {
			return true, c
		}
		return false, nil
	}

	// In leader mode every key is consumed: either it completes or extends
	// a sequence, or it cancels leader mode.
	if key == "esc" {
		h.reset()
		return true, nil
	}
	h.Buffer = append(h.Buffer, key)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq); c != nil {
		h.reset()
		return true, c
	}
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return true, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart maps Bubble Tea's key string to sequence notation; the
// space key arrives as " ".
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
