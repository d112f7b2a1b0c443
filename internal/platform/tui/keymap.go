package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// KeyMap holds the key bindings of the runner. It implements help.KeyMap.
type KeyMap struct {
	Jump    key.Binding
	Duck    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓", "duck"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Duck},
		{k.Pause, k.Restart, k.Quit},
	}
}

// Action translates a key message to a driver action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Duck):
		return core.ActionDuck
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// heldKeys turns discrete key presses into held intents.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until holdTicks pass without another press.
type heldKeys struct {
	holdTicks   int
	jumpPressed bool
	jumpUntil   int
	duckUntil   int
}

// pressJump requests a jump only for a fresh press. Auto-repeats that arrive
// inside the hold window just extend it, so holding the key does not
// bounce the player as soon as it lands.
func (h *heldKeys) pressJump(tick int) {
	if tick >= h.jumpUntil {
		h.jumpPressed = true
	}
	h.jumpUntil = tick + h.holdTicks
}

func (h *heldKeys) pressDuck(tick int) {
	h.duckUntil = tick + h.holdTicks
}

// intents builds the snapshot for the given tick and consumes the press.
func (h *heldKeys) intents(tick int) core.Intents {
	in := core.Intents{
		JumpRequested: h.jumpPressed,
		JumpHeld:      tick < h.jumpUntil,
		DuckHeld:      tick < h.duckUntil,
	}
	h.jumpPressed = false
	return in
}

func (h *heldKeys) clear() {
	*h = heldKeys{holdTicks: h.holdTicks}
}
