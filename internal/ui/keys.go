package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Johannes-Berggren/goblin-prune/internal/config"
)

// KeyMap binds physical keys to session events.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Accept key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Accept: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accept"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
	}
}

// WithOverrides rebinds the actions named in overrides. Unknown actions are
// ignored; config validation rejects them earlier.
func (k KeyMap) WithOverrides(overrides map[string][]string) KeyMap {
	for action, keys := range overrides {
		if len(keys) == 0 {
			continue
		}
		var b *key.Binding
		switch action {
		case config.ActionUp:
			b = &k.Up
		case config.ActionDown:
			b = &k.Down
		case config.ActionSelect:
			b = &k.Select
		case config.ActionDelete:
			b = &k.Delete
		case config.ActionAccept:
			b = &k.Accept
		case config.ActionQuit:
			b = &k.Quit
		default:
			continue
		}
		desc := b.Help().Desc
		*b = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}
	return k
}

func helpKeys(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// Resolve maps a key press to one event for the current mode. While
// confirming, accept is checked before quit so a key bound to both commits.
func (k KeyMap) Resolve(mode Mode, msg tea.KeyMsg) Event {
	switch mode {
	case ModeBrowsing:
		switch {
		case key.Matches(msg, k.Up):
			return EventUp
		case key.Matches(msg, k.Down):
			return EventDown
		case key.Matches(msg, k.Select):
			return EventSelect
		case key.Matches(msg, k.Delete):
			return EventDeleteRequest
		case key.Matches(msg, k.Quit):
			return EventQuit
		}
		return EventOther

	case ModeConfirmingDeletion:
		switch {
		case key.Matches(msg, k.Accept):
			return EventAccept
		case key.Matches(msg, k.Quit):
			return EventQuit
		}
		return EventOther
	}
	return EventNone
}

// BrowseHelp lists the bindings shown in the browsing status line.
func (k KeyMap) BrowseHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Down, k.Up, k.Select, k.Delete}
}

// ConfirmHelp lists the bindings shown while confirming a deletion.
func (k KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Accept}
}
