package ui

import "github.com/Johannes-Berggren/goblin-prune/internal/models"

// Mode is the interaction state of a session.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeConfirmingDeletion
	ModeCommitting
	ModeAborted
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeConfirmingDeletion:
		return "confirming-deletion"
	case ModeCommitting:
		return "committing"
	case ModeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the input loop ends in this mode.
func (m Mode) Terminal() bool {
	return m == ModeCommitting || m == ModeAborted
}

// Event is a logical key press.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventSelect
	EventDeleteRequest
	EventAccept
	EventQuit
	EventOther
)

// Effect is the state mutation a transition asks for.
type Effect int

const (
	EffectNone Effect = iota
	EffectMoveUp
	EffectMoveDown
	EffectToggle
)

// Transition is the session state table. Terminal modes absorb every event.
func Transition(mode Mode, ev Event, selected int) (Mode, Effect) {
	if ev == EventNone || mode.Terminal() {
		return mode, EffectNone
	}

	switch mode {
	case ModeBrowsing:
		switch ev {
		case EventUp:
			return ModeBrowsing, EffectMoveUp
		case EventDown:
			return ModeBrowsing, EffectMoveDown
		case EventSelect:
			return ModeBrowsing, EffectToggle
		case EventDeleteRequest:
			if selected > 0 {
				return ModeConfirmingDeletion, EffectNone
			}
		case EventQuit:
			return ModeAborted, EffectNone
		}
		return ModeBrowsing, EffectNone

	case ModeConfirmingDeletion:
		switch ev {
		case EventAccept:
			return ModeCommitting, EffectNone
		case EventQuit:
			return ModeAborted, EffectNone
		}
		return ModeBrowsing, EffectNone
	}

	return mode, EffectNone
}

// Controller owns the branch list and cursor of one session and applies
// events to them.
type Controller struct {
	list        *models.BranchList
	cursor      Cursor
	mode        Mode
	visibleRows int
}

func NewController(list *models.BranchList, visibleRows int) *Controller {
	c := &Controller{list: list, visibleRows: visibleRows}
	c.cursor.Move(DirNone, list.Len(), visibleRows)
	return c
}

func (c *Controller) List() *models.BranchList { return c.list }
func (c *Controller) Cursor() Cursor           { return c.cursor }
func (c *Controller) Mode() Mode               { return c.mode }
func (c *Controller) VisibleRows() int         { return c.visibleRows }

// Handle applies ev and returns the resulting mode.
func (c *Controller) Handle(ev Event) Mode {
	next, effect := Transition(c.mode, ev, c.list.SelectedCount())

	switch effect {
	case EffectMoveUp:
		c.cursor.Move(DirUp, c.list.Len(), c.visibleRows)
	case EffectMoveDown:
		c.cursor.Move(DirDown, c.list.Len(), c.visibleRows)
	case EffectToggle:
		c.list.Toggle(c.cursor.Current())
	}

	c.mode = next
	return next
}

// Resize updates the row budget and re-clamps the cursor.
func (c *Controller) Resize(visibleRows int) {
	c.visibleRows = visibleRows
	c.cursor.Move(DirNone, c.list.Len(), visibleRows)
}

// Staged returns the branch names to delete. It is empty unless the session
// ended in ModeCommitting.
func (c *Controller) Staged() []string {
	if c.mode != ModeCommitting {
		return nil
	}
	return c.list.SelectedNames()
}
