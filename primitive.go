package carousel

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Primitive is anything the Application can lay out, draw and route input to.
// Handlers never touch the application directly; they return a Command which
// the event loop executes after the handler returns.
type Primitive interface {
	// Draw renders the primitive inside its rect. Only the focused primitive
	// should show the cursor.
	Draw(screen tcell.Screen)

	GetRect() (int, int, int, int)
	SetRect(x, y, width, height int)

	// InputHandler is called with key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler is called with mouse events over the primitive. A non-nil
	// capture receives every following mouse event until it returns nil.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
	PasteHandler(text string) Command

	// HasFocus must also report true when a child has focus.
	HasFocus() bool
	// Focus may hand the focus on to a child through delegate.
	Focus(delegate func(p Primitive))
	Blur()
}

// Command is a side effect requested by a handler.
type Command any

// BatchCommand runs its commands in order.
type BatchCommand []Command

// AppendCommand merges next into current, flattening batches. Nil commands are
// dropped.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	var batch BatchCommand
	for _, cmd := range []Command{current, next} {
		if b, ok := cmd.(BatchCommand); ok {
			batch = append(batch, b...)
		} else {
			batch = append(batch, cmd)
		}
	}
	return batch
}

// SetFocusCommand moves the focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand redraws the screen once the event is handled.
type RedrawCommand struct{}

// QuitCommand stops the event loop.
type QuitCommand struct{}

// AnimateCommand keeps redrawing at the application frame rate for Duration.
// A running animation is extended, never shortened.
type AnimateCommand struct {
	Duration time.Duration
}

// ConsumeEventCommand marks the event as handled so that it is not passed on.
type ConsumeEventCommand struct{}
