package carousel

import "github.com/gdamore/tcell/v2"

// Button is labeled box that triggers an action when selected.
type Button struct {
	*Box

	// If set to true, the button cannot be activated.
	disabled bool

	// The text to be displayed inside the button.
	text string

	style          tcell.Style
	activatedStyle tcell.Style
	disabledStyle  tcell.Style

	// An optional function which is called when the button was selected.
	selected func()
}

// NewButton returns a new button.
func NewButton(label string) *Button {
	box := NewBox()
	box.SetRect(0, 0, StringWidth(label)+4, 1)
	return &Button{
		Box:            box,
		text:           label,
		style:          tcell.StyleDefault.Background(Styles.PrimitiveBackgroundColor).Foreground(Styles.PrimaryTextColor),
		activatedStyle: tcell.StyleDefault.Background(Styles.PrimaryTextColor).Foreground(Styles.InverseTextColor),
		disabledStyle:  tcell.StyleDefault.Background(Styles.PrimitiveBackgroundColor).Foreground(Styles.DotColor).Dim(true),
	}
}

func (b *Button) SetLabel(label string) *Button {
	b.text = label
	return b
}

func (b *Button) GetLabel() string {
	return b.text
}

// SetStyle sets the style of the button used when it is not focused.
func (b *Button) SetStyle(style tcell.Style) *Button {
	b.style = style
	return b
}

// SetActivatedStyle sets the style of the button used when it is focused.
func (b *Button) SetActivatedStyle(style tcell.Style) *Button {
	b.activatedStyle = style
	return b
}

// SetDisabledStyle sets the style of the button used when it is disabled.
func (b *Button) SetDisabledStyle(style tcell.Style) *Button {
	b.disabledStyle = style
	return b
}

// SetDisabled sets whether or not the button is disabled. Disabled buttons
// cannot be activated.
func (b *Button) SetDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

func (b *Button) GetDisabled() bool {
	return b.disabled
}

// SetSelectedFunc sets a handler which is called when the button was selected.
func (b *Button) SetSelectedFunc(handler func()) *Button {
	b.selected = handler
	return b
}

// Draw draws this primitive onto the screen.
func (b *Button) Draw(screen tcell.Screen) {
	style := b.style
	if b.disabled {
		style = b.disabledStyle
	}
	if b.HasFocus() && !b.disabled {
		style = b.activatedStyle
	}
	_, background, _ := style.Decompose()
	b.SetBackgroundColor(background)
	b.DrawForSubclass(screen, b)

	x, y, width, height := b.GetInnerRect()
	if width > 0 && height > 0 {
		y = y + height/2
		printWithStyle(screen, b.text, x, y, 0, width, AlignmentCenter, style, true)
	}
}

// InputHandler selects the button on enter.
func (b *Button) InputHandler(event *tcell.EventKey) Command {
	if b.disabled {
		return nil
	}

	if event.Key() == tcell.KeyEnter {
		return b.activate()
	}
	return nil
}

// MouseHandler selects the button on a left click inside its rectangle.
func (b *Button) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if b.disabled || !b.InRect(event.Position()) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		return nil, ConsumeEventCommand{}
	case MouseLeftClick:
		return nil, b.activate()
	}
	return nil, nil
}

func (b *Button) activate() Command {
	if b.selected != nil {
		b.selected()
	}
	return RedrawCommand{}
}

var _ Primitive = &Button{}
