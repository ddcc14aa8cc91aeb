// Package teacarousel is a bubbletea frontend for the carousel engine. Items
// are strings styled with lipgloss; the model handles keys, mouse drags and
// the snap animation.
package teacarousel

import (
	"math"
	"strings"
	"time"

	"github.com/ayn2op/carousel/engine"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// frameMsg drives animation and flushes throttled drag moves.
type frameMsg time.Time

// motion is shared by all copies of a Model. It implements engine.Animator.
type motion struct {
	transition engine.Transition
	now        func() time.Time
	ticking    bool
}

func (m *motion) JumpTo(offset float64) {
	m.transition = engine.Transition{From: offset, To: offset}
}

func (m *motion) AnimateTo(offset float64, duration time.Duration) {
	now := m.now()
	from, _ := m.transition.At(now)
	m.transition = engine.Transition{From: from, To: offset, Start: now, Duration: duration}
}

func (m *motion) offset() (float64, bool) {
	return m.transition.At(m.now())
}

// Model renders a carousel of styled strings.
type Model struct {
	items      []string
	config     engine.Config
	keys       KeyMap
	keysSet    bool
	help       help.Model
	style      lipgloss.Style
	styles     []lipgloss.Style
	glyphs     glyphs
	controller *engine.Controller
	motion     *motion

	// Viewport size in cells. Zero until set or derived from the window.
	width, height int
}

// New returns a model for items. Without WithViewport it mounts on the first
// tea.WindowSizeMsg.
func New(items []string, opts ...Option) Model {
	m := Model{
		items:  items,
		config: engine.DefaultConfig(),
		help:   help.New(),
		style:  DefaultItemStyle,
		glyphs: defaultGlyphs,
		motion: &motion{now: time.Now},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.config = m.config.Validate()
	if !m.keysSet {
		m.keys = DefaultKeyMap(m.config.Layout)
	}
	m.controller = engine.NewController(m.config, m.motion)
	if m.width > 0 && m.height > 0 {
		m.mount()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current index and offset.
func (m Model) State() engine.State {
	return m.controller.State()
}

func (m Model) Config() engine.Config {
	return m.config
}

func (m Model) horizontal() bool {
	return m.config.Layout.Axis() == engine.AxisHorizontal
}

func (m *Model) mount() {
	axis := m.config.Layout.Axis()
	viewport := float64(m.width)
	if axis == engine.AxisVertical {
		viewport = float64(m.height)
	}
	nodes := make([]engine.Node, len(m.items))
	for i, text := range m.items {
		nodes[i] = styledItem{style: m.itemStyle(i), text: text}
	}
	m.controller.Mount(engine.MeasureAll(nodes, axis, true), viewport)
}

// itemStyle returns the style of item i, falling back to the shared style.
func (m Model) itemStyle(i int) lipgloss.Style {
	if i < len(m.styles) {
		return m.styles[i]
	}
	return m.style
}

// origin returns the screen cell of the viewport's top left corner.
func (m Model) origin() (int, int) {
	if !m.config.Arrows {
		return 0, 0
	}
	if m.horizontal() {
		return 2, 0
	}
	return 0, 1
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.controller.Mounted() {
			return m, nil
		}
		m.width, m.height = msg.Width, msg.Height-1 // help line
		if m.config.Dots {
			m.height--
		}
		if m.config.Arrows {
			if m.horizontal() {
				m.width -= 4
			} else {
				m.height -= 2
			}
		}
		m.width, m.height = max(m.width, 0), max(m.height, 0)
		m.mount()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.controller.Mounted() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Previous):
			m.controller.ArrowClick(engine.DirectionPrevious)
		case key.Matches(msg, m.keys.Next):
			m.controller.ArrowClick(engine.DirectionNext)
		case key.Matches(msg, m.keys.First):
			m.controller.First()
		case key.Matches(msg, m.keys.Last):
			m.controller.Last()
		default:
			return m, nil
		}
		return m, m.tick()

	case tea.MouseMsg:
		if !m.controller.Mounted() {
			return m, nil
		}
		return m, m.handleMouse(tea.MouseEvent(msg))

	case frameMsg:
		m.motion.ticking = false
		m.controller.Flush()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleMouse(event tea.MouseEvent) tea.Cmd {
	position := float64(event.X)
	if !m.horizontal() {
		position = float64(event.Y)
	}

	switch event.Action {
	case tea.MouseActionMotion:
		if m.controller.Dragging() {
			m.controller.PointerMove(position, m.motion.now())
			return m.tick()
		}
	case tea.MouseActionRelease:
		if m.controller.Dragging() {
			m.controller.PointerUp()
			return m.tick()
		}
	case tea.MouseActionPress:
		switch event.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.controller.ArrowClick(engine.DirectionPrevious)
			return m.tick()
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.controller.ArrowClick(engine.DirectionNext)
			return m.tick()
		case tea.MouseButtonLeft:
			return m.press(event.X, event.Y, position)
		}
	}
	return nil
}

// press dispatches a left press to the arrows, the dots or the viewport.
func (m Model) press(x, y int, position float64) tea.Cmd {
	ox, oy := m.origin()
	inViewport := x >= ox && x < ox+m.width && y >= oy && y < oy+m.height

	switch {
	case inViewport:
		m.controller.PointerDown(position)
		return nil
	case m.config.Arrows && m.onArrow(x, y, engine.DirectionPrevious):
		m.controller.ArrowClick(engine.DirectionPrevious)
	case m.config.Arrows && m.onArrow(x, y, engine.DirectionNext):
		m.controller.ArrowClick(engine.DirectionNext)
	default:
		index, ok := m.dotAt(x, y)
		if !ok {
			return nil
		}
		m.controller.DotClick(index)
	}
	return m.tick()
}

func (m Model) onArrow(x, y int, direction engine.Direction) bool {
	ox, oy := m.origin()
	if m.horizontal() {
		if y < oy || y >= oy+m.height {
			return false
		}
		if direction == engine.DirectionPrevious {
			return x < ox
		}
		return x >= ox+m.width && x < ox+m.width+2
	}
	if x < ox || x >= ox+m.width {
		return false
	}
	if direction == engine.DirectionPrevious {
		return y == oy-1
	}
	return y == oy+m.height
}

// dotsOrigin returns the cell of the first dot.
func (m Model) dotsOrigin() (int, int) {
	ox, oy := m.origin()
	y := oy + m.height
	if !m.horizontal() && m.config.Arrows {
		y++
	}
	return ox + max(m.width-(2*len(m.items)-1), 0)/2, y
}

func (m Model) dotAt(x, y int) (int, bool) {
	if !m.config.Dots || len(m.items) == 0 {
		return 0, false
	}
	dx, dy := m.dotsOrigin()
	if y != dy || x < dx || (x-dx)%2 != 0 {
		return 0, false
	}
	index := (x - dx) / 2
	return index, index < len(m.items)
}

// tick schedules the next frame while the group is moving or being dragged.
func (m Model) tick() tea.Cmd {
	if m.motion.ticking {
		return nil
	}
	if _, done := m.motion.offset(); done && !m.controller.Dragging() {
		return nil
	}
	m.motion.ticking = true
	frame := time.Second / time.Duration(m.config.FPS)
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) View() string {
	if !m.controller.Mounted() {
		return ""
	}
	offset, _ := m.motion.offset()
	rows := m.viewportRows(offset)

	var b strings.Builder
	prev, next := m.arrowGlyphs()
	if m.horizontal() {
		for i, row := range rows {
			left, right := "  ", "  "
			if m.config.Arrows {
				if i == len(rows)/2 {
					left, right = prev+" ", " "+next
				}
				row = left + row + right
			}
			b.WriteString(row)
			b.WriteByte('\n')
		}
	} else {
		if m.config.Arrows {
			b.WriteString(center(prev, m.width) + "\n")
		}
		for _, row := range rows {
			b.WriteString(row + "\n")
		}
		if m.config.Arrows {
			b.WriteString(center(next, m.width) + "\n")
		}
	}

	if m.config.Dots {
		dx, _ := m.dotsOrigin()
		b.WriteString(strings.Repeat(" ", dx) + m.dots() + "\n")
	}
	b.WriteString(m.help.View(m.enabledKeys()))
	return b.String()
}

func (m Model) arrowGlyphs() (string, string) {
	prev, next := m.glyphs.left, m.glyphs.right
	if !m.horizontal() {
		prev, next = m.glyphs.up, m.glyphs.down
	}
	prevStyle, nextStyle := arrowStyle, arrowStyle
	if !m.config.Infinite && m.controller.IsAtStart() {
		prevStyle = disabledArrowStyle
	}
	if !m.config.Infinite && m.controller.IsAtEnd() {
		nextStyle = disabledArrowStyle
	}
	return prevStyle.Render(prev), nextStyle.Render(next)
}

func (m Model) dots() string {
	current := m.controller.State().Index
	dots := make([]string, len(m.items))
	for i := range m.items {
		style, glyph := dotStyle, m.glyphs.dot
		if i == current {
			style, glyph = activeDotStyle, m.glyphs.activeDot
		}
		dots[i] = style.Render(glyph)
	}
	return strings.Join(dots, " ")
}

// enabledKeys disables the bindings that cannot move the carousel.
func (m Model) enabledKeys() KeyMap {
	km := m.keys
	km.Previous.SetEnabled(!m.controller.IsAtStart())
	km.First.SetEnabled(!m.controller.IsAtStart())
	km.Next.SetEnabled(!m.controller.IsAtEnd())
	km.Last.SetEnabled(!m.controller.IsAtEnd())
	return km
}

// viewportRows renders the items laid out at their measured sizes, translated
// by offset and cut to the viewport.
func (m Model) viewportRows(offset float64) []string {
	sizes := m.controller.Table().Sizes()
	blocks := make([][]string, len(m.items))
	for i, text := range m.items {
		blocks[i] = strings.Split(m.itemStyle(i).Render(text), "\n")
	}
	start := int(math.Round(-offset))
	rows := make([]string, m.height)

	if m.horizontal() {
		for r := range rows {
			var line strings.Builder
			for i, block := range blocks {
				size := int(math.Round(sizes[i]))
				var part string
				if r < len(block) {
					part = ansi.Cut(block[r], 0, size)
				}
				line.WriteString(pad(part, size))
			}
			rows[r] = pad(ansi.Cut(line.String(), start, start+m.width), m.width)
		}
		return rows
	}

	var lines []string
	for i, block := range blocks {
		size := int(math.Round(sizes[i]))
		for r := range size {
			var line string
			if r < len(block) {
				line = block[r]
			}
			lines = append(lines, line)
		}
	}
	for r := range rows {
		var line string
		if index := start + r; index >= 0 && index < len(lines) {
			line = ansi.Cut(lines[index], 0, m.width)
		}
		rows[r] = pad(line, m.width)
	}
	return rows
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}

func center(s string, width int) string {
	return strings.Repeat(" ", max(width-ansi.StringWidth(s), 0)/2) + s
}
