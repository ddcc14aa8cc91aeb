package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/carousel"
	"github.com/ayn2op/carousel/help"
	"github.com/ayn2op/carousel/internal/config"
	"github.com/ayn2op/carousel/keybind"
)

// view stacks the carousel above a help line.
type view struct {
	*carousel.Box

	carousel *carousel.Carousel
	help     *help.Help
	quit     keybind.Keybind
}

func newView(c *carousel.Carousel) *view {
	v := &view{
		Box:      carousel.NewBox(),
		carousel: c,
		help:     help.New(),
		quit:     keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
	v.help.SetKeyMap(v)
	return v
}

func (v *view) ShortHelp() []keybind.Keybind {
	return append(v.carousel.ShortHelp(), v.quit)
}

func (v *view) Draw(screen tcell.Screen) {
	x, y, width, height := v.GetRect()
	v.carousel.SetRect(x, y, width, max(height-1, 0))
	v.carousel.Draw(screen)
	v.help.SetRect(x, y+height-1, width, 1)
	v.help.Draw(screen)
}

func (v *view) InputHandler(event *tcell.EventKey) carousel.Command {
	if keybind.Matches(event, v.quit) {
		return carousel.QuitCommand{}
	}
	return v.carousel.InputHandler(event)
}

func (v *view) MouseHandler(action carousel.MouseAction, event *tcell.EventMouse) (carousel.Primitive, carousel.Command) {
	return v.carousel.MouseHandler(action, event)
}

func runTview(cfg config.Config) error {
	app := carousel.NewApplication()

	c := carousel.NewCarousel().
		SetConfig(cfg.Engine()).
		SetScrollBar(cfg.Carousel.ScrollBar).
		SetArrowGlyphs(cfg.Carousel.ArrowPrev, cfg.Carousel.ArrowNext).
		SetDotGlyphs(cfg.Carousel.Dot, cfg.Carousel.DotActive).
		SetChangedFunc(func(index int) {
			log.Printf("current item %d", index)
		})
	for _, item := range cfg.Items {
		card, err := newCard(item)
		if err != nil {
			return err
		}
		c.AddItem(card)
	}
	c.Attach(app)
	defer c.Detach()

	return app.SetRoot(newView(c)).Run()
}

func newCard(item config.Item) (*carousel.Card, error) {
	card := carousel.NewCard(item.Body)
	card.SetSize(item.Width, item.Height)

	margin, err := config.Edges(item.Margin)
	if err != nil {
		return nil, err
	}
	card.SetMargin(margin.Top, margin.Right, margin.Bottom, margin.Left)

	padding, err := config.Edges(item.Padding)
	if err != nil {
		return nil, err
	}
	card.SetBorderPadding(padding.Top, padding.Bottom, padding.Left, padding.Right)
	card.SetTitle(item.Title)

	switch strings.ToLower(item.Border) {
	case "", "round":
	case "plain":
		card.SetBorderSet(carousel.BorderSetPlain())
	case "thick":
		card.SetBorderSet(carousel.BorderSetThick())
	case "none":
		card.SetBorders(carousel.BordersNone)
	default:
		return nil, fmt.Errorf("unknown border %q", item.Border)
	}

	if item.Color != "" {
		color := tcell.GetColor(item.Color)
		card.SetBorderStyle(tcell.StyleDefault.Foreground(color))
		card.SetTitleStyle(tcell.StyleDefault.Foreground(color))
	}
	return card, nil
}
