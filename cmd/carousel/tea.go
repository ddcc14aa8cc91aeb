package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayn2op/carousel/internal/config"
	"github.com/ayn2op/carousel/teacarousel"
)

func runTea(cfg config.Config) error {
	items := make([]string, len(cfg.Items))
	for i, item := range cfg.Items {
		items[i] = strings.TrimSpace(item.Title + "\n" + item.Body)
	}

	styles := make([]lipgloss.Style, len(cfg.Items))
	for i, item := range cfg.Items {
		style, err := itemStyle(item)
		if err != nil {
			return err
		}
		styles[i] = style
	}

	model := teacarousel.New(items,
		teacarousel.WithConfig(cfg.Engine()),
		teacarousel.WithItemStyles(styles...),
		teacarousel.WithArrowGlyphs(cfg.Carousel.ArrowPrev, cfg.Carousel.ArrowNext),
		teacarousel.WithDotGlyphs(cfg.Carousel.Dot, cfg.Carousel.DotActive),
	)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func itemStyle(item config.Item) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	margin, err := config.Edges(item.Margin)
	if err != nil {
		return style, err
	}
	padding, err := config.Edges(item.Padding)
	if err != nil {
		return style, err
	}
	style = style.
		Margin(margin.Top, margin.Right, margin.Bottom, margin.Left).
		Padding(padding.Top, padding.Right, padding.Bottom, padding.Left)

	if item.Width > 0 {
		style = style.Width(item.Width + padding.Left + padding.Right)
	}
	if item.Height > 0 {
		style = style.Height(item.Height + padding.Top + padding.Bottom)
	}

	switch strings.ToLower(item.Border) {
	case "", "round":
		style = style.Border(lipgloss.RoundedBorder())
	case "plain":
		style = style.Border(lipgloss.NormalBorder())
	case "thick":
		style = style.Border(lipgloss.ThickBorder())
	case "none":
	default:
		return style, fmt.Errorf("unknown border %q", item.Border)
	}

	if item.Color != "" {
		style = style.BorderForeground(lipgloss.Color(item.Color))
	}
	return style, nil
}
