package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayn2op/carousel/engine"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, engine.DefaultConfig(), cfg.Engine())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.toml")
	data := `
[carousel]
layout = "vertical"
arrows = false
speed = 0.5
starting_item_index = 2
device = "mobile"
fps = 2000000000
arrow_prev = "<"
dot_active = "*"

[[items]]
title = "One"
body = "first"
width = 10
margin = [0, 1]
padding = [1]
border = "thick"
color = "red"

[[items]]
title = "Two"
border = "none"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "thick", cfg.Items[0].Border)
	assert.Equal(t, []int{0, 1}, cfg.Items[0].Margin)
	assert.Equal(t, "red", cfg.Items[0].Color)
	assert.Equal(t, "<", cfg.Carousel.ArrowPrev)
	assert.Empty(t, cfg.Carousel.ArrowNext)
	assert.Equal(t, "*", cfg.Carousel.DotActive)

	want := engine.Config{
		Layout:            engine.LayoutVertical,
		Arrows:            false,
		Dots:              true,
		Speed:             0.5,
		StartingItemIndex: 2,
		Device:            "mobile",
		FPS:               engine.MaxFPS,
	}
	assert.Equal(t, want, cfg.Engine())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "[carousel\n", "failed to parse config"},
		{"unknown key", "[carousel]\nwrap = true\n", "unknown config keys: carousel.wrap"},
		{"border", "[[items]]\nborder = \"double\"\n", `item 1: unknown border "double"`},
		{"edges", "[[items]]\nmargin = [1, 2, 3]\n", "item 1: edge list needs 1, 2 or 4 values, got 3"},
		{"negative", "[[items]]\npadding = [-1]\n", "item 1: negative edge size -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeEmptyKeepsDefaultItems(t *testing.T) {
	cfg, err := Decode("")
	require.NoError(t, err)
	assert.Equal(t, Default().Items, cfg.Items)
}

func TestEdges(t *testing.T) {
	tests := []struct {
		in   []int
		want EdgeSizes
	}{
		{nil, EdgeSizes{}},
		{[]int{2}, EdgeSizes{2, 2, 2, 2}},
		{[]int{1, 3}, EdgeSizes{1, 3, 1, 3}},
		{[]int{1, 2, 3, 4}, EdgeSizes{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		got, err := Edges(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
