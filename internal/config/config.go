// Package config loads the demo carousel from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ayn2op/carousel/engine"
)

// Carousel is the [carousel] table.
type Carousel struct {
	Layout            string   `toml:"layout"`
	Arrows            *bool    `toml:"arrows"`
	Dots              *bool    `toml:"dots"`
	Infinite          bool     `toml:"infinite"`
	Speed             *float64 `toml:"speed"`
	StartingItemIndex int      `toml:"starting_item_index"`
	Device            string   `toml:"device"`
	FPS               int      `toml:"fps"`
	ScrollBar         bool     `toml:"scroll_bar"`

	// Glyphs replacing the default arrows and dots. Empty keeps the default.
	ArrowPrev string `toml:"arrow_prev"`
	ArrowNext string `toml:"arrow_next"`
	Dot       string `toml:"dot"`
	DotActive string `toml:"dot_active"`
}

// Item is one [[items]] entry. Edge lists follow the CSS shorthand order:
// one value for all sides, two for vertical and horizontal, four for top,
// right, bottom and left.
type Item struct {
	Title   string `toml:"title"`
	Body    string `toml:"body"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Margin  []int  `toml:"margin"`
	Padding []int  `toml:"padding"`
	// Border is one of "round", "plain", "thick" or "none".
	Border string `toml:"border"`
	Color  string `toml:"color"`
}

// Config is the demo configuration.
type Config struct {
	Carousel Carousel `toml:"carousel"`
	Items    []Item   `toml:"items"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	items := make([]Item, 8)
	for i := range items {
		items[i] = Item{
			Title:  fmt.Sprintf("Item %d", i+1),
			Body:   fmt.Sprintf("Card number %d of %d", i+1, len(items)),
			Width:  16,
			Height: 3,
			Margin: []int{0, 1},
			Border: "round",
		}
	}
	return Config{Items: items}
}

// Load reads the config at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Decode(string(data))
}

// Decode parses a TOML document. An empty items list keeps the default items.
func Decode(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if len(cfg.Items) == 0 {
		cfg.Items = Default().Items
	}
	for i, item := range cfg.Items {
		if err := item.validate(); err != nil {
			return Config{}, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return cfg, nil
}

// Engine converts the [carousel] table to engine options.
func (c Config) Engine() engine.Config {
	cfg := engine.DefaultConfig()
	if c.Carousel.Layout != "" {
		cfg.Layout = engine.Layout(c.Carousel.Layout)
	}
	if c.Carousel.Arrows != nil {
		cfg.Arrows = *c.Carousel.Arrows
	}
	if c.Carousel.Dots != nil {
		cfg.Dots = *c.Carousel.Dots
	}
	if c.Carousel.Speed != nil {
		cfg.Speed = *c.Carousel.Speed
	}
	if c.Carousel.FPS != 0 {
		cfg.FPS = c.Carousel.FPS
	}
	cfg.Infinite = c.Carousel.Infinite
	cfg.StartingItemIndex = c.Carousel.StartingItemIndex
	cfg.Device = c.Carousel.Device
	return cfg.Validate()
}

var borders = map[string]bool{"": true, "round": true, "plain": true, "thick": true, "none": true}

func (i Item) validate() error {
	if !borders[i.Border] {
		return fmt.Errorf("unknown border %q", i.Border)
	}
	for _, edges := range [][]int{i.Margin, i.Padding} {
		if _, err := Edges(edges); err != nil {
			return err
		}
	}
	return nil
}

// EdgeSizes holds expanded per-side sizes.
type EdgeSizes struct {
	Top, Right, Bottom, Left int
}

// Edges expands a CSS style shorthand list.
func Edges(values []int) (EdgeSizes, error) {
	for _, v := range values {
		if v < 0 {
			return EdgeSizes{}, fmt.Errorf("negative edge size %d", v)
		}
	}
	switch len(values) {
	case 0:
		return EdgeSizes{}, nil
	case 1:
		v := values[0]
		return EdgeSizes{v, v, v, v}, nil
	case 2:
		return EdgeSizes{values[0], values[1], values[0], values[1]}, nil
	case 4:
		return EdgeSizes{values[0], values[1], values[2], values[3]}, nil
	}
	return EdgeSizes{}, fmt.Errorf("edge list needs 1, 2 or 4 values, got %d", len(values))
}
