// Package theme maps the two named themes to their color variables.
//
// Each theme sets two CSS custom properties holding RGB triplets:
//
//	--color-dark   text and accents
//	--color-light  backgrounds
//
// Night swaps the values of day. Unknown theme names fall back to day.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Name identifies a theme.
type Name string

const (
	Day   Name = "day"
	Night Name = "night"
)

// CSS variable names set by a palette.
const (
	VarDark  = "--color-dark"
	VarLight = "--color-light"
)

const (
	rgbInk   = "10, 10, 20"
	rgbPaper = "255, 255, 255"
)

// Palette holds the two role colors of a theme as "r, g, b" triplets.
type Palette struct {
	Dark  string `json:"dark"`
	Light string `json:"light"`
}

var palettes = map[Name]Palette{
	Day:   {Dark: rgbInk, Light: rgbPaper},
	Night: {Dark: rgbPaper, Light: rgbInk},
}

// Names lists the supported themes in display order.
func Names() []Name {
	return []Name{Day, Night}
}

// Parse resolves a theme name case-insensitively.
func Parse(name string) (Name, bool) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	_, ok := palettes[n]
	return n, ok
}

// Apply returns the theme and palette for name, using Day for unknown names.
func Apply(name string) (Name, Palette) {
	n, ok := Parse(name)
	if !ok {
		n = Day
	}
	return n, palettes[n]
}

// FromPreference picks the initial theme from the client's color scheme preference.
func FromPreference(prefersDark bool) Name {
	if prefersDark {
		return Night
	}
	return Day
}

// PaletteFor returns the palette of a known theme, or the day palette.
func PaletteFor(n Name) Palette {
	_, p := Apply(string(n))
	return p
}

// CSSVariables returns the custom properties to set on the document root.
func (p Palette) CSSVariables() map[string]string {
	return map[string]string{
		VarDark:  p.Dark,
		VarLight: p.Light,
	}
}

// Style renders the palette as a CSS declaration block body.
func (p Palette) Style() string {
	return VarDark + ": " + p.Dark + "; " + VarLight + ": " + p.Light + ";"
}

// Foreground converts the dark role color for terminal rendering.
func (p Palette) Foreground() lipgloss.Color {
	return lipgloss.Color(toHex(p.Dark))
}

// Background converts the light role color for terminal rendering.
func (p Palette) Background() lipgloss.Color {
	return lipgloss.Color(toHex(p.Light))
}

// State is the theme currently applied by one UI.
type State struct {
	current Name
}

// NewState starts on the given theme.
func NewState(initial Name) State {
	n, _ := Apply(string(initial))
	return State{current: n}
}

// Current returns the active theme.
func (s *State) Current() Name {
	if s.current == "" {
		return Day
	}
	return s.current
}

// Palette returns the active palette.
func (s *State) Palette() Palette {
	return PaletteFor(s.Current())
}

// Apply switches the active theme and returns its palette.
func (s *State) Apply(name string) Palette {
	n, p := Apply(name)
	s.current = n
	return p
}

// Toggle switches between day and night.
func (s *State) Toggle() Palette {
	if s.Current() == Night {
		return s.Apply(string(Day))
	}
	return s.Apply(string(Night))
}
