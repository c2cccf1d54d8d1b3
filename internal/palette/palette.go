// Package palette holds the static color palette and outfit suggestion
// tables keyed by undertone, style, and formality.
package palette

import (
	"github.com/example/color-analyzer/internal/undertone"
)

// Style selects between understated and vivid recommendations.
type Style string

// Formality selects between everyday and workplace recommendations.
type Formality string

const (
	StyleSubtle Style = "subtle"
	StyleBold   Style = "bold"

	FormalityCasual       Formality = "casual"
	FormalityProfessional Formality = "professional"
)

// Styles lists the accepted style selectors.
func Styles() []Style { return []Style{StyleSubtle, StyleBold} }

// Formalities lists the accepted formality selectors.
func Formalities() []Formality { return []Formality{FormalityCasual, FormalityProfessional} }

// ValidStyle reports whether s is an accepted style selector.
func ValidStyle(s Style) bool { return s == StyleSubtle || s == StyleBold }

// ValidFormality reports whether f is an accepted formality selector.
func ValidFormality(f Formality) bool {
	return f == FormalityCasual || f == FormalityProfessional
}

// Color is a named recommendation with its 6-digit hex code.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var palettes = map[undertone.Undertone]map[Style][]Color{
	undertone.Warm: {
		StyleSubtle: {
			{Name: "Warm Beige", Hex: "#D4A574"},
			{Name: "Olive Green", Hex: "#808000"},
			{Name: "Terracotta", Hex: "#E2725B"},
			{Name: "Warm Brown", Hex: "#8B4513"},
			{Name: "Peach", Hex: "#FFDAB9"},
			{Name: "Coral", Hex: "#FF7F50"},
		},
		StyleBold: {
			{Name: "Burnt Orange", Hex: "#CC5500"},
			{Name: "Golden Yellow", Hex: "#FFD700"},
			{Name: "Rich Red", Hex: "#DC143C"},
			{Name: "Forest Green", Hex: "#228B22"},
			{Name: "Rust", Hex: "#B7410E"},
			{Name: "Amber", Hex: "#FFBF00"},
		},
	},
	undertone.Cool: {
		StyleSubtle: {
			{Name: "Soft Pink", Hex: "#FFB6C1"},
			{Name: "Powder Blue", Hex: "#B0E0E6"},
			{Name: "Lavender", Hex: "#E6E6FA"},
			{Name: "Cool Gray", Hex: "#A9A9A9"},
			{Name: "Mint", Hex: "#98FF98"},
			{Name: "Silver", Hex: "#C0C0C0"},
		},
		StyleBold: {
			{Name: "Royal Blue", Hex: "#4169E1"},
			{Name: "Magenta", Hex: "#FF00FF"},
			{Name: "Purple", Hex: "#800080"},
			{Name: "Emerald", Hex: "#50C878"},
			{Name: "Fuchsia", Hex: "#FF00FF"},
			{Name: "Navy", Hex: "#000080"},
		},
	},
	undertone.Neutral: {
		StyleSubtle: {
			{Name: "Soft Taupe", Hex: "#B38B6D"},
			{Name: "Sage", Hex: "#9DC183"},
			{Name: "Dusty Rose", Hex: "#DCAE96"},
			{Name: "Warm Gray", Hex: "#928E85"},
			{Name: "Cream", Hex: "#FFFDD0"},
			{Name: "Mauve", Hex: "#E0B0FF"},
		},
		StyleBold: {
			{Name: "Teal", Hex: "#008080"},
			{Name: "Burgundy", Hex: "#800020"},
			{Name: "Deep Purple", Hex: "#6A0DAD"},
			{Name: "Olive", Hex: "#808000"},
			{Name: "Crimson", Hex: "#DC143C"},
			{Name: "Jade", Hex: "#00A86B"},
		},
	},
}

// ForUndertone returns the six recommended colors for the given undertone
// and style. Unknown combinations fall back to the neutral subtle palette.
// The returned slice is a copy and safe for the caller to modify.
func ForUndertone(tone undertone.Undertone, style Style) []Color {
	colors, ok := palettes[tone][style]
	if !ok {
		colors = palettes[undertone.Neutral][StyleSubtle]
	}
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}
