// ABOUTME: Color domain model used for the reader's derived accent color
// ABOUTME: Represents the prominent color extracted from an article's lead image

package domain

import "fmt"

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as a #rrggbb string for CSS consumption.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SuggestedTheme picks the reader scheme that keeps chrome legible against
// this color: dark accents suggest the dark theme, light ones the light theme.
func (c RGBColor) SuggestedTheme() Theme {
	// Rec. 601 luma, scaled to 0..255000
	luma := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	if luma < 128000 {
		return ThemeDark
	}
	return ThemeLight
}
