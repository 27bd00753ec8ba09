package domain

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		color RGBColor
		want  string
	}{
		{RGBColor{R: 0, G: 0, B: 0}, "#000000"},
		{RGBColor{R: 255, G: 255, B: 255}, "#ffffff"},
		{RGBColor{R: 0, G: 173, B: 216}, "#00add8"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestSuggestedTheme(t *testing.T) {
	tests := []struct {
		name  string
		color RGBColor
		want  Theme
	}{
		{"black suggests dark", RGBColor{R: 0, G: 0, B: 0}, ThemeDark},
		{"white suggests light", RGBColor{R: 255, G: 255, B: 255}, ThemeLight},
		{"navy suggests dark", RGBColor{R: 0, G: 0, B: 128}, ThemeDark},
		{"pale yellow suggests light", RGBColor{R: 250, G: 250, B: 210}, ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.SuggestedTheme(); got != tt.want {
				t.Errorf("SuggestedTheme(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}
