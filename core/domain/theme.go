// ABOUTME: Theme domain model for the reader's light/dark presentation context
// ABOUTME: Models theme state as an explicit value plus change callback, not a global

package domain

// Theme identifies a reader color scheme.
type Theme string

const (
	// ThemeLight is the default reader theme
	ThemeLight Theme = "light"

	// ThemeDark is the inverted reader theme
	ThemeDark Theme = "dark"
)

// IsValid reports whether the theme is one of the known schemes.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeContext carries the current theme through rendering along with the
// callback invoked when the user switches schemes. It is scoped to the
// application's lifetime and passed explicitly to consumers.
type ThemeContext struct {
	current  Theme
	onChange func(Theme)
}

// NewThemeContext creates a theme context starting at the given theme.
// The onChange callback may be nil.
func NewThemeContext(initial Theme, onChange func(Theme)) *ThemeContext {
	if !initial.IsValid() {
		initial = ThemeLight
	}
	return &ThemeContext{
		current:  initial,
		onChange: onChange,
	}
}

// Current returns the active theme.
func (c *ThemeContext) Current() Theme {
	return c.current
}

// Set switches to the given theme and notifies the change callback.
// Invalid and unchanged values are ignored.
func (c *ThemeContext) Set(t Theme) {
	if !t.IsValid() || t == c.current {
		return
	}
	c.current = t
	if c.onChange != nil {
		c.onChange(t)
	}
}
