package models

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Preferences holds the process-wide user preferences persisted next to the
// account store.
type Preferences struct {
	Theme Theme `json:"theme"`

	// APIKey overrides the configured credential of the generation backend.
	// Empty means "use the configured key".
	APIKey string `json:"apiKey,omitempty"`
}
