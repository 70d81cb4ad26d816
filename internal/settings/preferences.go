package settings

import (
	"errors"
	"fmt"
	"strconv"
)

// Persistent store keys.
const (
	KeyTheme         = "settings_theme"
	KeyNotifications = "settings_notifications"
)

// Theme is the visual theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is applied whenever no valid theme is stored.
const DefaultTheme = ThemeLight

// ErrInvalidTheme is returned for theme values other than light and dark.
var ErrInvalidTheme = errors.New("invalid theme")

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// ParseTheme accepts the canonical encodings "light" and "dark".
func ParseTheme(raw string) (Theme, error) {
	t := Theme(raw)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
	return t, nil
}

// Preferences is the in-memory preference record.
type Preferences struct {
	Theme                Theme
	NotificationsEnabled bool
}

// Defaults returns the preference record used before anything is loaded.
func Defaults() Preferences {
	return Preferences{Theme: DefaultTheme, NotificationsEnabled: true}
}

// encodeBool renders the canonical "true"/"false" stored encoding.
func encodeBool(v bool) string {
	return strconv.FormatBool(v)
}
