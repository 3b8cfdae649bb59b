package entity

// Claves fijas de preferencias durables.
const (
	PrefTheme            = "theme"
	PrefSidebarCollapsed = "sidebarCollapsed"
)

// Theme tema visual del dashboard.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle alterna claro/oscuro.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Preferences las dos banderas que sobreviven a una recarga.
type Preferences struct {
	Theme            Theme
	SidebarCollapsed bool
}

// DefaultPreferences tema claro y sidebar expandido.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight}
}
