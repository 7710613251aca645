package domain

import "time"

// Theme is the UI colour scheme chosen by a user.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences holds per-user UI settings.
type Preferences struct {
	UserID       string    `json:"userId"`
	Theme        Theme     `json:"theme"`
	ProfileImage string    `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultPreferences returns the settings of a user that never saved any.
func DefaultPreferences(userID string) Preferences {
	return Preferences{UserID: userID, Theme: ThemeLight}
}
