package model

import "time"

// SiteSetting is a named piece of editable business text.
type SiteSetting struct {
	Key         string    `json:"setting_key"`
	Value       string    `json:"setting_value"`
	Type        string    `json:"setting_type"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Setting types. They only hint at how the admin form renders the value.
const (
	SettingTypeText     = "text"
	SettingTypeTextarea = "textarea"
	SettingTypeEmail    = "email"
	SettingTypeURL      = "url"
)

// SettingTypes lists the known setting types in the order forms offer them.
var SettingTypes = []string{SettingTypeText, SettingTypeTextarea, SettingTypeEmail, SettingTypeURL}

// Validate checks that the setting has a key.
func (s SiteSetting) Validate() error {
	return requireText("setting_key", s.Key)
}
