package i18n

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SettingsFilename is the name of the settings file inside the data
// directory.
const SettingsFilename = "settings.json"

// Settings is the persisted language and currency selection.
type Settings struct {
	Language string `json:"language"`
	Currency string `json:"currency"`
}

// LoadSettings reads the persisted selection from dir. Missing or malformed
// settings fail soft to the defaults.
func LoadSettings(dir string) Settings {
	s := Settings{Language: Languages[0].Code, Currency: Currencies[0].Code}
	data, err := os.ReadFile(filepath.Join(dir, SettingsFilename))
	if err != nil {
		return s
	}
	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s
	}
	if loaded.Language != "" {
		s.Language = loaded.Language
	}
	if loaded.Currency != "" {
		s.Currency = loaded.Currency
	}
	return s
}

// SaveSettings persists the translator's current selection to dir.
func SaveSettings(dir string, t *Translator) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(Settings{Language: t.Lang(), Currency: t.Currency()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, SettingsFilename), append(data, '\n'), 0644)
}

// Open creates a translator from the settings persisted in dir.
func Open(dir string) *Translator {
	s := LoadSettings(dir)
	return New(s.Language, s.Currency)
}
