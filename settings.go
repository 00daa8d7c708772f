package moneta

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings is the user-authored document declaring which currency pairs and
// stock symbols the main page should look up. It is read-only input.
type Settings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}

// LoadSettings reads the settings document from path.
func LoadSettings(path string) (Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("cannot read settings file: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(content, &s); err != nil {
		return Settings{}, fmt.Errorf("cannot parse settings file %q: %w", path, err)
	}
	return s, nil
}
