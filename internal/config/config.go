package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig holds the engine's injectable lookup tables. Every field is
// optional; empty values keep the built-in defaults, so a partial
// config.toml only overrides what it names.
type AppConfig struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Vocabulary VocabularyConfig `toml:"vocabulary"`
	Palette    PaletteConfig    `toml:"palette"`
}

// DefaultsConfig names the business-policy fallback commodities applied
// when classification cannot decide one from the sheet text.
type DefaultsConfig struct {
	CropCommodity    string `toml:"crop_commodity"`
	PoultryCommodity string `toml:"poultry_commodity"`
	GenericPoultry   string `toml:"generic_poultry"`
}

// VocabularyConfig overrides the keyword vocabularies driving
// classification and activity filtering.
type VocabularyConfig struct {
	CropCommodities      []string `toml:"crop_commodities"`
	PoultryCommodities   []string `toml:"poultry_commodities"`
	PoultryIndicators    []string `toml:"poultry_indicators"`
	CycleKeywords        []string `toml:"cycle_keywords"`
	AgriculturalKeywords []string `toml:"agricultural_keywords"`
	NonActivityKeywords  []string `toml:"non_activity_keywords"`
}

// PaletteConfig overrides single entries of the indexed/theme color
// palettes. Keys are decimal palette indices, values "#RRGGBB".
type PaletteConfig struct {
	Indexed map[string]string `toml:"indexed"`
	Theme   map[string]string `toml:"theme"`
}

// DefaultConfig returns an empty override set (all built-ins kept).
func DefaultConfig() *AppConfig {
	return &AppConfig{}
}

// Load reads an AppConfig from the given TOML file path.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads config.toml from the executable's directory. A missing
// file is not an error; the built-in tables apply.
func LoadDefault() (*AppConfig, error) {
	exeDir := "."
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}

	path := filepath.Join(exeDir, "config.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}
