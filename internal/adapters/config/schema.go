package config

// Configfile represents the structure of the emojilens.yaml configuration file.
// Pointer fields distinguish an absent key from its zero value.
type Configfile struct {
	Version             string   `yaml:"version"`
	BotToken            string   `yaml:"botToken"`
	CacheExpiration     *int     `yaml:"cacheExpiration"`
	EnableInlinePreview *bool    `yaml:"enableInlinePreview"`
	HoverPreviewSize    *int     `yaml:"hoverPreviewSize"`
	Debounce            *int     `yaml:"debounce"`
	CacheDir            string   `yaml:"cacheDir"`
	Patterns            []string `yaml:"patterns"`
	PositionEncoding    string   `yaml:"positionEncoding"`
	APIBaseURL          string   `yaml:"apiBaseURL"`
}
