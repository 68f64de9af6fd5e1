package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Animation defaults.
const (
	DefaultDuration         = 200 * time.Millisecond
	DefaultProgressDuration = 600 * time.Millisecond
	DefaultFPS              = 60
	MaxFPS                  = 240
)

// Config represents the complete .statdeck.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Format    FormatConfig    `yaml:"format" mapstructure:"format"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Tabs      []TabConfig     `yaml:"tabs" mapstructure:"tabs"`
}

// AnimationConfig controls counter and progress bar timing.
type AnimationConfig struct {
	// Duration is how long a counter takes to reach a new value.
	Duration time.Duration `yaml:"duration" mapstructure:"duration"`

	// ProgressDuration is how long a progress bar takes to fill.
	ProgressDuration time.Duration `yaml:"progress_duration" mapstructure:"progress_duration"`

	// FPS is the frame rate for all animations.
	FPS int `yaml:"fps" mapstructure:"fps"`
}

// FrameInterval returns the delay between frames for FPS.
func (a AnimationConfig) FrameInterval() time.Duration {
	if a.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(a.FPS)
}

// MarshalYAML writes durations as "200ms" rather than nanoseconds.
func (a AnimationConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Duration         string `yaml:"duration"`
		ProgressDuration string `yaml:"progress_duration"`
		FPS              int    `yaml:"fps"`
	}{a.Duration.String(), a.ProgressDuration.String(), a.FPS}, nil
}

// FormatConfig selects the locale and currency for every value.
type FormatConfig struct {
	// Locale is a BCP 47 tag such as "en-IN".
	Locale string `yaml:"locale" mapstructure:"locale"`

	// Currency is an ISO 4217 code such as "INR".
	Currency string `yaml:"currency" mapstructure:"currency"`

	// Symbol overrides the symbol derived from Currency.
	Symbol string `yaml:"symbol,omitempty" mapstructure:"symbol"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// TabConfig is one dashboard tab.
type TabConfig struct {
	Name     string           `yaml:"name" mapstructure:"name"`
	Cards    []CardConfig     `yaml:"cards,omitempty" mapstructure:"cards"`
	Progress []ProgressConfig `yaml:"progress,omitempty" mapstructure:"progress"`
}

// CardConfig is one stat card.
type CardConfig struct {
	// Key identifies the card in value streams. Unique across all tabs.
	Key   string `yaml:"key" mapstructure:"key"`
	Label string `yaml:"label" mapstructure:"label"`

	// Value is the initial target: a number or a decorated string like "₹12,400".
	Value string `yaml:"value,omitempty" mapstructure:"value"`

	// Mode is "plain", "currency" or "compact". Empty detects currency
	// from a symbol in Value.
	Mode   string `yaml:"mode,omitempty" mapstructure:"mode"`
	Prefix string `yaml:"prefix,omitempty" mapstructure:"prefix"`
	Suffix string `yaml:"suffix,omitempty" mapstructure:"suffix"`
	Hint   string `yaml:"hint,omitempty" mapstructure:"hint"`
	Icon   string `yaml:"icon,omitempty" mapstructure:"icon"`

	// Trend holds recent values for the card's sparkline.
	Trend []float64 `yaml:"trend,omitempty" mapstructure:"trend"`
}

// ProgressConfig is one progress bar.
type ProgressConfig struct {
	Key     string  `yaml:"key" mapstructure:"key"`
	Label   string  `yaml:"label" mapstructure:"label"`
	Percent float64 `yaml:"percent" mapstructure:"percent"`
}

// DefaultConfig returns a Config with sensible defaults and the demo tabs.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Animation: AnimationConfig{
			Duration:         DefaultDuration,
			ProgressDuration: DefaultProgressDuration,
			FPS:              DefaultFPS,
		},
		Format: FormatConfig{
			Locale:   "en-IN",
			Currency: "INR",
			Symbol:   "₹",
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Tabs: DefaultTabs(),
	}
}

// DefaultTabs returns the demo dashboard shown when no tabs are configured.
func DefaultTabs() []TabConfig {
	return []TabConfig{
		{
			Name: "Overview",
			Cards: []CardConfig{
				{Key: "revenue", Label: "Revenue", Value: "₹12,400", Icon: "₹", Hint: "this month", Trend: []float64{8200, 9100, 8700, 10400, 12400}},
				{Key: "orders", Label: "Orders", Value: "318", Icon: "▤", Hint: "this month", Trend: []float64{290, 301, 296, 318}},
				{Key: "customers", Label: "Customers", Value: "15300", Mode: "compact", Icon: "☺", Hint: "all time"},
			},
			Progress: []ProgressConfig{
				{Key: "goal", Label: "Monthly goal", Percent: 62},
			},
		},
		{
			Name: "Budget",
			Cards: []CardConfig{
				{Key: "spent", Label: "Spent", Value: "₹8,350", Icon: "↓", Hint: "of ₹20,000"},
				{Key: "saved", Label: "Saved", Value: "₹3,900", Icon: "↑", Trend: []float64{4200, 4000, 3900}},
			},
			Progress: []ProgressConfig{
				{Key: "budget", Label: "Budget used", Percent: 41.75},
				{Key: "savings", Label: "Savings goal", Percent: 78},
			},
		},
	}
}
