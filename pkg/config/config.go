// Package config defines configuration for the mdspan engine and CLI.
// Types are pure data with YAML tags; loading and validation live in
// this package, conversion to engine options in the CLI.
package config

// ImagePolicy names how embedded images are realized.
type ImagePolicy string

const (
	ImagePolicyInline ImagePolicy = "inline"
	ImagePolicyBlock  ImagePolicy = "block"
)

// IsValid returns true if the policy is a known value.
func (p ImagePolicy) IsValid() bool {
	switch p {
	case ImagePolicyInline, ImagePolicyBlock:
		return true
	default:
		return false
	}
}

// ColorMode controls terminal color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the mode is a known value.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ImageConfig controls embed sizing and the image policy.
type ImageConfig struct {
	// Policy is "inline" or "block".
	Policy ImagePolicy `yaml:"policy"`

	// LineHeight is the host line height in pixels.
	LineHeight float64 `yaml:"line_height"`

	// Height and Width give the embed box under the block policy.
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
}

// PreviewConfig controls the terminal preview command.
type PreviewConfig struct {
	// Width is the wrap width in columns; 0 uses the terminal width.
	Width int `yaml:"width"`

	// Color is "auto", "always" or "never".
	Color ColorMode `yaml:"color"`
}

// Config is the root configuration structure for mdspan.
type Config struct {
	Image   ImageConfig   `yaml:"image"`
	Preview PreviewConfig `yaml:"preview"`

	// DetectLanguage enables fenced-code language detection.
	DetectLanguage bool `yaml:"detect_language"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Image: ImageConfig{
			Policy:     ImagePolicyInline,
			LineHeight: 16,
			Height:     160,
			Width:      240,
		},
		Preview: PreviewConfig{
			Width: 0,
			Color: ColorAuto,
		},
		DetectLanguage: true,
		LogLevel:       "info",
	}
}
