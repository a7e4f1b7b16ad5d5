// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Ambient   AmbientConfig   `yaml:"ambient"`
	Material  MaterialConfig  `yaml:"material"`
	Placement PlacementConfig `yaml:"placement"`
	Export    ExportConfig    `yaml:"export"`
	UI        UIConfig        `yaml:"ui"`
	Logging   LoggingConfig   `yaml:"logging"`

	// savePath is where Save writes back to: the file the config was
	// loaded from, or empty for the default location.
	savePath string
}

// SetSavePath overrides where Save writes the config.
func (c *Config) SetSavePath(path string) {
	c.savePath = path
}

// GraphicsConfig holds window and display settings.
type GraphicsConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	VSync        bool    `yaml:"vsync"`
	DisplayRatio float64 `yaml:"display_ratio"` // Preview panel scale relative to export size
	PixelRatio   float64 `yaml:"pixel_ratio"`   // Device pixel ratio of the pointer stream
}

// AmbientConfig holds the ambient light settings.
type AmbientConfig struct {
	Color     [3]float64 `yaml:"color"` // RGB in 0-1 range
	Intensity float64    `yaml:"intensity"`
}

// MaterialConfig holds the sphere material settings.
type MaterialConfig struct {
	Roughness float64 `yaml:"roughness"`
	Metalness float64 `yaml:"metalness"`
}

// PlacementConfig holds light placement settings.
type PlacementConfig struct {
	Distance  float64 `yaml:"distance"`   // Offset along the surface normal
	LightType string  `yaml:"light_type"` // "point" or "spot"
	Front     bool    `yaml:"front"`      // false places behind the sphere (z negated)
}

// ExportConfig holds capture and export settings.
type ExportConfig struct {
	Size       int     `yaml:"size"`        // Square capture resolution at ratio 1
	PixelRatio float64 `yaml:"pixel_ratio"` // Density multiplier for exported images
	OutputDir  string  `yaml:"output_dir"`
}

// UIConfig holds overlay settings.
type UIConfig struct {
	ShowLightHandles bool `yaml:"show_light_handles"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:        900,
			Height:       600,
			VSync:        true,
			DisplayRatio: 1.0,
			PixelRatio:   1.0,
		},
		Ambient: AmbientConfig{
			Color:     [3]float64{1, 1, 1},
			Intensity: 0.2,
		},
		Material: MaterialConfig{
			Roughness: 0.25,
			Metalness: 0.0,
		},
		Placement: PlacementConfig{
			Distance:  0.5,
			LightType: "point",
			Front:     true,
		},
		Export: ExportConfig{
			Size:       512,
			PixelRatio: 2.0,
			OutputDir:  "exports",
		},
		UI: UIConfig{
			ShowLightHandles: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
