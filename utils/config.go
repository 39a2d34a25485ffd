package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
)

// Config holds the configuration for a run
type Config struct {
	Size           int           `json:"size"`
	MaxFrames      int           `json:"max_frames"`
	FrameRate      time.Duration `json:"frame_rate"`
	Preset         string        `json:"preset"`
	PresetsFile    string        `json:"presets_file"`
	Seed           int64         `json:"seed"`
	UseBoundedGrid bool          `json:"use_bounded_grid"`
	Render         bool          `json:"render"`
	ClearScreen    bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           100,
		MaxFrames:      100,
		FrameRate:      100 * time.Millisecond,
		PresetsFile:    "presets.json",
		UseBoundedGrid: true, // Enable active region optimization
		Render:         true,
		ClearScreen:    true,
	}
}

// Validate checks the values a run cannot start without
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("[Validate] size must be positive, got: %+v", c.Size)
	}
	if c.MaxFrames < 0 {
		return errors.Errorf("[Validate] max_frames must not be negative, got: %+v", c.MaxFrames)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got: %+v", c.FrameRate)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
