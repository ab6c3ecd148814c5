package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mosa3ed/launchicon/internal/paths"
)

// DefaultSource is the app icon the launch icon is generated from.
const DefaultSource = "assets/images/mosa3ed_kfu_icon_app.jpg"

// DefaultOutput is where the Android build picks up the launch icon.
const DefaultOutput = "android/app/src/main/res/mipmap-xxxhdpi/launcher_icon.png"

// DefaultSize is the launch icon side length in pixels.
const DefaultSize = 200

// MQTT configures the optional "icon generated" notification.
type MQTT struct {
	Broker   string `json:"broker,omitempty"`
	Topic    string `json:"topic,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	QoS      byte   `json:"qos,omitempty"`
	Retain   bool   `json:"retain,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Enabled reports whether a broker has been configured.
func (m MQTT) Enabled() bool {
	return m.Broker != ""
}

// Config holds the generation parameters and optional side channels.
type Config struct {
	Source string `json:"source"`
	Output string `json:"output"`
	Size   int    `json:"size"`
	Log    bool   `json:"log,omitempty"`
	MQTT   MQTT   `json:"mqtt,omitempty"`
}

// Default returns the built-in configuration used when no file is found.
func Default() Config {
	return Config{
		Source: DefaultSource,
		Output: DefaultOutput,
		Size:   DefaultSize,
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Validate reports the first problem that would prevent generation.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("source path is empty")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Size <= 0 {
		return fmt.Errorf("size must be a positive number of pixels, got %d", c.Size)
	}
	if c.MQTT.Enabled() && c.MQTT.Topic == "" {
		return errors.New("mqtt broker is set but topic is empty")
	}
	if c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt qos must be 0, 1 or 2, got %d", c.MQTT.QoS)
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; must exist)
//  2. launchicon.json in the working directory
//  3. launchicon.json in the data directory
//
// When none exist the built-in defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	for _, p := range []string{
		paths.ConfigFileName,
		filepath.Join(paths.DataDir(), paths.ConfigFileName),
	} {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
