package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultPath is used when no -config flag is given.
const DefaultPath = "gizmoview.json"

type Config struct {
	Window    Window    `json:"window"`
	Telemetry Telemetry `json:"telemetry"`
}

type Window struct {
	Width     int32  `json:"width"`
	Height    int32  `json:"height"`
	Title     string `json:"title"`
	TargetFPS int32  `json:"targetFPS"`
	Resizable bool   `json:"resizable"`
	HighDPI   bool   `json:"highDPI"`
}

// Telemetry configures orientation publishing over MQTT.
type Telemetry struct {
	Enabled    bool   `json:"enabled"`
	Broker     string `json:"broker"`
	ClientID   string `json:"clientID"`
	TopicLeft  string `json:"topicLeft"`
	TopicRight string `json:"topicRight"`
	QoS        byte   `json:"qos"`
	IntervalMs int    `json:"intervalMs"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Gizmos",
			TargetFPS: 60,
			Resizable: true,
			HighDPI:   false,
		},
		Telemetry: Telemetry{
			Enabled:    false,
			Broker:     "tcp://localhost:1883",
			ClientID:   "gizmoview",
			TopicLeft:  "gizmoview/orientation/left",
			TopicRight: "gizmoview/orientation/right",
			QoS:        0,
			IntervalMs: 100,
		},
	}
}

// Load reads a JSON config on top of the defaults. A missing file is not an
// error; the defaults are returned as is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("targetFPS must not be negative, got %d", c.Window.TargetFPS)
	}

	t := c.Telemetry
	if !t.Enabled {
		return nil
	}
	if t.Broker == "" {
		return fmt.Errorf("telemetry.broker is required when telemetry is enabled")
	}
	if t.TopicLeft == "" || t.TopicRight == "" {
		return fmt.Errorf("telemetry.topicLeft and telemetry.topicRight are required when telemetry is enabled")
	}
	if t.QoS > 2 {
		return fmt.Errorf("telemetry.qos must be 0, 1 or 2, got %d", t.QoS)
	}
	if t.IntervalMs <= 0 {
		return fmt.Errorf("telemetry.intervalMs must be positive, got %d", t.IntervalMs)
	}
	return nil
}
