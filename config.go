package bounceback

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MinDuration is the smallest accepted value, in seconds, for both timing
// parameters. Smaller values and NaN are raised to it.
const MinDuration = 0.01

// Config holds the two BounceBack timings, in seconds.
//
// Example YAML:
//
//	bounceBackTime: 1.0
//	bounceBackDelay: 0.5
type Config struct {
	// BounceBackTime is the duration of the return animation.
	BounceBackTime float64 `yaml:"bounceBackTime"`

	// BounceBackDelay is the grace period after release before the
	// animation starts. A re-grab inside it cancels the bounce.
	BounceBackDelay float64 `yaml:"bounceBackDelay"`
}

// DefaultConfig returns a one second animation after a half second delay.
func DefaultConfig() Config {
	return Config{BounceBackTime: 1.0, BounceBackDelay: 0.5}
}

// normalized returns c with both timings raised to MinDuration.
func (c Config) normalized() Config {
	c.BounceBackTime = atLeast(c.BounceBackTime, MinDuration)
	c.BounceBackDelay = atLeast(c.BounceBackDelay, MinDuration)
	return c
}

// atLeast returns v, or floor when v is smaller or NaN.
func atLeast(v, floor float64) float64 {
	if !(v >= floor) {
		return floor
	}
	return v
}

// ParseConfig decodes YAML into a Config. Missing keys keep their defaults,
// unknown keys are rejected, and the result is normalized.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalized(), nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
