package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
)

// config is read from the optional YAML file named by -config; flags
// given on the command line take precedence.
type config struct {
	Prefix   string `yaml:"prefix"`
	Holidays string `yaml:"holidays"`
	Remote   bool   `yaml:"remote"`
	CacheDir string `yaml:"cache-dir"`
	RestDay  string `yaml:"rest-day"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log-level"`
}

func defaultConfig() config {
	return config{
		Prefix:   "calendar",
		Holidays: "persian_holidays.json",
		RestDay:  "friday",
		Color:    "auto",
		LogLevel: "warn",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := cmdutil.ParseYAMLConfigFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (c config) restDay() (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(c.RestDay)]
	if !ok {
		return 0, fmt.Errorf("invalid rest day %q", c.RestDay)
	}
	return wd, nil
}

func (c config) logLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// useColor resolves auto, always and never.
func (c config) useColor(isTerminal bool) (bool, error) {
	switch c.Color {
	case "", "auto":
		return isTerminal, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid color mode %q", c.Color)
}
