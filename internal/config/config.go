package config

import (
	"os"
	"strings"

	"venus/internal/console"
)

// Config holds settings read from the environment. CLI flags are applied on
// top by the caller.
type Config struct {
	NoColor    bool
	ForceColor bool
	TimeFormat string
}

// Load reads NO_COLOR, VENUS_NO_COLOR, CLICOLOR_FORCE, VENUS_FORCE_COLOR and
// VENUS_TIME_FORMAT. NoColor wins over ForceColor.
func Load() Config {
	c := Config{TimeFormat: console.DefaultTimeFormat}
	// NO_COLOR only cares about presence of a non-empty value (no-color.org)
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		c.NoColor = true
	}
	if truthy(os.Getenv("VENUS_NO_COLOR")) {
		c.NoColor = true
	}
	if !c.NoColor && (truthy(os.Getenv("CLICOLOR_FORCE")) || truthy(os.Getenv("VENUS_FORCE_COLOR"))) {
		c.ForceColor = true
	}
	if v := strings.TrimSpace(os.Getenv("VENUS_TIME_FORMAT")); v != "" {
		c.TimeFormat = v
	}
	return c
}

// truthy is false for "", "0" and "false" (any case).
func truthy(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}
