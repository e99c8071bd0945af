package testutil

import (
	"os"
	"testing"
)

// WithEnv points one of the color/time settings read by config.Load at val
// while a test runs. An empty val unsets the variable, which is how tests
// model NO_COLOR being absent. Defer the returned func to put the previous
// value back.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// ClearEnv unsets every key until the returned func runs, so a developer's
// own NO_COLOR or CLICOLOR_FORCE cannot leak into assertions on output.
func ClearEnv(t *testing.T, keys ...string) func() {
	t.Helper()
	restores := make([]func(), 0, len(keys))
	for _, k := range keys {
		restores = append(restores, WithEnv(t, k, ""))
	}
	return func() {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
	}
}
