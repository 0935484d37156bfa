package config

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func clearSuiteEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BASE_URL", "HEADLESS", "SLOWMO_MS",
		"TIMEOUT_MS", "NAVIGATION_TIMEOUT_MS", "SCREENSHOT_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsWhenEnvEmpty(t *testing.T) {
	clearSuiteEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load cleanly, got error: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if !cfg.Headless {
		t.Error("Headless should default to true")
	}
	if cfg.SlowMo != 0 {
		t.Errorf("SlowMo = %v, want 0", cfg.SlowMo)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.NavigationTimeout != 30*time.Second {
		t.Errorf("NavigationTimeout = %v, want 30s", cfg.NavigationTimeout)
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", cfg.ScreenshotDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearSuiteEnv(t)
	t.Setenv("BASE_URL", "http://127.0.0.1:8080/")
	t.Setenv("HEADLESS", "false")
	t.Setenv("SLOWMO_MS", "100")
	t.Setenv("TIMEOUT_MS", "2500")
	t.Setenv("NAVIGATION_TIMEOUT_MS", "10000")
	t.Setenv("SCREENSHOT_DIR", "/tmp/shots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:8080" {
		t.Errorf("BaseURL = %q, want trailing slash stripped", cfg.BaseURL)
	}
	if cfg.Headless {
		t.Error("HEADLESS=false should disable headless")
	}
	if cfg.SlowMo != 100*time.Millisecond {
		t.Errorf("SlowMo = %v, want 100ms", cfg.SlowMo)
	}
	if cfg.Timeout != 2500*time.Millisecond {
		t.Errorf("Timeout = %v, want 2.5s", cfg.Timeout)
	}
	if cfg.TimeoutMS() != 2500 {
		t.Errorf("TimeoutMS = %v, want 2500", cfg.TimeoutMS())
	}
	if cfg.NavigationTimeoutMS() != 10000 {
		t.Errorf("NavigationTimeoutMS = %v, want 10000", cfg.NavigationTimeoutMS())
	}
	if cfg.ScreenshotDir != "/tmp/shots" {
		t.Errorf("ScreenshotDir = %q", cfg.ScreenshotDir)
	}
}

func TestLoad_RejectsMalformedValues(t *testing.T) {
	cases := []struct {
		key, value, want string
	}{
		{"TIMEOUT_MS", "soon", "TIMEOUT_MS"},
		{"NAVIGATION_TIMEOUT_MS", "10s", "NAVIGATION_TIMEOUT_MS"},
		{"SLOWMO_MS", "-5", "SLOWMO_MS"},
		{"HEADLESS", "maybe", "HEADLESS"},
		{"BASE_URL", "bitsight.com", "BASE_URL"},
		{"TIMEOUT_MS", "0", "TIMEOUT_MS must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearSuiteEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected validation error for %s=%q", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestLoad_ValidMillisecondsRoundtrip(t *testing.T) {
	clearSuiteEnv(t)

	rapid.Check(t, func(rt *rapid.T) {
		ms := rapid.IntRange(1, 600000).Draw(rt, "ms")
		t.Setenv("TIMEOUT_MS", strconv.Itoa(ms))

		cfg, err := Load()
		if err != nil {
			rt.Fatalf("Load(%d): %v", ms, err)
		}
		if got := cfg.Timeout; got != time.Duration(ms)*time.Millisecond {
			rt.Fatalf("Timeout = %v, want %dms", got, ms)
		}
		if got := cfg.TimeoutMS(); got != float64(ms) {
			rt.Fatalf("TimeoutMS = %v, want %d", got, ms)
		}
	})
}
