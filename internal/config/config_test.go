package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_PageSizeOrdering(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Search: SearchConfig{DefaultPageSize: 100, MaxPageSize: 50},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for default page size above max")
	}
}

func TestValidate_NegativeSimulatedDelay(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Search: SearchConfig{DefaultPageSize: 5, MaxPageSize: 50, SimulatedDelayMs: -100},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative simulated delay")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Cache.TTLSec != 30 {
		t.Errorf("expected TTLSec=30, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Cache.KeyPrefix != "deskhub:page_cache:" {
		t.Errorf("expected KeyPrefix='deskhub:page_cache:', got %q", cfg.Cache.KeyPrefix)
	}
	if cfg.Cache.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Cache.ReadinessTimeout)
	}
	if cfg.Search.DefaultPageSize != 5 {
		t.Errorf("expected DefaultPageSize=5, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 50 {
		t.Errorf("expected MaxPageSize=50, got %d", cfg.Search.MaxPageSize)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Cache:  CacheConfig{TTLSec: 120, KeyPrefix: "custom:", ReadinessTimeout: 15},
		Search: SearchConfig{DefaultPageSize: 10, MaxPageSize: 25},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Cache.TTLSec != 120 {
		t.Errorf("expected TTLSec=120, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Cache.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Cache.KeyPrefix)
	}
	if cfg.Search.DefaultPageSize != 10 {
		t.Errorf("expected DefaultPageSize=10, got %d", cfg.Search.DefaultPageSize)
	}
}

func TestCacheEnabled(t *testing.T) {
	var cfg CacheConfig
	if cfg.Enabled() {
		t.Error("empty cache config must be disabled")
	}

	cfg.Addrs = []string{"localhost:6379"}
	if !cfg.Enabled() {
		t.Error("cache with addrs must be enabled")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DESKHUB_TEST_PORT", "9090")

	in := []byte("port: ${DESKHUB_TEST_PORT}\nprefix: ${DESKHUB_TEST_MISSING:-fallback:}\nempty: ${DESKHUB_TEST_UNSET}")
	out := string(expandEnvVars(in))

	want := "port: 9090\nprefix: fallback:\nempty: "
	if out != want {
		t.Errorf("expanded = %q, want %q", out, want)
	}
}
