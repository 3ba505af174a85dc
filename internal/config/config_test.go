package config

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("TANKER_TEST_KEY", "set")

	if v := Get("TANKER_TEST_KEY", "fallback"); v != "set" {
		t.Fatalf("Get returned %q, want %q", v, "set")
	}
	if v := Get("TANKER_TEST_MISSING_KEY", "fallback"); v != "fallback" {
		t.Fatalf("Get returned %q, want fallback", v)
	}
}
