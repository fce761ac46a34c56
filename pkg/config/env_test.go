package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("FEEDDECK_TEST_STR", "value")
	if got := GetEnvString("FEEDDECK_TEST_STR", "fallback"); got != "value" {
		t.Fatalf("got %q", got)
	}
	if got := GetEnvString("FEEDDECK_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("FEEDDECK_TEST_INT", "42")
	if got := GetEnvInt("FEEDDECK_TEST_INT", 7); got != 42 {
		t.Fatalf("got %d", got)
	}

	t.Setenv("FEEDDECK_TEST_INT", "not-a-number")
	if got := GetEnvInt("FEEDDECK_TEST_INT", 7); got != 7 {
		t.Fatalf("invalid value must fall back, got %d", got)
	}

	if got := GetEnvInt("FEEDDECK_TEST_UNSET", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true}, {"t", true}, {"true", true}, {"TRUE", true},
		{"0", false}, {"f", false}, {"false", false}, {"False", false},
	}
	for _, tt := range tests {
		t.Setenv("FEEDDECK_TEST_BOOL", tt.value)
		if got := GetEnvBool("FEEDDECK_TEST_BOOL", !tt.want); got != tt.want {
			t.Fatalf("value %q: got %v", tt.value, got)
		}
	}

	t.Setenv("FEEDDECK_TEST_BOOL", "yes")
	if got := GetEnvBool("FEEDDECK_TEST_BOOL", true); got != true {
		t.Fatal("invalid value must fall back to default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("FEEDDECK_TEST_DUR", "90s")
	if got := GetEnvDuration("FEEDDECK_TEST_DUR", time.Minute); got != 90*time.Second {
		t.Fatalf("got %v", got)
	}

	t.Setenv("FEEDDECK_TEST_DUR", "soon")
	if got := GetEnvDuration("FEEDDECK_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("invalid value must fall back, got %v", got)
	}
}
