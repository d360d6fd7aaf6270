package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAbsentKey(t *testing.T) {
	tests := map[string]bool{
		"":            true,
		"   ":         true,
		"undefined":   true,
		" undefined ": true,
		"AIza-key":    false,
		"Undefined":   false,
	}
	for key, want := range tests {
		assert.Equal(t, want, IsAbsentKey(key), "key %q", key)
	}
}

func TestEnvKeySource(t *testing.T) {
	t.Run("first usable variable wins", func(t *testing.T) {
		t.Setenv("JTUBE_TEST_KEY_A", "undefined")
		t.Setenv("JTUBE_TEST_KEY_B", " key-b ")
		ks := EnvKeySource("fallback", "JTUBE_TEST_KEY_A", "JTUBE_TEST_KEY_B")
		assert.Equal(t, "key-b", ks())
	})

	t.Run("falls back to configured value", func(t *testing.T) {
		t.Setenv("JTUBE_TEST_KEY_A", "")
		ks := EnvKeySource("configured", "JTUBE_TEST_KEY_A")
		assert.Equal(t, "configured", ks())
	})

	t.Run("absent everywhere", func(t *testing.T) {
		ks := EnvKeySource("undefined", "JTUBE_TEST_KEY_UNSET")
		assert.Equal(t, "", ks())
	})

	t.Run("read at call time", func(t *testing.T) {
		ks := EnvKeySource("", "JTUBE_TEST_KEY_LATE")
		assert.Equal(t, "", ks())
		t.Setenv("JTUBE_TEST_KEY_LATE", "late-key")
		assert.Equal(t, "late-key", ks())
	})
}
