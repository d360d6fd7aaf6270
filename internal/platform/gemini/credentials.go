package gemini

import (
	"os"
	"strings"
)

// DefaultKeyEnvVars are consulted in order when resolving the API credential.
var DefaultKeyEnvVars = []string{"JTUBE_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"}

// KeySource returns the API credential to use for a call, or "" when none is usable.
type KeySource func() string

// EnvKeySource reads the first usable credential from the named environment
// variables, falling back to the configured value. It is evaluated on every
// call so a key set after startup is picked up.
func EnvKeySource(fallback string, names ...string) KeySource {
	if len(names) == 0 {
		names = DefaultKeyEnvVars
	}
	return func() string {
		for _, name := range names {
			if v, ok := os.LookupEnv(name); ok && !IsAbsentKey(v) {
				return strings.TrimSpace(v)
			}
		}
		if IsAbsentKey(fallback) {
			return ""
		}
		return strings.TrimSpace(fallback)
	}
}

// StaticKeySource always returns key, normalised by IsAbsentKey.
func StaticKeySource(key string) KeySource {
	return func() string {
		if IsAbsentKey(key) {
			return ""
		}
		return strings.TrimSpace(key)
	}
}

// IsAbsentKey reports whether key should be treated as no credential at all.
// Build tooling sometimes substitutes the literal string "undefined" for an
// unset variable, so that counts as absent too.
func IsAbsentKey(key string) bool {
	key = strings.TrimSpace(key)
	return key == "" || key == "undefined"
}
