// Package config loads JTube settings from defaults, an optional config.yaml
// and JTUBE_* environment variables, and validates the result.
//
// The Gemini API key is optional here. A server without one still starts and
// answers every generation with a funding error.
package config
