// Package domain contains the value types that flow through a generation:
// the user's request for a game video (GenerationRequest) and the generated
// SEO content returned for it (GenerationResult). It is independent of the
// LLM provider and of any delivery mechanism.
package domain
