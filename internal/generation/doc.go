// Package generation holds the provider-neutral half of SEO content
// generation: the Generator interface that delivery code depends on, the
// prompt builder that renders a GenerationRequest into LLM instructions, the
// lenient parser that turns the model's free-text answer into a
// GenerationResult, and the classifier that maps upstream failures onto the
// two user-facing error kinds (funding required, generation failed).
//
// Provider adapters (see internal/platform/gemini) own the network call and
// reuse everything here, so the output template and the trigger set for
// funding errors are defined in exactly one place.
package generation
