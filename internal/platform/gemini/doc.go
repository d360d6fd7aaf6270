// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API with Google Search grounding to produce
// YouTube SEO content for gameplay videos.
//
// This package is an infrastructure adapter: it translates a domain
// GenerationRequest into a single grounded model call and the model's text and
// citations back into a domain GenerationResult, without exposing genai types
// to the rest of the application.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Resolves the API credential at call time and fails fast with a funding
//     error when it is absent
//   - Issues exactly one GenerateContent call per request with the Google
//     Search tool enabled
//
// 2. Response Processing:
//   - Concatenates non-thought text parts of the first candidate
//   - Delegates section parsing to the generation package
//   - Maps grounding chunks to display sources
//
// 3. Error Handling:
//   - Classifies provider failures as funding or generation failures
//   - Redacts credentials before anything is logged
package gemini
