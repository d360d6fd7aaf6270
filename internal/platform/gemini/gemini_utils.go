package gemini

import (
	"strings"

	"github.com/phrazzld/jtube/internal/generation"
	"google.golang.org/genai"
)

func buildContents(prompt string) []*genai.Content {
	return []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
}

func buildConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature: genai.Ptr(Temperature),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
}

// responseText concatenates the text parts of the first candidate, skipping
// model thoughts. A response without candidates yields "".
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range c.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// citations extracts web grounding chunks of the first candidate in order.
func citations(resp *genai.GenerateContentResponse) []generation.Citation {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	c := resp.Candidates[0]
	if c == nil || c.GroundingMetadata == nil {
		return nil
	}
	out := make([]generation.Citation, 0, len(c.GroundingMetadata.GroundingChunks))
	for _, chunk := range c.GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		out = append(out, generation.Citation{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return out
}
