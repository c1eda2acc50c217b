package suggest

import (
	_ "embed"
	"strings"

	"rentwise-backend/internal/llm"
	"rentwise-backend/internal/shared/util"
)

const (
	systemAttempt1 = "You are a global real estate AI assistant that outputs only JSON arrays of property names."
	systemAttempt2 = "Return only valid JSON arrays of global property names. Never output anything except the array."

	maxTokensAttempt1 = 280
	maxTokensAttempt2 = 200

	temperatureAttempt1 float32 = 0.8
	temperatureAttempt2 float32 = 0.2
)

var (
	//go:embed prompts/attempt1.txt
	promptAttempt1 string
	//go:embed prompts/attempt2.txt
	promptAttempt2 string
)

// Builder constructs the instruction payload for a budget and attempt number.
// Pure function of its inputs; the denylist is data supplied by configuration.
type Builder struct {
	Denylist []string
}

// Build returns the chat request for the given attempt. Attempt 1 favors
// variety; attempt 2 reiterates the exact required shape with a worked
// example, a lower temperature, and a shorter output limit.
func (b *Builder) Build(budget float64, attempt int) llm.ChatRequest {
	replacer := strings.NewReplacer(
		"{{BUDGET}}", util.FormatAmount(budget),
		"{{DENYLIST}}", strings.Join(b.Denylist, ", "),
	)

	if attempt >= 2 {
		return llm.ChatRequest{
			System:      systemAttempt2,
			User:        replacer.Replace(promptAttempt2),
			MaxTokens:   maxTokensAttempt2,
			Temperature: temperatureAttempt2,
		}
	}
	return llm.ChatRequest{
		System:      systemAttempt1,
		User:        replacer.Replace(promptAttempt1),
		MaxTokens:   maxTokensAttempt1,
		Temperature: temperatureAttempt1,
	}
}
