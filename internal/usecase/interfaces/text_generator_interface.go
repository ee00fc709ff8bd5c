package interfaces

import "context"

// ITextGenerator abstracts the LLM used to phrase recommendations.
type ITextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
