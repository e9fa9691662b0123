package ai

import "context"

// TextGenerator is the capability the engine requires from an external
// text-completion service: a prompt in, generated text or an error out. Both
// the semantic scorer and the AI cover-letter path consume it, which keeps
// the deterministic scorers testable with a fake implementation.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
