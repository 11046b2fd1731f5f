package gen

import "context"

// Generator produces text from a prompt. Implementations wrap an external
// generative language model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
