package tts

import "context"

// Speaker converts text to a playable audio byte stream. Empty or
// whitespace-only text is a no-op that returns no audio. Callers must treat
// synthesis failure as non-fatal to the interview flow.
type Speaker interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
