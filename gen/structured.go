package gen

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/kaptinlin/jsonrepair"
	"github.com/pkg/errors"
)

// ErrMalformedModelOutput is the single error kind shared by all structured
// generation callers: the model replied but no well-formed JSON value could
// be extracted from its output.
var ErrMalformedModelOutput = errors.New("gen: malformed model output")

var jsonValue = regexp.MustCompile(`(?s)\{.*\}|\[.*\]`)

// GenerateJSON sends a prompt and decodes the first well-formed JSON value
// of the reply into out. Decoding is strict first; the single documented
// fallback extracts the first JSON-looking value and repairs it before
// retrying. Any remaining failure is ErrMalformedModelOutput.
func GenerateJSON(ctx context.Context, g Generator, prompt string, out interface{}) (err error) {
	// Generate
	var text string
	if text, err = g.Generate(ctx, prompt); err != nil {
		err = errors.Wrap(err, "gen: generating failed")
		return
	}

	// Strict decode
	if err = json.Unmarshal([]byte(text), out); err == nil {
		return
	}

	// Extract first JSON value
	v := jsonValue.FindString(text)
	if v == "" {
		err = errors.Wrapf(ErrMalformedModelOutput, "gen: no JSON value in %q", text)
		return
	}

	// Decode extracted value
	if err = json.Unmarshal([]byte(v), out); err == nil {
		return
	}

	// Repair and retry
	var fixed string
	if fixed, err = jsonrepair.JSONRepair(v); err != nil {
		err = errors.Wrapf(ErrMalformedModelOutput, "gen: repairing %q failed", v)
		return
	}
	if err = json.Unmarshal([]byte(fixed), out); err != nil {
		err = errors.Wrapf(ErrMalformedModelOutput, "gen: decoding repaired %q failed", fixed)
		return
	}
	return
}
