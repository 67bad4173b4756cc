package genai

import (
	"errors"
	"fmt"
)

// maxErrorBody caps how much of an upstream error body gets captured.
const maxErrorBody = 2048

// ErrNoCandidates is returned when the upstream reply parses but carries no
// generated text.
var ErrNoCandidates = errors.New("genai: response contained no candidates")

// UpstreamError reports a failed generateContent call: either the transport
// failed (Err set) or the API answered with a non-success status.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("genai: upstream call failed: %v", e.Err)
	}
	return fmt.Sprintf("genai: upstream returned status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
