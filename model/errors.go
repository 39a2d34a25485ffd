package model

import "github.com/pkg/errors"

// Construction errors. Callers classify failures with errors.Is; the
// returned errors carry context wrapped around these sentinels.
var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrPresetMalformed = errors.New("preset malformed")
	ErrMalformedGrid   = errors.New("malformed grid")
	ErrInvalidSize     = errors.New("invalid grid size")
)
