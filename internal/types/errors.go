package types

import "github.com/ZanzyTHEbar/errbuilder-go"

// NewBadReference builds the one error condition the core is allowed to
// surface to its caller: a reference string whose version component is
// non-empty but unparseable, or whose operator run is ambiguous.
func NewBadReference(raw string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("bad reference: " + raw)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}
