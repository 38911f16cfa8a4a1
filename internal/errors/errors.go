// Package errors is the error toolkit of the repository and domain layers: sentinel
// errors, stack-carrying wraps from pkg/errors, and a compact stack rendering for logs.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// DefaultFrameLimit keeps a logged stack readable in Cloud Logging.
const DefaultFrameLimit = 8

// New returns a sentinel without a stack, e.g. repository.ErrOutOfStock.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// The wraps are bound directly so the recorded stack starts at the caller.
var (
	// Wrap records the caller's stack, or returns nil when err is nil.
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Frames renders the deepest recorded stack in err's chain as "func (file:line)",
// at most limit entries. It returns nil when no layer recorded a stack.
func Frames(err error, limit int) []string {
	var deepest pkgerrors.StackTrace
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		if tracer, ok := cur.(stackTracer); ok {
			deepest = tracer.StackTrace()
		}
	}
	if len(deepest) == 0 {
		return nil
	}
	if limit > 0 && len(deepest) > limit {
		deepest = deepest[:limit]
	}

	frames := make([]string, 0, len(deepest))
	for _, f := range deepest {
		frames = append(frames, fmt.Sprintf("%n (%s:%d)", f, f, f))
	}

	return frames
}
