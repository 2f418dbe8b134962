package builder

import "github.com/pkg/errors"

// Errors reported by the template renderers. All of them indicate an
// authoring defect in the caller's template or argument list, never a
// transient condition; no partial SQL is produced alongside them.
var (
	// ErrTemplateSyntax marks a malformed marker or escape sequence.
	ErrTemplateSyntax = errors.New("builder: malformed template marker")

	// ErrIndexOutOfRange marks an explicit or sequential reference past
	// the supplied value list.
	ErrIndexOutOfRange = errors.New("builder: value index out of range")

	// ErrArityMismatch marks a verb/value count disagreement.
	ErrArityMismatch = errors.New("builder: marker and value counts differ")

	// ErrUndefinedName marks a named marker absent from the value map.
	ErrUndefinedName = errors.New("builder: name not bound")
)
