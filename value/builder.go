package value

import "github.com/verdane/sqlfrag/dialect"

// Builder is any render-capable artifact. BuildWithFlavor renders with
// an explicit dialect; initial seeds the args sequence so placeholder
// numbering stays globally consistent when the artifact is spliced
// into a larger query.
type Builder interface {
	Build() (string, []Value, error)
	BuildWithFlavor(d dialect.Dialect, initial ...Value) (string, []Value, error)
	Dialect() dialect.Dialect
}

// Valuer produces its value at build time. It is invoked during
// rendering and interpolation, never stored pre-resolved.
type Valuer interface {
	SQLValue() (Value, error)
}
