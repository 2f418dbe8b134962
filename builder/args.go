package builder

import (
	"strconv"
	"strings"

	"github.com/verdane/sqlfrag/dialect"
	"github.com/verdane/sqlfrag/value"
)

// Args is the ordered accumulator of values backing one template. It
// is owned by a single template, append-only while the template is
// assembled, and read-only during renders.
type Args struct {
	d      dialect.Dialect
	values []value.Value
	named  map[string]int
}

// NewArgs creates an accumulator bound to the current default dialect.
func NewArgs() *Args {
	return NewArgsWithDialect(dialect.Default())
}

func NewArgsWithDialect(d dialect.Dialect) *Args {
	return &Args{d: d}
}

// Dialect returns the dialect the accumulator was created with.
func (a *Args) Dialect() dialect.Dialect { return a.d }

// Len reports the number of stored values.
func (a *Args) Len() int { return len(a.values) }

// Add appends a value and returns its internal $n marker, usable
// inside an index template. Named values register their bind name for
// ${name} references; adding the same name twice returns the first
// occurrence's marker.
func (a *Args) Add(v any) string {
	return "$" + strconv.Itoa(a.add(value.Of(v)))
}

func (a *Args) add(v value.Value) int {
	if v.Kind() == value.KindNamed {
		name := v.BindName()
		if a.named == nil {
			a.named = make(map[string]int)
		}
		if idx, ok := a.named[name]; ok {
			return idx
		}
		a.named[name] = len(a.values)
	}
	a.values = append(a.values, v)
	return len(a.values) - 1
}

// Replace swaps the value a $n marker points at. Markers that do not
// parse, or indexes past the stored values, are ignored.
func (a *Args) Replace(marker string, v any) {
	idx, ok := parseMarker(marker)
	if !ok || idx >= len(a.values) {
		return
	}
	a.values[idx] = value.Of(v)
}

// Value resolves a $n marker back to its stored value. The marker may
// carry a suffix; only the leading digits are read.
func (a *Args) Value(marker string) (value.Value, bool) {
	idx, ok := parseMarker(marker)
	if !ok || idx >= len(a.values) {
		return value.Value{}, false
	}
	return a.values[idx], true
}

func parseMarker(marker string) (int, bool) {
	if !strings.HasPrefix(marker, "$") {
		return 0, false
	}
	digits := marker[1:]
	end := 0
	for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
