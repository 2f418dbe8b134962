// Package dialect holds the catalog of SQL flavors: per-dialect
// placeholder styles, identifier quoting and literal-formatting rules.
// Dialect values are immutable process-wide singletons; only the
// process default selection is swappable, through Override.
package dialect

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrUnsupportedLiteral is returned when a dialect has no literal
// syntax for a value kind (for example byte literals on Informix).
var ErrUnsupportedLiteral = errors.New("dialect: no literal syntax for value")

// BindStyle identifies the placeholder grammar a dialect emits into
// rendered SQL. The interpolator picks its scanner by style.
type BindStyle int

const (
	BindQuestion BindStyle = iota // ?
	BindDollar                    // $1, $2, ...
	BindAtP                       // @p1, @p2, ...
	BindColon                     // :1, :2, ...
)

// Dialect describes one SQL flavor.
type Dialect interface {
	Name() string

	// Placeholder returns the bound-parameter marker for the value at
	// the given 0-based position in the final args sequence.
	Placeholder(n int) string

	// NamedPlaceholder returns the inline named-bind form for a named
	// scalar, and whether this dialect binds named arguments at all.
	// Dialects reporting false fall back to positional slots.
	NamedPlaceholder(name string) (string, bool)

	QuoteIdentifier(name string) string
	BindStyle() BindStyle

	// Literal-formatting rules, used by the interpolation escaper.
	EncodeString(s string) string
	EncodeBool(b bool) string
	EncodeBytes(data []byte) (string, error)
	EncodeTime(t time.Time) string
}

// Flavor catalog. Each entry is a stateless singleton.
var (
	MySQL      Dialect = mySQL{}
	PostgreSQL Dialect = postgreSQL{}
	SQLite     Dialect = sqLite{}
	SQLServer  Dialect = sqlServer{}
	Oracle     Dialect = oracle{}
	CQL        Dialect = cql{}
	ClickHouse Dialect = clickHouse{}
	Presto     Dialect = presto{}
	Informix   Dialect = informix{}
	Doris      Dialect = doris{}
)

var registry = struct {
	mu sync.RWMutex
	m  map[string]Dialect
}{m: make(map[string]Dialect, 16)}

func init() {
	for _, d := range []Dialect{
		MySQL, PostgreSQL, SQLite, SQLServer, Oracle,
		CQL, ClickHouse, Presto, Informix, Doris,
	} {
		Register(d)
	}
}

// Register adds a dialect to the lookup registry, keyed by Name.
func Register(d Dialect) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.m[d.Name()] = d
}

// Lookup returns the registered dialect with the given name.
func Lookup(name string) (Dialect, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	d, ok := registry.m[name]
	return d, ok
}

var (
	defaultMu      sync.RWMutex
	defaultDialect = MySQL

	// overrideMu serializes scoped overrides so concurrent overriders
	// cannot interleave restore order.
	overrideMu sync.Mutex
)

// Default returns the process-wide default dialect. Resolve it once at
// the start of a top-level build and thread the resolved value through
// nested calls; never re-read it mid-render.
func Default() Dialect {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultDialect
}

// SetDefault replaces the process-wide default dialect and returns the
// previous one.
func SetDefault(d Dialect) Dialect {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	old := defaultDialect
	defaultDialect = d
	return old
}

// Override sets the default dialect for a scope. The returned restore
// func must be called on every exit path, typically via defer; it puts
// the prior default back and releases the override lock.
func Override(d Dialect) (restore func()) {
	overrideMu.Lock()
	old := SetDefault(d)
	var once sync.Once
	return func() {
		once.Do(func() {
			SetDefault(old)
			overrideMu.Unlock()
		})
	}
}
