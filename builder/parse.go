package builder

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/verdane/sqlfrag/cache"
)

type tokenKind int

const (
	tokenText  tokenKind = iota // literal output text
	tokenSeq                    // consume the next unused value
	tokenIndex                  // consume the value at an explicit index
	tokenName                   // consume a named value
)

// token is one parsed template segment. Parsed token lists are
// immutable and shared through the template caches.
type token struct {
	kind tokenKind
	text string // literal text, or the identifier for tokenName
	idx  int
}

// Parsed templates are memoized per mode; parsing is deterministic so
// the entries never invalidate.
var (
	indexCache  = cache.NewTemplateCache[[]token](256)
	printfCache = cache.NewTemplateCache[[]token](256)
	namedCache  = cache.NewTemplateCache[[]token](256)
)

// parseIndex tokenizes the $-marker template dialect: $$ is a literal
// dollar, $? consumes the next unused value, $N consumes value N,
// ${name} consumes a named value. Anything else after $ is malformed.
func parseIndex(format string) ([]token, error) {
	if toks, ok := indexCache.Get(format); ok {
		return toks, nil
	}

	var toks []token
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			toks = append(toks, token{kind: tokenText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(format); {
		c := format[i]
		if c != '$' {
			text.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(format) {
			return nil, errors.Wrapf(ErrTemplateSyntax, "dangling $ at end of %q", format)
		}
		switch next := format[i+1]; {
		case next == '$':
			text.WriteByte('$')
			i += 2
		case next == '?':
			flush()
			toks = append(toks, token{kind: tokenSeq})
			i += 2
		case next >= '0' && next <= '9':
			j := i + 1
			n := 0
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				n = n*10 + int(format[j]-'0')
				j++
			}
			flush()
			toks = append(toks, token{kind: tokenIndex, idx: n})
			i = j
		case next == '{':
			end := strings.IndexByte(format[i+2:], '}')
			if end < 0 {
				return nil, errors.Wrapf(ErrTemplateSyntax, "unterminated ${ in %q", format)
			}
			name := format[i+2 : i+2+end]
			if name == "" {
				return nil, errors.Wrapf(ErrTemplateSyntax, "empty ${} in %q", format)
			}
			flush()
			toks = append(toks, token{kind: tokenName, text: name})
			i += 2 + end + 1
		default:
			return nil, errors.Wrapf(ErrTemplateSyntax, "unknown marker $%c in %q", next, format)
		}
	}
	flush()

	indexCache.Set(format, toks)
	return toks, nil
}

// parsePrintf tokenizes the fmt-style dialect: %v and %s consume the
// next value, %% is a literal percent, any other sequence passes
// through as text.
func parsePrintf(format string) ([]token, error) {
	if toks, ok := printfCache.Get(format); ok {
		return toks, nil
	}

	var toks []token
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			toks = append(toks, token{kind: tokenText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			text.WriteByte(c)
			i++
			continue
		}
		switch format[i+1] {
		case 'v', 's':
			flush()
			toks = append(toks, token{kind: tokenSeq})
			i += 2
		case '%':
			text.WriteByte('%')
			i += 2
		default:
			text.WriteByte('%')
			i++
		}
	}
	flush()

	printfCache.Set(format, toks)
	return toks, nil
}

// parseNamed tokenizes the named dialect: only ${name} and $$ are
// markers; every other dollar is literal text.
func parseNamed(format string) ([]token, error) {
	if toks, ok := namedCache.Get(format); ok {
		return toks, nil
	}

	var toks []token
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			toks = append(toks, token{kind: tokenText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(format); {
		c := format[i]
		if c != '$' || i+1 >= len(format) {
			text.WriteByte(c)
			i++
			continue
		}
		switch format[i+1] {
		case '$':
			text.WriteByte('$')
			i += 2
		case '{':
			end := strings.IndexByte(format[i+2:], '}')
			if end < 0 {
				return nil, errors.Wrapf(ErrTemplateSyntax, "unterminated ${ in %q", format)
			}
			name := format[i+2 : i+2+end]
			if name == "" {
				return nil, errors.Wrapf(ErrTemplateSyntax, "empty ${} in %q", format)
			}
			flush()
			toks = append(toks, token{kind: tokenName, text: name})
			i += 2 + end + 1
		default:
			text.WriteByte('$')
			i++
		}
	}
	flush()

	namedCache.Set(format, toks)
	return toks, nil
}

func countSeq(toks []token) int {
	n := 0
	for _, t := range toks {
		if t.kind == tokenSeq {
			n++
		}
	}
	return n
}
