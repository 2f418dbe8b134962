package builder

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/verdane/sqlfrag/dialect"
	"github.com/verdane/sqlfrag/value"
)

// segment is one element of the fully expanded template: either
// literal output text or an atomic value slot.
type segment struct {
	isText bool
	text   string
	val    value.Value
}

// expand performs phase one: tokens plus supplied values become a flat
// segment sequence. Lists and tuples widen into sibling slots, raw
// values collapse into text, named references resolve to their target.
// The returned count is the number of atomic slots, checked against
// phase two.
func (t *Template) expand() ([]segment, int, error) {
	toks, err := t.tokens()
	if err != nil {
		return nil, 0, err
	}
	vals := t.args.values
	if t.mode == modePrintf {
		if verbs := countSeq(toks); verbs != len(vals) {
			return nil, 0, errors.Wrapf(ErrArityMismatch,
				"%d verbs in %q, %d values", verbs, t.format, len(vals))
		}
	}

	var segs []segment
	slots := 0
	cursor := 0
	for _, tok := range toks {
		switch tok.kind {
		case tokenText:
			segs = append(segs, segment{isText: true, text: tok.text})
		case tokenSeq:
			if cursor >= len(vals) {
				return nil, 0, errors.Wrapf(ErrIndexOutOfRange,
					"sequential marker needs value %d, have %d", cursor, len(vals))
			}
			n, err := expandValue(vals[cursor], &segs)
			if err != nil {
				return nil, 0, err
			}
			slots += n
			cursor++
		case tokenIndex:
			if tok.idx >= len(vals) {
				return nil, 0, errors.Wrapf(ErrIndexOutOfRange,
					"$%d with %d values", tok.idx, len(vals))
			}
			n, err := expandValue(vals[tok.idx], &segs)
			if err != nil {
				return nil, 0, err
			}
			slots += n
			cursor = tok.idx + 1
		case tokenName:
			v, ok := t.lookupName(tok.text)
			if !ok {
				return nil, 0, errors.Wrapf(ErrUndefinedName, "${%s}", tok.text)
			}
			n, err := expandValue(v, &segs)
			if err != nil {
				return nil, 0, err
			}
			slots += n
		}
	}
	return segs, slots, nil
}

func (t *Template) tokens() ([]token, error) {
	switch t.mode {
	case modePrintf:
		return parsePrintf(t.format)
	case modeNamed:
		return parseNamed(t.format)
	default:
		return parseIndex(t.format)
	}
}

func (t *Template) lookupName(name string) (value.Value, bool) {
	if t.mode == modeNamed {
		v, ok := t.namedVals[name]
		return v, ok
	}
	idx, ok := t.args.named[name]
	if !ok {
		return value.Value{}, false
	}
	return t.args.values[idx], true
}

// expandValue appends the segments for one consumed value and returns
// how many atomic slots it produced. Valuers resolve here, so a valuer
// producing a raw or a list expands structurally like the value it
// yields.
func expandValue(v value.Value, segs *[]segment) (int, error) {
	v, err := v.Resolve()
	if err != nil {
		return 0, err
	}
	switch v.Kind() {
	case value.KindRaw:
		*segs = append(*segs, segment{isText: true, text: v.RawSQL()})
		return 0, nil
	case value.KindList:
		return expandItems(v.Items(), segs)
	case value.KindTuple:
		*segs = append(*segs, segment{isText: true, text: "("})
		n, err := expandItems(v.Items(), segs)
		if err != nil {
			return 0, err
		}
		*segs = append(*segs, segment{isText: true, text: ")"})
		return n, nil
	case value.KindNamed:
		// Named wrappers around structural values behave like the
		// value itself; the bind name only applies to scalars.
		switch v.Inner().Kind() {
		case value.KindRaw, value.KindList, value.KindTuple, value.KindBuilder:
			return expandValue(v.Inner(), segs)
		}
		*segs = append(*segs, segment{val: v})
		return 1, nil
	default:
		*segs = append(*segs, segment{val: v})
		return 1, nil
	}
}

func expandItems(items []value.Value, segs *[]segment) (int, error) {
	n := 0
	for i, item := range items {
		if i > 0 {
			*segs = append(*segs, segment{isText: true, text: ", "})
		}
		k, err := expandValue(item, segs)
		if err != nil {
			return 0, err
		}
		n += k
	}
	return n, nil
}

// assign performs phase two: a single left-to-right walk over the
// expanded sequence, emitting dialect placeholder text and building
// the final args sequence. Nested builders render with the same
// dialect and the args accumulated so far, keeping numbering globally
// consistent. Named binds render inline on dialects that support them
// and ride behind the positional args, deduplicated by name.
func assign(segs []segment, slots int, d dialect.Dialect, initial []value.Value) (string, []value.Value, error) {
	var sb strings.Builder
	out := make([]value.Value, len(initial), len(initial)+slots)
	copy(out, initial)

	var namedTail []value.Value
	var namedSeen map[string]bool
	addNamed := func(v value.Value) {
		if namedSeen == nil {
			namedSeen = make(map[string]bool)
		}
		if !namedSeen[v.BindName()] {
			namedSeen[v.BindName()] = true
			namedTail = append(namedTail, v)
		}
	}

	consumed := 0
	for _, seg := range segs {
		if seg.isText {
			sb.WriteString(seg.text)
			continue
		}
		consumed++
		v := seg.val
		switch v.Kind() {
		case value.KindBuilder:
			sql, vals, err := v.BuilderRef().BuildWithFlavor(d, out...)
			if err != nil {
				return "", nil, err
			}
			sb.WriteString(sql)
			positional, tail := splitNamedTail(vals)
			out = positional
			for _, nv := range tail {
				addNamed(nv)
			}
		case value.KindNamed:
			if ph, ok := d.NamedPlaceholder(v.BindName()); ok {
				sb.WriteString(ph)
				addNamed(v)
			} else {
				inner, err := v.Inner().Resolve()
				if err != nil {
					return "", nil, err
				}
				sb.WriteString(d.Placeholder(len(out)))
				out = append(out, inner)
			}
		default:
			sb.WriteString(d.Placeholder(len(out)))
			out = append(out, v)
		}
	}

	if consumed != slots {
		panic(fmt.Sprintf("builder: expansion produced %d slots, assignment consumed %d", slots, consumed))
	}

	out = append(out, namedTail...)
	return sb.String(), out, nil
}

// splitNamedTail separates the trailing named-bind values a nested
// render appended after its positional args.
func splitNamedTail(vals []value.Value) ([]value.Value, []value.Value) {
	i := len(vals)
	for i > 0 && vals[i-1].Kind() == value.KindNamed {
		i--
	}
	if i == len(vals) {
		return vals, nil
	}
	tail := make([]value.Value, len(vals)-i)
	copy(tail, vals[i:])
	return vals[:i], tail
}
