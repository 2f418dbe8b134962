// Package bind shapes rendered argument lists for execution with
// database/sql or pgx. Positional values convert to driver-native
// types; trailing named values become sql.Named or pgx.NamedArgs
// entries depending on the target.
package bind

import (
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/verdane/sqlfrag/value"
)

// Args converts rendered values into a slice suitable for
// database/sql Query and Exec. Named values become sql.NamedArg so
// drivers with named bind support can resolve them.
func Args(vals []value.Value) ([]any, error) {
	out := make([]any, 0, len(vals))
	for _, v := range vals {
		if v.Kind() == value.KindNamed {
			inner, err := v.Inner().Native()
			if err != nil {
				return nil, errors.Wrapf(err, "named arg %q", v.BindName())
			}
			out = append(out, sql.Named(v.BindName(), inner))
			continue
		}
		n, err := v.Native()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// PgxArgs converts rendered values for pgx. Positional values come
// back as a slice; named values are collected into pgx.NamedArgs,
// which pgx expects as a single argument.
func PgxArgs(vals []value.Value) ([]any, pgx.NamedArgs, error) {
	var positional []any
	var named pgx.NamedArgs

	for _, v := range vals {
		if v.Kind() == value.KindNamed {
			inner, err := v.Inner().Native()
			if err != nil {
				return nil, nil, errors.Wrapf(err, "named arg %q", v.BindName())
			}
			if named == nil {
				named = pgx.NamedArgs{}
			}
			named[v.BindName()] = inner
			continue
		}
		n, err := v.Native()
		if err != nil {
			return nil, nil, err
		}
		positional = append(positional, n)
	}
	return positional, named, nil
}
