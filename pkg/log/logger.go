// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/flintlog/flint/pkg/throttle"
)

// Logger renders bounded single-line frames from a tokenized format template
// and hands them to a sink. The token sequence is produced exactly once at
// construction and never mutated afterward; the verbosity threshold may be
// changed at any time. Every operation runs to completion on the caller's
// goroutine.
type Logger struct {
	// name is substituted for the %N directive.
	name string

	// tokens is the tokenized format template, read-only after New.
	tokens []Token

	// verbosity is the mutable filtering threshold.
	// Messages less urgent than it are rejected.
	verbosity Level

	sink   Sink
	clock  ClockFunc
	styles *Styles
	label  LabelFunc

	// throttle tracks the last permitted emission instant per key
	// for LogEvery.
	throttle *throttle.Registry

	// levelHooks allow triggering of registered hooks
	// on their associated severity log levels.
	levelHooks levelHooks

	metrics metrics
}

// New returns a ready to use Logger. The format template is tokenized here,
// once; construction is the only place a template is parsed.
func New(name string, opts ...Option) *Logger {
	o := &Options{
		sink:      NewWriterSink(Lock(os.Stderr)),
		format:    DefaultFormat,
		verbosity: LevelNone,
		clock:     time.Now,
		label:     DefaultLabel,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.styles == nil {
		o.styles = &Styles{}
	}

	l := &Logger{
		name:       name,
		tokens:     Tokenize(o.format),
		sink:       o.sink,
		clock:      o.clock,
		styles:     o.styles,
		label:      o.label,
		throttle:   throttle.New(),
		levelHooks: o.levelHooks,
		metrics:    newMetrics(name),
	}
	l.verbosity.set(o.verbosity)
	return l
}

// Name returns the configured logger name.
func (l *Logger) Name() string {
	return l.name
}

// Verbosity returns the current verbosity threshold.
func (l *Logger) Verbosity() Level {
	return l.verbosity.get()
}

// SetVerbosity changes the verbosity threshold.
// It takes effect on the next log call.
func (l *Logger) SetVerbosity(v Level) {
	l.verbosity.set(v)
}

// Log expands the message template with the given arguments, renders one
// frame and hands it to the sink. It returns ErrLevelDisabled when the
// severity is filtered out, ErrMessageTooLong when the expanded message
// exceeds MaxMessageSize and ErrFrameTooLong when the rendered frame exceeds
// MaxFrameSize; in all three cases the sink is not invoked. It never panics.
func (l *Logger) Log(level Level, format string, args ...interface{}) error {
	if level > l.verbosity.get() {
		l.metrics.FilteredCount.Inc()
		return ErrLevelDisabled
	}
	msg, err := l.message(format, args...)
	if err != nil {
		return err
	}
	return l.deliver(level, TimestampOf(l.clock()), msg)
}

// LogEvery behaves like Log but rate limits emissions that share a key:
// after a permitted emission, further calls with the same key are dropped
// until strictly more than minInterval has elapsed. A dropped call is not an
// error; it returns (false, nil). The boolean reports whether a frame
// reached the sink. One clock reading serves both the throttle decision and
// the rendered timestamp.
func (l *Logger) LogEvery(key string, minInterval time.Duration, level Level, format string, args ...interface{}) (bool, error) {
	if level > l.verbosity.get() {
		l.metrics.FilteredCount.Inc()
		return false, ErrLevelDisabled
	}
	now := l.clock()
	if !l.throttle.Allow(key, now.UnixMicro(), minInterval.Microseconds()) {
		l.metrics.SuppressedCount.Inc()
		return false, nil
	}
	msg, err := l.message(format, args...)
	if err != nil {
		return false, err
	}
	if err := l.deliver(level, TimestampOf(now), msg); err != nil {
		return false, err
	}
	return true, nil
}

// message expands the template with the given arguments, enforcing the
// message bound.
func (l *Logger) message(format string, args ...interface{}) (string, error) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if len(msg) > MaxMessageSize {
		l.metrics.OversizeCount.Inc()
		return "", ErrMessageTooLong
	}
	return msg, nil
}

// deliver renders the frame and forwards it to the sink and the hooks.
func (l *Logger) deliver(level Level, ts Timestamp, msg string) error {
	frame, err := renderFrame(l.tokens, l.styles, l.name, level, l.label(level), ts, msg)
	if err != nil {
		l.metrics.OversizeCount.Inc()
		return err
	}

	var merr *multierror.Error
	if err := l.sink.Print(frame, level); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log %s: print frame: %w", level, err))
	}
	if err := l.levelHooks.fire(level); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log %s: fire hooks: %w", level, err))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return err
	}

	l.metrics.EmittedCount.Inc()
	return nil
}

// Alert logs a message at LevelAlert.
func (l *Logger) Alert(format string, args ...interface{}) error {
	return l.Log(LevelAlert, format, args...)
}

// Critical logs a message at LevelCritical.
func (l *Logger) Critical(format string, args ...interface{}) error {
	return l.Log(LevelCritical, format, args...)
}

// Error logs a message at LevelError.
func (l *Logger) Error(format string, args ...interface{}) error {
	return l.Log(LevelError, format, args...)
}

// Warning logs a message at LevelWarning.
func (l *Logger) Warning(format string, args ...interface{}) error {
	return l.Log(LevelWarning, format, args...)
}

// Notice logs a message at LevelNotice.
func (l *Logger) Notice(format string, args ...interface{}) error {
	return l.Log(LevelNotice, format, args...)
}

// Info logs a message at LevelInfo.
func (l *Logger) Info(format string, args ...interface{}) error {
	return l.Log(LevelInfo, format, args...)
}

// Debug logs a message at LevelDebug.
func (l *Logger) Debug(format string, args ...interface{}) error {
	return l.Log(LevelDebug, format, args...)
}

// Trace logs a message at LevelTrace.
func (l *Logger) Trace(format string, args ...interface{}) error {
	return l.Log(LevelTrace, format, args...)
}
