// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log implements a minimal logging facility for resource-constrained
// targets. A format template is tokenized once at construction; every log
// call renders one bounded text line (a frame) and hands it to a
// caller-supplied sink. Oversized input is refused rather than silently
// truncated, and repeated emissions can be rate limited per key.
package log

import (
	"io"
	"sync"
)

// Hook is fired when logging on the associated severity log level.
// Note, the call must be non-blocking.
type Hook interface {
	Fire(Level) error
}

// levelHooks is a helper type for storing and
// help triggering the hooks on a logger instance.
type levelHooks map[Level][]Hook

// fire triggers all the hooks for the given level.
func (lh levelHooks) fire(level Level) error {
	for _, hook := range lh[level] {
		if err := hook.Fire(level); err != nil {
			return err
		}
	}
	return nil
}

// Sink receives one rendered frame per successful log call, together with
// the severity it was logged at. It is a borrowed collaborator that must
// outlive the logger, and it must not block indefinitely.
type Sink interface {
	Print(frame string, level Level) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(frame string, level Level) error

// Print implements the Sink interface.
func (f SinkFunc) Print(frame string, level Level) error {
	return f(frame, level)
}

// NewWriterSink returns a Sink that writes each frame to w on its own line.
// The provided writer should be safe for concurrent use, if it is not then
// it should be wrapped with the Lock helper.
func NewWriterSink(w io.Writer) Sink {
	return SinkFunc(func(frame string, _ Level) error {
		_, err := io.WriteString(w, frame+"\n")
		return err
	})
}

// Lock wraps io.Writer in a mutex to make it safe for concurrent use.
// In particular, *os.Files must be locked before use.
func Lock(w io.Writer) io.Writer {
	if _, ok := w.(*lockWriter); ok {
		return w // No need to layer on another lock.
	}
	return &lockWriter{w: w}
}

// lockWriter attaches mutex to io.Writer for convince of usage.
type lockWriter struct {
	sync.Mutex
	w io.Writer
}

// Write implements the io.Writer interface.
func (ls *lockWriter) Write(bs []byte) (int, error) {
	ls.Lock()
	n, err := ls.w.Write(bs)
	ls.Unlock()
	return n, err
}

// Options specifies parameters that affect logger behavior.
type Options struct {
	sink       Sink
	format     string
	verbosity  Level
	clock      ClockFunc
	styles     *Styles
	label      LabelFunc
	levelHooks levelHooks
}

// Option represent Options parameters modifier.
type Option func(*Options)

// WithSink tells the logger to hand rendered frames to the given sink.
func WithSink(sink Sink) Option {
	return func(opts *Options) { opts.sink = sink }
}

// WithFormat tells the logger which format template to tokenize at
// construction. If not specified, DefaultFormat is used.
func WithFormat(format string) Option {
	return func(opts *Options) { opts.format = format }
}

// WithVerbosity tells the logger which verbosity threshold to start with.
// Messages less urgent than the threshold are filtered out; LevelNone
// admits everything.
func WithVerbosity(verbosity Level) Option {
	return func(opts *Options) { opts.verbosity = verbosity }
}

// WithClock tells the logger where to obtain wall-clock readings.
// If not specified, time.Now is used.
func WithClock(clock ClockFunc) Option {
	return func(opts *Options) { opts.clock = clock }
}

// WithStyles tells the logger which decoration table to apply per token
// kind. If not specified, frames are rendered plain.
func WithStyles(styles *Styles) Option {
	return func(opts *Options) { opts.styles = styles }
}

// WithLabelFunc tells the logger how to derive the display label for a
// severity. If not specified, DefaultLabel is used.
func WithLabelFunc(label LabelFunc) Option {
	return func(opts *Options) { opts.label = label }
}

// WithLevelHooks tells the logger to register and execute hooks at related
// severity log levels. If LevelNone is given, the hooks are registered with
// each severity log level.
func WithLevelHooks(l Level, hooks ...Hook) Option {
	return func(opts *Options) {
		if opts.levelHooks == nil {
			opts.levelHooks = make(levelHooks)
		}
		if l == LevelNone {
			for ml := LevelAlert; ml <= LevelTrace; ml++ {
				opts.levelHooks[ml] = append(opts.levelHooks[ml], hooks...)
			}
			return
		}
		opts.levelHooks[l] = append(opts.levelHooks[l], hooks...)
	}
}
