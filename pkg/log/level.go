// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"strconv"
	"sync/atomic"
)

// Level classifies the urgency of a log call, ordered from most to least
// urgent. Level should be modified only through its set method.
// Level is treated as a sync/atomic int32.
type Level int32

const (
	// LevelAlert marks conditions that demand immediate action.
	LevelAlert Level = iota
	// LevelCritical marks critical conditions.
	LevelCritical
	// LevelError marks error conditions.
	LevelError
	// LevelWarning marks warning conditions.
	LevelWarning
	// LevelNotice marks normal but significant conditions.
	LevelNotice
	// LevelInfo marks informational messages.
	LevelInfo
	// LevelDebug marks debug-level messages.
	LevelDebug
	// LevelTrace marks the most granular diagnostic messages.
	LevelTrace
	// LevelNone is not a message severity. Used as a verbosity threshold
	// it admits every severity.
	LevelNone
)

// get returns the value of the Level.
func (l *Level) get() Level {
	return Level(atomic.LoadInt32((*int32)(l)))
}

// set updates the value of the Level.
func (l *Level) set(v Level) {
	atomic.StoreInt32((*int32)(l), int32(v))
}

// String implements the fmt.Stringer interface.
func (l Level) String() string {
	switch l {
	case LevelAlert:
		return "alert"
	case LevelCritical:
		return "critical"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNotice:
		return "notice"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	case LevelNone:
		return "none"
	}
	return strconv.FormatInt(int64(l), 10)
}

// ParseLevel returns a Level parsed from the given s.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "alert":
		return LevelAlert, nil
	case "critical":
		return LevelCritical, nil
	case "error":
		return LevelError, nil
	case "warning":
		return LevelWarning, nil
	case "notice":
		return LevelNotice, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	case "none":
		return LevelNone, nil
	}
	i, err := strconv.ParseInt(s, 10, 32)
	return Level(i), err
}

// LabelFunc maps a severity to the display label substituted for the %L
// directive. It is a replaceable collaborator; see WithLabelFunc.
type LabelFunc func(Level) string

// DefaultLabel is the LabelFunc used when none is configured.
func DefaultLabel(l Level) string {
	switch l {
	case LevelAlert:
		return "ALERT"
	case LevelCritical:
		return "CRITICAL"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelNotice:
		return "NOTICE"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	case LevelNone:
		return "NONE"
	}
	return "UNKNOWN"
}
