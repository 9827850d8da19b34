// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/flintlog/flint/cmd/flint/cmd"
)

func TestEmitCmd(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("emit",
			"--format", "%L %T",
			"--level", "warning",
			"--color", "never",
		),
		cmd.WithInput(strings.NewReader("voltage sag\nbrownout recovered\n")),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := "WARNING voltage sag\nWARNING brownout recovered\n"
	if got := outputBuf.String(); got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestEmitCmdThrottled(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("emit",
			"--format", "%T",
			"--color", "never",
			"--every", "1h",
		),
		cmd.WithInput(strings.NewReader("first\nsecond\nthird\n")),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	// All three lines share the default throttle key and arrive well
	// inside the interval, so only the first is emitted.
	want := "first\n"
	if got := outputBuf.String(); got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestEmitCmdUnknownVerbosity(t *testing.T) {
	err := newCommand(t,
		cmd.WithArgs("emit", "--verbosity", "loud"),
		cmd.WithInput(strings.NewReader("")),
		cmd.WithOutput(&bytes.Buffer{}),
	).Execute()
	if err == nil {
		t.Fatal("want error for unknown verbosity")
	}
}
