// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/flintlog/flint/pkg/log"
)

// checkTime is the fixed reading used for the sample frame so that check
// output stays reproducible.
var checkTime = time.Date(2025, time.January, 2, 3, 4, 5, 678901000, time.UTC)

func (c *command) initCheckCmd() {
	cmd := &cobra.Command{
		Use:   "check [template]",
		Short: "Tokenize a format template and preview a sample frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.config.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			template := c.config.GetString(optionNameFormat)
			if len(args) > 0 {
				template = args[0]
			}

			for _, tok := range log.Tokenize(template) {
				if tok.Kind == log.KindLiteral {
					cmd.Printf("%-8s %q\n", tok.Kind, tok.Literal)
					continue
				}
				cmd.Printf("%-8s width=%d\n", tok.Kind, tok.Width)
			}

			logger := log.New(c.config.GetString(optionNameName),
				log.WithFormat(template),
				log.WithClock(func() time.Time { return checkTime }),
				log.WithSink(log.NewWriterSink(cmd.OutOrStdout())),
			)
			return logger.Info("sample message")
		},
	}

	cmd.Flags().String(optionNameFormat, log.DefaultFormat, "format template to check")
	cmd.Flags().String(optionNameName, "flint", "logger name substituted for the %N directive")

	c.root.AddCommand(cmd)
}
