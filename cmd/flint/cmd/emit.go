// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/flintlog/flint/pkg/log"
)

func (c *command) initEmitCmd() {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Log lines read from standard input",
		Long: `Reads standard input line by line and logs every line through a logger
built from the resolved configuration. Useful for piping device output or
replaying captures through a format template.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.config.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			logger, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			level, err := log.ParseLevel(c.config.GetString(optionNameLevel))
			if err != nil {
				return fmt.Errorf("parse level: %w", err)
			}

			var limiter *rate.Limiter
			if pace := c.config.GetFloat64(optionNamePace); pace > 0 {
				limiter = rate.NewLimiter(rate.Limit(pace), 1)
			}
			every := c.config.GetDuration(optionNameEvery)
			key := c.config.GetString(optionNameKey)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if limiter != nil {
					if err := limiter.Wait(context.Background()); err != nil {
						return err
					}
				}
				line := scanner.Text()
				if every > 0 {
					if _, err := logger.LogEvery(key, every, level, "%s", line); err != nil {
						return err
					}
					continue
				}
				if err := logger.Log(level, "%s", line); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	c.setLoggerFlags(cmd)
	cmd.Flags().String(optionNameLevel, "info", "severity to log incoming lines at")
	cmd.Flags().Duration(optionNameEvery, 0, "minimum interval between emissions sharing the throttle key")
	cmd.Flags().String(optionNameKey, "stdin", "throttle key used together with --every")
	cmd.Flags().Float64(optionNamePace, 0, "maximum lines per second to replay, 0 for unpaced")

	c.root.AddCommand(cmd)
}
