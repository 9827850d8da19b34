// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/flintlog/flint/pkg/log"
)

const (
	optionNameFormat    = "format"
	optionNameName      = "name"
	optionNameVerbosity = "verbosity"
	optionNameLevel     = "level"
	optionNameStyles    = "styles"
	optionNameColor     = "color"
	optionNameEvery     = "every"
	optionNameKey       = "key"
	optionNamePace      = "pace"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "flint",
			Short:         "Bounded single-line logging for constrained targets",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	for _, o := range opts {
		o(c)
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()

	c.initEmitCmd()
	c.initCheckCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.flint.yaml)")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".flint"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".flint" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("flint")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

func (c *command) setLoggerFlags(cmd *cobra.Command) {
	cmd.Flags().String(optionNameFormat, log.DefaultFormat, "format template for rendered frames")
	cmd.Flags().String(optionNameName, "flint", "logger name substituted for the %N directive")
	cmd.Flags().String(optionNameVerbosity, "none", "verbosity threshold: alert, critical, error, warning, notice, info, debug, trace or none")
	cmd.Flags().String(optionNameStyles, "", "path to a YAML style table; overrides --color")
	cmd.Flags().String(optionNameColor, "auto", "decorate frames with the terminal palette: auto, always or never")
}

// newLogger builds a logger from the resolved configuration, writing frames
// to the command's output stream.
func (c *command) newLogger(cmd *cobra.Command) (*log.Logger, error) {
	verbosity, err := log.ParseLevel(c.config.GetString(optionNameVerbosity))
	if err != nil {
		return nil, fmt.Errorf("parse verbosity: %w", err)
	}

	opts := []log.Option{
		log.WithFormat(c.config.GetString(optionNameFormat)),
		log.WithVerbosity(verbosity),
		log.WithSink(log.NewWriterSink(cmd.OutOrStdout())),
	}

	styles, err := c.styles()
	if err != nil {
		return nil, err
	}
	if styles != nil {
		opts = append(opts, log.WithStyles(styles))
	}

	return log.New(c.config.GetString(optionNameName), opts...), nil
}

// styles resolves the decoration table: an explicit YAML table wins,
// otherwise the color mode decides whether the terminal palette applies.
func (c *command) styles() (*log.Styles, error) {
	if path := c.config.GetString(optionNameStyles); path != "" {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("open style table: %w", err)
		}
		defer f.Close()
		return log.LoadStyles(f)
	}

	switch mode := c.config.GetString(optionNameColor); mode {
	case "always":
		return log.DefaultStyles(), nil
	case "never":
		return nil, nil
	case "auto":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return log.DefaultStyles(), nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
}
