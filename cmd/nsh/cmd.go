// File: cmd/nsh/cmd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/nshring/api"
	"github.com/momentics/nshring/control"
	"github.com/momentics/nshring/dispatch"
	"github.com/momentics/nshring/history"
	"github.com/momentics/nshring/shell"
)

func newRootCmd() *cobra.Command {
	v := control.NewViper()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "nsh",
		Short: "a small command shell with a fixed-size history ring",
		Long: `A small command shell with a fixed-size history ring

Lines are split on ';' and each command is resolved against the builtins
(help, exit, version, history, stats) and the demo commands (echo, cd, ls,
ring). On a terminal, arrow keys browse the history and Tab completes.`,
		Version:           Version,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := control.Load(v, configFile)
			if err != nil {
				return err
			}
			level, err := parseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger, err := newLogger(level)
			if err != nil {
				return err
			}
			defer logger.Sync()

			sh, err := newShell(cfg, logger)
			if err != nil {
				logger.Error("failed to build shell", zap.Error(err))
				return err
			}
			watchConfig(v, cfg, level, sh, logger)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := sh.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && !errors.Is(err, ctx.Err()) {
				logger.Error("shell stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./nsh.yaml)")
	flags.Int("history-size", 16, "number of history entries")
	flags.Int("line-size", 128, "maximum input line length in bytes")
	flags.String("prompt", "nsh> ", "interactive prompt")
	flags.String("dispatcher", control.DispatcherTable, "dispatch strategy: func, table or tableref")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	bindFlags(v, flags, map[string]string{
		control.KeyHistorySize: "history-size",
		control.KeyLineSize:    "line-size",
		control.KeyPrompt:      "prompt",
		control.KeyDispatcher:  "dispatcher",
		control.KeyLogLevel:    "log-level",
	})
	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic("nsh: unknown flag " + name)
		}
	}
}

func parseLevel(text string) (zap.AtomicLevel, error) {
	lvl, err := zapcore.ParseLevel(text)
	if err != nil {
		return zap.AtomicLevel{}, errors.Wrapf(err, "invalid log level %q", text)
	}
	return zap.NewAtomicLevelAt(lvl), nil
}

// newLogger builds a console logger on stderr.
func newLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	zapcfg := zap.NewProductionConfig()
	zapcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	zapcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zapcfg.Encoding = "console"
	zapcfg.Level = level
	return zapcfg.Build()
}

// watchConfig applies prompt and log level changes from the config file
// while the shell runs. Other settings take effect on the next start.
func watchConfig(v *viper.Viper, cfg control.Config, level zap.AtomicLevel, sh *shell.Shell, logger *zap.Logger) {
	r := control.NewReloader()
	r.RegisterReloadHook(func(c control.Config) {
		if lvl, err := zapcore.ParseLevel(c.LogLevel); err == nil {
			level.SetLevel(lvl)
		} else {
			logger.Warn("ignoring invalid log level", zap.String("log_level", c.LogLevel))
		}
		sh.SetPrompt(c.Prompt)
		if c.HistorySize != cfg.HistorySize || c.LineSize != cfg.LineSize || c.Dispatcher != cfg.Dispatcher {
			logger.Info("config change needs a restart to take effect")
		}
		logger.Debug("config reloaded", zap.String("file", v.ConfigFileUsed()))
	})
	r.Watch(v, func(err error) {
		logger.Warn("ignoring invalid config change", zap.Error(err))
	})
}

func newShell(cfg control.Config, logger *zap.Logger) (*shell.Shell, error) {
	hist, err := history.TryNew(cfg.HistorySize, cfg.LineSize)
	if err != nil {
		return nil, err
	}
	demo, err := newDemo(cfg.HistorySize, logger)
	if err != nil {
		return nil, err
	}
	d, err := newDispatcher(cfg.Dispatcher, demo.commands())
	if err != nil {
		return nil, err
	}
	return shell.New(d, hist,
		shell.WithLogger(logger.Named("shell")),
		shell.WithPrompt(cfg.Prompt),
		shell.WithLineSize(cfg.LineSize),
		shell.WithVersion(Version),
	), nil
}

func newDispatcher(strategy string, commands []dispatch.Command) (api.Dispatcher, error) {
	switch strategy {
	case control.DispatcherFunc:
		return dispatch.FuncOf(commands...), nil
	case control.DispatcherTableRef:
		return dispatch.NewTableRef(commands), nil
	case control.DispatcherTable:
		return dispatch.NewTable(commands...), nil
	}
	return nil, api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
		WithContext(control.KeyDispatcher, strategy)
}
