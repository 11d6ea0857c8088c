package cmd

import (
	"fmt"
	"log/slog"

	cblog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/BabakBar/fmthook/internal/config"
	"github.com/BabakBar/fmthook/internal/hook"
	"github.com/BabakBar/fmthook/internal/log"
)

type options struct {
	configFile string
	logLevel   string

	cfg    *config.Config
	logger *cblog.Logger
}

// load reads the configuration and builds the logger, which also becomes the
// slog default. Flags override the configuration file.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(&config.LoadOptions{File: o.configFile})
	if err != nil {
		return err
	}

	if cmd.Flag("log-level").Changed {
		cfg.LogLevel = o.logLevel
	}

	logger, err := log.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	if cfg.ConfigFile() != "" {
		logger.Debug("Loaded config", log.Path, cfg.ConfigFile())
	}

	slog.SetDefault(slog.New(logger))

	o.cfg = cfg
	o.logger = logger

	return nil
}

func (o *options) dispatcher(extra ...hook.Option) (*hook.Dispatcher, error) {
	d, err := hook.New(o.cfg, append([]hook.Option{hook.WithLogger(o.logger)}, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}

	return d, nil
}
