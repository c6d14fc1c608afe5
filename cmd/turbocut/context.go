package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"turbocut/internal/config"
	"turbocut/internal/export"
	"turbocut/internal/history"
	"turbocut/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.log = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		c.log = logger
	})
	return c.log
}

// newExporter wires the production collaborators. The output flag value
// stands in for an interactive destination dialog: empty means the user
// declined to pick a target.
func (c *commandContext) newExporter(outputPath string) (*export.Exporter, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	exporter := &export.Exporter{
		Probe: export.FFprobeProber{
			Binary:  cfg.Export.FFprobeBinary,
			Timeout: time.Duration(cfg.Export.ProbeTimeoutSeconds) * time.Second,
		},
		Picker: export.StaticPicker{Path: outputPath},
		Writer: export.AtomicWriter{},
		Logger: c.logger(),
	}

	cleanup := func() {}
	if cfg.History.Enabled {
		store, err := history.Open(cfg)
		if err != nil {
			// The journal is bookkeeping; exports proceed without it.
			c.logger().Warn("open history store", logging.Args(logging.Error(err))...)
		} else {
			exporter.Recorder = store
			cleanup = func() { _ = store.Close() }
		}
	}
	return exporter, cleanup, nil
}
