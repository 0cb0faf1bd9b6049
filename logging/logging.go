// Package logging constructs the zap loggers this module's binaries and
// library entry points use, mirroring the teacher's service.go convention
// of a single base logger tagged with a "component" key and per-unit-of-work
// loggers derived from it with .With.
package logging

import "go.uber.org/zap"

// Config selects the base logger's behavior.
type Config struct {
	// Development enables zap's development preset (console encoding,
	// debug level, stack traces on warn+) instead of the production JSON
	// preset.
	Development bool
	// Level is the minimum enabled level name ("debug", "info", "warn",
	// "error"); empty defaults to "info".
	Level string
}

// New builds a *zap.Logger tagged with component="manifest-analyzer", the
// way the teacher's Service constructor tags every logger it hands out.
func New(cfg Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	if cfg.Level != "" {
		lvl, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("component", "manifest-analyzer")), nil
}
