package cmd

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/msimtools/motorsport-session-manager-go/log"
	"github.com/msimtools/motorsport-session-manager-go/pkg/config"
)

// setupLogger creates the logger according to the CLI settings,
// installs it as package default and puts it into the command
// context. When a log config file is used it is watched for changes
// so filter rules can be adjusted while a recording is running.
func setupLogger(cmd *cobra.Command) error {
	var logCfg *log.Config
	if config.LogConfig != "" {
		var err error
		if logCfg, err = log.LoadConfig(config.LogConfig); err != nil {
			return fmt.Errorf("could not load log config %s: %w", config.LogConfig, err)
		}
	}
	logger, err := newLogger(logCfg)
	if err != nil {
		return err
	}
	log.ResetDefault(logger)
	cmd.SetContext(log.AddToContext(cmd.Context(), logger))
	if config.LogConfig != "" {
		go watchAndReloadLogConfig(cmd)
	}
	return nil
}

func newLogger(logCfg *log.Config) (*log.Logger, error) {
	level := parseLogLevel(config.LogLevel, log.InfoLevel)
	if logCfg != nil {
		level = logCfg.Level(level)
	}
	coreLevel := level
	filtered := logCfg != nil && len(logCfg.Filters) > 0
	if filtered {
		// with filter rules present the rules decide per logger,
		// the core must not discard anything beforehand
		coreLevel = log.DebugLevel
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(os.Stderr, coreLevel,
			log.WithCaller(true), log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(os.Stderr, coreLevel,
			log.WithCaller(true), log.AddCallerSkip(1))
	}
	if filtered {
		return logger.Filtered(logCfg.Rules(level))
	}
	return logger, nil
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func watchAndReloadLogConfig(cmd *cobra.Command) {
	logger := log.Default().Named("logconfig")
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("could not create fsnotify watcher", log.ErrorField(err))
		return
	}
	defer watcher.Close()
	if err := watcher.Add(config.LogConfig); err != nil {
		logger.Error("could not watch log config file", log.ErrorField(err))
		return
	}
	for {
		select {
		case <-cmd.Context().Done():
			logger.Info("context done, stopping log config reload")
			return
		case event, ok := <-watcher.Events:
			if !ok {
				logger.Info("watcher events channel closed, stopping log config reload")
				return
			}
			logger.Debug("change detected",
				log.String("file", event.Name), log.Any("event", event))
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Chmod == fsnotify.Chmod {

				logger.Info("log config changed, reloading",
					log.String("file", event.Name))
				reloadLogConfig()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				logger.Info("watcher errors channel closed, stopping log config reload")
				return
			}
			logger.Error("watcher error", log.ErrorField(err))
		}
	}
}

func reloadLogConfig() {
	logCfg, err := log.LoadConfig(config.LogConfig)
	if err != nil {
		log.Error("could not reload log config", log.ErrorField(err))
		return
	}
	logger, err := newLogger(logCfg)
	if err != nil {
		log.Error("could not apply log config", log.ErrorField(err))
		return
	}
	log.ResetDefault(logger)
}
