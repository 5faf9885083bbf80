package launcher

import (
	"fmt"
	"io"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// newLogger builds the command logger. Verbosity follows the flag scale
// (0=fatal ... 5=trace), one step above logrus' own numbering.
func newLogger(cfg LoggingConfig, w io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logLevel(cfg.Verbosity))

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		log.AddHook(hook)
	}
	return log, nil
}

func logLevel(verbosity int) logrus.Level {
	level := verbosity + 1
	if level < int(logrus.FatalLevel) {
		level = int(logrus.FatalLevel)
	}
	if level > int(logrus.TraceLevel) {
		level = int(logrus.TraceLevel)
	}
	return logrus.Level(level)
}
