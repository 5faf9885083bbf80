package launcher

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	for verbosity, want := range map[int]logrus.Level{
		-1: logrus.FatalLevel,
		0:  logrus.FatalLevel,
		1:  logrus.ErrorLevel,
		2:  logrus.WarnLevel,
		3:  logrus.InfoLevel,
		4:  logrus.DebugLevel,
		5:  logrus.TraceLevel,
		9:  logrus.TraceLevel,
	} {
		require.Equal(t, want, logLevel(verbosity), "verbosity %d", verbosity)
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		log, err := newLogger(LoggingConfig{Verbosity: 3, Format: "json"}, &out)
		require.NoError(t, err)

		log.WithField("records", 3).Info("Command finished")
		log.Debug("hidden")
		require.Contains(t, out.String(), `"records":3`)
		require.Contains(t, out.String(), `"msg":"Command finished"`)
		require.NotContains(t, out.String(), "hidden")
	})

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		log, err := newLogger(LoggingConfig{Verbosity: 4, Format: "text"}, &out)
		require.NoError(t, err)

		log.Debug("Streams opened")
		require.Contains(t, out.String(), "Streams opened")
	})

	t.Run("bad sentry dsn", func(t *testing.T) {
		_, err := newLogger(LoggingConfig{Format: "text", SentryDSN: "::not a url"}, &bytes.Buffer{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "sentry hook")
	})
}
