package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/fitjournal/internal/config"
	"github.com/2beens/fitjournal/pkg"
)

const defaultLogLevel = logrus.InfoLevel

// Rotation limits of the log file. Zero MaxBackups and MaxAgeDays keep
// rotated files forever.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type SentryParams struct {
	Enabled    bool
	DSN        string
	ServerName string
}

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	Environment   string
	Rotation      Rotation
	Sentry        SentryParams
}

// ParamsFromConfig maps the logging part of the service config. The
// sentry DSN is a secret and never lives in the config file.
func ParamsFromConfig(cfg *config.Config, sentryDSN string) LoggerSetupParams {
	return LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Environment:   cfg.Environment,
		Rotation: Rotation{
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
		},
		Sentry: SentryParams{
			Enabled:    cfg.SentryEnabled,
			DSN:        sentryDSN,
			ServerName: cfg.ServiceName,
		},
	}
}

// Setup configures the standard logrus logger. It returns the log file
// writer to close on shutdown, or nil when logging to stdout only.
func Setup(params LoggerSetupParams) (io.Closer, error) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.Sentry.Enabled {
		if err := setupSentry(params.Environment, params.Sentry); err != nil {
			return nil, err
		}
	}

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Debugln("writing logs only to STDOUT")
		return nil, nil
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	maxSize := params.Rotation.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}
	fileLogger := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize, // megabytes
		MaxBackups: params.Rotation.MaxBackups,
		MaxAge:     params.Rotation.MaxAgeDays,
		LocalTime:  false, // rotated file names in UTC
		Compress:   true,
	}

	if params.LogToStdout {
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, fileLogger))
		logrus.Debugf("writing logs to [%s] and STDOUT", fileName)
	} else {
		logrus.SetOutput(fileLogger)
	}
	return fileLogger, nil
}

func setupSentry(environment string, params SentryParams) error {
	if params.DSN == "" {
		return fmt.Errorf("sentry enabled for [%s] but no DSN given", environment)
	}
	err := sentry.Init(sentry.ClientOptions{
		Environment:      environment,
		Dsn:              params.DSN,
		TracesSampleRate: 1.0,
		ServerName:       params.ServerName,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Debugln("sentry hook added")
	return nil
}

// GetLevel parses a level name; anything unknown gives info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return defaultLogLevel
	}
	return parsed
}
