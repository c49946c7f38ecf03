// Package logging builds the logrus logger used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging options.
type Config struct {
	Level  string `long:"level" env:"LEVEL" description:"Log level (trace, debug, info, warn, error)" default:"info"`
	Format string `long:"format" env:"FORMAT" description:"Log format (text, json)" default:"text"`
	Output string `long:"output" env:"OUTPUT" description:"Log output (stdout, stderr, file path)" default:"stderr"`

	// File rotation settings
	MaxSize    int  `long:"max-size-mb" env:"MAX_SIZE_MB" description:"Maximum log file size in MB" default:"100"`
	MaxBackups int  `long:"max-backups" env:"MAX_BACKUPS" description:"Maximum number of backup files" default:"5"`
	MaxAge     int  `long:"max-age-days" env:"MAX_AGE_DAYS" description:"Maximum age of log files in days" default:"30"`
	Compress   bool `long:"compress" env:"COMPRESS" description:"Compress backup log files"`

	ProgressInterval time.Duration `long:"progress-interval" env:"PROGRESS_INTERVAL" description:"Minimum time between progress lines (0 logs every step)" default:"1s"`
}

// Validate checks the level and format.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Format)
	}
	return nil
}

// Logger is a logrus logger that may own a rotating log file.
type Logger struct {
	*logrus.Logger
	closer io.Closer
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// New configures a logger from config.
func New(config *Config) (*Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := logrus.New()
	level, _ := logrus.ParseLevel(config.Level)
	logger.SetLevel(level)

	switch config.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:   time.RFC3339,
			DisableHTMLEscape: true,
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	}

	l := &Logger{Logger: logger}
	switch config.Output {
	case "stdout":
		logger.SetOutput(os.Stdout)
	case "stderr", "":
		logger.SetOutput(os.Stderr)
	default:
		// File output with rotation
		if err := os.MkdirAll(filepath.Dir(config.Output), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   config.Output,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		logger.SetOutput(file)
		l.closer = file
	}

	return l, nil
}
