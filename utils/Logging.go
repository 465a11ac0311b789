package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const DefaultLogLevel = "info"

// SetupLogging builds the process logger. Lines go to stderr and, when
// logFile is set, are also appended to that file.
func SetupLogging(level string, logFile string) (*logrus.Logger, func(), error) {
	if level == "" {
		level = DefaultLogLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cleanup := func() {}
	var output io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		output = io.MultiWriter(os.Stderr, file)
		cleanup = func() { _ = file.Close() }
	}
	logger.SetOutput(output)

	return logger, cleanup, nil
}
