package logger

import (
	"io"
	"os"

	"github.com/lukehollenback/zebitex/config"
	"github.com/sirupsen/logrus"
)

//
// New builds a logger from the provided configuration. Unknown levels fall back to info and unknown
// formats to text, so a typo in a config file never prevents the tool from running.
//
func New(cfg config.LogConfig) *logrus.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

func NewWithWriter(cfg config.LogConfig, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}

//
// Named returns an entry that tags every line with the name of the component that logged it.
//
func Named(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField("service", name)
}
