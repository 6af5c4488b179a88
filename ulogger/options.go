package ulogger

import (
	"io"
	"os"

	"github.com/ordishs/gocore"
)

type Options struct {
	loggerType string
	logLevel   string
	writer     io.Writer
	skip       int
}

type Option func(*Options)

func DefaultOptions() *Options {
	logLevel, _ := gocore.Config().Get("logLevel", "INFO")
	loggerType, _ := gocore.Config().Get("logger_type", "zerolog")

	return &Options{
		loggerType: loggerType,
		logLevel:   logLevel,
		writer:     os.Stdout,
	}
}

func WithLevel(logLevel string) Option {
	return func(o *Options) {
		o.logLevel = logLevel
	}
}

func WithLoggerType(loggerType string) Option {
	return func(o *Options) {
		o.loggerType = loggerType
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.writer = w
	}
}

func WithSkipFrame(skip int) Option {
	return func(o *Options) {
		o.skip = skip
	}
}
