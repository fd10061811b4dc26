// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package logger

import (
	"os"
	"strings"

	"github.com/mattermost/logr/v2"
	"github.com/mattermost/logr/v2/formatters"
	"github.com/mattermost/logr/v2/targets"
)

// Settings holds information used to initialize a new logger.
type Settings struct {
	EnableConsole bool   `default:"true"`
	ConsoleJson   bool   `default:"false"`
	ConsoleLevel  string `default:"INFO" validate:"oneof:{TRACE, DEBUG, INFO, WARN, ERROR}"`
	EnableFile    bool   `default:"false"`
	FileJson      bool   `default:"true"`
	FileLevel     string `default:"INFO" validate:"oneof:{TRACE, DEBUG, INFO, WARN, ERROR}"`
	FileLocation  string `default:"preflight.log"`
}

// New returns a newly created and initialized logger with the given settings.
func New(settings *Settings) (*logr.Logr, error) {
	lgr, err := logr.New()
	if err != nil {
		return nil, err
	}

	if settings.EnableConsole {
		filter := logr.StdFilter{
			Lvl:        parseLevel(settings.ConsoleLevel),
			Stacktrace: logr.Error,
		}
		var formatter logr.Formatter
		if settings.ConsoleJson {
			formatter = &formatters.JSON{}
		} else {
			formatter = &formatters.Plain{Delim: " | "}
		}
		target := targets.NewWriterTarget(os.Stdout)
		if err := lgr.AddTarget(target, "console", filter, formatter, 1000); err != nil {
			return nil, err
		}
	}

	if settings.EnableFile {
		filter := logr.StdFilter{
			Lvl:        parseLevel(settings.FileLevel),
			Stacktrace: logr.Error,
		}
		var formatter logr.Formatter
		if settings.FileJson {
			formatter = &formatters.JSON{}
		} else {
			formatter = &formatters.Plain{Delim: " | "}
		}
		target := targets.NewFileTarget(targets.FileOptions{
			Filename:   settings.FileLocation,
			MaxSize:    100,
			MaxBackups: 5,
			Compress:   true,
		})
		if err := lgr.AddTarget(target, "file", filter, formatter, 1000); err != nil {
			return nil, err
		}
	}

	return lgr, nil
}

var global logr.Logger

// Init initializes the global logger with the given settings.
func Init(settings *Settings) error {
	lgr, err := New(settings)
	if err != nil {
		return err
	}
	global = lgr.NewLogger()
	return nil
}

// Shutdown flushes and closes the global logger's targets.
func Shutdown() {
	if lgr := global.Logr(); lgr != nil {
		_ = lgr.Shutdown()
	}
}

func parseLevel(level string) logr.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return logr.Trace
	case "DEBUG":
		return logr.Debug
	case "WARN":
		return logr.Warn
	case "ERROR":
		return logr.Error
	default:
		return logr.Info
	}
}

func Debug(msg string, fields ...logr.Field) {
	if global.Logr() != nil {
		global.Debug(msg, fields...)
	}
}

func Info(msg string, fields ...logr.Field) {
	if global.Logr() != nil {
		global.Info(msg, fields...)
	}
}

func Warn(msg string, fields ...logr.Field) {
	if global.Logr() != nil {
		global.Warn(msg, fields...)
	}
}

func Error(msg string, fields ...logr.Field) {
	if global.Logr() != nil {
		global.Error(msg, fields...)
	}
}

// Field constructors re-exported so call sites only import this package.

func String(key, val string) logr.Field {
	return logr.String(key, val)
}

func Int(key string, val int) logr.Field {
	return logr.Int(key, val)
}

func Bool(key string, val bool) logr.Field {
	return logr.Bool(key, val)
}

func Err(err error) logr.Field {
	return logr.Err(err)
}

func Any(key string, val any) logr.Field {
	return logr.Any(key, val)
}
