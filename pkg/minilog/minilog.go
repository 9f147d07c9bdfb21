// Copyright 2012-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

// Package minilog extends Go's logging functionality to allow for multiple
// loggers, each one with their own logging level. To use minilog, call
// AddLogger() to set up each desired logger, then use the package-level
// logging functions defined to send messages to all defined loggers.
package minilog

import (
	"errors"
	"io"
	golog "log"
	"os"
	"sync"
)

var (
	loggers   = map[string]*minilogger{}
	loggersMu sync.RWMutex
)

var ErrNoLogger = errors.New("logger does not exist")

// AddLogger adds a logger set to log only events at level specified or
// higher. Adding a logger with an existing name replaces it.
func AddLogger(name string, output io.Writer, level Level, color bool) {
	addLogger(name, golog.New(output, "", golog.LstdFlags), level, color)
}

// AddRing adds a Ring as a named logger. The Ring stamps its own times.
func AddRing(name string, r *Ring, level Level) {
	addLogger(name, r, level, false)
}

func addLogger(name string, l logger, level Level, color bool) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	loggers[name] = &minilogger{logger: l, Level: level, Color: color}
}

func DelLogger(name string) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	delete(loggers, name)
}

func Loggers() []string {
	loggersMu.RLock()
	defer loggersMu.RUnlock()

	res := make([]string, 0, len(loggers))
	for k := range loggers {
		res = append(res, k)
	}

	return res
}

func SetLevel(name string, level Level) error {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if loggers[name] == nil {
		return ErrNoLogger
	}
	loggers[name].Level = level
	return nil
}

func GetLevel(name string) (Level, error) {
	loggersMu.RLock()
	defer loggersMu.RUnlock()

	if loggers[name] == nil {
		return -1, ErrNoLogger
	}
	return loggers[name].Level, nil
}

// Filter drops any message containing filter from the named logger.
func Filter(name, filter string) error {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if loggers[name] == nil {
		return ErrNoLogger
	}
	loggers[name].filters = append(loggers[name].filters, filter)
	return nil
}

// WillLog returns true if logging to a specific log level will result in
// actual logging. Useful if the logging text itself is expensive to produce.
func WillLog(level Level) bool {
	loggersMu.RLock()
	defer loggersMu.RUnlock()

	for _, l := range loggers {
		if l.Level <= level {
			return true
		}
	}

	return false
}

func logAll(level Level, format string, arg ...interface{}) {
	loggersMu.RLock()
	defer loggersMu.RUnlock()

	for _, l := range loggers {
		if l.Level <= level {
			l.log(level, format, arg...)
		}
	}
}

func logAllln(level Level, arg ...interface{}) {
	loggersMu.RLock()
	defer loggersMu.RUnlock()

	for _, l := range loggers {
		if l.Level <= level {
			l.logln(level, arg...)
		}
	}
}

func Debug(format string, arg ...interface{}) {
	logAll(DEBUG, format, arg...)
}

func Info(format string, arg ...interface{}) {
	logAll(INFO, format, arg...)
}

func Warn(format string, arg ...interface{}) {
	logAll(WARN, format, arg...)
}

func Error(format string, arg ...interface{}) {
	logAll(ERROR, format, arg...)
}

func Fatal(format string, arg ...interface{}) {
	logAll(FATAL, format, arg...)
	os.Exit(1)
}

func Debugln(arg ...interface{}) {
	logAllln(DEBUG, arg...)
}

func Infoln(arg ...interface{}) {
	logAllln(INFO, arg...)
}

func Warnln(arg ...interface{}) {
	logAllln(WARN, arg...)
}

func Errorln(arg ...interface{}) {
	logAllln(ERROR, arg...)
}

func Fatalln(arg ...interface{}) {
	logAllln(FATAL, arg...)
	os.Exit(1)
}
