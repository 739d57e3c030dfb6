/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging enables setting custom logger implementation.
//
//  Basic Flow:
//  1) Initialize logger (optional, a zap backed provider is used otherwise)
//  2) Create new logger for specific module
//  3) Call log info
package logging

import (
	"sync"
)

//Logger is a module logger. Messages below the module level are dropped
//before they reach the provider.
type Logger struct {
	instance Log // access only via Logger.logger()
	module   string
	once     sync.Once
}

// logger factory singleton - access only via loggerProvider()
var loggerProviderInstance LoggerProvider
var loggerProviderOnce sync.Once

const (
	//loggerNotInitializedMsg is used when a logger is not initialized before logging
	loggerNotInitializedMsg = "Default logger initialized (please call logging.Initialize if you wish to use a custom logger)"
	loggerModule            = "gwclient/common"
)

// NewLogger creates and returns a Logger object based on the module name.
func NewLogger(module string) *Logger {
	// note: the underlying logger instance is lazy initialized on first use
	return &Logger{module: module}
}

func loggerProvider() LoggerProvider {
	loggerProviderOnce.Do(func() {
		// A custom logger must be initialized prior to the first log output
		// Otherwise the built-in logger is used
		loggerProviderInstance = NewZapProvider(nil)
		logger := loggerProviderInstance.GetLogger(loggerModule)
		if IsEnabledFor(loggerModule, DEBUG) {
			logger.Debug(loggerNotInitializedMsg)
		}
	})
	return loggerProviderInstance
}

//Initialize sets new logger which takes over logging operations.
//It is required to call this function before making any loggings.
func Initialize(l LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = l
	})
}

//SetLevel - setting log level for given module
//  Parameters:
//  module is module name, the empty name sets the default for all modules
//  level is logging level
func SetLevel(module string, level Level) {
	levels.setLevel(module, level)
}

//GetLevel - getting log level for given module
func GetLevel(module string) Level {
	return levels.getLevel(module)
}

//IsEnabledFor - Check if given log level is enabled for given module
func IsEnabledFor(module string, level Level) bool {
	return levels.isEnabledFor(module, level)
}

// LogLevel returns the log level from a string representation.
func LogLevel(level string) (Level, error) {
	return ParseLevel(level)
}

//Fatal calls Fatal function of underlying logger
func (l *Logger) Fatal(args ...interface{}) {
	l.logger().Fatal(args...)
}

//Fatalf calls Fatalf function of underlying logger
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logger().Fatalf(format, args...)
}

//Panic calls Panic function of underlying logger
func (l *Logger) Panic(args ...interface{}) {
	l.logger().Panic(args...)
}

//Panicf calls Panicf function of underlying logger
func (l *Logger) Panicf(format string, args ...interface{}) {
	l.logger().Panicf(format, args...)
}

//Debug calls Debug function of underlying logger
func (l *Logger) Debug(args ...interface{}) {
	if IsEnabledFor(l.module, DEBUG) {
		l.logger().Debug(args...)
	}
}

//Debugf calls Debugf function of underlying logger
func (l *Logger) Debugf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, DEBUG) {
		l.logger().Debugf(format, args...)
	}
}

//Info calls Info function of underlying logger
func (l *Logger) Info(args ...interface{}) {
	if IsEnabledFor(l.module, INFO) {
		l.logger().Info(args...)
	}
}

//Infof calls Infof function of underlying logger
func (l *Logger) Infof(format string, args ...interface{}) {
	if IsEnabledFor(l.module, INFO) {
		l.logger().Infof(format, args...)
	}
}

//Warn calls Warn function of underlying logger
func (l *Logger) Warn(args ...interface{}) {
	if IsEnabledFor(l.module, WARNING) {
		l.logger().Warn(args...)
	}
}

//Warnf calls Warnf function of underlying logger
func (l *Logger) Warnf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, WARNING) {
		l.logger().Warnf(format, args...)
	}
}

//Error calls Error function of underlying logger
func (l *Logger) Error(args ...interface{}) {
	if IsEnabledFor(l.module, ERROR) {
		l.logger().Error(args...)
	}
}

//Errorf calls Errorf function of underlying logger
func (l *Logger) Errorf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, ERROR) {
		l.logger().Errorf(format, args...)
	}
}

func (l *Logger) logger() Log {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})
	return l.instance
}
