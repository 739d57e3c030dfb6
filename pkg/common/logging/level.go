/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Level defines all available log levels for log messages.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

var levelNames = []string{
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFO",
	"DEBUG",
}

const defaultLevel = INFO

// String returns the string representation of a logging level
func (l Level) String() string {
	if l < CRITICAL || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel returns the log level from a string representation.
func ParseLevel(level string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return Level(i), nil
		}
	}
	if strings.EqualFold(level, "warn") {
		return WARNING, nil
	}
	return ERROR, errors.Errorf("logger: invalid log level '%s'", level)
}

// moduleLeveled holds the level of every module that was explicitly set.
// The empty module name is the default for all others.
type moduleLeveled struct {
	sync.RWMutex
	levels map[string]Level
}

func (l *moduleLeveled) getLevel(module string) Level {
	l.RLock()
	defer l.RUnlock()
	if level, ok := l.levels[module]; ok {
		return level
	}
	if level, ok := l.levels[""]; ok {
		return level
	}
	return defaultLevel
}

func (l *moduleLeveled) setLevel(module string, level Level) {
	l.Lock()
	defer l.Unlock()
	l.levels[module] = level
}

func (l *moduleLeveled) isEnabledFor(module string, level Level) bool {
	return level <= l.getLevel(module)
}

var levels = &moduleLeveled{levels: make(map[string]Level)}
