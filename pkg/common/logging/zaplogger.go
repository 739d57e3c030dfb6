/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapProvider struct {
	base *zap.Logger
}

// NewZapProvider returns a provider whose module loggers write to core.
// A nil core writes console encoded entries to stderr.
// Level filtering is done per module by this package, so core should
// accept every level.
func NewZapProvider(core zapcore.Core) LoggerProvider {
	if core == nil {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		)
	}
	return &zapProvider{base: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// GetLogger returns a sugared zap logger named after the module.
func (p *zapProvider) GetLogger(module string) Log {
	return p.base.Named(module).Sugar()
}
