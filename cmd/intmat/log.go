// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/katalvlaran/intmat/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes JSON lines at level to w.
func newLogger(level config.LogLevel, w io.Writer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), level.Zap())

	return zap.New(core)
}
