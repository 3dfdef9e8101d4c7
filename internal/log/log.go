// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package log builds [slog.Handler] values for the playground commands.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

// ErrUnknownFormat is returned by [CreateHandler] for an unsupported format.
var ErrUnknownFormat = errors.New("unknown log format")

// CreateHandler creates a [slog.Handler] writing to w from level and format
// strings. An empty format selects text.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: GetLevel(logLevel)}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, opts), nil
	case TextFormat, LogfmtFormat, "":
		// slog's text handler emits logfmt.
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, logFormat)
	}
}

// GetLevel maps a level name to a [slog.Level]. Unknown names map to info.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
